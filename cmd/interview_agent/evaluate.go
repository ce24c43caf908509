package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/daniel/interview-coach/internal/config"
	"github.com/daniel/interview-coach/internal/evaluation"
	"github.com/daniel/interview-coach/internal/observability"
	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score an answer against an ideal answer offline",
	Long: `Score an interview answer against an ideal answer using the deterministic offline engine. No network or database is needed.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runEvaluate,
}

var (
	evalConfigPath string
	evalAnswer     string
	evalAnswerFile string
	evalIdeal      string
	evalIdealFile  string
	evalConcepts   string
	evalCategory   string
	evalJSON       bool
	evalVerbose    bool
)

func init() {
	evaluateCmd.Flags().StringVar(&evalConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	evaluateCmd.Flags().StringVarP(&evalAnswer, "answer", "a", "", "Answer text (mutually exclusive with --answer-file)")
	evaluateCmd.Flags().StringVar(&evalAnswerFile, "answer-file", "", "Path to a file containing the answer text")
	evaluateCmd.Flags().StringVar(&evalIdeal, "ideal", "", "Ideal answer text (mutually exclusive with --ideal-file)")
	evaluateCmd.Flags().StringVar(&evalIdealFile, "ideal-file", "", "Path to a file containing the ideal answer text")
	evaluateCmd.Flags().StringVar(&evalConcepts, "concepts", "", "Comma-separated list of required concepts")
	evaluateCmd.Flags().StringVar(&evalCategory, "category", "", "Question category: technical, behavioral, or system_design")
	evaluateCmd.Flags().BoolVar(&evalJSON, "json", false, "Print the full result as JSON")
	evaluateCmd.Flags().BoolVarP(&evalVerbose, "verbose", "v", false, "Print the full report instead of the score summary")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	// Load config file if provided
	var cfg config.Config
	if evalConfigPath != "" {
		loadedCfg, err := config.LoadConfig(evalConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("category") {
		cfg.Category = evalCategory
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = evalVerbose
	}

	answer, err := resolveText(evalAnswer, evalAnswerFile, "answer")
	if err != nil {
		return err
	}
	if strings.TrimSpace(answer) == "" {
		return fmt.Errorf("--answer or --answer-file is required")
	}

	ideal, err := resolveText(evalIdeal, evalIdealFile, "ideal")
	if err != nil {
		return err
	}

	result := evaluation.Evaluate(answer, ideal, evaluation.Options{
		Concepts: splitCommaList(evalConcepts),
		Category: evaluation.Category(cfg.Category),
	})

	if evalJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintReport(&result)
		return nil
	}
	printer.PrintScores(&result)

	return nil
}

// resolveText returns the inline text or the contents of the file, erroring
// when both are given.
func resolveText(inline, path, name string) (string, error) {
	if inline != "" && path != "" {
		return "", fmt.Errorf("--%s and --%s-file are mutually exclusive; provide only one", name, name)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s file: %w", name, err)
		}
		return string(data), nil
	}
	return inline, nil
}

// splitCommaList splits a comma-separated flag value, trimming whitespace and
// dropping empty entries.
func splitCommaList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

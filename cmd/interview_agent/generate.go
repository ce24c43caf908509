package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/daniel/interview-coach/internal/config"
	"github.com/daniel/interview-coach/internal/generation"
	"github.com/daniel/interview-coach/internal/question"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Draft questions or an ideal answer with Gemini",
	Long: `Draft interview questions on a topic, or a model answer for a single question, using Gemini.

With --topic, drafted questions are written to a YAML bank for review and seeding. With --prompt, the drafted ideal answer and its concepts are printed. The evaluation engine never calls the model; generation only authors content.`,
	RunE: runGenerate,
}

var (
	genConfigPath string
	genTopic      string
	genPrompt     string
	genCategory   string
	genDifficulty string
	genCount      int
	genOut        string
	genAPIKey     string
)

func init() {
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	generateCmd.Flags().StringVarP(&genTopic, "topic", "t", "", "Topic to draft questions about (mutually exclusive with --prompt)")
	generateCmd.Flags().StringVarP(&genPrompt, "prompt", "p", "", "Question prompt to draft an ideal answer for (mutually exclusive with --topic)")
	generateCmd.Flags().StringVar(&genCategory, "category", "", "Category for drafted content (default: technical)")
	generateCmd.Flags().StringVar(&genDifficulty, "difficulty", "", "Difficulty for drafted questions (default: medium)")
	generateCmd.Flags().IntVar(&genCount, "count", 0, "Number of questions to draft (default: 5, max: 20)")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "Path to write the draft bank YAML (required with --topic)")
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	// Load config file if provided
	var cfg config.Config
	if genConfigPath != "" {
		loadedCfg, err := config.LoadConfig(genConfigPath)
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
		cfg.Category = genCategory
	}
	if cmd.Flags().Changed("difficulty") {
		cfg.Difficulty = genDifficulty
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = genAPIKey
	}

	if genTopic == "" && genPrompt == "" {
		return fmt.Errorf("either --topic or --prompt must be provided")
	}
	if genTopic != "" && genPrompt != "" {
		return fmt.Errorf("--topic and --prompt are mutually exclusive; provide only one")
	}
	if genTopic != "" && genOut == "" {
		return fmt.Errorf("--out is required with --topic")
	}

	// Get API key from flag, config, or environment
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key required: set --api-key flag or GEMINI_API_KEY environment variable")
	}

	ctx := context.Background()
	client, err := generation.NewClient(ctx, nil, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if genPrompt != "" {
		answer, err := generation.DraftIdealAnswer(ctx, client, genPrompt, cfg.Category)
		if err != nil {
			return fmt.Errorf("failed to draft ideal answer: %w", err)
		}

		_, _ = fmt.Fprintf(os.Stdout, "Ideal answer:\n\n%s\n", answer.IdealAnswer)
		if len(answer.Concepts) > 0 {
			_, _ = fmt.Fprintf(os.Stdout, "\nConcepts: %s\n", strings.Join(answer.Concepts, ", "))
		}
		return nil
	}

	entries, err := generation.DraftQuestions(ctx, client, generation.DraftRequest{
		Topic:      genTopic,
		Category:   cfg.Category,
		Difficulty: cfg.Difficulty,
		Count:      genCount,
	})
	if err != nil {
		return fmt.Errorf("failed to draft questions: %w", err)
	}

	bank := &question.Bank{Questions: entries}
	if err := question.WriteBank(genOut, bank); err != nil {
		return fmt.Errorf("failed to write draft bank: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully drafted %d questions\n", len(entries))
	_, _ = fmt.Fprintf(os.Stdout, "Draft bank: %s\n", genOut)
	_, _ = fmt.Fprintf(os.Stdout, "Review the draft, then seed it with: interview_agent seed --bank %s\n", genOut)

	return nil
}

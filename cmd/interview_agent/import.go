package main

import (
	"context"
	"fmt"
	"os"

	"github.com/daniel/interview-coach/internal/config"
	"github.com/daniel/interview-coach/internal/importer"
	"github.com/daniel/interview-coach/internal/question"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import questions from a public question page into a draft bank",
	Long: `Fetch an interview-question page, extract candidate questions from its HTML, and write them to a draft YAML bank for review.

Imported entries carry no ideal answers or concepts; fill those in by hand or with the generate command, then seed the reviewed bank.`,
	RunE: runImport,
}

var (
	importConfigPath string
	importURL        string
	importOut        string
	importCategory   string
	importDifficulty string
	importTags       string
	importSource     string
	importUseBrowser bool
	importVerbose    bool
)

func init() {
	importCmd.Flags().StringVar(&importConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	importCmd.Flags().StringVarP(&importURL, "url", "u", "", "URL of the question page (required)")
	importCmd.Flags().StringVarP(&importOut, "out", "o", "", "Path to write the draft bank YAML (required)")
	importCmd.Flags().StringVar(&importCategory, "category", "", "Category for imported questions (default: technical)")
	importCmd.Flags().StringVar(&importDifficulty, "difficulty", "", "Difficulty for imported questions (default: medium)")
	importCmd.Flags().StringVar(&importTags, "tags", "", "Comma-separated tags for imported questions")
	importCmd.Flags().StringVar(&importSource, "source", "", "Source label for imported questions (default: the URL)")
	importCmd.Flags().BoolVar(&importUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	importCmd.Flags().BoolVarP(&importVerbose, "verbose", "v", false, "Print detailed debug information")

	if err := importCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}
	if err := importCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	// Load config file if provided
	var cfg config.Config
	if importConfigPath != "" {
		loadedCfg, err := config.LoadConfig(importConfigPath)
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
		cfg.Category = importCategory
	}
	if cmd.Flags().Changed("difficulty") {
		cfg.Difficulty = importDifficulty
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = importUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = importVerbose
	}

	ctx := context.Background()

	result, err := importer.Fetch(ctx, importURL, nil)
	if err != nil {
		return fmt.Errorf("failed to fetch page: %w", err)
	}

	html := result.HTML

	// Short extracted text means the page is likely script-rendered, so
	// re-fetch through the browser unless it was forced already.
	text, err := importer.ExtractMainText(html, importer.QuestionPageSelectors())
	if err != nil {
		return fmt.Errorf("failed to extract page text: %w", err)
	}

	if cfg.UseBrowser || importer.ShouldUseBrowser(text) {
		rendered, err := importer.FetchWithBrowser(ctx, importURL, importer.DefaultTimeout, cfg.Verbose)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: browser fetch failed, using plain HTML: %v\n", err)
		} else {
			html = rendered
		}
	}

	questions, err := importer.ExtractQuestions(html)
	if err != nil {
		return fmt.Errorf("failed to extract questions: %w", err)
	}
	if len(questions) == 0 {
		return fmt.Errorf("no questions found at %s", importURL)
	}

	source := importSource
	if source == "" {
		source = importURL
	}

	bank, err := importer.BuildBank(questions, importer.DraftOptions{
		Category:   cfg.Category,
		Difficulty: cfg.Difficulty,
		Tags:       splitCommaList(importTags),
		Source:     source,
	})
	if err != nil {
		return fmt.Errorf("failed to build draft bank: %w", err)
	}

	if err := question.WriteBank(importOut, bank); err != nil {
		return fmt.Errorf("failed to write draft bank: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully imported %d questions\n", len(bank.Questions))
	_, _ = fmt.Fprintf(os.Stdout, "Draft bank: %s\n", importOut)
	_, _ = fmt.Fprintf(os.Stdout, "Review the draft, then seed it with: interview_agent seed --bank %s\n", importOut)

	return nil
}

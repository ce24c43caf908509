package main

import (
	"context"
	"fmt"
	"os"

	"github.com/daniel/interview-coach/internal/config"
	"github.com/daniel/interview-coach/internal/db"
	"github.com/daniel/interview-coach/internal/question"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load question bank YAML files into the database",
	Long: `Load a YAML question bank file or directory, validate it against the bank schema, and insert the questions into PostgreSQL.

With --dry-run the bank is only validated and summarized; nothing is written.`,
	RunE: runSeed,
}

var (
	seedConfigPath  string
	seedBankPath    string
	seedSchemaPath  string
	seedDatabaseURL string
	seedDryRun      bool
)

func init() {
	seedCmd.Flags().StringVar(&seedConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	seedCmd.Flags().StringVarP(&seedBankPath, "bank", "b", "", "Path to a bank YAML file or a directory of bank files")
	seedCmd.Flags().StringVar(&seedSchemaPath, "schema", "", "Path to the question bank JSON Schema (default: resolved schemas/question_bank.schema.json)")
	seedCmd.Flags().StringVar(&seedDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "Validate and summarize the bank without writing to the database")

	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	// Load config file if provided
	var cfg config.Config
	if seedConfigPath != "" {
		loadedCfg, err := config.LoadConfig(seedConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("bank") {
		cfg.Bank = seedBankPath
	}
	if cmd.Flags().Changed("schema") {
		cfg.Schema = seedSchemaPath
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = seedDatabaseURL
	}

	if cfg.Bank == "" {
		return fmt.Errorf("--bank is required (via flag or config)")
	}

	schemaPath := cfg.Schema
	if schemaPath == "" {
		schemaPath = question.ResolveSchemaPath(question.SchemaRelPath)
	}

	bank, err := question.Load(cfg.Bank, schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load question bank: %w", err)
	}

	if seedDryRun {
		_, _ = fmt.Fprintf(os.Stdout, "Bank is valid: %d questions\n", len(bank.Questions))
		return nil
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	// Migrations are idempotent, safe to run before every seed.
	if err := database.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	for i, entry := range bank.Questions {
		_, err := database.CreateQuestion(ctx, &db.QuestionInput{
			Category:    entry.Category,
			Difficulty:  entry.Difficulty,
			Prompt:      entry.Prompt,
			IdealAnswer: entry.IdealAnswer,
			Concepts:    entry.Concepts,
			Tags:        entry.Tags,
			Source:      entry.Source,
		})
		if err != nil {
			return fmt.Errorf("failed to create question %d: %w", i+1, err)
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully seeded %d questions\n", len(bank.Questions))

	return nil
}

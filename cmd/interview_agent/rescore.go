package main

import (
	"context"
	"fmt"
	"os"

	"github.com/daniel/interview-coach/internal/db"
	"github.com/daniel/interview-coach/internal/evaluation"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var rescoreCmd = &cobra.Command{
	Use:   "rescore",
	Short: "Re-run the evaluation engine over all stored attempts",
	Long: `Re-evaluate every stored attempt against its question's current ideal answer and concepts, and update the stored results in place.

Run this after editing question banks or the engine's knowledge base so stored scores reflect the current engine. The engine is pure, so rescoring is safe to repeat.`,
	RunE: runRescore,
}

var (
	rescoreDatabaseURL string
	rescoreWorkers     int
)

func init() {
	rescoreCmd.Flags().StringVar(&rescoreDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	rescoreCmd.Flags().IntVar(&rescoreWorkers, "workers", 4, "Number of concurrent evaluation workers")

	rootCmd.AddCommand(rescoreCmd)
}

func runRescore(_ *cobra.Command, _ []string) error {
	databaseURL := rescoreDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	workers := rescoreWorkers
	if workers < 1 {
		workers = 1
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	rows, err := database.ListAttemptsForRescore(ctx)
	if err != nil {
		return fmt.Errorf("failed to list attempts: %w", err)
	}
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No attempts to rescore")
		return nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, row := range rows {
		g.Go(func() error {
			result := evaluation.Evaluate(row.AnswerText, row.IdealAnswer, evaluation.Options{
				Concepts: row.Concepts,
				Category: evaluation.Category(row.Category),
			})

			if err := database.UpdateAttemptEvaluation(gCtx, row.AttemptID, result, result.OverallScore, string(result.Verdict)); err != nil {
				return fmt.Errorf("failed to update attempt %s: %w", row.AttemptID, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully rescored %d attempts\n", len(rows))

	return nil
}

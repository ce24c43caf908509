package db

import (
	"context"
	"fmt"
)

// migrations are idempotent DDL statements applied in order on startup.
// Each statement uses IF NOT EXISTS so repeated runs are safe.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		password_set BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS questions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		category TEXT NOT NULL,
		difficulty TEXT NOT NULL,
		prompt TEXT NOT NULL UNIQUE,
		ideal_answer TEXT NOT NULL DEFAULT '',
		concepts JSONB NOT NULL DEFAULT '[]',
		tags JSONB NOT NULL DEFAULT '[]',
		source TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_questions_category ON questions (category, difficulty)`,

	`CREATE TABLE IF NOT EXISTS attempts (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		question_id UUID NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
		answer_text TEXT NOT NULL,
		result JSONB NOT NULL,
		overall_score INT NOT NULL,
		verdict TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_attempts_user_created ON attempts (user_id, created_at DESC)`,

	`CREATE INDEX IF NOT EXISTS idx_attempts_user_question ON attempts (user_id, question_id)`,

	`CREATE TABLE IF NOT EXISTS bookmarks (
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		question_id UUID NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (user_id, question_id)
	)`,

	`CREATE TABLE IF NOT EXISTS review_cards (
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		question_id UUID NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
		ease DOUBLE PRECISION NOT NULL DEFAULT 2.5,
		interval_days INT NOT NULL DEFAULT 0,
		repetitions INT NOT NULL DEFAULT 0,
		due_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		reviewed_at TIMESTAMPTZ,
		PRIMARY KEY (user_id, question_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_review_cards_due ON review_cards (user_id, due_at)`,
}

// Migrate applies the schema to the connected database.
func (db *DB) Migrate(ctx context.Context) error {
	for i, stmt := range migrations {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}

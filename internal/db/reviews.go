package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Review Card Methods
// -----------------------------------------------------------------------------

// GetReviewCard retrieves the review card for a user/question pair
func (db *DB) GetReviewCard(ctx context.Context, userID, questionID uuid.UUID) (*ReviewCard, error) {
	var c ReviewCard
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, question_id, ease, interval_days, repetitions, due_at, reviewed_at
		 FROM review_cards WHERE user_id = $1 AND question_id = $2`,
		userID, questionID,
	).Scan(&c.UserID, &c.QuestionID, &c.Ease, &c.IntervalDays, &c.Repetitions, &c.DueAt, &c.ReviewedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get review card: %w", err)
	}
	return &c, nil
}

// UpsertReviewCard writes the full state of a review card
func (db *DB) UpsertReviewCard(ctx context.Context, card *ReviewCard) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO review_cards (user_id, question_id, ease, interval_days, repetitions, due_at, reviewed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id, question_id) DO UPDATE SET
			ease = EXCLUDED.ease,
			interval_days = EXCLUDED.interval_days,
			repetitions = EXCLUDED.repetitions,
			due_at = EXCLUDED.due_at,
			reviewed_at = EXCLUDED.reviewed_at`,
		card.UserID, card.QuestionID, card.Ease, card.IntervalDays,
		card.Repetitions, card.DueAt, card.ReviewedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert review card: %w", err)
	}
	return nil
}

// ListDueReviews retrieves review cards due at or before the given time,
// joined with their questions, most overdue first
func (db *DB) ListDueReviews(ctx context.Context, userID uuid.UUID, dueBy time.Time, limit int) ([]DueReview, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT q.id, q.prompt, q.category, q.difficulty, c.due_at, c.interval_days, c.repetitions, c.ease
		 FROM review_cards c
		 JOIN questions q ON q.id = c.question_id
		 WHERE c.user_id = $1 AND c.due_at <= $2
		 ORDER BY c.due_at ASC
		 LIMIT $3`,
		userID, dueBy, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list due reviews: %w", err)
	}
	defer rows.Close()

	var reviews []DueReview
	for rows.Next() {
		var r DueReview
		if err := rows.Scan(&r.QuestionID, &r.Prompt, &r.Category, &r.Difficulty,
			&r.DueAt, &r.IntervalDays, &r.Repetitions, &r.Ease); err != nil {
			return nil, fmt.Errorf("failed to scan due review: %w", err)
		}
		reviews = append(reviews, r)
	}
	return reviews, nil
}

// CountReviewCards returns how many review cards a user has in total and how many are due
func (db *DB) CountReviewCards(ctx context.Context, userID uuid.UUID, dueBy time.Time) (total int, due int, err error) {
	err = db.pool.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE due_at <= $2)
		 FROM review_cards WHERE user_id = $1`,
		userID, dueBy,
	).Scan(&total, &due)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count review cards: %w", err)
	}
	return total, due, nil
}

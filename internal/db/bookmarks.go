package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// -----------------------------------------------------------------------------
// Bookmark Methods
// -----------------------------------------------------------------------------

// AddBookmark saves a question for a user. Adding an existing bookmark is a no-op.
func (db *DB) AddBookmark(ctx context.Context, userID, questionID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO bookmarks (user_id, question_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, question_id) DO NOTHING`,
		userID, questionID,
	)
	if err != nil {
		return fmt.Errorf("failed to add bookmark: %w", err)
	}
	return nil
}

// RemoveBookmark deletes a bookmark
func (db *DB) RemoveBookmark(ctx context.Context, userID, questionID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM bookmarks WHERE user_id = $1 AND question_id = $2`,
		userID, questionID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove bookmark: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("bookmark not found: %s", questionID)
	}
	return nil
}

// IsBookmarked reports whether a user has bookmarked a question
func (db *DB) IsBookmarked(ctx context.Context, userID, questionID uuid.UUID) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM bookmarks WHERE user_id = $1 AND question_id = $2)`,
		userID, questionID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check bookmark: %w", err)
	}
	return exists, nil
}

// ListBookmarkedQuestions retrieves the questions a user has bookmarked, newest bookmark first
func (db *DB) ListBookmarkedQuestions(ctx context.Context, userID uuid.UUID) ([]Question, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT q.id, q.category, q.difficulty, q.prompt, q.ideal_answer, q.concepts, q.tags, q.source, q.created_at, q.updated_at
		 FROM bookmarks b
		 JOIN questions q ON q.id = b.question_id
		 WHERE b.user_id = $1
		 ORDER BY b.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.ID, &q.Category, &q.Difficulty, &q.Prompt, &q.IdealAnswer,
			&q.Concepts, &q.Tags, &q.Source, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bookmarked question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

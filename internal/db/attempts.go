package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Attempt Methods
// -----------------------------------------------------------------------------

// AttemptInput holds the fields for persisting an evaluated attempt
type AttemptInput struct {
	UserID       uuid.UUID
	QuestionID   uuid.UUID
	AnswerText   string
	Result       any // Marshaled to JSONB
	OverallScore int
	Verdict      string
}

// CreateAttempt persists an evaluated attempt and returns the stored record
func (db *DB) CreateAttempt(ctx context.Context, input *AttemptInput) (*Attempt, error) {
	resultJSON, err := json.Marshal(input.Result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal evaluation result: %w", err)
	}

	var a Attempt
	err = db.pool.QueryRow(ctx,
		`INSERT INTO attempts (user_id, question_id, answer_text, result, overall_score, verdict)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, user_id, question_id, answer_text, result, overall_score, verdict, created_at`,
		input.UserID, input.QuestionID, input.AnswerText, resultJSON, input.OverallScore, input.Verdict,
	).Scan(&a.ID, &a.UserID, &a.QuestionID, &a.AnswerText, &a.Result,
		&a.OverallScore, &a.Verdict, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create attempt: %w", err)
	}
	return &a, nil
}

// GetAttempt retrieves an attempt by ID, scoped to a user
func (db *DB) GetAttempt(ctx context.Context, userID, attemptID uuid.UUID) (*Attempt, error) {
	var a Attempt
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, question_id, answer_text, result, overall_score, verdict, created_at
		 FROM attempts WHERE id = $1 AND user_id = $2`,
		attemptID, userID,
	).Scan(&a.ID, &a.UserID, &a.QuestionID, &a.AnswerText, &a.Result,
		&a.OverallScore, &a.Verdict, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}
	return &a, nil
}

// AttemptFilters holds optional filters for listing attempts
type AttemptFilters struct {
	QuestionID uuid.UUID
	Verdict    string
	Limit      int
	Offset     int
}

// ListAttempts retrieves a user's attempts, newest first, with optional filters
func (db *DB) ListAttempts(ctx context.Context, userID uuid.UUID, filters AttemptFilters) ([]Attempt, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, user_id, question_id, answer_text, result, overall_score, verdict, created_at
		FROM attempts WHERE user_id = $1`
	args := []any{userID}
	argNum := 2

	if filters.QuestionID != uuid.Nil {
		query += fmt.Sprintf(" AND question_id = $%d", argNum)
		args = append(args, filters.QuestionID)
		argNum++
	}
	if filters.Verdict != "" {
		query += fmt.Sprintf(" AND verdict = $%d", argNum)
		args = append(args, filters.Verdict)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filters.Limit, filters.Offset)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		if err := rows.Scan(&a.ID, &a.UserID, &a.QuestionID, &a.AnswerText, &a.Result,
			&a.OverallScore, &a.Verdict, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, nil
}

// ListAttemptSummaries retrieves lightweight attempt rows for progress aggregation.
// The question category is joined in so aggregation never re-fetches questions.
func (db *DB) ListAttemptSummaries(ctx context.Context, userID uuid.UUID) ([]AttemptSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT a.id, a.question_id, q.category, a.overall_score, a.verdict, a.created_at
		 FROM attempts a
		 JOIN questions q ON q.id = a.question_id
		 WHERE a.user_id = $1
		 ORDER BY a.created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempt summaries: %w", err)
	}
	defer rows.Close()

	var summaries []AttemptSummary
	for rows.Next() {
		var s AttemptSummary
		if err := rows.Scan(&s.ID, &s.QuestionID, &s.Category, &s.OverallScore, &s.Verdict, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attempt summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// RescoreRow pairs an attempt with the question data needed to re-evaluate it
type RescoreRow struct {
	AttemptID   uuid.UUID
	AnswerText  string
	IdealAnswer string
	Concepts    StringArray
	Category    string
}

// ListAttemptsForRescore retrieves every attempt joined with its question,
// oldest first, for batch re-evaluation after bank or knowledge-base edits.
func (db *DB) ListAttemptsForRescore(ctx context.Context) ([]RescoreRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT a.id, a.answer_text, q.ideal_answer, q.concepts, q.category
		 FROM attempts a
		 JOIN questions q ON q.id = a.question_id
		 ORDER BY a.created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts for rescore: %w", err)
	}
	defer rows.Close()

	var out []RescoreRow
	for rows.Next() {
		var r RescoreRow
		if err := rows.Scan(&r.AttemptID, &r.AnswerText, &r.IdealAnswer, &r.Concepts, &r.Category); err != nil {
			return nil, fmt.Errorf("failed to scan rescore row: %w", err)
		}
		out = append(out, r)
	}
	return out, nil
}

// UpdateAttemptEvaluation replaces the stored evaluation of an attempt
func (db *DB) UpdateAttemptEvaluation(ctx context.Context, attemptID uuid.UUID, result any, overallScore int, verdict string) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal evaluation result: %w", err)
	}

	cmdTag, err := db.pool.Exec(ctx,
		`UPDATE attempts SET result = $1, overall_score = $2, verdict = $3 WHERE id = $4`,
		resultJSON, overallScore, verdict, attemptID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attempt evaluation: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("attempt not found: %s", attemptID)
	}
	return nil
}

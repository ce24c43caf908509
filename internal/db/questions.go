package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Question Methods
// -----------------------------------------------------------------------------

// QuestionInput holds the fields for creating a question
type QuestionInput struct {
	Category    string
	Difficulty  string
	Prompt      string
	IdealAnswer string
	Concepts    []string
	Tags        []string
	Source      string
}

// CreateQuestion inserts a question and returns the stored record.
// Questions with an identical prompt are deduplicated; the existing
// record is returned unchanged.
func (db *DB) CreateQuestion(ctx context.Context, input *QuestionInput) (*Question, error) {
	if input.Prompt == "" {
		return nil, fmt.Errorf("question prompt cannot be empty")
	}

	var q Question
	err := db.pool.QueryRow(ctx,
		`INSERT INTO questions (category, difficulty, prompt, ideal_answer, concepts, tags, source)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (prompt) DO UPDATE SET updated_at = questions.updated_at
		 RETURNING id, category, difficulty, prompt, ideal_answer, concepts, tags, source, created_at, updated_at`,
		input.Category, input.Difficulty, input.Prompt, input.IdealAnswer,
		StringArray(input.Concepts), StringArray(input.Tags), input.Source,
	).Scan(&q.ID, &q.Category, &q.Difficulty, &q.Prompt, &q.IdealAnswer,
		&q.Concepts, &q.Tags, &q.Source, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return &q, nil
}

// GetQuestion retrieves a question by ID
func (db *DB) GetQuestion(ctx context.Context, id uuid.UUID) (*Question, error) {
	var q Question
	err := db.pool.QueryRow(ctx,
		`SELECT id, category, difficulty, prompt, ideal_answer, concepts, tags, source, created_at, updated_at
		 FROM questions WHERE id = $1`,
		id,
	).Scan(&q.ID, &q.Category, &q.Difficulty, &q.Prompt, &q.IdealAnswer,
		&q.Concepts, &q.Tags, &q.Source, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return &q, nil
}

// QuestionFilters holds optional filters for listing questions
type QuestionFilters struct {
	Category   string
	Difficulty string
	Tag        string
	Limit      int
	Offset     int
}

// ListQuestions retrieves questions with optional filters
func (db *DB) ListQuestions(ctx context.Context, filters QuestionFilters) ([]Question, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, category, difficulty, prompt, ideal_answer, concepts, tags, source, created_at, updated_at
		FROM questions WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argNum)
		args = append(args, filters.Category)
		argNum++
	}
	if filters.Difficulty != "" {
		query += fmt.Sprintf(" AND difficulty = $%d", argNum)
		args = append(args, filters.Difficulty)
		argNum++
	}
	if filters.Tag != "" {
		query += fmt.Sprintf(" AND tags @> $%d", argNum)
		args = append(args, StringArray{filters.Tag})
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filters.Limit, filters.Offset)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.ID, &q.Category, &q.Difficulty, &q.Prompt, &q.IdealAnswer,
			&q.Concepts, &q.Tags, &q.Source, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// CountQuestions returns the total number of questions matching the filters
func (db *DB) CountQuestions(ctx context.Context, filters QuestionFilters) (int, error) {
	query := `SELECT COUNT(*) FROM questions WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argNum)
		args = append(args, filters.Category)
		argNum++
	}
	if filters.Difficulty != "" {
		query += fmt.Sprintf(" AND difficulty = $%d", argNum)
		args = append(args, filters.Difficulty)
		argNum++
	}
	if filters.Tag != "" {
		query += fmt.Sprintf(" AND tags @> $%d", argNum)
		args = append(args, StringArray{filters.Tag})
	}

	var count int
	if err := db.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

// QuestionUpdate holds optional field updates for a question.
// Nil fields are left unchanged.
type QuestionUpdate struct {
	Category    *string
	Difficulty  *string
	Prompt      *string
	IdealAnswer *string
	Concepts    *[]string
	Tags        *[]string
	Source      *string
}

// UpdateQuestion applies a partial update to a question
func (db *DB) UpdateQuestion(ctx context.Context, id uuid.UUID, update *QuestionUpdate) error {
	sets := []string{"updated_at = NOW()"}
	args := []any{}
	argNum := 1

	appendSet := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argNum))
		args = append(args, value)
		argNum++
	}

	if update.Category != nil {
		appendSet("category", *update.Category)
	}
	if update.Difficulty != nil {
		appendSet("difficulty", *update.Difficulty)
	}
	if update.Prompt != nil {
		appendSet("prompt", *update.Prompt)
	}
	if update.IdealAnswer != nil {
		appendSet("ideal_answer", *update.IdealAnswer)
	}
	if update.Concepts != nil {
		appendSet("concepts", StringArray(*update.Concepts))
	}
	if update.Tags != nil {
		appendSet("tags", StringArray(*update.Tags))
	}
	if update.Source != nil {
		appendSet("source", *update.Source)
	}

	query := fmt.Sprintf("UPDATE questions SET %s WHERE id = $%d",
		strings.Join(sets, ", "), argNum)
	args = append(args, id)

	result, err := db.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("question not found: %s", id)
	}
	return nil
}

// DeleteQuestion deletes a question and its attempts (via cascade)
func (db *DB) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("question not found: %s", id)
	}
	return nil
}

package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// User represents a user profile
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Question represents a practice question in the bank
type Question struct {
	ID          uuid.UUID   `json:"id"`
	Category    string      `json:"category"`
	Difficulty  string      `json:"difficulty"`
	Prompt      string      `json:"prompt"`
	IdealAnswer string      `json:"ideal_answer,omitempty"`
	Concepts    StringArray `json:"concepts"` // JSONB array
	Tags        StringArray `json:"tags"`     // JSONB array
	Source      string      `json:"source,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Attempt represents a persisted answer evaluation
type Attempt struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	QuestionID   uuid.UUID       `json:"question_id"`
	AnswerText   string          `json:"answer_text"`
	Result       json.RawMessage `json:"result"` // Full evaluation result as stored
	OverallScore int             `json:"overall_score"`
	Verdict      string          `json:"verdict"`
	CreatedAt    time.Time       `json:"created_at"`
}

// AttemptSummary is a lightweight view of an attempt for progress aggregation
type AttemptSummary struct {
	ID           uuid.UUID `json:"id"`
	QuestionID   uuid.UUID `json:"question_id"`
	Category     string    `json:"category"`
	OverallScore int       `json:"overall_score"`
	Verdict      string    `json:"verdict"`
	CreatedAt    time.Time `json:"created_at"`
}

// Bookmark marks a question saved by a user
type Bookmark struct {
	UserID     uuid.UUID `json:"user_id"`
	QuestionID uuid.UUID `json:"question_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReviewCard holds the spaced-repetition state for one user/question pair
type ReviewCard struct {
	UserID       uuid.UUID  `json:"user_id"`
	QuestionID   uuid.UUID  `json:"question_id"`
	Ease         float64    `json:"ease"`
	IntervalDays int        `json:"interval_days"`
	Repetitions  int        `json:"repetitions"`
	DueAt        time.Time  `json:"due_at"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
}

// DueReview is a review card joined with its question for the review queue
type DueReview struct {
	QuestionID   uuid.UUID `json:"question_id"`
	Prompt       string    `json:"prompt"`
	Category     string    `json:"category"`
	Difficulty   string    `json:"difficulty"`
	DueAt        time.Time `json:"due_at"`
	IntervalDays int       `json:"interval_days"`
	Repetitions  int       `json:"repetitions"`
	Ease         float64   `json:"ease"`
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

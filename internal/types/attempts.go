package types

import (
	"github.com/google/uuid"
)

// SubmitAttemptRequest represents an answer submission against a bank question.
type SubmitAttemptRequest struct {
	QuestionID uuid.UUID `json:"question_id" validate:"required"`
	AnswerText string    `json:"answer_text" validate:"required,min=1"`
}

// EvaluateRequest represents an ad-hoc evaluation without persistence.
// The ideal answer is supplied inline instead of referencing a bank question.
type EvaluateRequest struct {
	AnswerText  string   `json:"answer_text" validate:"required,min=1"`
	IdealAnswer string   `json:"ideal_answer,omitempty"`
	Concepts    []string `json:"concepts,omitempty"`
	Category    string   `json:"category,omitempty" validate:"omitempty,oneof=technical behavioral system_design"`
}

// Validate checks the submission against its field constraints.
func (r *SubmitAttemptRequest) Validate() error { return validate.Struct(r) }

// Validate checks the request against its field constraints.
func (r *EvaluateRequest) Validate() error { return validate.Struct(r) }

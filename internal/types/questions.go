package types

// CreateQuestionRequest represents the request to add a question to the bank.
type CreateQuestionRequest struct {
	Category    string   `json:"category" validate:"required,oneof=technical behavioral system_design"`
	Difficulty  string   `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Prompt      string   `json:"prompt" validate:"required,min=10"`
	IdealAnswer string   `json:"ideal_answer,omitempty"`
	Concepts    []string `json:"concepts,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Source      string   `json:"source,omitempty"`
}

// UpdateQuestionRequest represents a partial question update.
// Nil fields are left unchanged.
type UpdateQuestionRequest struct {
	Category    *string   `json:"category,omitempty" validate:"omitempty,oneof=technical behavioral system_design"`
	Difficulty  *string   `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	Prompt      *string   `json:"prompt,omitempty" validate:"omitempty,min=10"`
	IdealAnswer *string   `json:"ideal_answer,omitempty"`
	Concepts    *[]string `json:"concepts,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Source      *string   `json:"source,omitempty"`
}

// Validate checks the request against its field constraints.
func (r *CreateQuestionRequest) Validate() error { return validate.Struct(r) }

// Validate checks the update against its field constraints.
func (r *UpdateQuestionRequest) Validate() error { return validate.Struct(r) }

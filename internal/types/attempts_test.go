package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSubmitAttemptRequest_Validation(t *testing.T) {
	valid := SubmitAttemptRequest{
		QuestionID: uuid.New(),
		AnswerText: "Caching keeps hot data close to the application.",
	}
	assert.NoError(t, valid.Validate())

	missingQuestion := SubmitAttemptRequest{AnswerText: "An answer."}
	assert.Error(t, missingQuestion.Validate())

	missingAnswer := SubmitAttemptRequest{QuestionID: uuid.New()}
	assert.Error(t, missingAnswer.Validate())
}

func TestEvaluateRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request EvaluateRequest
		wantErr bool
	}{
		{
			name: "answer only",
			request: EvaluateRequest{
				AnswerText: "We cache reads and shard writes.",
			},
			wantErr: false,
		},
		{
			name: "full request",
			request: EvaluateRequest{
				AnswerText:  "We cache reads and shard writes.",
				IdealAnswer: "Use caching for reads and sharding for writes.",
				Concepts:    []string{"caching", "sharding"},
				Category:    "system_design",
			},
			wantErr: false,
		},
		{
			name:    "missing answer",
			request: EvaluateRequest{IdealAnswer: "Use caching."},
			wantErr: true,
		},
		{
			name: "invalid category",
			request: EvaluateRequest{
				AnswerText: "We cache reads.",
				Category:   "trivia",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

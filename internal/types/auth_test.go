package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request CreateUserRequest
		wantErr bool
	}{
		{
			name: "valid request",
			request: CreateUserRequest{
				Name:     "Dana Reyes",
				Email:    "dana@example.com",
				Password: "password123",
			},
			wantErr: false,
		},
		{
			name: "missing name",
			request: CreateUserRequest{
				Email:    "dana@example.com",
				Password: "password123",
			},
			wantErr: true,
		},
		{
			name: "invalid email format",
			request: CreateUserRequest{
				Name:     "Dana Reyes",
				Email:    "not-an-email",
				Password: "password123",
			},
			wantErr: true,
		},
		{
			name: "password too short",
			request: CreateUserRequest{
				Name:     "Dana Reyes",
				Email:    "dana@example.com",
				Password: "short",
			},
			wantErr: true,
		},
		{
			name: "missing password",
			request: CreateUserRequest{
				Name:  "Dana Reyes",
				Email: "dana@example.com",
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

func TestLoginRequest_Validation(t *testing.T) {
	valid := LoginRequest{Email: "dana@example.com", Password: "password123"}
	assert.NoError(t, valid.Validate())

	missingEmail := LoginRequest{Password: "password123"}
	assert.Error(t, missingEmail.Validate())

	badEmail := LoginRequest{Email: "nope", Password: "password123"}
	assert.Error(t, badEmail.Validate())

	missingPassword := LoginRequest{Email: "dana@example.com"}
	assert.Error(t, missingPassword.Validate())
}

func TestUpdatePasswordRequest_Validation(t *testing.T) {
	valid := UpdatePasswordRequest{CurrentPassword: "oldpassword", NewPassword: "newpassword1"}
	assert.NoError(t, valid.Validate())

	shortNew := UpdatePasswordRequest{CurrentPassword: "oldpassword", NewPassword: "short"}
	assert.Error(t, shortNew.Validate())

	missingCurrent := UpdatePasswordRequest{NewPassword: "newpassword1"}
	assert.Error(t, missingCurrent.Validate())
}

func TestUser_JSONSerialization(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	user := User{
		ID:          uuid.New(),
		Name:        "Dana Reyes",
		Email:       "dana@example.com",
		PasswordSet: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	// Password material must never appear in serialized output.
	assert.NotContains(t, string(data), "password_hash")
	assert.Contains(t, string(data), "password_set")

	var decoded User
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, user.ID, decoded.ID)
	assert.Equal(t, user.Email, decoded.Email)
}

func TestLoginResponse_JSONShape(t *testing.T) {
	user := &User{ID: uuid.New(), Name: "Dana", Email: "dana@example.com"}
	resp := LoginResponse{User: user, Token: "header.payload.signature"}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "user")
	assert.Contains(t, decoded, "token")
}

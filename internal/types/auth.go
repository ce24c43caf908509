// Package types defines the request and response bodies of the HTTP API.
package types

import (
	"time"

	"github.com/google/uuid"
)

// User is the API view of an account. The db layer keeps the password
// hash; only the password_set flag is exposed here.
type User struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PasswordSet bool      `json:"password_set"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateUserRequest registers a new account.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdatePasswordRequest rotates the password of an authenticated user.
// The current password is re-checked even though the request already
// carries a valid token.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// LoginResponse carries the authenticated user and a signed token.
// Register and login both return this shape.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Validate checks the request against its field constraints.
func (r *CreateUserRequest) Validate() error { return validate.Struct(r) }

// Validate checks the request against its field constraints.
func (r *LoginRequest) Validate() error { return validate.Struct(r) }

// Validate checks the request against its field constraints.
func (r *UpdatePasswordRequest) Validate() error { return validate.Struct(r) }

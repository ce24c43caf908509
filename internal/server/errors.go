// Package server provides the HTTP REST API for the interview coach.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrEmailAlreadyExists reports a registration attempt with a taken email.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials covers every login failure. It carries no detail so
// responses cannot reveal whether the account exists.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound reports a lookup of a nonexistent user.
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch reports a password change with a wrong current password.
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrQuestionNotFound reports a lookup of a nonexistent question.
type ErrQuestionNotFound struct {
	QuestionID uuid.UUID
}

func (e *ErrQuestionNotFound) Error() string {
	return fmt.Sprintf("question not found: %s", e.QuestionID)
}

// ErrAttemptNotFound reports a lookup of a nonexistent attempt.
type ErrAttemptNotFound struct {
	AttemptID uuid.UUID
}

func (e *ErrAttemptNotFound) Error() string {
	return fmt.Sprintf("attempt not found: %s", e.AttemptID)
}

// ErrValidation reports a request body that failed field validation.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus maps a service error to a response status code. The error may
// be wrapped; anything unrecognized maps to 500.
func HTTPStatus(err error) int {
	var (
		emailTaken  *ErrEmailAlreadyExists
		badLogin    *ErrInvalidCredentials
		badPassword *ErrPasswordMismatch
		noUser      *ErrUserNotFound
		noQuestion  *ErrQuestionNotFound
		noAttempt   *ErrAttemptNotFound
		badField    *ErrValidation
	)
	switch {
	case errors.As(err, &emailTaken):
		return http.StatusConflict
	case errors.As(err, &badLogin), errors.As(err, &badPassword):
		return http.StatusUnauthorized
	case errors.As(err, &noUser), errors.As(err, &noQuestion), errors.As(err, &noAttempt):
		return http.StatusNotFound
	case errors.As(err, &badField):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

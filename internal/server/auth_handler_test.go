package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/interview-coach/internal/config"
	"github.com/daniel/interview-coach/internal/types"
)

// setupTestAuthHandler creates an AuthHandler backed by the in-memory fake DB.
func setupTestAuthHandler(_ *testing.T) (*AuthHandler, *fakeDBClient) {
	jwtConfig := &config.JWTConfig{
		Secret:          "test-secret-key-for-jwt-signing-minimum-32-bytes",
		Issuer:          "interview-coach-test",
		ExpirationHours: 24,
	}

	fake := newFakeDBClient()
	userSvc := NewUserService(fake, fastPasswordConfig())
	jwtSvc := NewJWTService(jwtConfig)
	return NewAuthHandler(userSvc, jwtSvc), fake
}

func registerTestUser(t *testing.T, handler *AuthHandler) types.LoginResponse {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"name":     "Jordan Lee",
		"email":    "jordan@example.com",
		"password": "secure-password-123",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Register(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAuthHandler_Register_Success(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)

	resp := registerTestUser(t, handler)

	require.NotNil(t, resp.User)
	assert.Equal(t, "Jordan Lee", resp.User.Name)
	assert.Equal(t, "jordan@example.com", resp.User.Email)
	assert.NotEqual(t, uuid.Nil, resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)
	registerTestUser(t, handler)

	body, _ := json.Marshal(map[string]string{
		"name":     "Jordan Lee",
		"email":    "jordan@example.com",
		"password": "secure-password-123",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")
}

func TestAuthHandler_Register_InvalidJSON(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestAuthHandler_Register_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		reqBody map[string]string
	}{
		{
			name:    "missing name",
			reqBody: map[string]string{"email": "test@example.com", "password": "password123"},
		},
		{
			name:    "empty name",
			reqBody: map[string]string{"name": "", "email": "test@example.com", "password": "password123"},
		},
		{
			name:    "invalid email",
			reqBody: map[string]string{"name": "Test User", "email": "invalid-email", "password": "password123"},
		},
		{
			name:    "missing email",
			reqBody: map[string]string{"name": "Test User", "password": "password123"},
		},
		{
			name:    "password too short",
			reqBody: map[string]string{"name": "Test User", "email": "test@example.com", "password": "short"},
		},
		{
			name:    "missing password",
			reqBody: map[string]string{"name": "Test User", "email": "test@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := setupTestAuthHandler(t)

			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Register(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "validation error")
		})
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)
	registered := registerTestUser(t, handler)

	body, _ := json.Marshal(map[string]string{
		"email":    "jordan@example.com",
		"password": "secure-password-123",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Login(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, registered.User.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)
	registerTestUser(t, handler)

	body, _ := json.Marshal(map[string]string{
		"email":    "jordan@example.com",
		"password": "not-the-password",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid email or password")
}

func TestAuthHandler_Login_InvalidJSON(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestAuthHandler_Login_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		reqBody map[string]string
	}{
		{
			name:    "missing email",
			reqBody: map[string]string{"password": "password123"},
		},
		{
			name:    "invalid email format",
			reqBody: map[string]string{"email": "invalid-email", "password": "password123"},
		},
		{
			name:    "missing password",
			reqBody: map[string]string{"email": "test@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := setupTestAuthHandler(t)

			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Login(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "validation error")
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)
	registered := registerTestUser(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()

	handler.MeWithUserID(w, req, registered.User.ID)

	require.Equal(t, http.StatusOK, w.Code)

	var user types.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, registered.User.ID, user.ID)
	assert.Equal(t, "jordan@example.com", user.Email)
	assert.NotContains(t, w.Body.String(), "password_hash")
}

func TestAuthHandler_Me_UnknownUser(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()

	handler.MeWithUserID(w, req, uuid.New())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthHandler_UpdatePassword_Success(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)
	registered := registerTestUser(t, handler)

	body, _ := json.Marshal(map[string]string{
		"current_password": "secure-password-123",
		"new_password":     "even-more-secure-456",
	})
	req := httptest.NewRequest(http.MethodPut, "/auth/password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.UpdatePasswordWithUserID(w, req, registered.User.ID)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Password updated successfully")
}

func TestAuthHandler_UpdatePassword_WrongCurrentPassword(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)
	registered := registerTestUser(t, handler)

	body, _ := json.Marshal(map[string]string{
		"current_password": "not-the-password",
		"new_password":     "even-more-secure-456",
	})
	req := httptest.NewRequest(http.MethodPut, "/auth/password", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.UpdatePasswordWithUserID(w, req, registered.User.ID)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "current password is incorrect")
}

func TestAuthHandler_UpdatePassword_InvalidJSON(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodPut, "/auth/password", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.UpdatePasswordWithUserID(w, req, userID)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestAuthHandler_UpdatePassword_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		reqBody map[string]string
	}{
		{
			name:    "missing current password",
			reqBody: map[string]string{"new_password": "newpassword123"},
		},
		{
			name:    "missing new password",
			reqBody: map[string]string{"current_password": "oldpassword"},
		},
		{
			name:    "new password too short",
			reqBody: map[string]string{"current_password": "oldpassword", "new_password": "short"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := setupTestAuthHandler(t)
			userID := uuid.New()

			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPut, "/auth/password", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.UpdatePasswordWithUserID(w, req, userID)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "validation error")
		})
	}
}

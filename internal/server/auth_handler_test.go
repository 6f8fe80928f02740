package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonathan/talent-scout/internal/config"
	"github.com/jonathan/talent-scout/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestAuthHandler creates an AuthHandler guarding a known admin password.
func setupTestAuthHandler(t *testing.T) *AuthHandler {
	passwordConfig := &config.PasswordConfig{
		BcryptCost: 10, // Lower cost for faster tests
		Pepper:     "",
	}
	hash, err := passwordConfig.HashPassword("correct-horse-battery")
	require.NoError(t, err)
	passwordConfig.AdminHash = hash

	jwtConfig := &config.JWTConfig{
		Secret:          "test-secret-key-for-jwt-signing-minimum-32-bytes",
		ExpirationHours: 24,
	}

	jwtSvc := NewJWTService(jwtConfig)
	return NewAuthHandler(passwordConfig, jwtSvc, nil)
}

func TestAuthHandler_Token_Success(t *testing.T) {
	handler := setupTestAuthHandler(t)

	body, _ := json.Marshal(map[string]string{"password": "correct-horse-battery"})
	req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Token(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp types.TokenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)

	// Issued token should validate and carry the admin role
	claims, err := handler.jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, adminRole, claims.Role)
}

func TestAuthHandler_Token_WrongPassword(t *testing.T) {
	handler := setupTestAuthHandler(t)

	body, _ := json.Marshal(map[string]string{"password": "not-the-password"})
	req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Token(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid password")
}

func TestAuthHandler_Token_InvalidJSON(t *testing.T) {
	handler := setupTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Token(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestAuthHandler_Token_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		reqBody     map[string]string
		description string
	}{
		{
			name:        "missing password",
			reqBody:     map[string]string{},
			description: "should return 400 when password is missing",
		},
		{
			name:        "empty password",
			reqBody:     map[string]string{"password": ""},
			description: "should return 400 when password is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := setupTestAuthHandler(t)

			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Token(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code, tt.description)
			assert.Contains(t, w.Body.String(), "validation error", tt.description)
		})
	}
}

func TestAuthHandler_Token_PepperMismatch(t *testing.T) {
	// A hash produced with a pepper must not verify without it
	peppered := &config.PasswordConfig{BcryptCost: 10, Pepper: "extra-secret"}
	hash, err := peppered.HashPassword("correct-horse-battery")
	require.NoError(t, err)

	unpeppered := &config.PasswordConfig{BcryptCost: 10, AdminHash: hash}
	jwtSvc := NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key-for-jwt-signing-minimum-32-bytes",
		ExpirationHours: 24,
	})
	handler := NewAuthHandler(unpeppered, jwtSvc, nil)

	body, _ := json.Marshal(map[string]string{"password": "correct-horse-battery"})
	req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Token(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExtractValidationErrors_NonValidatorError(t *testing.T) {
	msg := extractValidationErrors(assert.AnError)
	assert.Equal(t, "validation error: invalid request", msg)
}

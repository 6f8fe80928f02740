package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPasswordConfig(t *testing.T) *PasswordConfig {
	t.Helper()
	cfg := &PasswordConfig{BcryptCost: 10}
	hash, err := cfg.HashPassword("correct-horse")
	require.NoError(t, err)
	cfg.AdminHash = hash
	return cfg
}

func TestNewPasswordConfig(t *testing.T) {
	tests := []struct {
		name       string
		bcryptCost string
		adminHash  string
		wantCost   int
		wantErr    bool
	}{
		{
			name:       "default cost",
			bcryptCost: "",
			adminHash:  "$2a$12$fakehashfortestingonly",
			wantCost:   12,
			wantErr:    false,
		},
		{
			name:       "valid cost",
			bcryptCost: "10",
			adminHash:  "$2a$12$fakehashfortestingonly",
			wantCost:   10,
			wantErr:    false,
		},
		{
			name:       "cost too low",
			bcryptCost: "9",
			adminHash:  "$2a$12$fakehashfortestingonly",
			wantErr:    true,
		},
		{
			name:       "cost too high",
			bcryptCost: "15",
			adminHash:  "$2a$12$fakehashfortestingonly",
			wantErr:    true,
		},
		{
			name:       "non-numeric cost",
			bcryptCost: "invalid",
			adminHash:  "$2a$12$fakehashfortestingonly",
			wantErr:    true,
		},
		{
			name:       "missing admin hash",
			bcryptCost: "12",
			adminHash:  "",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.bcryptCost)
			t.Setenv("PASSWORD_PEPPER", "")
			t.Setenv("ADMIN_PASSWORD_HASH", tt.adminHash)

			cfg, err := NewPasswordConfig()
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cfg.BcryptCost)
			assert.Equal(t, tt.adminHash, cfg.AdminHash)
		})
	}
}

func TestVerifyAdmin_RoundTrip(t *testing.T) {
	cfg := testPasswordConfig(t)

	assert.True(t, cfg.VerifyAdmin("correct-horse"))
	assert.False(t, cfg.VerifyAdmin("wrong-password"))
	assert.False(t, cfg.VerifyAdmin(""))
}

func TestHashPassword_WithPepper(t *testing.T) {
	withPepper := &PasswordConfig{BcryptCost: 10, Pepper: "extra-secret"}
	hash, err := withPepper.HashPassword("password123")
	require.NoError(t, err)
	withPepper.AdminHash = hash

	assert.True(t, withPepper.VerifyAdmin("password123"))

	// The same password fails without the pepper applied
	noPepper := &PasswordConfig{BcryptCost: 10, AdminHash: hash}
	assert.False(t, noPepper.VerifyAdmin("password123"))
}

func TestHashPassword_DistinctHashes(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	first, err := cfg.HashPassword("password123")
	require.NoError(t, err)
	second, err := cfg.HashPassword("password123")
	require.NoError(t, err)

	// bcrypt salts every hash
	assert.NotEqual(t, first, second)
}

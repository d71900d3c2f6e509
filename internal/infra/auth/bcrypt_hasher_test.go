package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"rental/config"
)

func newTestHasher(t *testing.T) *bcryptHasher {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        6,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		},
	}

	hasher, ok := NewBcryptHasher(cfg).(*bcryptHasher)
	require.True(t, ok)

	return hasher
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher(t)

	hash, err := hasher.Hash("Abc123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Abc123", hash)

	assert.True(t, hasher.Check("Abc123", hash))
	assert.False(t, hasher.Check("Abc124", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("Abc123", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	hasher := newTestHasher(t)

	hash, err := hasher.Hash("Abc123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher(t)

	valid := []string{"Abc123", "Passw0rd", "Str0ngEnough"}
	for _, password := range valid {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), password)
	}

	testCases := []struct {
		password string
		message  string
	}{
		{"Ab1", "at least 6 characters"},
		{"ABC123", "lowercase letters"},
		{"abc123", "uppercase letters"},
		{"Abcdef", "numbers"},
	}

	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		require.Error(t, err, tc.password)
		assert.Contains(t, err.Error(), tc.message)
	}
}

// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"rental/config"
	"rental/internal/domain/service"
	"rental/internal/errors"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher. Cost and strength policy
// come from configuration; registration paths run at cost 12 by default.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	policy := config.PasswordStrengthConfig{}

	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}
	if cfg != nil && cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt handles salt generation itself.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks the password against the configured policy.
// Rules are checked in a fixed order and the first failure wins, so callers can
// surface the message directly.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.policy.MinLength {
		return errors.Errorf("Password must be at least %d characters", h.policy.MinLength)
	}
	if h.policy.RequireLowercase && !hasClass(password, unicode.IsLower) {
		return errors.New("Password must contain lowercase letters")
	}
	if h.policy.RequireUppercase && !hasClass(password, unicode.IsUpper) {
		return errors.New("Password must contain uppercase letters")
	}
	if h.policy.RequireNumbers && !hasClass(password, unicode.IsDigit) {
		return errors.New("Password must contain numbers")
	}
	if h.policy.RequireSpecial && !hasClass(password, isSpecial) {
		return errors.New("Password must contain special characters")
	}

	return nil
}

func hasClass(s string, class func(rune) bool) bool {
	for _, r := range s {
		if class(r) {
			return true
		}
	}

	return false
}

func isSpecial(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"rental/internal/domain/entity"
)

// Claims defines the custom claims carried by identity tokens.
// The account ID travels in the registered Subject claim.
type Claims struct {
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// AccountID parses the Subject claim back into the account's UUID.
func (c *Claims) AccountID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService defines the interface for issuing and verifying identity tokens.
// Tokens are stateless bearer credentials; there is no revocation list and no
// refresh mechanism, so expiry forces a fresh login.
type TokenService interface {
	// Issue signs a time-limited identity token for the account.
	Issue(accountID uuid.UUID, email string, role entity.Role) (string, error)

	// Verify checks the token's signature, structure, and expiry, returning its claims.
	Verify(tokenString string) (*Claims, error)
}

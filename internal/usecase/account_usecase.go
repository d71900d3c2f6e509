// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"rental/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Field names bind directly from the JSON request body.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the authenticated account together with its issued token.
type AuthOutput struct {
	Token   string
	Account *entity.Account
}

// AccountUsecase is the account registry: registration, the first-admin
// bootstrap path, and credential verification at login.
type AccountUsecase interface {
	// Register creates a customer account. Validation rules are checked in
	// order and the first failure is reported.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// RegisterFirstAdmin creates the one bootstrap admin account. It fails with
	// a Forbidden error as soon as any admin exists.
	RegisterFirstAdmin(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a fresh token. Unknown email and
	// wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"rental/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when an insert collides with an existing email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrAdminAlreadyExists is returned when an admin insert collides with the
	// single-admin constraint.
	ErrAdminAlreadyExists = errors.New("admin account already exists")
)

// AccountRepository defines the standard operations for account persistence.
// Emails are stored lowercased; callers normalize before lookup or insert.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its (lowercased) email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account. The storage backend enforces email
	// uniqueness and the at-most-one-admin constraint; violations surface as
	// ErrDuplicateEmail and ErrAdminAlreadyExists respectively.
	Create(ctx context.Context, account *entity.Account) error

	// CountByRole returns the number of accounts holding the given role.
	CountByRole(ctx context.Context, role entity.Role) (int64, error)

	// Count returns the total number of accounts.
	Count(ctx context.Context) (int64, error)
}

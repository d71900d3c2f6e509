// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core identity entity, representing a registered person.
// PasswordHash stays inside the domain and persistence layers; delivery maps
// accounts to DTOs that do not carry it.
type Account struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Name         string    // The account holder's display name.
	Email        string    // The login identifier, stored lowercased. Unique across accounts.
	PasswordHash string    // The bcrypt digest of the account's password. Never serialized outward.
	Role         Role      // The access class of the account (customer or admin).
	CreatedAt    time.Time // Timestamp of when this account was created.
}

// IsAdmin reports whether the account carries the admin role.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Package auth carries the authenticated principal through a request.
// Workflows receive it explicitly instead of reading ambient state.
package auth

import (
	"github.com/google/uuid"

	"github.com/sammblanc/armariointeligente2.0/internal/models"
)

// Principal identifies an authenticated caller.
type Principal struct {
	UserID uuid.UUID
	Role   models.Role
}

// HasRole reports whether the principal holds any of the given roles.
func (p Principal) HasRole(roles ...models.Role) bool {
	for _, role := range roles {
		if p.Role == role {
			return true
		}
	}
	return false
}

// IsUser reports whether the principal is the given user.
func (p Principal) IsUser(userID uuid.UUID) bool {
	return p.UserID != uuid.Nil && p.UserID == userID
}

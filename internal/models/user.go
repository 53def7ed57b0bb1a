// Package models defines the data records persisted by the Summarize client.
package models

import "time"

// Role distinguishes ordinary users from administrators.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is a registered account. All accounts are client-local; there is no
// server-assigned identity.
//
// Password is stored as an opaque cleartext string. This mirrors the product's
// explicit scope: the client is a local-only data model, not a real
// authentication system.
type User struct {
	// ID is a unique identifier (uuid, except the fixed bootstrap admin id).
	ID string `json:"id"`

	// Name is the display name shown on uploads and the profile page.
	Name string `json:"name"`

	// Email identifies the account. Uniqueness is enforced case-insensitively
	// at registration time.
	Email string `json:"email"`

	Password string `json:"password"`
	Role     Role   `json:"role"`

	// Avatar is an optional data-URI image string.
	Avatar string `json:"avatar,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether the record itself carries the admin role.
// Session-level privilege checks live in the auth package.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

package models

import "strings"

// User represents a registered account. The password is persisted only as a
// bcrypt hash and is never serialized.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"_id"`

	// Email is the unique login identifier, stored trimmed.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It must never leave the server process.
	PasswordHash string `json:"-"`

	// CreatedAt is the account creation time in epoch milliseconds.
	CreatedAt int64 `json:"createdAt"`
}

// Credentials is the request body accepted by the register and login
// endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Normalize trims surrounding whitespace from the email. The password is
// left untouched.
func (c *Credentials) Normalize() {
	c.Email = strings.TrimSpace(c.Email)
}

// MinPasswordLength is the minimum accepted length of a raw password.
const MinPasswordLength = 6

// Package models defines server-side row types persisted by the repositories.
package models

// User is a stored identity record. PasswordHash is excluded from JSON so it
// never leaves the process through a response body.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Credentials is the shape returned by email lookups during login:
// the id and the bcrypt hash, nothing else.
type Credentials struct {
	ID           string
	PasswordHash string
}

// Package auth is responsible for authentication: user registration, login,
// logout, the password hashing wrappers, and the middleware that resolves a
// session cookie into a user identity.
package auth

import "time"

// User represents a user account as stored in the database.
// The hashed password is excluded from JSON so it can never leak into an API
// response by accident.
type User struct {
	ID             int       `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

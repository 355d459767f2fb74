package models

import "time"

// User represents an account entity used for authentication and tweet
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the public display name shown next to tweets.
	Username string `json:"username"`

	// Email is the unique address the user authenticates with.
	// It is also the identity attribute embedded in issued tokens.
	Email string `json:"email"`

	// HashedPassword stores the bcrypt hash of the user's password.
	// This value MUST be a one-way hash, never plaintext, and is never
	// serialized to JSON.
	HashedPassword string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

package models

import "time"

// Tweet is a short public message posted by a user.
type Tweet struct {
	// TweetID is the internal unique identifier of the tweet.
	TweetID int64 `json:"id"`

	// UserID is the identifier of the tweet's author. It is always taken
	// from the authenticated request context at creation time, never from
	// client-supplied input.
	UserID int64 `json:"user_id"`

	// Message is the tweet body. Its maximum length is enforced by the
	// validation layer, not the model.
	Message string `json:"message"`

	// Username is the author's display name. Populated only by list
	// queries that join the users table; empty otherwise.
	Username string `json:"username,omitempty"`

	// CreatedAt is the timestamp when the tweet was posted.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last edit.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Tweet model.
func (t Tweet) TableName() string {
	return "tweets"
}

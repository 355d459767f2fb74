package models

// AuthResponse is the body returned by registration and login on success.
// It carries the freshly issued bearer token and a minimal user descriptor.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the minimal public user descriptor embedded in
// [AuthResponse]. Only the identifier is exposed.
type UserResponse struct {
	ID int64 `json:"id"`
}

// TweetResponse wraps a single tweet for endpoints that return one record.
type TweetResponse struct {
	Tweet Tweet `json:"tweet"`
}

// TweetsResponse wraps a list of tweets for collection endpoints.
type TweetsResponse struct {
	Tweets []Tweet `json:"tweets"`
}

// MessageResponse is the body returned after tweet creation: the accepted
// message text echoed back to the client.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform client-facing error body. Every failure on
// the request path is rendered in this shape, paired with the appropriate
// HTTP status code.
type ErrorResponse struct {
	// Title is a short human-readable summary of the failure class,
	// e.g. "Bad request." or "Tweet not found.".
	Title string `json:"title"`

	// Errors is the ordered list of human-readable failure messages.
	// It is never empty for non-2xx responses.
	Errors []string `json:"errors"`
}

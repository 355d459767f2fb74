// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, password hashing, and JWT token generation
// and validation.
package utils

import (
	"context"

	"github.com/akarimli/tweetline/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the authentication middleware stores the
// resolved user record in the request context. The attachment is
// request-scoped: it is created per request and discarded with it.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserCtxKey, user)
var UserCtxKey = contextKey("user")

// UserFromContext retrieves the authenticated user record from the context.
//
// Returns the user and an ok flag:
//   - ok == true  — a user record was attached by the auth middleware
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	user, ok := utils.UserFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// Package apperrors defines the closed set of client-facing failure kinds
// used across the request pipeline and the structured error shape they are
// rendered in.
//
// Every failure that can reach a client — validation, authentication,
// missing resources, storage faults — is represented as an [*Error] carrying
// a [Kind], an HTTP status, a title, and an ordered list of human-readable
// messages. The underlying cause is preserved for operator-facing logs via
// [Error.Unwrap] and is never serialized to the client.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies one entry of the failure taxonomy. The set is closed:
// handlers construct errors only through the package constructors, and the
// HTTP layer renders each kind into exactly one documented response shape.
type Kind int

const (
	// KindUnexpected is any uncategorized failure. Rendered as a generic 500.
	KindUnexpected Kind = iota

	// KindAuthMissing means no bearer token was presented.
	KindAuthMissing

	// KindAuthInvalid means the presented token failed verification:
	// bad signature, malformed payload, or past expiry.
	KindAuthInvalid

	// KindAuthUserGone means the token verified but its subject no longer
	// resolves to a stored user.
	KindAuthUserGone

	// KindValidationFailed means one or more field rules were violated.
	KindValidationFailed

	// KindResourceNotFound means a lookup by identifier found nothing.
	KindResourceNotFound

	// KindRouteNotFound means the request path matched no registered route,
	// including ids that fail a route's pattern constraint.
	KindRouteNotFound

	// KindMethodNotAllowed means the path exists but does not support the
	// requested HTTP method.
	KindMethodNotAllowed

	// KindCredentialsInvalid means a login attempt failed credential
	// verification. Distinct from the bearer-token auth kinds: it has its
	// own documented body.
	KindCredentialsInvalid

	// KindConflict means a uniqueness constraint was violated,
	// e.g. registering an email that is already taken.
	KindConflict

	// KindStorageFailure means the persistence layer failed. Rendered as a
	// generic 500; the cause stays in the logs.
	KindStorageFailure
)

// Error is the structured failure value threaded through the request
// pipeline. Status is always a valid HTTP status code, and Messages is never
// empty for kinds that render a body.
type Error struct {
	Kind     Kind
	Title    string
	Status   int
	Messages []string

	// Err is the underlying cause, kept for diagnostics only.
	Err error
}

// Error implements the error interface. The string form is operator-facing;
// clients only ever see the rendered Title/Messages shape.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (status %d): %v", e.Title, e.Status, e.Err)
	}
	return fmt.Sprintf("%s (status %d)", e.Title, e.Status)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsAuthFailure reports whether the error collapses to the uniform 401
// bearer-challenge presentation. The three auth kinds are deliberately
// indistinguishable to the client.
func (e *Error) IsAuthFailure() bool {
	switch e.Kind {
	case KindAuthMissing, KindAuthInvalid, KindAuthUserGone:
		return true
	default:
		return false
	}
}

// AuthMissing reports that the request carried no bearer token.
func AuthMissing() *Error {
	return &Error{
		Kind:   KindAuthMissing,
		Title:  http.StatusText(http.StatusUnauthorized),
		Status: http.StatusUnauthorized,
	}
}

// AuthInvalid reports a token that failed signature, shape, or expiry
// checks. The cause is recorded for logging and never shown to the client.
func AuthInvalid(cause error) *Error {
	return &Error{
		Kind:   KindAuthInvalid,
		Title:  http.StatusText(http.StatusUnauthorized),
		Status: http.StatusUnauthorized,
		Err:    cause,
	}
}

// AuthUserGone reports a verified token whose subject no longer exists.
func AuthUserGone(userID int64) *Error {
	return &Error{
		Kind:   KindAuthUserGone,
		Title:  http.StatusText(http.StatusUnauthorized),
		Status: http.StatusUnauthorized,
		Err:    fmt.Errorf("token subject %d has no user record", userID),
	}
}

// ValidationFailed carries the ordered list of violated-rule messages
// produced by the validation pipeline.
func ValidationFailed(messages []string) *Error {
	return &Error{
		Kind:     KindValidationFailed,
		Title:    "Bad request.",
		Status:   http.StatusBadRequest,
		Messages: messages,
	}
}

// ResourceNotFound reports a lookup miss for the named resource kind
// (e.g. "Tweet") and identifier. The identifier is kept as the raw string
// taken from the request path, so a non-numeric id echoes back verbatim.
func ResourceNotFound(resource string, id string) *Error {
	return &Error{
		Kind:     KindResourceNotFound,
		Title:    fmt.Sprintf("%s not found.", resource),
		Status:   http.StatusNotFound,
		Messages: []string{fmt.Sprintf("%s with id of %s could not be found.", resource, id)},
	}
}

// RouteNotFound reports a request whose path matched no registered route.
// It is the router-level fallback that keeps unmatched paths on the same
// structured error shape as every other failure.
func RouteNotFound() *Error {
	return &Error{
		Kind:     KindRouteNotFound,
		Title:    http.StatusText(http.StatusNotFound),
		Status:   http.StatusNotFound,
		Messages: []string{"The requested resource could not be found."},
	}
}

// MethodNotAllowed reports a request for a registered path with an
// unsupported HTTP method.
func MethodNotAllowed() *Error {
	return &Error{
		Kind:     KindMethodNotAllowed,
		Title:    http.StatusText(http.StatusMethodNotAllowed),
		Status:   http.StatusMethodNotAllowed,
		Messages: []string{"The requested method is not supported by this resource."},
	}
}

// CredentialsInvalid reports a failed login attempt. The body never reveals
// whether the email or the password was wrong.
func CredentialsInvalid() *Error {
	return &Error{
		Kind:     KindCredentialsInvalid,
		Title:    "Login failed",
		Status:   http.StatusUnauthorized,
		Messages: []string{"The provided credentials were invalid."},
	}
}

// EmailTaken reports a registration attempt with an already-registered email.
func EmailTaken() *Error {
	return &Error{
		Kind:     KindConflict,
		Title:    "Email is already in use.",
		Status:   http.StatusConflict,
		Messages: []string{"A user with the provided email already exists."},
	}
}

// StorageFailure wraps a persistence-layer fault. Clients see a generic 500.
func StorageFailure(cause error) *Error {
	return &Error{
		Kind:     KindStorageFailure,
		Title:    http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Messages: []string{"An unexpected error occurred."},
		Err:      cause,
	}
}

// Unexpected wraps any uncategorized failure. Clients see a generic 500.
func Unexpected(cause error) *Error {
	return &Error{
		Kind:     KindUnexpected,
		Title:    http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Messages: []string{"An unexpected error occurred."},
		Err:      cause,
	}
}

// FromError normalizes an arbitrary error into an *Error. A value that
// already is an *Error (anywhere in its chain) passes through unchanged;
// anything else becomes [KindUnexpected] with the original error preserved
// as the cause.
func FromError(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Unexpected(err)
}

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, content hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-photo-gate/models"
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

// SubmitterCtxKey is the key used to store the resolved [models.Submitter]
// in the context. An anonymous submitter is stored for requests without a
// bearer token, so handlers can always rely on its presence.
var SubmitterCtxKey = contextKey("submitter")

// SessionKeyCtxKey is the key under which the session-scoped rejection
// reason key ("<submitterID>:<sessionID>") is stored in the context.
var SessionKeyCtxKey = contextKey("sessionKey")

// WithSubmitter returns a copy of ctx carrying the submitter.
func WithSubmitter(ctx context.Context, submitter models.Submitter) context.Context {
	return context.WithValue(ctx, SubmitterCtxKey, submitter)
}

// GetSubmitterFromContext retrieves the submitter from the context.
//
// Returns the submitter and an ok flag:
//   - ok == true: value is found and has the correct type
//   - ok == false: value is missing; an anonymous submitter is returned
func GetSubmitterFromContext(ctx context.Context) (models.Submitter, bool) {
	submitter, ok := ctx.Value(SubmitterCtxKey).(models.Submitter)
	if !ok {
		return models.Anonymous(), false
	}
	return submitter, true
}

// WithSessionKey returns a copy of ctx carrying the reason session key.
func WithSessionKey(ctx context.Context, sessionKey string) context.Context {
	return context.WithValue(ctx, SessionKeyCtxKey, sessionKey)
}

// GetSessionKeyFromContext retrieves the reason session key from the context.
func GetSessionKeyFromContext(ctx context.Context) (string, bool) {
	sessionKey, ok := ctx.Value(SessionKeyCtxKey).(string)
	return sessionKey, ok && sessionKey != ""
}

package request_id

import (
	"context"
	"regexp"

	"github.com/google/uuid"
)

// Header carries the request ID of the access log back to the client. A
// well-formed value sent by the client is reused.
const Header = "X-Request-Id"

type contextKey string

const (
	requestIDKey contextKey = "request_id"
)

var validID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

// With sets request ID in context
func With(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// FromContext extracts request ID from context
func FromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// Generate generates a new request ID and sets it in context
func Generate(ctx context.Context) (context.Context, string) {
	requestID := uuid.New().String()
	return With(ctx, requestID), requestID
}

// FromHeader sets the given ID in context, or a generated one when the
// value is empty or not a plain token.
func FromHeader(ctx context.Context, value string) (context.Context, string) {
	if !validID.MatchString(value) {
		return Generate(ctx)
	}
	return With(ctx, value), value
}

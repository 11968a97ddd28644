package observability

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

type contextKey string

// RequestIDKey is the context key under which RequestIDMiddleware stores the
// id of the request being served.
const RequestIDKey contextKey = "request_id"

// NewRequestID returns a fresh random id.
func NewRequestID() string {
	return uuid.New().String()
}

// ParseRequestID returns the canonical lower-case form of a client supplied
// id. Anything but a UUID is refused.
func ParseRequestID(raw string) (string, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestIDFromContext returns the id stored by ContextWithRequestID, or ""
// outside of a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// RequestIDField is the request_id log field for ctx.
func RequestIDField(ctx context.Context) zap.Field {
	return zap.String("request_id", RequestIDFromContext(ctx))
}

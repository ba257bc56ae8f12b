// Package context carries per-request metadata (request id, client details)
// from the HTTP layer down to the service logging.
package context

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type requestInfoKey struct{}

// RequestInfo holds information about the current request
type RequestInfo struct {
	ID         string    `json:"request_id"`
	StartTime  time.Time `json:"start_time"`
	UserAgent  string    `json:"user_agent,omitempty"`
	RemoteAddr string    `json:"remote_addr,omitempty"`
}

// NewRequestID generates a request id
func NewRequestID() string {
	return uuid.NewString()
}

// WithRequestInfo stores the request info in the context
func WithRequestInfo(ctx context.Context, info RequestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, info)
}

// GetRequestInfo returns the request info, or a zero value outside a request
func GetRequestInfo(ctx context.Context) RequestInfo {
	info, _ := ctx.Value(requestInfoKey{}).(RequestInfo)
	return info
}

// NewRequestContext attaches request info to ctx. An empty requestID is replaced by a generated one.
func NewRequestContext(ctx context.Context, requestID, userAgent, remoteAddr string) context.Context {
	if requestID == "" {
		requestID = NewRequestID()
	}
	return WithRequestInfo(ctx, RequestInfo{
		ID:         requestID,
		StartTime:  time.Now(),
		UserAgent:  userAgent,
		RemoteAddr: remoteAddr,
	})
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	return GetRequestInfo(ctx).ID
}

// LogFields returns the request keyvals for a go-kit logger; empty values are skipped
func LogFields(ctx context.Context) []interface{} {
	info := GetRequestInfo(ctx)

	var fields []interface{}
	if info.ID != "" {
		fields = append(fields, "request_id", info.ID)
	}
	if info.UserAgent != "" {
		fields = append(fields, "user_agent", info.UserAgent)
	}
	if info.RemoteAddr != "" {
		fields = append(fields, "remote_addr", info.RemoteAddr)
	}
	return fields
}

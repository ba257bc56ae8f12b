package middleware

import (
	"net/http"

	reqcontext "github.com/prajwalbharadwajbm/campaignconsole/internal/context"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware adds request IDs to incoming requests
type RequestIDMiddleware struct{}

// NewRequestIDMiddleware creates a new request ID middleware
func NewRequestIDMiddleware() *RequestIDMiddleware {
	return &RequestIDMiddleware{}
}

// Middleware keeps an upstream X-Request-ID or generates one, and echoes it
// back on the response.
func (m *RequestIDMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := reqcontext.NewRequestContext(r.Context(), r.Header.Get(RequestIDHeader), r.UserAgent(), r.RemoteAddr)

		w.Header().Set(RequestIDHeader, reqcontext.GetRequestID(ctx))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

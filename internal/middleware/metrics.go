package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prajwalbharadwajbm/campaignconsole/internal/metrics"
)

// MetricsMiddleware records request count, latency and in-flight requests per route
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(metrics *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{
		metrics: metrics,
	}
}

// Middleware returns the HTTP middleware function
func (m *MetricsMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		endpoint := normalizeEndpoint(r.URL.Path)

		m.metrics.IncRequestsInFlight(r.Method, endpoint)
		defer m.metrics.DecRequestsInFlight(r.Method, endpoint)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		m.metrics.RecordHTTPRequest(r.Method, endpoint, strconv.Itoa(rec.status), time.Since(begin).Seconds())
	})
}

// statusRecorder remembers the first status code written
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (rec *statusRecorder) WriteHeader(code int) {
	if !rec.wroteHeader {
		rec.status = code
		rec.wroteHeader = true
	}
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if !rec.wroteHeader {
		rec.WriteHeader(http.StatusOK)
	}
	return rec.ResponseWriter.Write(b)
}

// normalizeEndpoint maps a request path to a bounded label set; campaign ids
// collapse into {id} and unknown paths into "other".
func normalizeEndpoint(path string) string {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}

	switch path {
	case "/health", "/metrics", "/v1/campaigns", "/v1/campaigns/filter", "/v1/campaigns/stats":
		return path
	}
	if rest, ok := strings.CutPrefix(path, "/v1/campaigns/"); ok && rest != "" && !strings.Contains(rest, "/") {
		return "/v1/campaigns/{id}"
	}
	return "other"
}

package middleware

import (
	"context"
	"net/http"

	"github.com/rs/xid"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "requestID"

// maxRequestIDLength bounds ids accepted from clients so a caller cannot
// stuff arbitrary data into every log line.
const maxRequestIDLength = 64

// RequestID tags each request with an id, reusing the caller's
// X-Request-ID when it sends a sane one and generating an xid otherwise.
// The id is echoed in the response header and stored in the context for
// the Logger middleware.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = xid.New().String()
		}

		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the request id, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

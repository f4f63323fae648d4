package middleware

import "net/http"

// NewBodyLimitMiddleware caps request bodies at limit bytes. Reading past
// the limit fails with *http.MaxBytesError, which handlers map to 413.
func NewBodyLimitMiddleware(limit int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/aanand-mishra/student-service/internal/utils/response"
)

// NewRecoveryMiddleware turns a panic in a handler into a 500 JSON
// response instead of a dropped connection, and logs it with the stack.
func NewRecoveryMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				slog.Error("panic recovered",
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", RequestIDFromContext(r.Context())),
					slog.String("stack", string(debug.Stack())),
				)
				_ = response.WriteJSON(w, http.StatusInternalServerError,
					response.Message("Internal server error"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Package health serves the liveness check.
package health

import (
	"net/http"

	"github.com/aanand-mishra/student-service/internal/utils/response"
)

// LivenessMessage is the fixed body of a liveness check.
const LivenessMessage = "Student Service is running"

// Liveness handles GET /. It never touches the store, so it reports the
// process as up even while the store is unreachable.
func Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteText(w, http.StatusOK, LivenessMessage)
	}
}

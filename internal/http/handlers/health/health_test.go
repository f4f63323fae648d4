package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiveness(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)

	Liveness()(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Student Service is running", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

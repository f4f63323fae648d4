package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	require.NoError(t, WriteJSON(w, http.StatusCreated, map[string]string{"_id": "abc"}))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"_id":"abc"}`, w.Body.String())
}

func TestWriteText(t *testing.T) {
	w := httptest.NewRecorder()

	require.NoError(t, WriteText(w, http.StatusOK, "Student Service is running"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "Student Service is running", w.Body.String())
}

func TestGeneralError(t *testing.T) {
	w := httptest.NewRecorder()

	_ = WriteJSON(w, http.StatusInternalServerError,
		GeneralError("Failed to add student", errors.New("connection refused")))

	assert.JSONEq(t, `{"error":"Failed to add student","details":"connection refused"}`, w.Body.String())
}

func TestGeneralError_NilErrorOmitsDetails(t *testing.T) {
	assert.Equal(t, Response{Error: "Failed"}, GeneralError("Failed", nil))
}

func TestMessage_OmitsDetails(t *testing.T) {
	w := httptest.NewRecorder()

	_ = WriteJSON(w, http.StatusNotFound, Message("Student not found"))

	assert.JSONEq(t, `{"error":"Student not found"}`, w.Body.String())
}

// Package response provides helpers for writing consistent HTTP responses.
//
// Success responses may be any JSON shape (a student, a list of students).
// Error responses always look like:
//
//	{ "error": "Failed to add student", "details": "<underlying error>" }
//
// with "details" omitted when there is nothing to add.
package response

import (
	"encoding/json"
	"net/http"
)

// Response is the error envelope.
type Response struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSON writes data JSON-encoded with the given status code.
//
// Order matters: Header() → WriteHeader() → body. Once WriteHeader is
// called, headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteText writes a plain text body with the given status code.
func WriteText(w http.ResponseWriter, status int, body string) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write([]byte(body))
	return err
}

// Message builds an error Response without details.
func Message(msg string) Response {
	return Response{Error: msg}
}

// GeneralError builds an error Response carrying err's text as details.
//
//	response.WriteJSON(w, http.StatusInternalServerError,
//	    response.GeneralError("Failed to fetch students", err))
func GeneralError(msg string, err error) Response {
	r := Response{Error: msg}
	if err != nil {
		r.Details = err.Error()
	}
	return r
}

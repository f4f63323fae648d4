// Package student contains the HTTP handlers for the Student resource.
//
// Each exported function is a factory: it receives the storage once, at
// route registration, and returns the http.HandlerFunc that runs on every
// request. The returned closure keeps access to storage.
//
//	r.Post("/students", student.New(store))
//
// Every handler performs exactly one storage call.
package student

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aanand-mishra/student-service/internal/storage"
	"github.com/aanand-mishra/student-service/internal/types"
	"github.com/aanand-mishra/student-service/internal/utils/response"
)

// Client-facing error messages.
const (
	MsgInvalidBody  = "Invalid request body"
	MsgBodyTooLarge = "Request body too large"
	MsgCreateFailed = "Failed to add student"
	MsgNotFound     = "Student not found"
	MsgFetchFailed  = "Error fetching student"
	MsgListFailed   = "Failed to fetch students"
)

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /students
// Creates a student from the JSON request body.
//
// Request body (JSON), every field optional:
//
//	{ "name": "Ada", "email": "ada@x.com", "age": 30 }
//
// Success response (201 Created), the stored record:
//
//	{ "_id": "65f1c0ffee0000000000abcd", "name": "Ada", "email": "ada@x.com", "age": 30 }
//
// Error responses:
//
//	400 Bad Request     : malformed JSON, trailing data, or a body that is
//	                      not a JSON object
//	413 Payload Too Large: body over the configured limit
//	500 Internal        : a value that cannot be cast to its attribute type,
//	                      or any storage error, with the text in "details"
//
// Values are converted where possible: {"age":"30"} stores age 30 and
// {"name":42} stores name "42". An empty body creates an empty record.
// Unknown fields and any "_id" sent by the client are dropped.
// ─────────────────────────────────────────────────────────────────────────────
func New(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("creating a student")

		fields, err := decodeFields(r.Body)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				response.WriteJSON(w, http.StatusRequestEntityTooLarge,
					response.GeneralError(MsgBodyTooLarge, err))
				return
			}
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(MsgInvalidBody, err))
			return
		}

		student, err := types.StudentFromFields(fields)
		if err != nil {
			slog.Error("error creating student", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(MsgCreateFailed, err))
			return
		}

		created, err := store.CreateStudent(r.Context(), student)
		if err != nil {
			slog.Error("error creating student", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(MsgCreateFailed, err))
			return
		}

		slog.Info("student created", slog.String("id", created.ID))
		response.WriteJSON(w, http.StatusCreated, created)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /students/{id}
//
//	200 OK       : the record
//	404 Not Found: {"error":"Student not found"}; also for ids that are
//	                not well-formed, since they cannot name a record
//	500 Internal : storage error, with its text in "details"
//
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		slog.Debug("getting a student", slog.String("id", id))

		student, err := store.GetStudentByID(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			response.WriteJSON(w, http.StatusNotFound, response.Message(MsgNotFound))
			return
		}
		if err != nil {
			slog.Error("error getting student",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(MsgFetchFailed, err))
			return
		}

		response.WriteJSON(w, http.StatusOK, student)
	}
}

// GetList handles GET /students and returns every student as a JSON
// array, [] when there are none. No paging, no filtering.
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("getting all students")

		students, err := store.GetStudents(r.Context())
		if err != nil {
			slog.Error("error getting students", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(MsgListFailed, err))
			return
		}

		if students == nil {
			students = []types.Student{}
		}
		response.WriteJSON(w, http.StatusOK, students)
	}
}

var errTrailingData = errors.New("unexpected data after JSON value")

// decodeFields reads one JSON object from body. An empty body yields no
// fields; anything after the object other than whitespace is an error.
func decodeFields(body io.Reader) (map[string]json.RawMessage, error) {
	dec := json.NewDecoder(body)

	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return fields, nil
	case err != nil:
		return nil, err
	default:
		return nil, errTrailingData
	}
}

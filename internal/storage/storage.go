// Package storage defines the Storage interface, the contract every
// database backend must satisfy to serve the student handlers.
//
// Handlers depend only on this interface. Switching databases means
// implementing it for the new backend and picking it in main.go, and
// tests can hand the handlers an in-memory fake instead of a real store.
package storage

import (
	"context"
	"errors"

	"github.com/aanand-mishra/student-service/internal/types"
)

// ErrNotFound is returned by GetStudentByID when no record matches the
// identifier. Backends also return it for identifiers that are not
// well-formed, since such a value cannot name any record.
var ErrNotFound = errors.New("student not found")

// Storage is the database contract.
type Storage interface {
	// CreateStudent inserts student and returns the stored record,
	// including its newly assigned identifier. Any ID on the input is
	// ignored.
	CreateStudent(ctx context.Context, student types.Student) (types.Student, error)

	// GetStudentByID fetches a single student. It returns ErrNotFound
	// (possibly wrapped) when there is no such record.
	GetStudentByID(ctx context.Context, id string) (types.Student, error)

	// GetStudents returns every student in the order the backend yields
	// them. The slice is empty, never nil, when there are no students.
	GetStudents(ctx context.Context) ([]types.Student, error)

	// Close releases the connection held by the backend.
	Close(ctx context.Context) error
}

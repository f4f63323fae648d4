package storage

import (
	"context"
	"time"

	"github.com/aanand-mishra/student-service/internal/types"
)

// Operation names reported to an Observer.
const (
	OpCreate = "create"
	OpGet    = "get"
	OpList   = "list"
)

// Observer receives one call per store operation.
type Observer interface {
	ObserveStoreOperation(operation string, duration time.Duration, err error)
}

type instrumented struct {
	next     Storage
	observer Observer
	now      func() time.Time
}

// WithMetrics wraps next so that every operation is reported to observer.
// It adds no store calls of its own.
func WithMetrics(next Storage, observer Observer) Storage {
	return &instrumented{next: next, observer: observer, now: time.Now}
}

func (s *instrumented) observe(op string, start time.Time, err error) {
	s.observer.ObserveStoreOperation(op, s.now().Sub(start), err)
}

func (s *instrumented) CreateStudent(ctx context.Context, student types.Student) (types.Student, error) {
	start := s.now()
	created, err := s.next.CreateStudent(ctx, student)
	s.observe(OpCreate, start, err)
	return created, err
}

func (s *instrumented) GetStudentByID(ctx context.Context, id string) (types.Student, error) {
	start := s.now()
	student, err := s.next.GetStudentByID(ctx, id)
	s.observe(OpGet, start, err)
	return student, err
}

func (s *instrumented) GetStudents(ctx context.Context) ([]types.Student, error) {
	start := s.now()
	students, err := s.next.GetStudents(ctx)
	s.observe(OpList, start, err)
	return students, err
}

func (s *instrumented) Close(ctx context.Context) error {
	return s.next.Close(ctx)
}

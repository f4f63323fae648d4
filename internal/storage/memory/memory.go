// Package memory is an in-process storage.Storage. Records live only as
// long as the process; it backs STORAGE_DRIVER=memory and the HTTP tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/aanand-mishra/student-service/internal/storage"
	"github.com/aanand-mishra/student-service/internal/types"
)

// Memory keeps students in insertion order. Safe for concurrent use.
type Memory struct {
	mu    sync.RWMutex
	byID  map[string]types.Student
	order []string
}

var _ storage.Storage = (*Memory)(nil)

// New returns an empty store.
func New() *Memory {
	return &Memory{byID: make(map[string]types.Student)}
}

func (m *Memory) CreateStudent(ctx context.Context, student types.Student) (types.Student, error) {
	if err := ctx.Err(); err != nil {
		return types.Student{}, fmt.Errorf("CreateStudent: %w", err)
	}

	student.ID = bson.NewObjectID().Hex()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[student.ID] = student
	m.order = append(m.order, student.ID)

	return student, nil
}

func (m *Memory) GetStudentByID(ctx context.Context, id string) (types.Student, error) {
	if err := ctx.Err(); err != nil {
		return types.Student{}, fmt.Errorf("GetStudentByID: %w", err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	student, ok := m.byID[id]
	if !ok {
		return types.Student{}, fmt.Errorf("GetStudentByID: %s: %w", id, storage.ErrNotFound)
	}
	return student, nil
}

func (m *Memory) GetStudents(ctx context.Context) ([]types.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("GetStudents: %w", err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	students := make([]types.Student, 0, len(m.order))
	for _, id := range m.order {
		students = append(students, m.byID[id])
	}
	return students, nil
}

// Close is a no-op.
func (m *Memory) Close(context.Context) error {
	return nil
}

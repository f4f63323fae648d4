// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using database/sql.
//
// It is the single-file alternative to MongoDB for local runs
// (STORAGE_DRIVER=sqlite). Identifiers are ObjectID hex strings, the same
// shape the MongoDB backend hands out, so clients cannot tell the two
// apart.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/aanand-mishra/student-service/internal/config"
	"github.com/aanand-mishra/student-service/internal/storage"
	"github.com/aanand-mishra/student-service/internal/types"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the SQLite implementation of storage.Storage.
// *sql.DB is a connection pool, safe for concurrent use.
type SQLite struct {
	Db *sql.DB
}

var _ storage.Storage = (*SQLite)(nil)

// New opens the SQLite database at cfg.StoragePath, creating the parent
// directory and the students table if needed.
func New(cfg *config.Config) (*SQLite, error) {
	if dir := filepath.Dir(cfg.StoragePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite.New: create dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// Every attribute is nullable: a student may be created with any
	// subset of fields.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			id    TEXT PRIMARY KEY,
			name  TEXT,
			email TEXT,
			age   REAL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// CreateStudent inserts a new row with a freshly generated identifier.
// Placeholders keep the values out of the SQL text.
func (s *SQLite) CreateStudent(ctx context.Context, student types.Student) (types.Student, error) {
	student.ID = bson.NewObjectID().Hex()

	_, err := s.Db.ExecContext(ctx,
		"INSERT INTO students (id, name, email, age) VALUES (?, ?, ?, ?)",
		student.ID, nullString(student.Name), nullString(student.Email), nullFloat(student.Age),
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("CreateStudent: exec: %w", err)
	}

	return student, nil
}

// GetStudentByID fetches exactly one row matched by id.
func (s *SQLite) GetStudentByID(ctx context.Context, id string) (types.Student, error) {
	row := s.Db.QueryRowContext(ctx,
		"SELECT id, name, email, age FROM students WHERE id = ? LIMIT 1", id)

	student, err := scanStudent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Student{}, fmt.Errorf("GetStudentByID: %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return types.Student{}, fmt.Errorf("GetStudentByID: scan: %w", err)
	}

	return student, nil
}

// GetStudents returns all rows in insertion order.
func (s *SQLite) GetStudents(ctx context.Context) ([]types.Student, error) {
	rows, err := s.Db.QueryContext(ctx,
		"SELECT id, name, email, age FROM students ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("GetStudents: query: %w", err)
	}
	defer rows.Close()

	students := make([]types.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("GetStudents: scan row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetStudents: rows iteration: %w", err)
	}

	return students, nil
}

// Close closes the underlying connection pool.
func (s *SQLite) Close(context.Context) error {
	return s.Db.Close()
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanStudent(sc scanner) (types.Student, error) {
	var (
		student types.Student
		name    sql.NullString
		email   sql.NullString
		age     sql.NullFloat64
	)

	if err := sc.Scan(&student.ID, &name, &email, &age); err != nil {
		return types.Student{}, err
	}

	if name.Valid {
		student.Name = &name.String
	}
	if email.Valid {
		student.Email = &email.String
	}
	if age.Valid {
		student.Age = &age.Float64
	}

	return student, nil
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

// Package mongodb provides the MongoDB implementation of storage.Storage,
// built on the official go.mongodb.org/mongo-driver/v2 driver.
//
// Students live in the "students" collection of the database named by the
// path of MONGO_URI. Absent attributes are left out of the stored
// document rather than written as null.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/aanand-mishra/student-service/internal/config"
	"github.com/aanand-mishra/student-service/internal/storage"
	"github.com/aanand-mishra/student-service/internal/types"
)

// Collection holds the student documents.
const Collection = "students"

const pingTimeout = 5 * time.Second

// Mongo is the MongoDB implementation of storage.Storage.
// A *mongo.Client is a connection pool and is safe for concurrent use.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

var _ storage.Storage = (*Mongo)(nil)

// studentDocument is the BSON shape of a student.
type studentDocument struct {
	ID    bson.ObjectID `bson:"_id"`
	Name  *string       `bson:"name,omitempty"`
	Email *string       `bson:"email,omitempty"`
	Age   *float64      `bson:"age,omitempty"`
}

// New creates the client for cfg.MongoURI and checks connectivity once.
//
// Only a client that cannot be built (a malformed URI, bad options) is an
// error. An unreachable server is logged and New still returns a usable
// *Mongo: the driver keeps trying in the background and each request
// fails on its own until the server is back.
func New(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongodb.New: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		slog.Warn("mongodb is not reachable, serving anyway",
			slog.String("database", cfg.DatabaseName()),
			slog.String("error", err.Error()))
	} else {
		slog.Info("mongodb connected", slog.String("database", cfg.DatabaseName()))
	}

	return &Mongo{
		client: client,
		coll:   client.Database(cfg.DatabaseName()).Collection(Collection),
	}, nil
}

// CreateStudent inserts a document with a freshly generated ObjectID.
func (m *Mongo) CreateStudent(ctx context.Context, student types.Student) (types.Student, error) {
	doc := toDocument(student)
	doc.ID = bson.NewObjectID()

	if _, err := m.coll.InsertOne(ctx, doc); err != nil {
		return types.Student{}, fmt.Errorf("CreateStudent: insert: %w", err)
	}

	return fromDocument(doc), nil
}

// GetStudentByID looks a student up by its ObjectID hex string.
// A string that is not a valid ObjectID is reported as storage.ErrNotFound.
func (m *Mongo) GetStudentByID(ctx context.Context, id string) (types.Student, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return types.Student{}, fmt.Errorf("GetStudentByID: malformed id %q: %w", id, storage.ErrNotFound)
	}

	var doc studentDocument
	err = m.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return types.Student{}, fmt.Errorf("GetStudentByID: %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return types.Student{}, fmt.Errorf("GetStudentByID: find: %w", err)
	}

	return fromDocument(doc), nil
}

// GetStudents returns every document in natural order.
func (m *Mongo) GetStudents(ctx context.Context) ([]types.Student, error) {
	cursor, err := m.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("GetStudents: find: %w", err)
	}

	var docs []studentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("GetStudents: decode: %w", err)
	}

	students := make([]types.Student, 0, len(docs))
	for _, doc := range docs {
		students = append(students, fromDocument(doc))
	}

	return students, nil
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongodb.Close: %w", err)
	}
	return nil
}

func toDocument(s types.Student) studentDocument {
	return studentDocument{Name: s.Name, Email: s.Email, Age: s.Age}
}

func fromDocument(doc studentDocument) types.Student {
	return types.Student{
		ID:    doc.ID.Hex(),
		Name:  doc.Name,
		Email: doc.Email,
		Age:   doc.Age,
	}
}

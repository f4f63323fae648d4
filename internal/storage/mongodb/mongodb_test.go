package mongodb

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/aanand-mishra/student-service/internal/config"
	"github.com/aanand-mishra/student-service/internal/storage"
	"github.com/aanand-mishra/student-service/internal/types"
)

func ptr[T any](v T) *T { return &v }

func TestMongo_ImplementsStorage(t *testing.T) {
	var _ storage.Storage = (*Mongo)(nil)
}

func TestDocumentRoundTrip(t *testing.T) {
	oid := bson.NewObjectID()
	in := types.Student{Name: ptr("Ada"), Age: ptr(30.0)}

	doc := toDocument(in)
	doc.ID = oid
	out := fromDocument(doc)

	assert.Equal(t, oid.Hex(), out.ID)
	assert.Equal(t, in.Name, out.Name)
	assert.Nil(t, out.Email)
	assert.Equal(t, in.Age, out.Age)
}

func TestDocumentOmitsAbsentFields(t *testing.T) {
	doc := toDocument(types.Student{Email: ptr("ada@x.com")})
	doc.ID = bson.NewObjectID()

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	assert.Len(t, m, 2)
	assert.Equal(t, "ada@x.com", m["email"])
	assert.Contains(t, m, "_id")
}

func TestDocumentDecodesIntegerAge(t *testing.T) {
	raw, err := bson.Marshal(bson.D{
		{Key: "_id", Value: bson.NewObjectID()},
		{Key: "age", Value: int32(21)},
		{Key: "__v", Value: int32(0)},
	})
	require.NoError(t, err)

	var doc studentDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	require.NotNil(t, doc.Age)
	assert.Equal(t, 21.0, *doc.Age)
}

func TestGetStudentByID_MalformedIDIsNotFound(t *testing.T) {
	m := &Mongo{}

	for _, id := range []string{"abc", "not-an-object-id", "zzzzzzzzzzzzzzzzzzzzzzzz", ""} {
		_, err := m.GetStudentByID(context.Background(), id)
		assert.ErrorIs(t, err, storage.ErrNotFound, id)
	}
}

// The tests below talk to a real server and run only when MONGO_TEST_URI
// is set, e.g. MONGO_TEST_URI=mongodb://localhost:27017.

func newTestMongo(t *testing.T) *Mongo {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	dbName := fmt.Sprintf("students_test_%d", time.Now().UnixNano())
	cfg := &config.Config{Storage: config.Storage{MongoURI: uri + "/" + dbName}}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	m, err := New(ctx, cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = m.client.Database(dbName).Drop(ctx)
		_ = m.Close(ctx)
	})

	return m
}

func TestMongo_CreateGetList(t *testing.T) {
	m := newTestMongo(t)
	ctx := context.Background()

	ada, err := m.CreateStudent(ctx, types.Student{Name: ptr("Ada"), Email: ptr("ada@x.com"), Age: ptr(30.0)})
	require.NoError(t, err)
	require.Len(t, ada.ID, 24)

	empty, err := m.CreateStudent(ctx, types.Student{})
	require.NoError(t, err)
	assert.NotEqual(t, ada.ID, empty.ID)

	got, err := m.GetStudentByID(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, ada, got)

	_, err = m.GetStudentByID(ctx, "000000000000000000000000")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	all, err := m.GetStudents(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []types.Student{ada, empty}, all)
}

func TestMongo_GetStudentsEmptyCollection(t *testing.T) {
	m := newTestMongo(t)

	all, err := m.GetStudents(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/student-service/internal/config"
	"github.com/aanand-mishra/student-service/internal/storage/memory"
	"github.com/aanand-mishra/student-service/internal/storage/sqlite"
)

func TestOpenStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		store, err := openStorage(ctx, &config.Config{Storage: config.Storage{Driver: config.DriverMemory}})

		require.NoError(t, err)
		assert.IsType(t, &memory.Memory{}, store)
	})

	t.Run("SQLite", func(t *testing.T) {
		cfg := &config.Config{Storage: config.Storage{
			Driver:      config.DriverSQLite,
			StoragePath: filepath.Join(t.TempDir(), "students.db"),
		}}

		store, err := openStorage(ctx, cfg)

		require.NoError(t, err)
		assert.IsType(t, &sqlite.SQLite{}, store)
		assert.NoError(t, store.Close(ctx))
	})

	t.Run("MongoMalformedURI", func(t *testing.T) {
		cfg := &config.Config{Storage: config.Storage{
			Driver:   config.DriverMongo,
			MongoURI: "postgres://localhost:5432/studentsdb",
		}}

		_, err := openStorage(ctx, cfg)

		assert.Error(t, err)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := openStorage(ctx, &config.Config{Storage: config.Storage{Driver: "redis"}})

		assert.EqualError(t, err, `unknown storage driver "redis"`)
	})
}

package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"shift-planner-backend/internal/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var sqliteSeq atomic.Int64

// OpenSQLite opens a fresh in-memory database with the full schema migrated.
// Service-level tests use it so the engine suites run without Docker; the
// repository integration tests still exercise real Postgres.
func OpenSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	// A plain ":memory:" DSN gives every pooled connection its own empty
	// database; a uniquely named shared-cache DSN keeps the schema visible
	// to the whole pool while still isolating each OpenSQLite call.
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", sqliteSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

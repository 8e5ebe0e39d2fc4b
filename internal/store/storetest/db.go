// Package storetest provides an in-memory SQLite store for tests
package storetest

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/partyqr/qr-router/internal/store"
)

var nameReplacer = strings.NewReplacer("/", "_", " ", "_", "#", "_")

// NewDB creates a migrated in-memory SQLite database private to the test.
// The pool is limited to one connection so concurrent writers queue instead of failing with SQLITE_BUSY.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", nameReplacer.Replace(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := store.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// NewStore creates a store backed by NewDB, returning the raw handle for assertions
func NewStore(t *testing.T) (store.Store, *gorm.DB) {
	t.Helper()
	db := NewDB(t)
	return store.NewPGStore(db), db
}

package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/partyqr/qr-router/internal/store"
	"github.com/partyqr/qr-router/internal/store/storetest"
)

// TestSQLiteStore runs all store tests against an in-memory SQLite database
func TestSQLiteStore(t *testing.T) {
	runStoreTests(t, storetest.NewStore)
}

func TestPoolConfigNormalize(t *testing.T) {
	tests := []struct {
		name         string
		open, idle   int
		expectedOpen int
		expectedIdle int
	}{
		{"defaults", 0, 0, 20, 5},
		{"idle clamped to open", 3, 10, 3, 3},
		{"explicit", 50, 10, 50, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := store.PoolConfig{MaxOpenConns: tt.open, MaxIdleConns: tt.idle}.Normalize()
			assert.Equal(t, tt.expectedOpen, pool.MaxOpenConns)
			assert.Equal(t, tt.expectedIdle, pool.MaxIdleConns)
			assert.Equal(t, 5*time.Minute, pool.ConnMaxLifetime)
			assert.Equal(t, 10*time.Minute, pool.ConnMaxIdleTime)
		})
	}
}

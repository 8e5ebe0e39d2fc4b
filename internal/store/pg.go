package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/partyqr/qr-router/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore returns the gorm-backed store.
// Queries stay on portable SQL so the same store runs on SQLite in tests.
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// legacyDefaultDestinationIndex was not scoped to the event, so a QR relinked to a new
// event could not get its own default destination
const legacyDefaultDestinationIndex = "idx_destinations_qr_default"

// Migrate creates or updates every table and index
func Migrate(db *gorm.DB) error {
	migrator := db.Migrator()
	if migrator.HasIndex(&schema.Destination{}, legacyDefaultDestinationIndex) {
		if err := migrator.DropIndex(&schema.Destination{}, legacyDefaultDestinationIndex); err != nil {
			return fmt.Errorf("failed to drop legacy default destination index: %w", err)
		}
	}
	if err := db.AutoMigrate(schema.Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// PoolConfig sizes the database/sql pool behind gorm. Zero values take defaults.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Normalize applies defaults and keeps idle connections within the open limit.
// database/sql reads MaxOpenConns=0 as unlimited and MaxIdleConns=0 as none,
// neither of which suits the scan path.
func (p PoolConfig) Normalize() PoolConfig {
	if p.MaxOpenConns <= 0 {
		p.MaxOpenConns = 20
	}
	if p.MaxIdleConns <= 0 {
		p.MaxIdleConns = 5
	}
	if p.ConnMaxLifetime <= 0 {
		p.ConnMaxLifetime = 5 * time.Minute
	}
	if p.ConnMaxIdleTime <= 0 {
		p.ConnMaxIdleTime = 10 * time.Minute
	}
	if p.MaxIdleConns > p.MaxOpenConns {
		p.MaxIdleConns = p.MaxOpenConns
	}
	return p
}

// Open connects to postgres, sizes the pool and pings once
func Open(ctx context.Context, dsn string, pool PoolConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := ConfigureConnectionPool(db, pool); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// ConfigureConnectionPool applies the normalized pool settings to db
func ConfigureConnectionPool(db *gorm.DB, pool PoolConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	pool = pool.Normalize()
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(pool.ConnMaxIdleTime)
	return nil
}

// first loads a single row, returning (nil, nil) when it does not exist
func first[T any](ctx context.Context, db *gorm.DB, what string, query any, args ...any) (*T, error) {
	var row T
	err := db.WithContext(ctx).Where(query, args...).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s: %w", what, err)
	}
	return &row, nil
}

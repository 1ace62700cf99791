package database

import (
	"context"
	"fmt"
	"time"

	"expensetracker/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Manager owns the process-wide connection pool.
type Manager struct {
	db  *gorm.DB
	url string
}

// NowUTC is the clock used for store-assigned timestamps. Values are kept at
// microsecond precision so they survive a round trip through a TIMESTAMP column.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// NewManager creates a new database manager
func NewManager(config *Config) (*Manager, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  config.DSN(),
		PreferSimpleProtocol: true, // Required for Supabase Supavisor; harmless for direct connections
	}), &gorm.Config{NowFunc: NowUTC})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db, url: config.URL()}, nil
}

// RunMigrations applies pending SQL migrations embedded in the binary.
func (m *Manager) RunMigrations() error {
	logger.Get().Info("Running database migrations...")

	mig, err := NewMigrator(m.url)
	if err != nil {
		return err
	}
	defer CloseMigrator(mig)

	if err := Up(mig); err != nil {
		return err
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// Ping checks that the database is reachable.
func (m *Manager) Ping(ctx context.Context) error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases every pooled connection.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

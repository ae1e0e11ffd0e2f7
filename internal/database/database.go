package database

import (
	"errors"
	"fmt"
	"time"

	"dompet/internal/config"
	"dompet/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Manager handles database operations
type Manager struct {
	db            *gorm.DB
	url           string
	migrationsDir string
}

// Options returns the GORM configuration shared by every connection the
// application opens. Driver errors are translated so that unique violations
// surface as gorm.ErrDuplicatedKey regardless of the backing database.
func Options() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

// NewManager creates a new database manager
func NewManager(cfg config.DatabaseConfig) (*Manager, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // Required for Supabase Supavisor; harmless for direct connections
	}), Options())
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

	return &Manager{db: db, url: cfg.URL(), migrationsDir: cfg.MigrationsDir}, nil
}

// RunMigrations applies pending SQL migrations from the configured directory.
func (m *Manager) RunMigrations() error {
	logger.Get().Infow("running database migrations", "dir", m.migrationsDir)

	mig, err := NewMigrator(m.migrationsDir, m.url)
	if err != nil {
		return err
	}
	defer CloseMigrator(mig)

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("database migrations completed successfully")
	return nil
}

// NewMigrator builds a golang-migrate instance reading SQL files from dir.
func NewMigrator(dir, url string) (*migrate.Migrate, error) {
	mig, err := migrate.New("file://"+dir, url)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return mig, nil
}

// CloseMigrator releases the source and database handles held by mig.
func CloseMigrator(mig *migrate.Migrate) {
	srcErr, dbErr := mig.Close()
	if srcErr != nil {
		logger.Get().Warnf("migrate source close error: %v", srcErr)
	}
	if dbErr != nil {
		logger.Get().Warnf("migrate database close error: %v", dbErr)
	}
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

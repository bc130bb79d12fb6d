package sqlite

import (
	"fmt"
	"os"
	"path/filepath"

	sqlitedriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BhavyNayak/stackit/internal/domain"
)

// Open opens (or creates) a sqlite database at the given path, ensures
// directories exist and migrates the schema.
func Open(path string, debug bool) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	gormLogger := logger.Discard
	if debug {
		gormLogger = logger.Default
	}

	// foreign_keys must be set per connection so the cascade deletes fire.
	dsn := path + "?_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL"
	db, err := gorm.Open(sqlitedriver.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite pool: %w", err)
	}

	// reasonable defaults for sqlite with concurrent readers
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&domain.User{}, &domain.Question{}, &domain.Answer{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

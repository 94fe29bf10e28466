// Package database provides the GORM-backed measurement store and its connection setup
package database

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"climatestats.app/internal/config"
	"climatestats.app/pkg/errors"
)

// Open connects to the configured SQL database. SQLite files are opened
// read-only and must already exist.
func Open(cfg config.DatabaseConfig, log *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite:
		if _, err := os.Stat(cfg.SQLitePath); err != nil {
			return nil, errors.NewConfigurationError("sqlite database not found: "+cfg.SQLitePath, err)
		}
		dialector = sqlite.Open(fmt.Sprintf("file:%s?mode=ro", cfg.SQLitePath))
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.GetDSN())
	default:
		return nil, errors.NewConfigurationError("driver is not a SQL driver: "+cfg.Driver.String(), nil)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(log, cfg.SlowQueryThreshold),
	})
	if err != nil {
		return nil, errors.NewStorageUnavailableError("connect to database", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.NewStorageUnavailableError("get underlying database connection", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// Close safely closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// NewGormLogger routes GORM's warnings and slow query reports through slog
func NewGormLogger(log *slog.Logger, slowThreshold time.Duration) logger.Interface {
	if log == nil {
		log = slog.Default()
	}
	return logger.New(
		slogWriter{log: log.With("component", "gorm")},
		logger.Config{
			SlowThreshold:             slowThreshold,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

type slogWriter struct {
	log *slog.Logger
}

func (w slogWriter) Printf(format string, args ...interface{}) {
	w.log.Warn(fmt.Sprintf(format, args...))
}

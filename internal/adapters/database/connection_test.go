package database

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"climatestats.app/internal/config"
	"climatestats.app/pkg/calendar"
	"climatestats.app/pkg/errors"
)

func TestOpen_SQLiteReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hawaii.sqlite")

	// build the fixture with a writable connection first
	writable, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, writable.AutoMigrate(&MeasurementModel{}, &StationModel{}))
	seed(t, writable)
	require.NoError(t, Close(writable))

	db, err := Open(config.DatabaseConfig{
		Driver:             config.DriverSQLite,
		SQLitePath:         path,
		MaxOpenConns:       4,
		MaxIdleConns:       2,
		ConnMaxLifetime:    time.Minute,
		SlowQueryThreshold: time.Second,
	}, slog.Default())
	require.NoError(t, err)
	defer func() { assert.NoError(t, Close(db)) }()

	latest, ok, err := NewMeasurementRepositoryAdapter(db).MaxDate(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, calendar.MustParse("2017-01-03"), latest)

	err = db.Create(&StationModel{Station: "USC00000000"}).Error
	assert.Error(t, err, "read-only connection must reject writes")
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "missing.sqlite"),
	}, nil)
	assert.True(t, errors.IsConfigurationError(err))

	_, err = Open(config.DatabaseConfig{Driver: config.DriverCSV}, nil)
	assert.True(t, errors.IsConfigurationError(err))
}

func TestNewGormLogger_SlowQuery(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: NewGormLogger(log, time.Nanosecond),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("SELECT 1").Error)

	assert.Contains(t, buf.String(), "SLOW SQL")
	assert.Contains(t, buf.String(), "component=gorm")
}

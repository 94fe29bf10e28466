package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"climatestats.app/internal/adapters/memory"
	"climatestats.app/internal/app"
	"climatestats.app/internal/config"
	"climatestats.app/internal/ports"
	"climatestats.app/pkg/calendar"
	"climatestats.app/pkg/errors"
	"climatestats.app/pkg/logger"
)

func f(v float64) *float64 {
	return &v
}

func csvConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "climate-stats", Version: "test"},
		Database: config.DatabaseConfig{
			Driver:          config.DriverCSV,
			CSVMeasurements: "measurements.csv",
			CSVStations:     "stations.csv",
		},
	}
}

func TestRun_Report(t *testing.T) {
	store := memory.NewMeasurementStore([]memory.Measurement{
		{StationID: "USC00519397", Date: calendar.MustParse("2016-01-01"), Temperature: f(60)},
		{StationID: "USC00519397", Date: calendar.MustParse("2017-08-22"), Temperature: f(81)},
		{StationID: "USC00519281", Date: calendar.MustParse("2017-08-22"), Temperature: f(79)},
		{StationID: "USC00519281", Date: calendar.MustParse("2017-08-23"), Temperature: f(80)},
	}, []ports.StationData{
		{StationID: "USC00519397"},
		{StationID: "USC00519281"},
	})
	cfg := csvConfig()
	deps := app.NewDependencyContainerWithStore(cfg, logger.New(), store)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, cfg, deps))

	report := out.String()
	assert.Contains(t, report, "1. Measurement store:\n   driver: csv\n   target: measurements.csv,stations.csv\n   ✓ store reachable")
	assert.Contains(t, report, "2. Stations:\n   2 stations")
	assert.Contains(t, report, "3. Latest 12 month window:\n   2016-08-23..2017-08-23")
	assert.Contains(t, report, "4. Most active station:\n   USC00519281 (2 temperature observations)")
	assert.Contains(t, report, "5. Temperature over the window:\n   min 79.0  avg 80.0  max 81.0  over 3 readings")
	assert.Contains(t, report, "✓ Dataset can serve every route")
}

func TestRun_EmptyDataset(t *testing.T) {
	cfg := csvConfig()
	deps := app.NewDependencyContainerWithStore(cfg, logger.New(), memory.NewMeasurementStore(nil, nil))

	var out bytes.Buffer
	err := run(context.Background(), &out, cfg, deps)

	assert.True(t, errors.IsEmptyDatasetError(err))
	assert.Contains(t, out.String(), "   0 stations")
	assert.NotContains(t, out.String(), "✓ Dataset can serve every route")
}

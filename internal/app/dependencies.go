package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"climatestats.app/internal/adapters/database"
	"climatestats.app/internal/adapters/infrastructure"
	"climatestats.app/internal/adapters/memory"
	"climatestats.app/internal/config"
	"climatestats.app/internal/ports"
	"climatestats.app/pkg/logger"
)

type DependencyContainer struct {
	config   *config.Config
	log      *logger.Logger
	db       *gorm.DB
	registry *prometheus.Registry
	ports    *ports.ApplicationPorts
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config: cfg,
		log: logger.NewWithOptions(logger.Options{
			Level:          cfg.Log.Level,
			Format:         cfg.Log.Format,
			FilePath:       cfg.Log.FilePath,
			FileMaxSizeMB:  cfg.Log.FileMaxSizeMB,
			FileMaxBackups: cfg.Log.FileMaxBackups,
			App:            cfg.App.Name,
			Version:        cfg.App.Version,
		}),
	}
	slog.SetDefault(container.log.Logger)

	store, healthChecker, err := container.initializeStore()
	if err != nil {
		_ = container.log.Close()
		return nil, fmt.Errorf("initialize measurement store: %w", err)
	}

	container.initializePorts(store, healthChecker)
	return container, nil
}

// NewDependencyContainerWithStore wires the container around an already
// loaded store. Used by tests and by callers embedding the service.
func NewDependencyContainerWithStore(cfg *config.Config, log *logger.Logger, store *memory.MeasurementStore) *DependencyContainer {
	container := &DependencyContainer{config: cfg, log: log}
	container.initializePorts(store, infrastructure.NewStoreHealthChecker("database", store, nil))
	return container
}

func (c *DependencyContainer) initializeStore() (ports.MeasurementStore, ports.DatabaseHealthChecker, error) {
	dbConfig := c.config.Database
	c.log.Info("Initializing measurement store...",
		"driver", dbConfig.Driver.String(),
		"target", dbConfig.Target())

	if dbConfig.Driver == config.DriverCSV {
		store, err := memory.LoadCSV(dbConfig.CSVMeasurements, dbConfig.CSVStations)
		if err != nil {
			return nil, nil, err
		}

		measurements, stations := store.Stats()
		c.log.Info("CSV measurement store loaded",
			"measurements", measurements,
			"stations", stations)

		details := func() map[string]interface{} {
			measurements, stations := store.Stats()
			return map[string]interface{}{
				"dialect":      "csv",
				"measurements": measurements,
				"stations":     stations,
			}
		}
		return store, infrastructure.NewStoreHealthChecker("database", store, details), nil
	}

	db, err := database.Open(dbConfig, c.log.Logger)
	if err != nil {
		return nil, nil, err
	}
	c.db = db

	c.log.Info("Database connection established successfully")
	return database.NewMeasurementRepositoryAdapter(db), infrastructure.NewDatabaseHealthChecker(db), nil
}

func (c *DependencyContainer) initializePorts(store ports.MeasurementStore, healthChecker ports.DatabaseHealthChecker) {
	c.registry = prometheus.NewRegistry()
	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c.ports = &ports.ApplicationPorts{
		MeasurementStore: store,
		Metrics:          infrastructure.NewPrometheusMetricsCollector(c.registry),
		Logger:           infrastructure.NewSlogLoggerAdapter(c.log.Logger),
		ConfigProvider:   infrastructure.NewConfigProviderAdapter(c.config),
		HealthChecker:    healthChecker,
		Closer:           c.Cleanup,
	}
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// MetricsHandler serves the container's own registry
func (c *DependencyContainer) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Cleanup releases the database pool and the log file sink
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	if c.db != nil {
		if err := database.Close(c.db); err != nil {
			firstErr = fmt.Errorf("close database: %w", err)
		}
		c.db = nil
	}
	if c.log != nil {
		if err := c.log.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close log file: %w", err)
		}
	}
	return firstErr
}

package infrastructure

import (
	"context"

	"climatestats.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	databaseChecker ports.DatabaseHealthChecker
	configProvider  ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	DatabaseChecker ports.DatabaseHealthChecker
	ConfigProvider  ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		databaseChecker: config.DatabaseChecker,
		configProvider:  config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.databaseChecker != nil {
		results["database"] = s.databaseChecker.Check(ctx)
	}

	// Add config information
	if s.configProvider != nil {
		appConfig := s.configProvider.GetAppConfig()
		dbConfig := s.configProvider.GetDatabaseConfig()
		statsConfig := s.configProvider.GetStatsConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    ports.StatusHealthy,
			Details: map[string]interface{}{
				"name":                   appConfig.Name,
				"version":                appConfig.Version,
				"driver":                 dbConfig.Driver,
				"target":                 dbConfig.Target,
				"preload_active_station": statsConfig.PreloadActiveStation,
			},
		}
	}

	return results
}

package infrastructure

import (
	"climatestats.app/internal/config"
	"climatestats.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetAppConfig returns application configuration
func (c *ConfigProviderAdapter) GetAppConfig() ports.AppConfig {
	return ports.AppConfig{
		Name:    c.config.App.Name,
		Version: c.config.App.Version,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetDatabaseConfig returns the storage configuration without credentials
func (c *ConfigProviderAdapter) GetDatabaseConfig() ports.DatabaseConfig {
	return ports.DatabaseConfig{
		Driver: c.config.Database.Driver.String(),
		Target: c.config.Database.Target(),
	}
}

// GetStatsConfig returns query core configuration
func (c *ConfigProviderAdapter) GetStatsConfig() ports.StatsConfig {
	return ports.StatsConfig{
		PreloadActiveStation: c.config.Stats.PreloadActiveStation,
	}
}

package ports

import (
	"context"
	"time"
)

// AppConfig represents application identity
type AppConfig struct {
	Name    string
	Version string
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// DatabaseConfig represents the non-secret part of the storage configuration
type DatabaseConfig struct {
	Driver string
	Target string
}

// StatsConfig represents query core configuration
type StatsConfig struct {
	PreloadActiveStation bool
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetAppConfig() AppConfig
	GetServerConfig() ServerConfig
	GetDatabaseConfig() DatabaseConfig
	GetStatsConfig() StatsConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordQuery(ctx context.Context, operation string, duration time.Duration, err error)
	RecordActiveStationLookup(ctx context.Context, cached bool)
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}

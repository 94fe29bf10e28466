package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"climatestats.app/pkg/errors"
)

const (
	maxPortNumber  = 65535
	maxLogFileSize = 1024
)

// Config represents the application configuration structure
type Config struct {
	App      AppConfig      `split_words:"true"`
	Server   ServerConfig   `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
	Log      LogConfig      `split_words:"true"`
	Stats    StatsConfig    `split_words:"true"`
}

type AppConfig struct {
	Name    string `envconfig:"APP_NAME" default:"climate-stats"`
	Version string `envconfig:"APP_VERSION" default:"1.0.0"`
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	GinMode         string        `envconfig:"GIN_MODE" default:"release"`
}

// DatabaseDriver selects the measurement store backend
type DatabaseDriver int

const (
	DriverUnknown DatabaseDriver = iota
	DriverSQLite
	DriverPostgres
	DriverCSV
)

// String returns the string representation of the driver
func (d DatabaseDriver) String() string {
	switch d {
	case DriverSQLite:
		return "sqlite"
	case DriverPostgres:
		return "postgres"
	case DriverCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// IsValid checks if the driver is supported
func (d DatabaseDriver) IsValid() bool {
	return d == DriverSQLite || d == DriverPostgres || d == DriverCSV
}

// DatabaseDriverFromString converts string to DatabaseDriver enum
func DatabaseDriverFromString(s string) DatabaseDriver {
	switch strings.ToLower(s) {
	case "sqlite", "sqlite3":
		return DriverSQLite
	case "postgres", "postgresql":
		return DriverPostgres
	case "csv":
		return DriverCSV
	default:
		return DriverUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (d *DatabaseDriver) UnmarshalText(text []byte) error {
	*d = DatabaseDriverFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (d DatabaseDriver) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type DatabaseConfig struct {
	Driver     DatabaseDriver `envconfig:"DB_DRIVER" default:"sqlite"`
	SQLitePath string         `envconfig:"DB_SQLITE_PATH" default:"Resources/hawaii.sqlite"`

	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"climate"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`

	CSVMeasurements string `envconfig:"DB_CSV_MEASUREMENTS" default:"Resources/hawaii_measurements.csv"`
	CSVStations     string `envconfig:"DB_CSV_STATIONS" default:"Resources/hawaii_stations.csv"`

	MaxOpenConns       int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns       int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime    time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
	SlowQueryThreshold time.Duration `envconfig:"DB_SLOW_QUERY_THRESHOLD" default:"200ms"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Target names the data source without credentials, for logs and health output
func (c DatabaseConfig) Target() string {
	switch c.Driver {
	case DriverSQLite:
		return c.SQLitePath
	case DriverPostgres:
		return fmt.Sprintf("%s:%d/%s", c.Host, c.Port, c.Name)
	case DriverCSV:
		return c.CSVMeasurements + "," + c.CSVStations
	default:
		return ""
	}
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	Format         string `envconfig:"LOG_FORMAT" default:"json"`
	FilePath       string `envconfig:"LOG_FILE_PATH"`
	FileMaxSizeMB  int    `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"100"`
	FileMaxBackups int    `envconfig:"LOG_FILE_MAX_BACKUPS" default:"3"`
}

type StatsConfig struct {
	PreloadActiveStation bool `envconfig:"STATS_PRELOAD_ACTIVE_STATION" default:"true"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	if s.ReadTimeout <= 0 || s.WriteTimeout <= 0 || s.ShutdownTimeout <= 0 {
		return errors.NewConfigurationError("server timeouts must be positive", nil)
	}
	switch s.GinMode {
	case "release", "debug", "test":
	default:
		return errors.NewConfigurationError("GIN_MODE must be one of: release, debug, test", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	if !d.Driver.IsValid() {
		return errors.NewConfigurationError("DB_DRIVER must be one of: sqlite, postgres, csv", nil)
	}

	switch d.Driver {
	case DriverSQLite:
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty when DB_DRIVER=sqlite", nil)
		}
	case DriverPostgres:
		if err := d.validatePostgres(); err != nil {
			return err
		}
	case DriverCSV:
		if d.CSVMeasurements == "" || d.CSVStations == "" {
			return errors.NewConfigurationError("DB_CSV_MEASUREMENTS and DB_CSV_STATIONS are required when DB_DRIVER=csv", nil)
		}
		return nil
	}

	if d.MaxOpenConns < 1 {
		return errors.NewConfigurationError("DB_MAX_OPEN_CONNS must be at least 1", nil)
	}
	if d.MaxIdleConns < 0 || d.MaxIdleConns > d.MaxOpenConns {
		return errors.NewConfigurationError("DB_MAX_IDLE_CONNS must be between 0 and DB_MAX_OPEN_CONNS", nil)
	}
	return nil
}

func (d *DatabaseConfig) validatePostgres() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return errors.NewConfigurationError("LOG_FORMAT must be one of: json, text", nil)
	}
	if l.FilePath != "" && (l.FileMaxSizeMB < 1 || l.FileMaxSizeMB > maxLogFileSize) {
		return errors.NewConfigurationError("LOG_FILE_MAX_SIZE_MB must be between 1 and 1024", nil)
	}
	if l.FileMaxBackups < 0 {
		return errors.NewConfigurationError("LOG_FILE_MAX_BACKUPS cannot be negative", nil)
	}
	return nil
}

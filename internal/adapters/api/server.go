// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"climatestats.app/internal/core/climate"
	"climatestats.app/internal/ports"
	"climatestats.app/pkg/calendar"
	"climatestats.app/pkg/errors"
	"climatestats.app/pkg/responseformat"
	"climatestats.app/pkg/validation"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	config           ServerConfig
	climateUseCase   ClimateUseCase
	metricsCollector ports.MetricsCollector
	healthChecker    ports.SystemHealthChecker
	logger           ports.Logger
	formatter        *responseformat.Formatter
}

// ClimateUseCase is the query core the HTTP adapter depends on
type ClimateUseCase interface {
	PrecipitationFeed(ctx context.Context) (map[calendar.Date]*float64, error)
	PrecipitationByStation(ctx context.Context) (map[calendar.Date]map[string]*float64, error)
	StationRoster(ctx context.Context) ([]string, error)
	MostActiveStationTemperatureFeed(ctx context.Context) ([]climate.Observation, error)
	RangeTemperatureStats(ctx context.Context, dateRange calendar.Range) (climate.TemperatureAggregate, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config              ServerConfig
	ClimateUseCase      ClimateUseCase
	MetricsCollector    ports.MetricsCollector
	SystemHealthChecker ports.SystemHealthChecker
	Logger              ports.Logger
	// MetricsHandler serves /metrics; defaults to the global Prometheus registry
	MetricsHandler http.Handler
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router := gin.New()

	server := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		climateUseCase:   opts.ClimateUseCase,
		metricsCollector: opts.MetricsCollector,
		healthChecker:    opts.SystemHealthChecker,
		logger:           opts.Logger,
		formatter:        responseformat.NewFormatter(),
	}

	metricsHandler := opts.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	server.setupMiddleware()
	server.setupRoutes(metricsHandler)
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.ClimateUseCase == nil {
		return errors.NewValidationError("climate use case is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.SystemHealthChecker == nil {
		return errors.NewValidationError("system health checker is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// RegisterValidators adds the custom binding tags to gin's validator engine
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.NewConfigurationError("gin binding engine is not go-playground/validator", nil)
	}
	return validation.Register(v)
}

func (s *HTTPServerAdapter) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(requestID())
	s.router.Use(s.requestLogger())
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes(metricsHandler http.Handler) {
	s.router.GET("/", s.getRoutes)

	api := s.router.Group("/api/v1.0")
	{
		api.GET("/precipitation", s.getPrecipitation)
		api.GET("/precipitation/by-station", s.getPrecipitationByStation)
		api.GET("/stations", s.getStations)
		api.GET("/tobs", s.getTobs)
		api.GET("/:start", s.getTemperatureStats)
		api.GET("/:start/:end", s.getTemperatureStats)
	}

	s.router.GET("/health", s.getHealth)
	s.router.GET("/metrics", gin.WrapH(metricsHandler))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"climatestats.app/internal/adapters/api"
	"climatestats.app/internal/adapters/infrastructure"
	"climatestats.app/internal/config"
	"climatestats.app/internal/core/climate"
	"climatestats.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	climateUseCase *climate.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	a.ports.Logger.Info("Initializing use cases...")

	climateUseCase, err := climate.NewUseCase(climate.UseCaseDependencies{
		Store:         a.ports.MeasurementStore,
		ActiveStation: climate.NewActiveStationResolver(a.ports.Metrics),
		Logger:        a.ports.Logger,
		Metrics:       a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create climate use case: %w", err)
	}
	a.climateUseCase = climateUseCase

	a.ports.Logger.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	a.ports.Logger.Info("Initializing adapters...")

	gin.SetMode(a.config.Server.GinMode)

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker: a.ports.HealthChecker,
		ConfigProvider:  a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		ClimateUseCase:      a.climateUseCase,
		MetricsCollector:    a.ports.Metrics,
		SystemHealthChecker: systemHealthChecker,
		Logger:              a.ports.Logger,
		MetricsHandler:      a.deps.MetricsHandler(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	// Store router for testing access
	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
		IdleTimeout:  2 * a.config.Server.ReadTimeout,
	}

	a.ports.Logger.Info("Adapters initialized successfully")
	return nil
}

// Start warms the active station cache when configured and serves HTTP
// until the server is shut down.
func (a *Application) Start(ctx context.Context) error {
	a.ports.Logger.Info("Starting application...")

	if a.config.Stats.PreloadActiveStation {
		// an unavailable or empty store is reported per request, not fatal here
		if err := a.climateUseCase.WarmUp(ctx); err != nil {
			a.ports.Logger.Warn("Active station preload failed", ports.F("error", err))
		}
	}

	a.ports.Logger.Info("Starting HTTP server", ports.F("port", a.config.Server.Port))
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	a.ports.Logger.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.ports.Logger.Error("Error shutting down HTTP server", ports.F("error", err))
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	a.ports.Logger.Info("Application shutdown complete")

	if a.ports.Closer != nil {
		if err := a.ports.Closer(); err != nil {
			return fmt.Errorf("release resources: %w", err)
		}
	}
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetClimateUseCase returns the climate use case for testing
func (a *Application) GetClimateUseCase() *climate.UseCase {
	return a.climateUseCase
}

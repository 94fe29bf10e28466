package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"

	"climatestats.app/internal/app"
	"climatestats.app/internal/config"
	"climatestats.app/internal/core/climate"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fail("load configuration", err)
	}

	deps, err := app.NewDependencyContainer(cfg)
	if err != nil {
		fail("open measurement store", err)
	}
	defer deps.Cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, os.Stdout, cfg, deps); err != nil {
		deps.Cleanup()
		fail("check dataset", err)
	}
}

func run(ctx context.Context, w io.Writer, cfg *config.Config, deps *app.DependencyContainer) error {
	p := deps.ApplicationPorts()

	fmt.Fprintln(w, "Climate Dataset Check")
	fmt.Fprintln(w, "=====================")

	fmt.Fprintln(w, "\n1. Measurement store:")
	fmt.Fprintf(w, "   driver: %s\n", cfg.Database.Driver)
	fmt.Fprintf(w, "   target: %s\n", cfg.Database.Target())
	health := p.HealthChecker.Check(ctx)
	if !health.IsHealthy() {
		return fmt.Errorf("store unhealthy: %s", health.Error)
	}
	fmt.Fprintln(w, "   ✓ store reachable")

	useCase, err := climate.NewUseCase(climate.UseCaseDependencies{
		Store:         p.MeasurementStore,
		ActiveStation: climate.NewActiveStationResolver(p.Metrics),
		Logger:        p.Logger,
		Metrics:       p.Metrics,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\n2. Stations:")
	roster, err := useCase.StationRoster(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "   %d stations\n", len(roster))

	fmt.Fprintln(w, "\n3. Latest 12 month window:")
	window, err := climate.NewWindowResolver().Resolve(ctx, p.MeasurementStore)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "   %s\n", window)

	fmt.Fprintln(w, "\n4. Most active station:")
	station, err := climate.NewActiveStationResolver(nil).Resolve(ctx, p.MeasurementStore, window)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "   %s (%d temperature observations)\n", station.StationID, station.Count)

	fmt.Fprintln(w, "\n5. Temperature over the window:")
	aggregate, err := useCase.RangeTemperatureStats(ctx, window.Range())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "   min %.1f  avg %.1f  max %.1f  over %d readings\n",
		aggregate.Min, aggregate.Avg, aggregate.Max, aggregate.Count)

	fmt.Fprintln(w, "\n✓ Dataset can serve every route")
	return nil
}

func fail(step string, err error) {
	fmt.Fprintf(os.Stderr, "Failed to %s: %v\n", step, err)
	os.Exit(1)
}

package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Measurements
	MeasurementStore MeasurementStore

	// Observability
	Metrics MetricsCollector
	Logger  Logger

	// Infrastructure
	ConfigProvider ConfigProvider
	HealthChecker  DatabaseHealthChecker
	Closer         func() error
}

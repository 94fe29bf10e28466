package infrastructure

import (
	"context"

	"climatestats.app/internal/ports"
)

// Pinger is implemented by stores that can report their own availability
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreHealthChecker checks a store that is not backed by a database/sql pool
type StoreHealthChecker struct {
	component string
	store     Pinger
	details   func() map[string]interface{}
}

// NewStoreHealthChecker creates a health checker for store. details may be nil.
func NewStoreHealthChecker(component string, store Pinger, details func() map[string]interface{}) *StoreHealthChecker {
	return &StoreHealthChecker{
		component: component,
		store:     store,
		details:   details,
	}
}

// Check pings the store
func (s *StoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: s.component,
		Status:    ports.StatusHealthy,
	}
	if s.details != nil {
		status.Details = s.details()
	}

	if s.store == nil {
		status.Status = ports.StatusUnhealthy
		status.Error = "store is nil"
		return status
	}
	if err := s.store.Ping(ctx); err != nil {
		status.Status = ports.StatusUnhealthy
		status.Error = err.Error()
	}
	return status
}

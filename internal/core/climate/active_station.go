package climate

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"climatestats.app/internal/ports"
	"climatestats.app/pkg/errors"
)

// ActiveStationResolver finds the station with the most temperature
// observations in a window. The first successful result is cached for the
// lifetime of the resolver and returned to every later caller without
// touching the store, even if the store changes afterwards.
type ActiveStationResolver struct {
	group singleflight.Group

	mu     sync.RWMutex
	cached *ActiveStation

	metrics ports.MetricsCollector
}

// NewActiveStationResolver creates an empty resolver. metrics may be nil.
func NewActiveStationResolver(metrics ports.MetricsCollector) *ActiveStationResolver {
	return &ActiveStationResolver{metrics: metrics}
}

// Resolve returns the cached active station, computing it once on first use.
// Concurrent first callers share a single store query, which is detached
// from the cancellation of the caller that started it. Failures are returned
// to every waiting caller and are not cached.
func (r *ActiveStationResolver) Resolve(ctx context.Context, store ports.MeasurementStore, window DateWindow) (ActiveStation, error) {
	if station, ok := r.Cached(); ok {
		r.recordLookup(ctx, true)
		return station, nil
	}

	// only the goroutine whose closure runs sets computed
	computed := false
	v, err, _ := r.group.Do("active-station", func() (interface{}, error) {
		// a caller that lost the race may arrive after the value was stored
		if station, ok := r.Cached(); ok {
			return station, nil
		}

		computed = true
		station, err := rankStations(context.WithoutCancel(ctx), store, window)
		if err != nil {
			return ActiveStation{}, err
		}

		r.mu.Lock()
		r.cached = &station
		r.mu.Unlock()
		return station, nil
	})

	switch {
	case computed:
		r.recordLookup(ctx, false)
	case err == nil:
		r.recordLookup(ctx, true)
	}
	if err != nil {
		return ActiveStation{}, err
	}
	return v.(ActiveStation), nil
}

// Cached returns the cached station if it has been computed
func (r *ActiveStationResolver) Cached() (ActiveStation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.cached == nil {
		return ActiveStation{}, false
	}
	return *r.cached, true
}

func (r *ActiveStationResolver) recordLookup(ctx context.Context, cached bool) {
	if r.metrics != nil {
		r.metrics.RecordActiveStationLookup(ctx, cached)
	}
}

// rankStations picks the highest count; ties go to the smallest station id
// regardless of the order the store returned them in.
func rankStations(ctx context.Context, store ports.MeasurementStore, window DateWindow) (ActiveStation, error) {
	counts, err := store.CountTemperatureByStation(ctx, window.Start)
	if err != nil {
		return ActiveStation{}, fmt.Errorf("count observations per station: %w", err)
	}

	var best *ports.StationCount
	for i := range counts {
		c := &counts[i]
		if c.Count <= 0 {
			continue
		}
		if best == nil || c.Count > best.Count || (c.Count == best.Count && c.StationID < best.StationID) {
			best = c
		}
	}

	if best == nil {
		return ActiveStation{}, errors.NewEmptyDatasetError(
			fmt.Sprintf("no station has temperature observations since %s", window.Start))
	}
	return ActiveStation{StationID: best.StationID, Count: best.Count}, nil
}

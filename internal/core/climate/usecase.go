package climate

import (
	"context"
	"time"

	"climatestats.app/internal/ports"
	"climatestats.app/pkg/calendar"
	"climatestats.app/pkg/errors"
)

// Operation names reported to the metrics collector
const (
	OpPrecipitationFeed      = "precipitation_feed"
	OpPrecipitationByStation = "precipitation_by_station"
	OpStationRoster          = "station_roster"
	OpActiveStationTemps     = "active_station_temperatures"
	OpRangeTemperatureStats  = "range_temperature_stats"
)

// UseCase is the single entry point of the query core. It composes the
// window resolver, the cached active station resolver and the aggregation
// engine over one measurement store.
type UseCase struct {
	store         ports.MeasurementStore
	windows       *WindowResolver
	activeStation *ActiveStationResolver
	engine        *AggregationEngine
	logger        ports.Logger
	metrics       ports.MetricsCollector
}

type UseCaseDependencies struct {
	Store         ports.MeasurementStore
	ActiveStation *ActiveStationResolver
	Logger        ports.Logger
	Metrics       ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Store == nil {
		return nil, errors.NewValidationError("measurement store is required")
	}
	if deps.ActiveStation == nil {
		return nil, errors.NewValidationError("active station resolver is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		store:         deps.Store,
		windows:       NewWindowResolver(),
		activeStation: deps.ActiveStation,
		engine:        NewAggregationEngine(),
		logger:        deps.Logger,
		metrics:       deps.Metrics,
	}, nil
}

// PrecipitationFeed returns the last 12 months of precipitation keyed by
// date. When several stations report on the same date the value of the
// station sorting last wins; PrecipitationByStation keeps every value.
func (uc *UseCase) PrecipitationFeed(ctx context.Context) (feed map[calendar.Date]*float64, err error) {
	defer uc.observe(ctx, OpPrecipitationFeed, time.Now(), &err)

	observations, window, err := uc.lastYearPrecipitation(ctx)
	if err != nil {
		return nil, err
	}

	feed = make(map[calendar.Date]*float64)
	for _, o := range observations {
		feed[o.Date] = o.Value
	}

	uc.logger.Debug("Precipitation feed built",
		ports.F("window", window.String()),
		ports.F("observations", len(observations)),
		ports.F("dates", len(feed)))
	return feed, nil
}

// PrecipitationByStation returns the last 12 months of precipitation keyed by
// date and station, without collapsing same-day reports.
func (uc *UseCase) PrecipitationByStation(ctx context.Context) (feed map[calendar.Date]map[string]*float64, err error) {
	defer uc.observe(ctx, OpPrecipitationByStation, time.Now(), &err)

	observations, _, err := uc.lastYearPrecipitation(ctx)
	if err != nil {
		return nil, err
	}

	feed = make(map[calendar.Date]map[string]*float64)
	for _, o := range observations {
		byStation, ok := feed[o.Date]
		if !ok {
			byStation = make(map[string]*float64)
			feed[o.Date] = byStation
		}
		byStation[o.StationID] = o.Value
	}
	return feed, nil
}

// StationRoster lists every station identifier in store order
func (uc *UseCase) StationRoster(ctx context.Context) (roster []string, err error) {
	defer uc.observe(ctx, OpStationRoster, time.Now(), &err)

	stations, err := uc.store.ListStations(ctx)
	if err != nil {
		return nil, err
	}

	roster = make([]string, len(stations))
	for i, s := range stations {
		roster[i] = s.StationID
	}
	return roster, nil
}

// MostActiveStationTemperatureFeed returns the last 12 months of temperature
// readings of the most active station.
func (uc *UseCase) MostActiveStationTemperatureFeed(ctx context.Context) (observations []Observation, err error) {
	defer uc.observe(ctx, OpActiveStationTemps, time.Now(), &err)

	window, err := uc.windows.Resolve(ctx, uc.store)
	if err != nil {
		return nil, err
	}

	station, err := uc.activeStation.Resolve(ctx, uc.store, window)
	if err != nil {
		return nil, err
	}

	observations, err = uc.engine.StationFilteredSeries(ctx, uc.store, Temperature, station.StationID, window.Range())
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Active station temperature feed built",
		ports.F("station", station.StationID),
		ports.F("window", window.String()),
		ports.F("observations", len(observations)))
	return observations, nil
}

// RangeTemperatureStats returns min/avg/max temperature over dateRange across all stations
func (uc *UseCase) RangeTemperatureStats(ctx context.Context, dateRange calendar.Range) (aggregate TemperatureAggregate, err error) {
	defer uc.observe(ctx, OpRangeTemperatureStats, time.Now(), &err)

	return uc.engine.TemperatureStats(ctx, uc.store, dateRange)
}

// WarmUp computes the active station ahead of the first request
func (uc *UseCase) WarmUp(ctx context.Context) error {
	window, err := uc.windows.Resolve(ctx, uc.store)
	if err != nil {
		return err
	}

	station, err := uc.activeStation.Resolve(ctx, uc.store, window)
	if err != nil {
		return err
	}

	uc.logger.Info("Most active station resolved",
		ports.F("station", station.StationID),
		ports.F("observations", station.Count),
		ports.F("window", window.String()))
	return nil
}

func (uc *UseCase) lastYearPrecipitation(ctx context.Context) ([]Observation, DateWindow, error) {
	window, err := uc.windows.Resolve(ctx, uc.store)
	if err != nil {
		return nil, DateWindow{}, err
	}

	observations, err := uc.engine.RangeSeries(ctx, uc.store, Precipitation, window.Range())
	if err != nil {
		return nil, DateWindow{}, err
	}
	return observations, window, nil
}

func (uc *UseCase) observe(ctx context.Context, operation string, started time.Time, errp *error) {
	err := *errp
	uc.metrics.RecordQuery(ctx, operation, time.Since(started), err)

	// an empty range is an answer, not a failure
	if err != nil && !errors.IsNoMatchingRecordsError(err) {
		uc.logger.Error("Query failed",
			ports.F("operation", operation),
			ports.F("error", err))
	}
}

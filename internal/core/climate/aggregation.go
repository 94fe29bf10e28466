package climate

import (
	"context"
	"fmt"

	"climatestats.app/internal/ports"
	"climatestats.app/pkg/calendar"
	"climatestats.app/pkg/errors"
)

// AggregationEngine answers series and temperature statistic queries over a date range
type AggregationEngine struct{}

func NewAggregationEngine() *AggregationEngine {
	return &AggregationEngine{}
}

// RangeSeries returns every station's values of field inside dateRange,
// ordered by date then station.
func (e *AggregationEngine) RangeSeries(ctx context.Context, store ports.MeasurementStore, field Field, dateRange calendar.Range) ([]Observation, error) {
	return e.series(ctx, store, ports.SeriesFilter{Field: field, Range: dateRange})
}

// StationFilteredSeries is RangeSeries restricted to a single station
func (e *AggregationEngine) StationFilteredSeries(ctx context.Context, store ports.MeasurementStore, field Field, stationID string, dateRange calendar.Range) ([]Observation, error) {
	if stationID == "" {
		return nil, errors.NewValidationError("station id cannot be empty")
	}
	return e.series(ctx, store, ports.SeriesFilter{Field: field, StationID: stationID, Range: dateRange})
}

// TemperatureStats computes min, unweighted mean and max temperature over
// every record inside dateRange. An empty match is NO_MATCHING_RECORDS_ERROR,
// never a zero aggregate.
func (e *AggregationEngine) TemperatureStats(ctx context.Context, store ports.MeasurementStore, dateRange calendar.Range) (TemperatureAggregate, error) {
	if _, err := NewRange(dateRange.Start, dateRange.End); err != nil {
		return TemperatureAggregate{}, err
	}

	summary, err := store.SummarizeTemperature(ctx, dateRange)
	if err != nil {
		return TemperatureAggregate{}, fmt.Errorf("summarize temperature %s: %w", dateRange, err)
	}
	if summary.Count == 0 {
		return TemperatureAggregate{}, errors.NewNoMatchingRecordsError(
			fmt.Sprintf("no temperature observations in %s", dateRange))
	}

	return TemperatureAggregate{
		Min:   summary.Min,
		Avg:   summary.Avg,
		Max:   summary.Max,
		Count: summary.Count,
	}, nil
}

func (e *AggregationEngine) series(ctx context.Context, store ports.MeasurementStore, filter ports.SeriesFilter) ([]Observation, error) {
	if !filter.Field.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown measurement field %q", filter.Field))
	}
	if _, err := NewRange(filter.Range.Start, filter.Range.End); err != nil {
		return nil, err
	}

	points, err := store.Series(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("scan %s series %s: %w", filter.Field, filter.Range, err)
	}
	return toObservations(points), nil
}

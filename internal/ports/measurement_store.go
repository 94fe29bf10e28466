package ports

import (
	"context"

	"climatestats.app/pkg/calendar"
)

// MeasurementField names a per-day observed quantity
type MeasurementField string

const (
	FieldPrecipitation MeasurementField = "prcp"
	FieldTemperature   MeasurementField = "tobs"
)

// IsValid reports whether the field is one the store can scan
func (f MeasurementField) IsValid() bool {
	return f == FieldPrecipitation || f == FieldTemperature
}

// SeriesFilter selects measurements for a single field
type SeriesFilter struct {
	Field     MeasurementField
	StationID string // empty matches every station
	Range     calendar.Range
}

// SeriesPoint is one station's value for one date. Value is nil when the
// station recorded no value for the field on that date.
type SeriesPoint struct {
	StationID string
	Date      calendar.Date
	Value     *float64
}

// StationCount is the number of temperature observations recorded by a station
type StationCount struct {
	StationID string
	Count     int64
}

// TemperatureSummary is the raw aggregate returned by the store. Min, Avg and
// Max are meaningless when Count is zero.
type TemperatureSummary struct {
	Min   float64
	Avg   float64
	Max   float64
	Count int64
}

// StationData represents an observing station
type StationData struct {
	StationID string
	Name      string
	Latitude  float64
	Longitude float64
	Elevation float64
}

// MeasurementStore defines the read-only contract for the measurement dataset.
// Implementations return STORAGE_UNAVAILABLE_ERROR when the backend fails.
type MeasurementStore interface {
	// MaxDate returns the latest measurement date; ok is false for an empty dataset.
	MaxDate(ctx context.Context) (date calendar.Date, ok bool, err error)
	// CountTemperatureByStation counts non-null temperature observations per
	// station with date >= since, ordered by count descending then station ascending.
	CountTemperatureByStation(ctx context.Context, since calendar.Date) ([]StationCount, error)
	// Series returns the matching points ordered by date then station.
	Series(ctx context.Context, filter SeriesFilter) ([]SeriesPoint, error)
	// SummarizeTemperature aggregates non-null temperatures inside the range.
	SummarizeTemperature(ctx context.Context, dateRange calendar.Range) (TemperatureSummary, error)
	// ListStations returns every station in store order.
	ListStations(ctx context.Context) ([]StationData, error)
}

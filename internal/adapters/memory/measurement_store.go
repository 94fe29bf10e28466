// Package memory provides a MeasurementStore held entirely in memory, loaded
// from the CSV exports of the measurement and station tables.
package memory

import (
	"context"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"climatestats.app/internal/ports"
	"climatestats.app/pkg/calendar"
	"climatestats.app/pkg/errors"
)

// Measurement is one row of the measurement table
type Measurement struct {
	StationID     string
	Date          calendar.Date
	Precipitation *float64
	Temperature   *float64
}

// MeasurementStore implements ports.MeasurementStore over an immutable snapshot
type MeasurementStore struct {
	mu           sync.RWMutex
	measurements []Measurement // sorted by date, then station
	stations     []ports.StationData
}

// NewMeasurementStore copies the given rows into a new store
func NewMeasurementStore(measurements []Measurement, stations []ports.StationData) *MeasurementStore {
	rows := make([]Measurement, len(measurements))
	copy(rows, measurements)
	sort.SliceStable(rows, func(i, j int) bool {
		if c := rows[i].Date.Compare(rows[j].Date); c != 0 {
			return c < 0
		}
		return rows[i].StationID < rows[j].StationID
	})

	roster := make([]ports.StationData, len(stations))
	copy(roster, stations)

	return &MeasurementStore{
		measurements: rows,
		stations:     roster,
	}
}

// MaxDate returns the latest measurement date
func (s *MeasurementStore) MaxDate(ctx context.Context) (calendar.Date, bool, error) {
	if err := checkContext(ctx); err != nil {
		return calendar.Date{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.measurements) == 0 {
		return calendar.Date{}, false, nil
	}
	return s.measurements[len(s.measurements)-1].Date, true, nil
}

// CountTemperatureByStation counts non-null temperatures per station since the given date
func (s *MeasurementStore) CountTemperatureByStation(ctx context.Context, since calendar.Date) ([]ports.StationCount, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	counts := make(map[string]int64)
	for _, m := range s.measurements {
		if m.Temperature != nil && !m.Date.Before(since) {
			counts[m.StationID]++
		}
	}
	s.mu.RUnlock()

	result := make([]ports.StationCount, 0, len(counts))
	for station, count := range counts {
		result = append(result, ports.StationCount{StationID: station, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].StationID < result[j].StationID
	})
	return result, nil
}

// Series returns the matching points in date, station order
func (s *MeasurementStore) Series(ctx context.Context, filter ports.SeriesFilter) ([]ports.SeriesPoint, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if !filter.Field.IsValid() {
		return nil, errors.NewValidationError("unknown measurement field: " + string(filter.Field))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var points []ports.SeriesPoint
	for _, m := range s.measurements {
		if filter.StationID != "" && m.StationID != filter.StationID {
			continue
		}
		if !filter.Range.Contains(m.Date) {
			continue
		}
		points = append(points, ports.SeriesPoint{
			StationID: m.StationID,
			Date:      m.Date,
			Value:     m.value(filter.Field),
		})
	}
	return points, nil
}

// SummarizeTemperature computes min/mean/max of the non-null temperatures in range
func (s *MeasurementStore) SummarizeTemperature(ctx context.Context, dateRange calendar.Range) (ports.TemperatureSummary, error) {
	if err := checkContext(ctx); err != nil {
		return ports.TemperatureSummary{}, err
	}

	s.mu.RLock()
	var temps []float64
	for _, m := range s.measurements {
		if m.Temperature != nil && dateRange.Contains(m.Date) {
			temps = append(temps, *m.Temperature)
		}
	}
	s.mu.RUnlock()

	if len(temps) == 0 {
		return ports.TemperatureSummary{}, nil
	}
	return ports.TemperatureSummary{
		Min:   floats.Min(temps),
		Avg:   stat.Mean(temps, nil),
		Max:   floats.Max(temps),
		Count: int64(len(temps)),
	}, nil
}

// ListStations returns the stations in load order
func (s *MeasurementStore) ListStations(ctx context.Context) ([]ports.StationData, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stations := make([]ports.StationData, len(s.stations))
	copy(stations, s.stations)
	return stations, nil
}

// Ping reports whether the store can serve queries
func (s *MeasurementStore) Ping(ctx context.Context) error {
	return checkContext(ctx)
}

// Stats returns the number of loaded measurements and stations
func (s *MeasurementStore) Stats() (measurements, stations int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.measurements), len(s.stations)
}

func (m Measurement) value(field ports.MeasurementField) *float64 {
	if field == ports.FieldPrecipitation {
		return m.Precipitation
	}
	return m.Temperature
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.NewStorageUnavailableError("measurement store query aborted", err)
	}
	return nil
}

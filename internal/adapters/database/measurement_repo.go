package database

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"

	"climatestats.app/internal/ports"
	"climatestats.app/pkg/calendar"
	"climatestats.app/pkg/errors"
)

// MeasurementModel represents one row of the measurement table. Dates are
// stored as ISO text, so lexical comparison is chronological.
type MeasurementModel struct {
	ID      uint     `gorm:"primaryKey"`
	Station string   `gorm:"column:station;index"`
	Date    string   `gorm:"column:date;index"`
	Prcp    *float64 `gorm:"column:prcp"`
	Tobs    *float64 `gorm:"column:tobs"`
}

func (MeasurementModel) TableName() string {
	return "measurement"
}

// StationModel represents one row of the station table
type StationModel struct {
	ID        uint    `gorm:"primaryKey"`
	Station   string  `gorm:"column:station"`
	Name      string  `gorm:"column:name"`
	Latitude  float64 `gorm:"column:latitude"`
	Longitude float64 `gorm:"column:longitude"`
	Elevation float64 `gorm:"column:elevation"`
}

func (StationModel) TableName() string {
	return "station"
}

type stationCountRow struct {
	Station      string
	Observations int64
}

type seriesRow struct {
	Station string
	Date    string
	Value   *float64
}

// MeasurementRepositoryAdapter implements the MeasurementStore port using GORM.
// Every call runs on its own context-bound session from the shared pool.
type MeasurementRepositoryAdapter struct {
	db *gorm.DB
}

// NewMeasurementRepositoryAdapter creates a new measurement repository adapter
func NewMeasurementRepositoryAdapter(db *gorm.DB) *MeasurementRepositoryAdapter {
	return &MeasurementRepositoryAdapter{db: db}
}

// MaxDate returns the latest measurement date
func (r *MeasurementRepositoryAdapter) MaxDate(ctx context.Context) (calendar.Date, bool, error) {
	var latest sql.NullString
	row := r.db.WithContext(ctx).Model(&MeasurementModel{}).Select("MAX(date)").Row()
	if err := row.Scan(&latest); err != nil {
		return calendar.Date{}, false, errors.NewStorageUnavailableError("failed to query latest measurement date", err)
	}
	if !latest.Valid {
		return calendar.Date{}, false, nil
	}

	date, err := parseStoredDate(latest.String)
	if err != nil {
		return calendar.Date{}, false, err
	}
	return date, true, nil
}

// CountTemperatureByStation counts non-null temperatures per station since the given date
func (r *MeasurementRepositoryAdapter) CountTemperatureByStation(ctx context.Context, since calendar.Date) ([]ports.StationCount, error) {
	var rows []stationCountRow
	result := r.db.WithContext(ctx).
		Model(&MeasurementModel{}).
		Select("station, COUNT(tobs) AS observations").
		Where("date >= ? AND tobs IS NOT NULL", since.String()).
		Group("station").
		Order("observations DESC, station ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, errors.NewStorageUnavailableError("failed to count observations per station", result.Error)
	}

	counts := make([]ports.StationCount, len(rows))
	for i, row := range rows {
		counts[i] = ports.StationCount{StationID: row.Station, Count: row.Observations}
	}
	return counts, nil
}

// Series returns the matching points ordered by date then station
func (r *MeasurementRepositoryAdapter) Series(ctx context.Context, filter ports.SeriesFilter) ([]ports.SeriesPoint, error) {
	if !filter.Field.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown measurement field %q", filter.Field))
	}

	query := r.inRange(r.db.WithContext(ctx).Model(&MeasurementModel{}), filter.Range).
		Select(fmt.Sprintf("station, date, %s AS value", filter.Field))
	if filter.StationID != "" {
		query = query.Where("station = ?", filter.StationID)
	}

	var rows []seriesRow
	if err := query.Order("date ASC, station ASC").Scan(&rows).Error; err != nil {
		return nil, errors.NewStorageUnavailableError(fmt.Sprintf("failed to scan %s series", filter.Field), err)
	}

	points := make([]ports.SeriesPoint, len(rows))
	for i, row := range rows {
		date, err := parseStoredDate(row.Date)
		if err != nil {
			return nil, err
		}
		points[i] = ports.SeriesPoint{StationID: row.Station, Date: date, Value: row.Value}
	}
	return points, nil
}

// SummarizeTemperature aggregates non-null temperatures inside the range in SQL
func (r *MeasurementRepositoryAdapter) SummarizeTemperature(ctx context.Context, dateRange calendar.Range) (ports.TemperatureSummary, error) {
	var (
		minTobs, avgTobs, maxTobs sql.NullFloat64
		count                     int64
	)
	row := r.inRange(r.db.WithContext(ctx).Model(&MeasurementModel{}), dateRange).
		Select("MIN(tobs), AVG(tobs), MAX(tobs), COUNT(tobs)").
		Row()
	if err := row.Scan(&minTobs, &avgTobs, &maxTobs, &count); err != nil {
		return ports.TemperatureSummary{}, errors.NewStorageUnavailableError("failed to summarize temperature", err)
	}

	if count == 0 {
		return ports.TemperatureSummary{}, nil
	}
	return ports.TemperatureSummary{
		Min:   minTobs.Float64,
		Avg:   avgTobs.Float64,
		Max:   maxTobs.Float64,
		Count: count,
	}, nil
}

// ListStations returns every station in table order
func (r *MeasurementRepositoryAdapter) ListStations(ctx context.Context) ([]ports.StationData, error) {
	var models []StationModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, errors.NewStorageUnavailableError("failed to list stations", err)
	}

	stations := make([]ports.StationData, len(models))
	for i := range models {
		stations[i] = r.modelToData(&models[i])
	}
	return stations, nil
}

func (r *MeasurementRepositoryAdapter) inRange(query *gorm.DB, dateRange calendar.Range) *gorm.DB {
	query = query.Where("date >= ?", dateRange.Start.String())
	if dateRange.End != nil {
		query = query.Where("date <= ?", dateRange.End.String())
	}
	return query
}

func (r *MeasurementRepositoryAdapter) modelToData(model *StationModel) ports.StationData {
	return ports.StationData{
		StationID: model.Station,
		Name:      model.Name,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		Elevation: model.Elevation,
	}
}

func parseStoredDate(value string) (calendar.Date, error) {
	// some exports store a timestamp; the first ten characters are the date
	if len(value) > len(calendar.Layout) {
		value = value[:len(calendar.Layout)]
	}
	date, err := calendar.Parse(value)
	if err != nil {
		return calendar.Date{}, errors.NewStorageUnavailableError("measurement table holds a malformed date", err)
	}
	return date, nil
}

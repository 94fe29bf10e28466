package memory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"climatestats.app/internal/ports"
	"climatestats.app/pkg/calendar"
	"climatestats.app/pkg/errors"
)

var (
	measurementColumns = []string{"station", "date", "prcp", "tobs"}
	stationColumns     = []string{"station", "name", "latitude", "longitude", "elevation"}
)

// LoadCSV builds a store from the measurement and station CSV exports
func LoadCSV(measurementsPath, stationsPath string) (*MeasurementStore, error) {
	measurements, err := readFile(measurementsPath, ReadMeasurements)
	if err != nil {
		return nil, err
	}
	stations, err := readFile(stationsPath, ReadStations)
	if err != nil {
		return nil, err
	}
	return NewMeasurementStore(measurements, stations), nil
}

func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageUnavailableError("failed to open "+path, err)
	}
	defer f.Close()

	rows, err := read(f)
	if err != nil {
		return nil, errors.NewStorageUnavailableError("failed to load "+path, err)
	}
	return rows, nil
}

// ReadMeasurements parses station,date,prcp,tobs rows. Empty prcp or tobs cells are nulls.
func ReadMeasurements(r io.Reader) ([]Measurement, error) {
	reader := csv.NewReader(r)
	columns, err := readHeader(reader, measurementColumns)
	if err != nil {
		return nil, err
	}

	var rows []Measurement
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		date, err := calendar.Parse(record[columns["date"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		prcp, err := parseNullable(record[columns["prcp"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: prcp: %w", line, err)
		}
		tobs, err := parseNullable(record[columns["tobs"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: tobs: %w", line, err)
		}

		rows = append(rows, Measurement{
			StationID:     record[columns["station"]],
			Date:          date,
			Precipitation: prcp,
			Temperature:   tobs,
		})
	}
	return rows, nil
}

// ReadStations parses station,name,latitude,longitude,elevation rows
func ReadStations(r io.Reader) ([]ports.StationData, error) {
	reader := csv.NewReader(r)
	columns, err := readHeader(reader, stationColumns)
	if err != nil {
		return nil, err
	}

	var rows []ports.StationData
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		var coords [3]float64
		for i, name := range []string{"latitude", "longitude", "elevation"} {
			v, err := strconv.ParseFloat(strings.TrimSpace(record[columns[name]]), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %s: %w", line, name, err)
			}
			coords[i] = v
		}

		rows = append(rows, ports.StationData{
			StationID: record[columns["station"]],
			Name:      record[columns["name"]],
			Latitude:  coords[0],
			Longitude: coords[1],
			Elevation: coords[2],
		})
	}
	return rows, nil
}

func readHeader(reader *csv.Reader, required []string) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return columns, nil
}

func parseNullable(value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

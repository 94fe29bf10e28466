package climate

import (
	"fmt"

	"climatestats.app/internal/ports"
	"climatestats.app/pkg/calendar"
	"climatestats.app/pkg/errors"
)

// WindowDays is the lookback length of the "last 12 months" window. Leap
// years are not special-cased.
const WindowDays = 365

// DateWindow is the lookback window anchored at the latest measurement date
type DateWindow struct {
	Start calendar.Date
	End   calendar.Date
}

// Range returns the window as an open range starting at Start. The upper
// bound is the natural data ceiling, which equals End when the window was
// just resolved.
func (w DateWindow) Range() calendar.Range {
	return calendar.Since(w.Start)
}

func (w DateWindow) String() string {
	return fmt.Sprintf("%s..%s", w.Start, w.End)
}

// ActiveStation is the station with the most temperature observations in the window
type ActiveStation struct {
	StationID string
	Count     int64
}

// Observation is one dated value of a series
type Observation struct {
	StationID string
	Date      calendar.Date
	Value     *float64
}

// TemperatureAggregate is a min/avg/max summary over temperature readings
type TemperatureAggregate struct {
	Min   float64
	Avg   float64
	Max   float64
	Count int64
}

// IsValid checks the ordering invariant of the aggregate
func (a TemperatureAggregate) IsValid() error {
	if a.Count <= 0 {
		return fmt.Errorf("aggregate has no readings")
	}
	if a.Min > a.Avg || a.Avg > a.Max {
		return fmt.Errorf("aggregate out of order: min=%v avg=%v max=%v", a.Min, a.Avg, a.Max)
	}
	return nil
}

// Field is the observed quantity a series is built from
type Field = ports.MeasurementField

const (
	Precipitation = ports.FieldPrecipitation
	Temperature   = ports.FieldTemperature
)

// ParseDate parses a client-supplied ISO date, failing with INVALID_DATE_ERROR
func ParseDate(value string) (calendar.Date, error) {
	d, err := calendar.Parse(value)
	if err != nil {
		return calendar.Date{}, errors.NewInvalidDateError(
			fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value), err)
	}
	return d, nil
}

// ParseRange parses a start date and an optional end date. An empty end
// leaves the range open. An end before the start is an INVALID_DATE_ERROR.
func ParseRange(start, end string) (calendar.Range, error) {
	from, err := ParseDate(start)
	if err != nil {
		return calendar.Range{}, err
	}
	if end == "" {
		return calendar.Since(from), nil
	}

	to, err := ParseDate(end)
	if err != nil {
		return calendar.Range{}, err
	}
	return NewRange(from, &to)
}

// NewRange builds a range from already-parsed bounds
func NewRange(from calendar.Date, to *calendar.Date) (calendar.Range, error) {
	if from.IsZero() {
		return calendar.Range{}, errors.NewInvalidDateError("start date is required", nil)
	}
	r := calendar.Range{Start: from, End: to}
	if r.Inverted() {
		return calendar.Range{}, errors.NewInvalidDateError(
			fmt.Sprintf("end date %s is before start date %s", to, from), nil)
	}
	return r, nil
}

func toObservations(points []ports.SeriesPoint) []Observation {
	observations := make([]Observation, len(points))
	for i, p := range points {
		observations[i] = Observation{
			StationID: p.StationID,
			Date:      p.Date,
			Value:     p.Value,
		}
	}
	return observations
}

package climate

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"climatestats.app/internal/mocks"
	"climatestats.app/internal/ports"
	"climatestats.app/pkg/calendar"
	"climatestats.app/pkg/errors"
)

func TestAggregationEngine_TemperatureStats(t *testing.T) {
	january := calendar.Between(calendar.MustParse("2017-01-01"), calendar.MustParse("2017-01-31"))

	store := mocks.NewMeasurementStore(t)
	store.EXPECT().SummarizeTemperature(mock.Anything, january).
		Return(ports.TemperatureSummary{Min: 10, Avg: 20, Max: 30, Count: 3}, nil).Once()

	aggregate, err := NewAggregationEngine().TemperatureStats(context.Background(), store, january)

	require.NoError(t, err)
	assert.Equal(t, TemperatureAggregate{Min: 10, Avg: 20, Max: 30, Count: 3}, aggregate)
	assert.NoError(t, aggregate.IsValid())
}

func TestAggregationEngine_TemperatureStatsNoMatch(t *testing.T) {
	future := calendar.Between(calendar.MustParse("2099-01-01"), calendar.MustParse("2099-01-02"))

	store := mocks.NewMeasurementStore(t)
	store.EXPECT().SummarizeTemperature(mock.Anything, future).Return(ports.TemperatureSummary{}, nil).Once()

	_, err := NewAggregationEngine().TemperatureStats(context.Background(), store, future)

	assert.True(t, errors.IsNoMatchingRecordsError(err))
}

func TestAggregationEngine_RejectsBadRanges(t *testing.T) {
	end := calendar.MustParse("2017-01-01")
	tests := []struct {
		name  string
		r     calendar.Range
		check func(error) bool
	}{
		{"Inverted", calendar.Range{Start: calendar.MustParse("2017-02-01"), End: &end}, errors.IsInvalidDateError},
		{"MissingStart", calendar.Range{}, errors.IsInvalidDateError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the store must not be consulted
			store := mocks.NewMeasurementStore(t)
			engine := NewAggregationEngine()

			_, err := engine.TemperatureStats(context.Background(), store, tt.r)
			assert.True(t, tt.check(err))

			_, err = engine.RangeSeries(context.Background(), store, Precipitation, tt.r)
			assert.True(t, tt.check(err))
		})
	}
}

func TestAggregationEngine_StorageFailure(t *testing.T) {
	r := calendar.Since(calendar.MustParse("2017-01-01"))

	store := mocks.NewMeasurementStore(t)
	store.EXPECT().SummarizeTemperature(mock.Anything, r).
		Return(ports.TemperatureSummary{}, errors.NewStorageUnavailableError("query failed", fmt.Errorf("no such table: measurement"))).Once()

	_, err := NewAggregationEngine().TemperatureStats(context.Background(), store, r)

	assert.True(t, errors.IsStorageUnavailableError(err))
}

func TestAggregationEngine_StationFilteredSeries(t *testing.T) {
	r := calendar.Since(calendar.MustParse("2016-08-23"))
	value := 77.0

	store := mocks.NewMeasurementStore(t)
	store.EXPECT().Series(mock.Anything, ports.SeriesFilter{Field: Temperature, StationID: "USC00519281", Range: r}).
		Return([]ports.SeriesPoint{
			{StationID: "USC00519281", Date: calendar.MustParse("2016-08-23"), Value: &value},
		}, nil).Once()

	engine := NewAggregationEngine()
	observations, err := engine.StationFilteredSeries(context.Background(), store, Temperature, "USC00519281", r)

	require.NoError(t, err)
	require.Len(t, observations, 1)
	assert.Equal(t, "USC00519281", observations[0].StationID)
	assert.Equal(t, 77.0, *observations[0].Value)

	_, err = engine.StationFilteredSeries(context.Background(), store, Temperature, "", r)
	assert.True(t, errors.IsValidationError(err))
}

func TestAggregationEngine_UnknownField(t *testing.T) {
	store := mocks.NewMeasurementStore(t)

	_, err := NewAggregationEngine().RangeSeries(context.Background(), store, Field("wind"), calendar.Since(calendar.MustParse("2017-01-01")))

	assert.True(t, errors.IsValidationError(err))
}

func TestTemperatureAggregate_IsValid(t *testing.T) {
	assert.NoError(t, TemperatureAggregate{Min: 53, Avg: 73.1, Max: 87, Count: 19550}.IsValid())
	assert.Error(t, TemperatureAggregate{Min: 10, Avg: 5, Max: 30, Count: 3}.IsValid())
	assert.Error(t, TemperatureAggregate{}.IsValid())
}

package climate

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"climatestats.app/internal/adapters/memory"
	"climatestats.app/internal/mocks"
	"climatestats.app/internal/ports"
	"climatestats.app/pkg/calendar"
	"climatestats.app/pkg/errors"
)

func allowLogging(logger *mocks.Logger) {
	for arity := 0; arity <= 5; arity++ {
		fields := make([]interface{}, arity)
		for i := range fields {
			fields[i] = mock.Anything
		}
		logger.EXPECT().Debug(mock.Anything, fields...).Maybe()
		logger.EXPECT().Info(mock.Anything, fields...).Maybe()
		logger.EXPECT().Warn(mock.Anything, fields...).Maybe()
		logger.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
}

func allowMetrics(metrics *mocks.MetricsCollector) {
	metrics.EXPECT().RecordQuery(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().RecordActiveStationLookup(mock.Anything, mock.Anything).Maybe()
}

func newTestUseCase(t *testing.T, store ports.MeasurementStore) *UseCase {
	t.Helper()

	logger := mocks.NewLogger(t)
	allowLogging(logger)
	metrics := mocks.NewMetricsCollector(t)
	allowMetrics(metrics)

	uc, err := NewUseCase(UseCaseDependencies{
		Store:         store,
		ActiveStation: NewActiveStationResolver(metrics),
		Logger:        logger,
		Metrics:       metrics,
	})
	require.NoError(t, err)
	return uc
}

func f(v float64) *float64 {
	return &v
}

// yearOfData holds one reading per day from 2016-08-23 to 2017-08-23 for
// USC00519281, every other day for USC00519397, and a few stale readings from
// before the window for USC00513117.
func yearOfData() *memory.MeasurementStore {
	var rows []memory.Measurement
	first := calendar.MustParse("2016-08-23")
	for i := 0; i <= WindowDays; i++ {
		day := first.AddDays(i)
		rows = append(rows, memory.Measurement{
			StationID: "USC00519281", Date: day,
			Precipitation: f(0.1), Temperature: f(float64(60 + i%20)),
		})
		if i%2 == 0 {
			rows = append(rows, memory.Measurement{
				StationID: "USC00519397", Date: day,
				Precipitation: f(0.2), Temperature: f(70),
			})
		}
	}
	for i := 1; i <= 400; i++ {
		rows = append(rows, memory.Measurement{
			StationID: "USC00513117", Date: first.AddDays(-i),
			Precipitation: f(5), Temperature: f(50),
		})
	}

	stations := []ports.StationData{
		{StationID: "USC00519397", Name: "WAIKIKI 717.2, HI US"},
		{StationID: "USC00513117", Name: "KANEOHE 838.1, HI US"},
		{StationID: "USC00519281", Name: "WAIHEE 837.5, HI US"},
	}
	return memory.NewMeasurementStore(rows, stations)
}

func TestNewUseCase_RequiresDependencies(t *testing.T) {
	logger := mocks.NewLogger(t)
	metrics := mocks.NewMetricsCollector(t)
	store := mocks.NewMeasurementStore(t)
	resolver := NewActiveStationResolver(nil)

	tests := []struct {
		name string
		deps UseCaseDependencies
	}{
		{"NoStore", UseCaseDependencies{ActiveStation: resolver, Logger: logger, Metrics: metrics}},
		{"NoResolver", UseCaseDependencies{Store: store, Logger: logger, Metrics: metrics}},
		{"NoLogger", UseCaseDependencies{Store: store, ActiveStation: resolver, Metrics: metrics}},
		{"NoMetrics", UseCaseDependencies{Store: store, ActiveStation: resolver, Logger: logger}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, err := NewUseCase(tt.deps)
			assert.Nil(t, uc)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestUseCase_PrecipitationFeed(t *testing.T) {
	uc := newTestUseCase(t, yearOfData())

	feed, err := uc.PrecipitationFeed(context.Background())

	require.NoError(t, err)
	assert.Len(t, feed, WindowDays+1)
	for date := range feed {
		assert.False(t, date.Before(calendar.MustParse("2016-08-23")), "date %s outside window", date)
	}
	// USC00519397 sorts after USC00519281 and overwrites its value
	assert.Equal(t, 0.2, *feed[calendar.MustParse("2016-08-23")])
	assert.Equal(t, 0.1, *feed[calendar.MustParse("2016-08-24")])
}

func TestUseCase_PrecipitationFeedKeepsNulls(t *testing.T) {
	store := memory.NewMeasurementStore([]memory.Measurement{
		{StationID: "USC00519281", Date: calendar.MustParse("2017-08-22"), Temperature: f(80)},
		{StationID: "USC00519281", Date: calendar.MustParse("2017-08-23"), Precipitation: f(0), Temperature: f(81)},
	}, nil)
	uc := newTestUseCase(t, store)

	feed, err := uc.PrecipitationFeed(context.Background())

	require.NoError(t, err)
	require.Contains(t, feed, calendar.MustParse("2017-08-22"))
	assert.Nil(t, feed[calendar.MustParse("2017-08-22")])
	assert.Equal(t, 0.0, *feed[calendar.MustParse("2017-08-23")])
}

func TestUseCase_PrecipitationByStation(t *testing.T) {
	uc := newTestUseCase(t, yearOfData())

	feed, err := uc.PrecipitationByStation(context.Background())

	require.NoError(t, err)
	first := feed[calendar.MustParse("2016-08-23")]
	assert.Equal(t, map[string]*float64{"USC00519281": f(0.1), "USC00519397": f(0.2)}, first)
	assert.Len(t, feed[calendar.MustParse("2016-08-24")], 1)
	assert.NotContains(t, feed, calendar.MustParse("2016-08-22"))
}

func TestUseCase_StationRoster(t *testing.T) {
	uc := newTestUseCase(t, yearOfData())

	roster, err := uc.StationRoster(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"USC00519397", "USC00513117", "USC00519281"}, roster)
}

func TestUseCase_MostActiveStationTemperatureFeed(t *testing.T) {
	uc := newTestUseCase(t, yearOfData())

	observations, err := uc.MostActiveStationTemperatureFeed(context.Background())

	require.NoError(t, err)
	assert.Len(t, observations, WindowDays+1)
	for i, o := range observations {
		assert.Equal(t, "USC00519281", o.StationID)
		if i > 0 {
			assert.True(t, observations[i-1].Date.Before(o.Date))
		}
	}
	assert.Equal(t, calendar.MustParse("2016-08-23"), observations[0].Date)
	assert.Equal(t, calendar.MustParse("2017-08-23"), observations[len(observations)-1].Date)
}

func TestUseCase_MostActiveStationTemperatureFeedConcurrent(t *testing.T) {
	uc := newTestUseCase(t, yearOfData())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			observations, err := uc.MostActiveStationTemperatureFeed(context.Background())
			assert.NoError(t, err)
			assert.Len(t, observations, WindowDays+1)
		}()
	}
	wg.Wait()

	station, ok := uc.activeStation.Cached()
	assert.True(t, ok)
	assert.Equal(t, "USC00519281", station.StationID)
}

func TestUseCase_RangeTemperatureStats(t *testing.T) {
	store := memory.NewMeasurementStore([]memory.Measurement{
		{StationID: "USC00519281", Date: calendar.MustParse("2017-01-01"), Temperature: f(10)},
		{StationID: "USC00519397", Date: calendar.MustParse("2017-01-02"), Temperature: f(20)},
		{StationID: "USC00519281", Date: calendar.MustParse("2017-01-03"), Temperature: f(30)},
		{StationID: "USC00519281", Date: calendar.MustParse("2017-01-04")},
	}, nil)
	uc := newTestUseCase(t, store)
	ctx := context.Background()

	aggregate, err := uc.RangeTemperatureStats(ctx, calendar.Since(calendar.MustParse("2017-01-01")))
	require.NoError(t, err)
	assert.Equal(t, TemperatureAggregate{Min: 10, Avg: 20, Max: 30, Count: 3}, aggregate)

	closed, err := uc.RangeTemperatureStats(ctx, calendar.Between(calendar.MustParse("2017-01-01"), calendar.MustParse("2017-01-04")))
	require.NoError(t, err)
	assert.Equal(t, aggregate, closed)

	single, err := uc.RangeTemperatureStats(ctx, calendar.Between(calendar.MustParse("2017-01-02"), calendar.MustParse("2017-01-02")))
	require.NoError(t, err)
	assert.Equal(t, TemperatureAggregate{Min: 20, Avg: 20, Max: 20, Count: 1}, single)

	_, err = uc.RangeTemperatureStats(ctx, calendar.Between(calendar.MustParse("2099-01-01"), calendar.MustParse("2099-01-02")))
	assert.True(t, errors.IsNoMatchingRecordsError(err))
}

func TestUseCase_RangeTemperatureStatsOrdering(t *testing.T) {
	uc := newTestUseCase(t, yearOfData())
	ctx := context.Background()

	starts := []string{"2015-07-01", "2016-08-23", "2016-12-25", "2017-06-01", "2017-08-23"}
	for _, s := range starts {
		t.Run(s, func(t *testing.T) {
			aggregate, err := uc.RangeTemperatureStats(ctx, calendar.Since(calendar.MustParse(s)))
			require.NoError(t, err)
			assert.NoError(t, aggregate.IsValid())
		})
	}
}

func TestUseCase_EmptyDataset(t *testing.T) {
	uc := newTestUseCase(t, memory.NewMeasurementStore(nil, nil))
	ctx := context.Background()

	_, err := uc.PrecipitationFeed(ctx)
	assert.True(t, errors.IsEmptyDatasetError(err))

	_, err = uc.MostActiveStationTemperatureFeed(ctx)
	assert.True(t, errors.IsEmptyDatasetError(err))

	assert.True(t, errors.IsEmptyDatasetError(uc.WarmUp(ctx)))

	roster, err := uc.StationRoster(ctx)
	require.NoError(t, err)
	assert.Empty(t, roster)
}

func TestUseCase_WarmUpPopulatesCache(t *testing.T) {
	uc := newTestUseCase(t, yearOfData())

	require.NoError(t, uc.WarmUp(context.Background()))

	station, ok := uc.activeStation.Cached()
	assert.True(t, ok)
	assert.Equal(t, ActiveStation{StationID: "USC00519281", Count: WindowDays + 1}, station)
}

func TestUseCase_RecordsQueryMetrics(t *testing.T) {
	store := mocks.NewMeasurementStore(t)
	store.EXPECT().ListStations(mock.Anything).Return([]ports.StationData{{StationID: "USC00519281"}}, nil).Once()

	logger := mocks.NewLogger(t)
	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordQuery(mock.Anything, OpStationRoster, mock.Anything, nil).Return().Once()

	uc, err := NewUseCase(UseCaseDependencies{
		Store:         store,
		ActiveStation: NewActiveStationResolver(nil),
		Logger:        logger,
		Metrics:       metrics,
	})
	require.NoError(t, err)

	roster, err := uc.StationRoster(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"USC00519281"}, roster)
}

func TestUseCase_LogsStorageFailures(t *testing.T) {
	failure := errors.NewStorageUnavailableError("query failed", nil)

	store := mocks.NewMeasurementStore(t)
	store.EXPECT().ListStations(mock.Anything).Return(nil, failure).Once()

	logger := mocks.NewLogger(t)
	logger.EXPECT().Error("Query failed", mock.Anything, mock.Anything).Return().Once()
	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordQuery(mock.Anything, OpStationRoster, mock.Anything, failure).Return().Once()

	uc, err := NewUseCase(UseCaseDependencies{
		Store:         store,
		ActiveStation: NewActiveStationResolver(nil),
		Logger:        logger,
		Metrics:       metrics,
	})
	require.NoError(t, err)

	_, err = uc.StationRoster(context.Background())
	assert.True(t, errors.IsStorageUnavailableError(err))
}

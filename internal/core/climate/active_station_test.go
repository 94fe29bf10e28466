package climate

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"climatestats.app/internal/mocks"
	"climatestats.app/internal/ports"
	"climatestats.app/pkg/calendar"
	"climatestats.app/pkg/errors"
)

var testWindow = DateWindow{
	Start: calendar.MustParse("2016-08-23"),
	End:   calendar.MustParse("2017-08-23"),
}

func TestActiveStationResolver_PicksHighestCount(t *testing.T) {
	store := mocks.NewMeasurementStore(t)
	store.EXPECT().CountTemperatureByStation(mock.Anything, testWindow.Start).Return([]ports.StationCount{
		{StationID: "USC00519281", Count: 352},
		{StationID: "USC00519397", Count: 349},
		{StationID: "USC00516128", Count: 349},
	}, nil).Once()

	station, err := NewActiveStationResolver(nil).Resolve(context.Background(), store, testWindow)

	require.NoError(t, err)
	assert.Equal(t, ActiveStation{StationID: "USC00519281", Count: 352}, station)
}

func TestActiveStationResolver_TieBreakSmallestID(t *testing.T) {
	store := mocks.NewMeasurementStore(t)
	store.EXPECT().CountTemperatureByStation(mock.Anything, testWindow.Start).Return([]ports.StationCount{
		{StationID: "USC00519397", Count: 10},
		{StationID: "USC00513117", Count: 10},
		{StationID: "USC00517948", Count: 0},
	}, nil).Once()

	station, err := NewActiveStationResolver(nil).Resolve(context.Background(), store, testWindow)

	require.NoError(t, err)
	assert.Equal(t, "USC00513117", station.StationID)
}

func TestActiveStationResolver_CachedAfterFirstSuccess(t *testing.T) {
	store := mocks.NewMeasurementStore(t)
	store.EXPECT().CountTemperatureByStation(mock.Anything, testWindow.Start).Return([]ports.StationCount{
		{StationID: "USC00519281", Count: 352},
	}, nil).Once()

	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordActiveStationLookup(mock.Anything, false).Return().Once()
	metrics.EXPECT().RecordActiveStationLookup(mock.Anything, true).Return().Twice()

	resolver := NewActiveStationResolver(metrics)
	_, cached := resolver.Cached()
	assert.False(t, cached)

	first, err := resolver.Resolve(context.Background(), store, testWindow)
	require.NoError(t, err)

	// a different window must not trigger recomputation
	later := DateWindow{Start: calendar.MustParse("2017-01-01"), End: calendar.MustParse("2018-01-01")}
	for i := 0; i < 2; i++ {
		again, err := resolver.Resolve(context.Background(), store, later)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	cachedStation, cached := resolver.Cached()
	assert.True(t, cached)
	assert.Equal(t, first, cachedStation)
}

func TestActiveStationResolver_ConcurrentFirstCallsShareOneQuery(t *testing.T) {
	store := mocks.NewMeasurementStore(t)
	store.EXPECT().CountTemperatureByStation(mock.Anything, testWindow.Start).
		RunAndReturn(func(context.Context, calendar.Date) ([]ports.StationCount, error) {
			time.Sleep(20 * time.Millisecond)
			return []ports.StationCount{{StationID: "USC00519281", Count: 352}}, nil
		}).Once()

	const callers = 16

	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordActiveStationLookup(mock.Anything, false).Return().Once()
	metrics.EXPECT().RecordActiveStationLookup(mock.Anything, true).Return().Times(callers - 1)

	resolver := NewActiveStationResolver(metrics)
	results := make([]ActiveStation, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = resolver.Resolve(context.Background(), store, testWindow)
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "USC00519281", results[i].StationID)
	}
}

func TestActiveStationResolver_CancelledFirstCallerDoesNotFailOthers(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	store := mocks.NewMeasurementStore(t)
	store.EXPECT().CountTemperatureByStation(mock.Anything, testWindow.Start).
		RunAndReturn(func(ctx context.Context, _ calendar.Date) ([]ports.StationCount, error) {
			close(started)
			<-release
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return []ports.StationCount{{StationID: "USC00519281", Count: 352}}, nil
		}).Once()

	resolver := NewActiveStationResolver(nil)

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := resolver.Resolve(ctx, store, testWindow)
		firstErr <- err
	}()

	<-started
	cancel()

	secondDone := make(chan struct{})
	var second ActiveStation
	var secondErr error
	go func() {
		defer close(secondDone)
		second, secondErr = resolver.Resolve(context.Background(), store, testWindow)
	}()

	time.Sleep(10 * time.Millisecond)
	close(release)
	<-secondDone

	require.NoError(t, secondErr)
	assert.Equal(t, "USC00519281", second.StationID)
	assert.NoError(t, <-firstErr)

	_, cached := resolver.Cached()
	assert.True(t, cached)
}

func TestActiveStationResolver_FailureIsNotCached(t *testing.T) {
	store := mocks.NewMeasurementStore(t)
	store.EXPECT().CountTemperatureByStation(mock.Anything, testWindow.Start).
		Return(nil, errors.NewStorageUnavailableError("query failed", fmt.Errorf("database is locked"))).Once()
	store.EXPECT().CountTemperatureByStation(mock.Anything, testWindow.Start).
		Return([]ports.StationCount{{StationID: "USC00519281", Count: 352}}, nil).Once()

	resolver := NewActiveStationResolver(nil)

	_, err := resolver.Resolve(context.Background(), store, testWindow)
	assert.True(t, errors.IsStorageUnavailableError(err))
	_, cached := resolver.Cached()
	assert.False(t, cached)

	station, err := resolver.Resolve(context.Background(), store, testWindow)
	require.NoError(t, err)
	assert.Equal(t, "USC00519281", station.StationID)
}

func TestActiveStationResolver_NoObservations(t *testing.T) {
	tests := []struct {
		name   string
		counts []ports.StationCount
	}{
		{"NoRows", nil},
		{"OnlyZeroCounts", []ports.StationCount{{StationID: "USC00519281", Count: 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMeasurementStore(t)
			store.EXPECT().CountTemperatureByStation(mock.Anything, testWindow.Start).Return(tt.counts, nil).Once()

			_, err := NewActiveStationResolver(nil).Resolve(context.Background(), store, testWindow)

			assert.True(t, errors.IsEmptyDatasetError(err))
		})
	}
}

package climate

import (
	"context"
	"fmt"

	"climatestats.app/internal/ports"
	"climatestats.app/pkg/errors"
)

// WindowResolver derives the 365-day lookback window from the latest measurement date
type WindowResolver struct{}

func NewWindowResolver() *WindowResolver {
	return &WindowResolver{}
}

// Resolve returns [max_date - 365d, max_date]. It fails with
// EMPTY_DATASET_ERROR when the store holds no measurements.
func (r *WindowResolver) Resolve(ctx context.Context, store ports.MeasurementStore) (DateWindow, error) {
	latest, ok, err := store.MaxDate(ctx)
	if err != nil {
		return DateWindow{}, fmt.Errorf("query latest measurement date: %w", err)
	}
	if !ok {
		return DateWindow{}, errors.NewEmptyDatasetError("no measurements to anchor the date window")
	}

	return DateWindow{
		Start: latest.AddDays(-WindowDays),
		End:   latest,
	}, nil
}

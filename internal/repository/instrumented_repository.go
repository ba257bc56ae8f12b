package repository

import (
	"context"
	"errors"
	"time"

	"github.com/prajwalbharadwajbm/campaignconsole/internal/metrics"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/store"
)

// InstrumentedRepository wraps a record repository with metrics collection
type InstrumentedRepository struct {
	next    store.RecordRepository
	backend string
	metrics *metrics.Metrics
}

// NewInstrumentedRepository creates a new instrumented repository; backend labels the metrics
func NewInstrumentedRepository(repo store.RecordRepository, backend string, metrics *metrics.Metrics) store.RecordRepository {
	return &InstrumentedRepository{
		next:    repo,
		backend: backend,
		metrics: metrics,
	}
}

// GetRecord implements store.RecordRepository with metrics
func (r *InstrumentedRepository) GetRecord(ctx context.Context, key string) (data []byte, err error) {
	defer func(begin time.Time) {
		r.metrics.RecordStorageOperation("get", r.backend, time.Since(begin).Seconds())

		// a missing record is an expected outcome on first start
		if err != nil && !errors.Is(err, store.ErrRecordNotFound) {
			r.metrics.RecordStorageError("get", r.backend, errorType(err))
		}
	}(time.Now())

	data, err = r.next.GetRecord(ctx, key)
	return
}

// PutRecord implements store.RecordRepository with metrics
func (r *InstrumentedRepository) PutRecord(ctx context.Context, key string, data []byte) (err error) {
	defer func(begin time.Time) {
		r.metrics.RecordStorageOperation("put", r.backend, time.Since(begin).Seconds())
		if err != nil {
			r.metrics.RecordStorageError("put", r.backend, errorType(err))
		}
	}(time.Now())

	err = r.next.PutRecord(ctx, key, data)
	return
}

func errorType(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "backend_error"
	}
}

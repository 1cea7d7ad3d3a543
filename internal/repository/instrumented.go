package repository

import (
	"context"
	"errors"
	"time"

	"hospital-registry/internal/domain/entity"
	"hospital-registry/internal/domain/query"
	domainRepo "hospital-registry/internal/domain/repository"
	"hospital-registry/internal/infrastructure/metrics"
)

// Instrumented records count, latency and outcome of every call made to the wrapped store.
type Instrumented[T any] struct {
	next    domainRepo.RecordRepository[T]
	entity  string
	metrics *metrics.StoreMetrics
}

func NewInstrumented[T any](next domainRepo.RecordRepository[T], entityName string, m *metrics.StoreMetrics) domainRepo.RecordRepository[T] {
	if m == nil {
		return next
	}
	return &Instrumented[T]{next: next, entity: entityName, metrics: m}
}

func (r *Instrumented[T]) FindAll(ctx context.Context) ([]T, error) {
	start := time.Now()
	records, err := r.next.FindAll(ctx)
	r.observe("find_all", start, err)
	return records, err
}

func (r *Instrumented[T]) FindByID(ctx context.Context, id int) (*T, error) {
	start := time.Now()
	record, err := r.next.FindByID(ctx, id)
	if err == nil && record == nil {
		r.metrics.ObserveOperation(r.entity, "find_by_id", metrics.OutcomeNotFound, time.Since(start).Seconds())
		return nil, nil
	}
	r.observe("find_by_id", start, err)
	return record, err
}

func (r *Instrumented[T]) FindWhere(ctx context.Context, q query.Query) ([]T, error) {
	start := time.Now()
	records, err := r.next.FindWhere(ctx, q)
	r.observe("find_where", start, err)
	return records, err
}

func (r *Instrumented[T]) Create(ctx context.Context, records ...T) (*domainRepo.BatchResult[T], error) {
	start := time.Now()
	result, err := r.next.Create(ctx, records...)
	r.observe("create", start, err)
	if err == nil && result != nil {
		r.metrics.ObserveBatchFailures(r.entity, len(result.Failures))
	}
	return result, err
}

func (r *Instrumented[T]) Update(ctx context.Context, id int, fields entity.Fields) (*T, error) {
	start := time.Now()
	record, err := r.next.Update(ctx, id, fields)
	if err == nil && record == nil {
		r.metrics.ObserveOperation(r.entity, "update", metrics.OutcomeNotFound, time.Since(start).Seconds())
		return nil, nil
	}
	r.observe("update", start, err)
	return record, err
}

func (r *Instrumented[T]) Delete(ctx context.Context, id int) (bool, error) {
	start := time.Now()
	deleted, err := r.next.Delete(ctx, id)
	if err == nil && !deleted {
		r.metrics.ObserveOperation(r.entity, "delete", metrics.OutcomeNotFound, time.Since(start).Seconds())
		return false, nil
	}
	r.observe("delete", start, err)
	return deleted, err
}

func (r *Instrumented[T]) observe(operation string, start time.Time, err error) {
	r.metrics.ObserveOperation(r.entity, operation, outcome(err), time.Since(start).Seconds())
}

func outcome(err error) string {
	var validationErr *domainRepo.ValidationError
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, domainRepo.ErrRecordNotFound):
		return metrics.OutcomeNotFound
	case errors.As(err, &validationErr):
		return metrics.OutcomeInvalid
	case errors.Is(err, domainRepo.ErrTransportUnavailable):
		return metrics.OutcomeUnavailable
	}
	return metrics.OutcomeError
}

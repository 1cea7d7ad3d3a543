// Package memory implements the record store contract over in-process slices seeded
// from static fixtures.
package memory

import (
	"context"
	"sync"

	"hospital-registry/internal/domain/entity"
	"hospital-registry/internal/domain/query"
	domainRepo "hospital-registry/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// Table holds one entity type's records in insertion order. The mutex is held for the
// whole of each read or write so concurrent callers observe whole operations.
type Table[T any, PT entity.Record[T]] struct {
	mu      sync.Mutex
	records []T
	nextID  int
	latency Latency
	log     *logrus.Logger
}

// NewTable copies seed into a new table. Identifiers continue from the highest seeded id
// and are never handed out twice, even after deletes.
func NewTable[T any, PT entity.Record[T]](seed []T, latency Latency, log *logrus.Logger) *Table[T, PT] {
	records := make([]T, len(seed))
	copy(records, seed)

	maxID := 0
	for i := range records {
		if id := PT(&records[i]).GetID(); id > maxID {
			maxID = id
		}
	}

	return &Table[T, PT]{
		records: records,
		nextID:  maxID + 1,
		latency: latency,
		log:     log,
	}
}

var _ domainRepo.RecordRepository[entity.Patient] = (*Table[entity.Patient, *entity.Patient])(nil)

func (t *Table[T, PT]) FindAll(ctx context.Context) ([]T, error) {
	if err := sleep(ctx, t.latency.FindAll); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	records := make([]T, len(t.records))
	copy(records, t.records)
	return records, nil
}

func (t *Table[T, PT]) FindByID(ctx context.Context, id int) (*T, error) {
	if err := sleep(ctx, t.latency.FindByID); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.indexOf(id)
	if idx == -1 {
		return nil, nil
	}
	record := t.records[idx]
	return &record, nil
}

func (t *Table[T, PT]) FindWhere(ctx context.Context, q query.Query) ([]T, error) {
	if err := sleep(ctx, t.latency.FindWhere); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	records := []T{}
	for i := range t.records {
		fields, err := entity.ToFields(&t.records[i])
		if err != nil {
			return nil, err
		}
		if q.Match(fields) {
			records = append(records, t.records[i])
		}
	}
	return records, nil
}

func (t *Table[T, PT]) Create(ctx context.Context, records ...T) (*domainRepo.BatchResult[T], error) {
	if err := sleep(ctx, t.latency.Create); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	result := &domainRepo.BatchResult[T]{Records: make([]T, 0, len(records))}
	for _, record := range records {
		PT(&record).SetID(t.nextID)
		t.nextID++
		t.records = append(t.records, record)
		result.Records = append(result.Records, record)
	}
	return result, nil
}

func (t *Table[T, PT]) Update(ctx context.Context, id int, fields entity.Fields) (*T, error) {
	if err := sleep(ctx, t.latency.Update); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.indexOf(id)
	if idx == -1 {
		return nil, nil
	}

	record := t.records[idx]
	if err := entity.ApplyFields(&record, fields); err != nil {
		t.log.Warnf("Failed to merge fields into record %d: %+v", id, err)
		return nil, err
	}
	PT(&record).SetID(id)
	t.records[idx] = record

	return &record, nil
}

func (t *Table[T, PT]) Delete(ctx context.Context, id int) (bool, error) {
	if err := sleep(ctx, t.latency.Delete); err != nil {
		return false, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.indexOf(id)
	if idx == -1 {
		return false, domainRepo.ErrRecordNotFound
	}
	t.records = append(t.records[:idx], t.records[idx+1:]...)
	return true, nil
}

func (t *Table[T, PT]) indexOf(id int) int {
	for i := range t.records {
		if PT(&t.records[i]).GetID() == id {
			return i
		}
	}
	return -1
}

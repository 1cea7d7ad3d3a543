package repository

import (
	"context"

	"hospital-registry/internal/domain/entity"
	"hospital-registry/internal/domain/query"
)

// RecordRepository is the backing store contract shared by every registry entity.
// Implementations copy records in and out; callers never hold a live reference to
// stored state.
type RecordRepository[T any] interface {
	// FindAll returns every record of the type in store-defined order.
	FindAll(ctx context.Context) ([]T, error)
	// FindByID returns nil, nil when no record has the given id.
	FindByID(ctx context.Context, id int) (*T, error)
	FindWhere(ctx context.Context, q query.Query) ([]T, error)
	// Create assigns identifiers and persists records best-effort. Records rejected
	// by the store are reported in the result's Failures. An error is returned only
	// when nothing was persisted.
	Create(ctx context.Context, records ...T) (*BatchResult[T], error)
	// Update overwrites only the supplied fields. Returns nil, nil when the id is unknown.
	Update(ctx context.Context, id int, fields entity.Fields) (*T, error)
	// Delete removes a record without touching dependents. Stores that cannot tell a
	// missing id apart from a rejected delete return false, nil; the in-memory store
	// returns ErrRecordNotFound.
	Delete(ctx context.Context, id int) (bool, error)
}

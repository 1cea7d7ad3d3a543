package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hospital-registry/internal/domain/entity"
	"hospital-registry/internal/domain/query"
	"hospital-registry/internal/domain/repository"
	"hospital-registry/internal/service"

	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

// recordUsecase holds the behavior shared by every entity facade. List reads degrade
// to an empty slice, single reads and mutations propagate errors.
type recordUsecase[T any, PT entity.Record[T]] struct {
	log      *logrus.Logger
	repo     repository.RecordRepository[T]
	notices  service.NoticeService
	schema   entity.Schema
	notFound error
	now      func() time.Time
}

func newRecordUsecase[T any, PT entity.Record[T]](
	log *logrus.Logger,
	repo repository.RecordRepository[T],
	notices service.NoticeService,
	notFound error,
) recordUsecase[T, PT] {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if notices == nil {
		notices = service.NewNoticeService(log, nil, nil)
	}
	return recordUsecase[T, PT]{
		log:      log,
		repo:     repo,
		notices:  notices,
		schema:   PT(new(T)).Schema(),
		notFound: notFound,
		now:      time.Now,
	}
}

func (u *recordUsecase[T, PT]) today() string {
	return u.now().Format(dateLayout)
}

func (u *recordUsecase[T, PT]) list(ctx context.Context, q query.Query) []T {
	var (
		records []T
		err     error
	)
	if q.Empty() {
		records, err = u.repo.FindAll(ctx)
	} else {
		records, err = u.repo.FindWhere(ctx, q)
	}
	if err != nil {
		u.log.Warnf("Failed to load %s records: %+v", u.schema.Entity, err)
		u.notices.Notify(ctx, service.NoticeError, u.schema.Entity, fmt.Sprintf("Failed to load %s records", u.schema.Entity))
		return []T{}
	}
	if records == nil {
		return []T{}
	}
	return records
}

func (u *recordUsecase[T, PT]) get(ctx context.Context, id int) (*T, error) {
	if id <= 0 {
		return nil, u.notFound
	}

	record, err := u.repo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find %s %d: %+v", u.schema.Entity, id, err)
		return nil, err
	}
	if record == nil {
		return nil, u.notFound
	}
	return record, nil
}

// create persists records best-effort. Rejected records are surfaced as a single
// warning notice; an error is returned only when nothing was stored.
func (u *recordUsecase[T, PT]) create(ctx context.Context, records ...T) (*repository.BatchResult[T], error) {
	for i := range records {
		PT(&records[i]).SetID(0)
	}

	result, err := u.repo.Create(ctx, records...)
	if err != nil {
		u.log.Warnf("Failed to create %s: %+v", u.schema.Entity, err)
		u.notices.Notify(ctx, service.NoticeError, u.schema.Entity, fmt.Sprintf("Failed to create %s: %v", u.schema.Entity, err))
		return nil, err
	}

	if result.Partial() {
		messages := make([]string, 0, len(result.Failures))
		for _, f := range result.Failures {
			messages = append(messages, f.String())
		}
		u.notices.Notify(ctx, service.NoticeWarning, u.schema.Entity, fmt.Sprintf(
			"Failed to create %d of %d %s records: %s",
			len(result.Failures), len(records), u.schema.Entity, strings.Join(messages, " | "),
		))
	} else if len(records) > 1 {
		u.notices.Notify(ctx, service.NoticeInfo, u.schema.Entity, fmt.Sprintf(
			"Created %d %s records", len(result.Records), u.schema.Entity,
		))
	}

	for i := range result.Records {
		u.notices.LogCreate(ctx, u.schema.Entity, PT(&result.Records[i]).GetID(), result.Records[i])
	}
	return result, nil
}

func (u *recordUsecase[T, PT]) createOne(ctx context.Context, record T) (*T, error) {
	result, err := u.create(ctx, record)
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, fmt.Errorf("%s was not stored", u.schema.Entity)
	}
	return &result.Records[0], nil
}

// update merges fields into an existing record. prepare may adjust the cleaned fields
// with knowledge of the current record before they are written.
func (u *recordUsecase[T, PT]) update(ctx context.Context, id int, fields entity.Fields, prepare func(current *T, fields entity.Fields)) (*T, error) {
	current, err := u.get(ctx, id)
	if err != nil {
		return nil, err
	}

	clean, err := u.sanitize(fields)
	if err != nil {
		return nil, err
	}
	if prepare != nil {
		prepare(current, clean)
	}

	updated, err := u.repo.Update(ctx, id, clean)
	if err != nil {
		u.log.Warnf("Failed to update %s %d: %+v", u.schema.Entity, id, err)
		return nil, err
	}
	if updated == nil {
		return nil, u.notFound
	}

	u.notices.LogUpdate(ctx, u.schema.Entity, id, *current, *updated)
	return updated, nil
}

// delete removes a record. The stored record is read first so the change event
// carries it as the old value.
func (u *recordUsecase[T, PT]) delete(ctx context.Context, id int) (bool, error) {
	if id <= 0 {
		return false, u.notFound
	}

	current, err := u.repo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find %s %d: %+v", u.schema.Entity, id, err)
		return false, err
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return false, u.notFound
		}
		u.log.Warnf("Failed to delete %s %d: %+v", u.schema.Entity, id, err)
		return false, err
	}

	if deleted {
		var oldValue interface{}
		if current != nil {
			oldValue = *current
		}
		u.notices.LogDelete(ctx, u.schema.Entity, id, oldValue)
	}
	return deleted, nil
}

// sanitize drops identifiers, immutable and unknown fields and coerces foreign keys
// to integer ids.
func (u *recordUsecase[T, PT]) sanitize(fields entity.Fields) (entity.Fields, error) {
	clean := make(entity.Fields, len(fields))
	var fieldErrors []repository.FieldError
	for key, value := range fields {
		if !u.schema.IsWritable(key) || u.schema.IsImmutable(key) {
			continue
		}
		if u.schema.IsReference(key) {
			id, err := coerceReference(value)
			if err != nil {
				fieldErrors = append(fieldErrors, repository.FieldError{Field: key, Message: "must be a numeric id"})
				continue
			}
			clean[key] = id
			continue
		}
		clean[key] = value
	}

	if len(fieldErrors) > 0 {
		return nil, &repository.ValidationError{Failures: []repository.RecordFailure{{Errors: fieldErrors}}}
	}
	return clean, nil
}

func coerceReference(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case entity.Ref:
		if v.IsZero() {
			return nil, nil
		}
		return v.ID, nil
	case *entity.Ref:
		if v == nil || v.IsZero() {
			return nil, nil
		}
		return v.ID, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
	}
	return entity.ToID(value)
}

func joinNames(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// Package database implements the record store contract on a relational database
// through gorm.
package database

import (
	"context"
	"errors"
	"fmt"

	"hospital-registry/internal/domain/entity"
	"hospital-registry/internal/domain/query"
	domainRepo "hospital-registry/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Table[T any, PT entity.Record[T]] struct {
	db     *gorm.DB
	schema entity.Schema
	log    *logrus.Logger
}

func NewTable[T any, PT entity.Record[T]](db *gorm.DB, log *logrus.Logger) *Table[T, PT] {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Table[T, PT]{
		db:     db,
		schema: PT(new(T)).Schema(),
		log:    log,
	}
}

var _ domainRepo.RecordRepository[entity.Patient] = (*Table[entity.Patient, *entity.Patient])(nil)

func (t *Table[T, PT]) FindAll(ctx context.Context) ([]T, error) {
	return t.FindWhere(ctx, query.Query{})
}

func (t *Table[T, PT]) FindWhere(ctx context.Context, q query.Query) ([]T, error) {
	if t.db == nil {
		return nil, errNotConnected
	}

	tx := t.db.WithContext(ctx)
	for _, cond := range q.Where {
		tx = tx.Where(conditionExpr(cond))
	}
	for _, group := range q.Groups {
		if expr := groupExpr(group); expr != nil {
			tx = tx.Where(expr)
		}
	}

	records := []T{}
	if err := tx.Order("id DESC").Find(&records).Error; err != nil {
		t.log.Warnf("Failed to query %s records: %+v", t.schema.Entity, err)
		return nil, unavailable(err)
	}
	return records, nil
}

func (t *Table[T, PT]) FindByID(ctx context.Context, id int) (*T, error) {
	if t.db == nil {
		return nil, errNotConnected
	}

	var record T
	err := t.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		t.log.Warnf("Failed to find %s %d: %+v", t.schema.Entity, id, err)
		return nil, unavailable(err)
	}
	return &record, nil
}

// Create inserts each record on its own so that a constraint violation rejects only
// the offending record. Any other database error aborts the batch.
func (t *Table[T, PT]) Create(ctx context.Context, records ...T) (*domainRepo.BatchResult[T], error) {
	if t.db == nil {
		return nil, errNotConnected
	}

	result := &domainRepo.BatchResult[T]{Records: make([]T, 0, len(records))}
	for i := range records {
		record := records[i]
		PT(&record).SetID(0)

		if err := t.db.WithContext(ctx).Create(&record).Error; err != nil {
			if !isConstraintViolation(err) {
				t.log.Warnf("Failed to create %s: %+v", t.schema.Entity, err)
				return nil, unavailable(err)
			}
			failure := domainRepo.RecordFailure{Index: i, Message: err.Error()}
			t.log.Warnf("Failed to create %s record %d: %s", t.schema.Entity, i, failure.String())
			result.Failures = append(result.Failures, failure)
			continue
		}
		result.Records = append(result.Records, record)
	}

	if len(result.Records) == 0 && len(result.Failures) > 0 {
		return result, &domainRepo.ValidationError{Failures: result.Failures}
	}
	return result, nil
}

func (t *Table[T, PT]) Update(ctx context.Context, id int, fields entity.Fields) (*T, error) {
	if t.db == nil {
		return nil, errNotConnected
	}

	columns := t.columns(fields)
	if len(columns) > 0 {
		res := t.db.WithContext(ctx).Model(PT(new(T))).Where("id = ?", id).Updates(columns)
		if res.Error != nil {
			if isConstraintViolation(res.Error) {
				return nil, &domainRepo.ValidationError{Failures: []domainRepo.RecordFailure{{Message: res.Error.Error()}}}
			}
			t.log.Warnf("Failed to update %s %d: %+v", t.schema.Entity, id, res.Error)
			return nil, unavailable(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}

	return t.FindByID(ctx, id)
}

func (t *Table[T, PT]) Delete(ctx context.Context, id int) (bool, error) {
	if t.db == nil {
		return false, errNotConnected
	}

	res := t.db.WithContext(ctx).Where("id = ?", id).Delete(PT(new(T)))
	if res.Error != nil {
		t.log.Warnf("Failed to delete %s %d: %+v", t.schema.Entity, id, res.Error)
		return false, unavailable(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// columns maps writable storage names onto column values. References are written as
// bare ids.
func (t *Table[T, PT]) columns(fields entity.Fields) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if !t.schema.IsWritable(key) {
			continue
		}
		if t.schema.IsReference(key) {
			value = refValue(value)
		}
		out[column(key)] = value
	}
	return out
}

var errNotConnected = fmt.Errorf("%w: database not connected", domainRepo.ErrTransportUnavailable)

func unavailable(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %v", domainRepo.ErrTransportUnavailable, err)
}

func isConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) ||
		errors.Is(err, gorm.ErrInvalidValueOfLength)
}

func column(field string) string {
	switch field {
	case entity.FieldID:
		return "id"
	case entity.FieldName:
		return "name"
	}
	return field
}

func refValue(value interface{}) interface{} {
	switch v := value.(type) {
	case entity.Ref:
		return v.ID
	case *entity.Ref:
		if v == nil {
			return nil
		}
		return v.ID
	case nil:
		return nil
	}
	id, err := entity.ToID(value)
	if err != nil {
		return value
	}
	return id
}

func conditionExpr(cond query.Condition) clause.Expression {
	col := clause.Column{Name: column(cond.FieldName)}
	if len(cond.Values) == 0 {
		return clause.Expr{SQL: "1 = 0"}
	}
	exprs := make([]clause.Expression, 0, len(cond.Values))
	for _, value := range cond.Values {
		if ref, ok := value.(entity.Ref); ok {
			value = ref.ID
		}
		switch cond.Operator {
		case query.Contains:
			exprs = append(exprs, clause.Expr{SQL: "? ILIKE ?", Vars: []interface{}{col, "%" + cast.ToString(value) + "%"}})
		default:
			exprs = append(exprs, clause.Eq{Column: col, Value: value})
		}
	}
	if len(exprs) == 1 {
		return exprs[0]
	}
	return clause.Or(exprs...)
}

func groupExpr(group query.Group) clause.Expression {
	exprs := make([]clause.Expression, 0, len(group.Conditions)+len(group.SubGroups))
	for _, cond := range group.Conditions {
		exprs = append(exprs, conditionExpr(cond))
	}
	for _, sub := range group.SubGroups {
		if expr := groupExpr(sub); expr != nil {
			exprs = append(exprs, expr)
		}
	}

	if len(exprs) == 0 {
		return nil
	}
	if group.Operator == query.Or {
		return clause.Or(exprs...)
	}
	return clause.And(exprs...)
}

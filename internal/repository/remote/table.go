package remote

import (
	"context"
	"encoding/json"
	"fmt"

	"hospital-registry/internal/domain/entity"
	"hospital-registry/internal/domain/query"
	domainRepo "hospital-registry/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// Table adapts one remote table to the record store contract. Foreign keys are fetched
// with the referenced record's Name expanded, and lists come back newest first.
type Table[T any, PT entity.Record[T]] struct {
	client *Client
	schema entity.Schema
	log    *logrus.Logger
}

func NewTable[T any, PT entity.Record[T]](client *Client, log *logrus.Logger) *Table[T, PT] {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Table[T, PT]{
		client: client,
		schema: PT(new(T)).Schema(),
		log:    log,
	}
}

var _ domainRepo.RecordRepository[entity.Doctor] = (*Table[entity.Doctor, *entity.Doctor])(nil)

func (t *Table[T, PT]) FindAll(ctx context.Context) ([]T, error) {
	return t.FindWhere(ctx, query.Query{})
}

func (t *Table[T, PT]) FindWhere(ctx context.Context, q query.Query) ([]T, error) {
	req := t.fetchRequest()
	req.OrderBy = []query.Order{{FieldName: entity.FieldID, SortType: query.Descending}}
	req.Where = q.Where
	req.WhereGroups = q.Groups

	resp, err := t.client.FetchRecords(ctx, t.schema.RemoteTable, req)
	if err != nil {
		return nil, err
	}

	records := []T{}
	if isNull(resp.Data) {
		return records, nil
	}
	if err := json.Unmarshal(resp.Data, &records); err != nil {
		return nil, fmt.Errorf("remote: decode %s records: %w", t.schema.Entity, err)
	}
	return records, nil
}

func (t *Table[T, PT]) FindByID(ctx context.Context, id int) (*T, error) {
	resp, err := t.client.GetRecordByID(ctx, t.schema.RemoteTable, id, t.fetchRequest())
	if err != nil {
		return nil, err
	}
	if isNull(resp.Data) {
		return nil, nil
	}

	var record T
	if err := json.Unmarshal(resp.Data, &record); err != nil {
		return nil, fmt.Errorf("remote: decode %s %d: %w", t.schema.Entity, id, err)
	}
	return &record, nil
}

func (t *Table[T, PT]) Create(ctx context.Context, records ...T) (*domainRepo.BatchResult[T], error) {
	payload := make([]entity.Fields, 0, len(records))
	for i := range records {
		fields, err := entity.ToFields(&records[i])
		if err != nil {
			return nil, err
		}
		payload = append(payload, t.writable(fields))
	}

	resp, err := t.client.CreateRecords(ctx, t.schema.RemoteTable, payload)
	if err != nil {
		return nil, err
	}
	return t.summarize("create", resp.Results)
}

func (t *Table[T, PT]) Update(ctx context.Context, id int, fields entity.Fields) (*T, error) {
	record := t.writable(fields)
	record[entity.FieldID] = id

	resp, err := t.client.UpdateRecords(ctx, t.schema.RemoteTable, []entity.Fields{record})
	if err != nil {
		return nil, err
	}

	result, err := t.summarize("update", resp.Results)
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, nil
	}
	updated := result.Records[0]
	return &updated, nil
}

func (t *Table[T, PT]) Delete(ctx context.Context, id int) (bool, error) {
	resp, err := t.client.DeleteRecords(ctx, t.schema.RemoteTable, []int{id})
	if err != nil {
		return false, err
	}

	for i, r := range resp.Results {
		if !r.Success {
			t.log.Warnf("Failed to delete %s %d: %s", t.schema.Entity, id, r.Failure(i).String())
			return false, nil
		}
	}
	return len(resp.Results) > 0, nil
}

// summarize splits per-record results into accepted records and failures. Failures are
// logged one by one; an error is returned only when every record was rejected.
func (t *Table[T, PT]) summarize(op string, results []Result) (*domainRepo.BatchResult[T], error) {
	out := &domainRepo.BatchResult[T]{Records: []T{}}
	for i, r := range results {
		if !r.Success {
			failure := r.Failure(i)
			t.log.Warnf("Failed to %s %s record %d: %s", op, t.schema.Entity, i, failure.String())
			out.Failures = append(out.Failures, failure)
			continue
		}

		var record T
		if !isNull(r.Data) {
			if err := json.Unmarshal(r.Data, &record); err != nil {
				return nil, fmt.Errorf("remote: decode %s result: %w", t.schema.Entity, err)
			}
		}
		out.Records = append(out.Records, record)
	}

	if len(out.Records) == 0 && len(out.Failures) > 0 {
		return out, &domainRepo.ValidationError{Failures: out.Failures}
	}
	return out, nil
}

func (t *Table[T, PT]) fetchRequest() *FetchRequest {
	specs := make([]FieldSpec, 0, len(t.schema.Fields))
	for _, name := range t.schema.Fields {
		spec := FieldSpec{Field: FieldName{Name: name}}
		if t.schema.IsReference(name) {
			spec.ReferenceField = &ReferenceField{Field: FieldName{Name: entity.FieldName}}
		}
		specs = append(specs, spec)
	}
	return &FetchRequest{Fields: specs}
}

// writable drops fields the remote table does not accept on writes.
func (t *Table[T, PT]) writable(fields entity.Fields) entity.Fields {
	out := make(entity.Fields, len(fields))
	for key, value := range fields {
		if t.schema.IsWritable(key) {
			out[key] = value
		}
	}
	return out
}

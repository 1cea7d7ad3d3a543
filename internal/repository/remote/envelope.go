package remote

import (
	"encoding/json"

	"hospital-registry/internal/domain/entity"
	"hospital-registry/internal/domain/query"
	domainRepo "hospital-registry/internal/domain/repository"
)

// FieldName names a column in a fetch request
type FieldName struct {
	Name string `json:"Name"`
}

// ReferenceField asks the store to expand a field of the referenced record inline
type ReferenceField struct {
	Field FieldName `json:"field"`
}

// FieldSpec is one requested column
type FieldSpec struct {
	Field          FieldName       `json:"field"`
	ReferenceField *ReferenceField `json:"referenceField,omitempty"`
}

// FetchRequest is the read envelope
type FetchRequest struct {
	Fields      []FieldSpec       `json:"fields"`
	OrderBy     []query.Order     `json:"orderBy,omitempty"`
	Where       []query.Condition `json:"where,omitempty"`
	WhereGroups []query.Group     `json:"whereGroups,omitempty"`
}

// WriteRequest is the create/update envelope
type WriteRequest struct {
	Records []entity.Fields `json:"records"`
}

// DeleteRequest is the delete envelope
type DeleteRequest struct {
	RecordIDs []int `json:"RecordIds"`
}

type fieldError struct {
	FieldLabel string `json:"fieldLabel"`
	Message    string `json:"message"`
}

// Result is the per-record outcome of a batch write
type Result struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Errors  []fieldError    `json:"errors,omitempty"`
}

// Failure converts a rejected result into the domain failure shape.
func (r Result) Failure(index int) domainRepo.RecordFailure {
	failure := domainRepo.RecordFailure{Index: index, Message: r.Message}
	for _, e := range r.Errors {
		failure.Errors = append(failure.Errors, domainRepo.FieldError{Field: e.FieldLabel, Message: e.Message})
	}
	return failure
}

// Response is the envelope returned by every remote call
type Response struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Results []Result        `json:"results,omitempty"`
}

func isNull(data json.RawMessage) bool {
	return len(data) == 0 || string(data) == "null"
}

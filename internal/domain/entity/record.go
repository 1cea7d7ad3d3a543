package entity

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Shared storage names present on every record type
const (
	FieldID   = "Id"
	FieldName = "Name"
)

// Record is implemented by pointers to the registry entity types so that generic
// stores can assign identifiers and discover how a type is addressed.
type Record[T any] interface {
	*T
	GetID() int
	SetID(id int)
	Schema() Schema
}

// Schema describes how an entity type is stored and queried.
type Schema struct {
	// Entity is the human-readable singular name ("patient").
	Entity string
	// Table is the relational table name.
	Table string
	// RemoteTable is the table name understood by the remote record store.
	RemoteTable string
	// Fields lists the writable storage names, excluding Id.
	Fields []string
	// References lists foreign-key fields whose referenced Name is expanded on reads.
	References []string
	// Immutable fields are stamped once at creation and dropped from updates.
	Immutable []string
}

// IsReference reports whether field is a foreign-key field of the schema.
func (s Schema) IsReference(field string) bool {
	for _, ref := range s.References {
		if ref == field {
			return true
		}
	}
	return false
}

// IsWritable reports whether field may be sent on writes.
func (s Schema) IsWritable(field string) bool {
	for _, f := range s.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// IsImmutable reports whether field is set once at creation.
func (s Schema) IsImmutable(field string) bool {
	for _, f := range s.Immutable {
		if f == field {
			return true
		}
	}
	return false
}

// Fields holds record values keyed by storage name. It is the unit of partial updates.
type Fields map[string]interface{}

// ToFields flattens a record into its storage representation.
func ToFields(record interface{}) (Fields, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	fields := Fields{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// ApplyFields overlays fields onto the record pointed to by dst. Keys not present in
// fields keep their current value.
func ApplyFields(dst interface{}, fields Fields) error {
	current, err := ToFields(dst)
	if err != nil {
		return err
	}
	for key, value := range fields {
		current[key] = value
	}

	data, err := json.Marshal(current)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

// ParseID coerces a raw identifier to an integer. Non-numeric or non-positive input
// is reported as not ok, which callers treat as an unknown record.
func ParseID(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := ToID(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ToID coerces an identifier value to an integer. Text is read as base 10 only, so
// "010" is 10 and "0x10" is rejected.
func ToID(value interface{}) (int, error) {
	switch v := value.(type) {
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	case []byte:
		return strconv.Atoi(strings.TrimSpace(string(v)))
	case json.Number:
		return strconv.Atoi(v.String())
	}
	return cast.ToIntE(value)
}

package entity

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Ref is a foreign key to another registry record. Stores may expand it with the
// referenced record's display name; it is always written back as a bare integer.
type Ref struct {
	ID   int
	Name string
}

// NewRef returns a reference to the record with the given id.
func NewRef(id int) Ref {
	return Ref{ID: id}
}

// IsZero reports whether the reference points nowhere.
func (r Ref) IsZero() bool {
	return r.ID == 0
}

// MarshalJSON writes the reference as its integer id, or null when unset.
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.ID == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}

// UnmarshalJSON accepts a number, a numeric string, or an expanded {"Id", "Name"} object.
func (r *Ref) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*r = Ref{}
		return nil
	}

	if trimmed[0] == '{' {
		var expanded struct {
			ID   interface{} `json:"Id"`
			Name string      `json:"Name"`
		}
		if err := json.Unmarshal(trimmed, &expanded); err != nil {
			return err
		}
		id, err := coerceRefID(expanded.ID)
		if err != nil {
			return err
		}
		*r = Ref{ID: id, Name: expanded.Name}
		return nil
	}

	var raw interface{}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}
	id, err := coerceRefID(raw)
	if err != nil {
		return err
	}
	*r = Ref{ID: id}
	return nil
}

// Value implements driver.Valuer.
func (r Ref) Value() (driver.Value, error) {
	if r.ID == 0 {
		return nil, nil
	}
	return int64(r.ID), nil
}

// Scan implements sql.Scanner.
func (r *Ref) Scan(value interface{}) error {
	if value == nil {
		*r = Ref{}
		return nil
	}
	if b, ok := value.([]byte); ok {
		value = string(b)
	}
	id, err := coerceRefID(value)
	if err != nil {
		return err
	}
	*r = Ref{ID: id}
	return nil
}

func coerceRefID(raw interface{}) (int, error) {
	if raw == nil {
		return 0, nil
	}
	if s, ok := raw.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, nil
		}
		raw = s
	}
	id, err := ToID(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid reference %v: %w", raw, err)
	}
	return id, nil
}

// Package query models the filters a record store can evaluate: equality and
// substring conditions combined into AND/OR groups.
package query

import (
	"strings"

	"github.com/spf13/cast"
)

type Operator string

const (
	EqualTo  Operator = "EqualTo"
	Contains Operator = "Contains"
)

type GroupOperator string

const (
	And GroupOperator = "AND"
	Or  GroupOperator = "OR"
)

type SortType string

const Descending SortType = "DESC"

// Condition matches a field against one or more values. Multiple values are OR'ed.
type Condition struct {
	FieldName string        `json:"FieldName"`
	Operator  Operator      `json:"Operator"`
	Values    []interface{} `json:"Values"`
}

// Group combines conditions and nested groups with a single boolean operator.
type Group struct {
	Operator   GroupOperator `json:"operator"`
	Conditions []Condition   `json:"conditions,omitempty"`
	SubGroups  []Group       `json:"subGroups,omitempty"`
}

// Order is a single sort key.
type Order struct {
	FieldName string   `json:"fieldName"`
	SortType  SortType `json:"sorttype"`
}

// Query is a filter over one record type. Where conditions and groups are AND'ed.
type Query struct {
	Where  []Condition
	Groups []Group
}

// Equal builds an equality condition.
func Equal(field string, values ...interface{}) Condition {
	return Condition{FieldName: field, Operator: EqualTo, Values: values}
}

// Contain builds a case-insensitive substring condition.
func Contain(field string, values ...interface{}) Condition {
	return Condition{FieldName: field, Operator: Contains, Values: values}
}

// AnyOf groups conditions with OR semantics.
func AnyOf(conditions ...Condition) Group {
	return Group{Operator: Or, Conditions: conditions}
}

// Where returns a query with the given AND'ed conditions.
func Where(conditions ...Condition) Query {
	return Query{Where: conditions}
}

// Empty reports whether the query filters nothing.
func (q Query) Empty() bool {
	return len(q.Where) == 0 && len(q.Groups) == 0
}

// Match evaluates the query against a flattened record.
func (q Query) Match(record map[string]interface{}) bool {
	for _, c := range q.Where {
		if !c.Match(record) {
			return false
		}
	}
	for _, g := range q.Groups {
		if !g.Match(record) {
			return false
		}
	}
	return true
}

// Match evaluates the condition against a flattened record.
func (c Condition) Match(record map[string]interface{}) bool {
	actual := valueString(record[c.FieldName])
	for _, v := range c.Values {
		expected := valueString(v)
		switch c.Operator {
		case Contains:
			if strings.Contains(strings.ToLower(actual), strings.ToLower(expected)) {
				return true
			}
		default:
			if actual == expected {
				return true
			}
		}
	}
	return false
}

// Match evaluates the group against a flattened record. An empty group matches.
func (g Group) Match(record map[string]interface{}) bool {
	if len(g.Conditions) == 0 && len(g.SubGroups) == 0 {
		return true
	}

	results := make([]bool, 0, len(g.Conditions)+len(g.SubGroups))
	for _, c := range g.Conditions {
		results = append(results, c.Match(record))
	}
	for _, sub := range g.SubGroups {
		results = append(results, sub.Match(record))
	}

	if g.Operator == Or {
		for _, ok := range results {
			if ok {
				return true
			}
		}
		return false
	}
	for _, ok := range results {
		if !ok {
			return false
		}
	}
	return true
}

// valueString renders a value for comparison. Foreign keys flattened from JSON arrive
// as float64 and compare equal to their integer or string forms.
func valueString(v interface{}) string {
	if v == nil {
		return ""
	}
	if m, ok := v.(map[string]interface{}); ok {
		v = m["Id"]
	}
	return cast.ToString(v)
}

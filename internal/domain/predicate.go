package domain

import (
	"time"
)

// Operator is the comparison a Condition applies.
type Operator int

const (
	// OpEqual is exact equality.
	OpEqual Operator = iota
	// OpEqualFold is text equality ignoring case.
	OpEqualFold
	// OpAtLeast is a numeric lower bound: field >= value.
	OpAtLeast
)

// Condition is one query fragment over a named field.
type Condition struct {
	Field string
	Op    Operator
	Value any
}

func Eq(field string, value any) Condition {
	return Condition{Field: field, Op: OpEqual, Value: value}
}

func EqFold(field, value string) Condition {
	return Condition{Field: field, Op: OpEqualFold, Value: value}
}

func AtLeast(field string, value int) Condition {
	return Condition{Field: field, Op: OpAtLeast, Value: value}
}

// Predicate is an AND-combination of conditions. The zero value matches everything.
type Predicate struct {
	conditions []Condition
}

// Where starts a predicate from the given conditions.
func Where(conds ...Condition) Predicate {
	return Predicate{}.And(conds...)
}

// ActiveOnly is the base predicate of every listing.
func ActiveOnly() Predicate {
	return Where(Eq(FieldStatus, string(StatusActive)))
}

// EnsureActive returns p restricted to active offers. It is a no-op when p
// already carries the active status condition.
func (p Predicate) EnsureActive() Predicate {
	for _, c := range p.conditions {
		if c.Field == FieldStatus && c.Op == OpEqual && c.Value == string(StatusActive) {
			return p
		}
	}
	return ActiveOnly().And(p.conditions...)
}

// And returns a new predicate narrowed by conds; p is not modified.
func (p Predicate) And(conds ...Condition) Predicate {
	out := make([]Condition, 0, len(p.conditions)+len(conds))
	out = append(out, p.conditions...)
	out = append(out, conds...)
	return Predicate{conditions: out}
}

// Conditions returns a copy of the conditions in the order they were added.
func (p Predicate) Conditions() []Condition {
	out := make([]Condition, len(p.conditions))
	copy(out, p.conditions)
	return out
}

// Matches evaluates the predicate against r. Unknown fields never match.
func (p Predicate) Matches(r FieldReader) bool {
	for _, c := range p.conditions {
		v, ok := r.FieldValue(c.Field)
		if !ok || !c.matches(v) {
			return false
		}
	}
	return true
}

func (c Condition) matches(v any) bool {
	switch c.Op {
	case OpEqual:
		return valuesEqual(v, c.Value)
	case OpEqualFold:
		a, ok1 := v.(string)
		b, ok2 := c.Value.(string)
		return ok1 && ok2 && EqualFold(a, b)
	case OpAtLeast:
		a, ok1 := toInt64(v)
		b, ok2 := toInt64(c.Value)
		return ok1 && ok2 && a >= b
	}
	return false
}

func valuesEqual(a, b any) bool {
	switch x := a.(type) {
	case Date:
		y, ok := b.(Date)
		return ok && x.Equal(y)
	case time.Time:
		y, ok := b.(time.Time)
		return ok && x.Equal(y)
	}
	if x, ok := toInt64(a); ok {
		y, ok := toInt64(b)
		return ok && x == y
	}
	return a == b
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

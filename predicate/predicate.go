// Package predicate defines the atomic and compound filter types the rule
// learner searches over: a FieldPredicate tests one field for an exact
// value, and a PredicateGroup conjoins several FieldPredicates on distinct
// fields. Both are immutable value types. FieldPredicate is totally ordered
// via Compare; a Group has no ordering method, but its canonical Key string
// can key maps.
package predicate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ruleforge/errs"
)

// Field is a zero-based record field index.
type Field int

// FieldPredicate is an immutable equality test: it passes a record iff the
// record has at least Field+1 fields and the value at Field equals Value
// exactly. The empty string is a valid Value.
type FieldPredicate struct {
	field Field
	value string
}

// New builds a FieldPredicate from an explicit field/value pair. It rejects
// a negative field index; the value may be empty but not absent (Go has no
// null string, so there is nothing further to check there).
func New(field Field, value string) (FieldPredicate, error) {
	if field < 0 {
		return FieldPredicate{}, errs.Input(fmt.Sprintf("predicate field %d must be non-negative", field), nil)
	}
	return FieldPredicate{field: field, value: value}, nil
}

// FromRecord builds the FieldPredicate that matches record exactly at
// field, i.e. {field, record[field]}. It fails if field is out of range.
func FromRecord(record []string, field Field) (FieldPredicate, error) {
	if field < 0 {
		return FieldPredicate{}, errs.Input(fmt.Sprintf("predicate field %d must be non-negative", field), nil)
	}
	if int(field) >= len(record) {
		return FieldPredicate{}, errs.Input(fmt.Sprintf("record has %d fields, requested field %d", len(record), field), nil)
	}
	return FieldPredicate{field: field, value: record[field]}, nil
}

// Field returns the predicate's field index.
func (p FieldPredicate) Field() Field { return p.field }

// Value returns the predicate's expected value.
func (p FieldPredicate) Value() string { return p.value }

// Passes reports whether record has the required field and it matches.
// A record too short for Field simply fails; it is never an error for the
// caller, per the classifier's "missing fields are not evidence of
// invalidity" rule.
func (p FieldPredicate) Passes(record []string) bool {
	if int(p.field) >= len(record) {
		return false
	}
	return record[p.field] == p.value
}

// SameField reports whether two predicates test the same field, regardless
// of the value each expects.
func (p FieldPredicate) SameField(other FieldPredicate) bool {
	return p.field == other.field
}

// Compare orders predicates by field ascending, then value lexicographic.
// Returns <0, 0, or >0 like strings.Compare.
func (p FieldPredicate) Compare(other FieldPredicate) int {
	if p.field != other.field {
		if p.field < other.field {
			return -1
		}
		return 1
	}
	return strings.Compare(p.value, other.value)
}

// Equal reports value equality (field and value both match).
func (p FieldPredicate) Equal(other FieldPredicate) bool {
	return p.Compare(other) == 0
}

// String renders "field->value", matching the stable rendering a
// PredicateGroup composes from its members.
func (p FieldPredicate) String() string {
	return fmt.Sprintf("%d->%s", p.field, p.value)
}

package predicate

import (
	"sort"
	"strings"

	"github.com/katalvlaran/ruleforge/errs"
)

// Group is a non-empty, sorted conjunction of FieldPredicates, no two of
// which share a field index. It passes a record iff every member passes.
// Group is an immutable value; every constructor returns a fresh one with
// its predicates already sorted, and no method mutates it in place.
type Group struct {
	preds []FieldPredicate // sorted by Compare; invariant: unique fields
	key   string           // cached canonical rendering, doubles as a map key
}

// Of builds a Group from a single predicate.
func Of(p FieldPredicate) Group {
	g := Group{preds: []FieldPredicate{p}}
	g.key = g.render()
	return g
}

// FromPredicates builds a Group from a non-empty slice of predicates,
// sorting them and rejecting duplicate field indices. The input slice is
// not retained.
func FromPredicates(preds []FieldPredicate) (Group, error) {
	if len(preds) == 0 {
		return Group{}, errs.Input("predicate group must be non-empty", nil)
	}
	sorted := make([]FieldPredicate, len(preds))
	copy(sorted, preds)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Compare(sorted[j]) < 0 })
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].SameField(sorted[i]) {
			return Group{}, errs.Input("predicate group has duplicate field index", nil)
		}
	}
	g := Group{preds: sorted}
	g.key = g.render()
	return g, nil
}

// FromRecordFields builds a Group with one predicate per requested field,
// each predicate's value taken from record at that field.
func FromRecordFields(record []string, fields []Field) (Group, error) {
	if len(fields) == 0 {
		return Group{}, errs.Input("predicate group must be non-empty", nil)
	}
	preds := make([]FieldPredicate, len(fields))
	for i, f := range fields {
		p, err := FromRecord(record, f)
		if err != nil {
			return Group{}, err
		}
		preds[i] = p
	}
	return FromPredicates(preds)
}

// Extend returns a new Group formed by adding p to g. p's field must not
// already appear in g.
func (g Group) Extend(p FieldPredicate) (Group, error) {
	for _, existing := range g.preds {
		if existing.SameField(p) {
			return Group{}, errs.Input("predicate group already has a predicate on this field", nil)
		}
	}
	preds := make([]FieldPredicate, len(g.preds)+1)
	copy(preds, g.preds)
	preds[len(g.preds)] = p
	return FromPredicates(preds)
}

// Passes requires every member predicate to pass record.
func (g Group) Passes(record []string) bool {
	for _, p := range g.preds {
		if !p.Passes(record) {
			return false
		}
	}
	return true
}

// Arity is the number of predicates in the group.
func (g Group) Arity() int { return len(g.preds) }

// LastField is the maximum field index present in the group. Callers must
// not call LastField on a zero-value Group.
func (g Group) LastField() Field {
	return g.preds[len(g.preds)-1].Field()
}

// Predicates returns the group's predicates in sorted order. The returned
// slice must not be mutated by the caller.
func (g Group) Predicates() []FieldPredicate { return g.preds }

// Equal reports whether two groups contain the same predicates.
func (g Group) Equal(other Group) bool {
	return g.key == other.key
}

// Key returns the canonical string form used to key the TrainingIndex's
// forward map. It mixes every member's field index and value, so distinct
// groups never collide except as a genuine hash would.
func (g Group) Key() string { return g.key }

func (g Group) render() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range g.preds {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(']')
	return b.String()
}

// String renders "[f1->v1, f2->v2, …]" in ascending field order — the
// stable surface spec'd for inspecting a learned rule.
func (g Group) String() string { return g.key }

// Package record holds the Record/Group value types every other package
// operates on, plus the CSV boundary adapter spec'd for them (line-oriented,
// comma-separated, no escaping or quoting). Label literals ("true"/"false")
// are converted to a two-valued tag at this boundary and never leak past it
// — callers above this package work with Valid/Invalid, not string
// literals.
package record

import (
	"github.com/katalvlaran/ruleforge/errs"
)

// Record is an ordered, fixed-arity sequence of string fields.
type Record []string

// Label is the two-valued classification tag. The wire literals "true" and
// "false" exist only inside this package's CSV boundary.
type Label bool

const (
	Invalid Label = false
	Valid   Label = true
)

const (
	trueLiteral  = "true"
	falseLiteral = "false"
)

// ParseLabel converts a wire literal to a Label. Any value other than
// "true" or "false" is an InputError.
func ParseLabel(s string) (Label, error) {
	switch s {
	case trueLiteral:
		return Valid, nil
	case falseLiteral:
		return Invalid, nil
	default:
		return Invalid, errs.Input("label field must be \"true\" or \"false\", got "+quote(s), nil)
	}
}

// String renders the Label back to its wire literal.
func (l Label) String() string {
	if l {
		return trueLiteral
	}
	return falseLiteral
}

func quote(s string) string { return "\"" + s + "\"" }

// Group is an ordered, fixed-arity collection of Records. Arity is 0 for
// an empty group.
type Group struct {
	Records []Record
	Arity   int
}

// NewGroup wraps recs, computing and validating arity. All records must
// have the same number of fields; records is rejected if empty or if
// arities differ.
func NewGroup(recs []Record) (*Group, error) {
	if len(recs) == 0 {
		return nil, errs.Input("record group must be non-empty", nil)
	}
	arity := len(recs[0])
	for _, r := range recs {
		if len(r) != arity {
			return nil, errs.Input("records must all have the same field count", nil)
		}
	}
	return &Group{Records: recs, Arity: arity}, nil
}

// LabelField is the index of the trailing label field for a training
// group: the last field.
func (g *Group) LabelField() int { return g.Arity - 1 }

// Label returns the parsed label of record i, which must be a training
// record (its last field is "true"/"false").
func (g *Group) Label(i int) (Label, error) {
	r := g.Records[i]
	return ParseLabel(r[g.LabelField()])
}

// AppendField returns a new Group with value appended as a new trailing
// field on every record, in place semantics are left to the caller:
// Classifier mutates records directly instead of calling this, but tests
// and tooling that want an immutable copy can use it.
func (g *Group) AppendField(values []string) (*Group, error) {
	if len(values) != len(g.Records) {
		return nil, errs.Input("one value per record required", nil)
	}
	out := make([]Record, len(g.Records))
	for i, r := range g.Records {
		nr := make(Record, len(r)+1)
		copy(nr, r)
		nr[len(r)] = values[i]
		out[i] = nr
	}
	return NewGroup(out)
}

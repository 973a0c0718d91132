// Package ruleset holds the RuleSet type: a disjunction of predicate
// groups learned by the inducer and later applied by the classifier. It is
// append-only during learning and read-only afterward, so no synchronization
// is needed — the same single-ownership model the inducer and classifier
// rely on throughout.
package ruleset

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/ruleforge/errs"
	"github.com/katalvlaran/ruleforge/predicate"
)

// RuleSet is an ordered collection of predicate groups. It passes a record
// iff any member group passes. Iteration order is insertion order, which
// makes rendering and re-parsing deterministic for a fixed RuleSet value.
type RuleSet struct {
	groups []predicate.Group
}

// New returns an empty RuleSet ready to receive rules via Add.
func New() *RuleSet {
	return &RuleSet{}
}

// Add appends g to the set. Order of addition is preserved.
func (r *RuleSet) Add(g predicate.Group) {
	r.groups = append(r.groups, g)
}

// Passes reports whether any member group passes record.
func (r *RuleSet) Passes(record []string) bool {
	for _, g := range r.groups {
		if g.Passes(record) {
			return true
		}
	}
	return false
}

// Groups returns the rule set's groups in insertion order. The returned
// slice must not be mutated by the caller.
func (r *RuleSet) Groups() []predicate.Group { return r.groups }

// Len reports the number of groups in the set.
func (r *RuleSet) Len() int { return len(r.groups) }

// String renders one group per line, in insertion order — the stable
// rendering an operator inspects to tune the exclusion list.
func (r *RuleSet) String() string {
	var b strings.Builder
	for i, g := range r.groups {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(g.String())
	}
	return b.String()
}

// WriteTo writes the stable rendering to w, one group per line, terminated
// by a trailing newline when the set is non-empty.
func (r *RuleSet) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, g := range r.groups {
		n, err := fmt.Fprintln(w, g.String())
		written += int64(n)
		if err != nil {
			return written, errs.Output("writing rule set", err)
		}
	}
	return written, nil
}

// Parse reads back a RuleSet in the form WriteTo/String produce: one
// "[f->v, …]" group per line, blank lines ignored. This lets the stable
// text rendering double as a small on-disk rule-set format, independent of
// re-running induction.
func Parse(r io.Reader) (*RuleSet, error) {
	rs := New()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		g, err := parseGroupLine(line)
		if err != nil {
			return nil, errs.Input(fmt.Sprintf("rule set line %d malformed", lineNo), err)
		}
		rs.Add(g)
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Input("reading rule set", err)
	}
	return rs, nil
}

func parseGroupLine(line string) (predicate.Group, error) {
	if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
		return predicate.Group{}, errs.Input("rule group must be bracketed", nil)
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
	if inner == "" {
		return predicate.Group{}, errs.Input("rule group must be non-empty", nil)
	}
	parts := strings.Split(inner, ", ")
	preds := make([]predicate.FieldPredicate, 0, len(parts))
	for _, part := range parts {
		fieldStr, value, ok := strings.Cut(part, "->")
		if !ok {
			return predicate.Group{}, errs.Input(fmt.Sprintf("malformed predicate %q", part), nil)
		}
		var field int
		if _, err := fmt.Sscanf(fieldStr, "%d", &field); err != nil {
			return predicate.Group{}, errs.Input(fmt.Sprintf("malformed field index %q", fieldStr), err)
		}
		p, err := predicate.New(predicate.Field(field), value)
		if err != nil {
			return predicate.Group{}, err
		}
		preds = append(preds, p)
	}
	return predicate.FromPredicates(preds)
}

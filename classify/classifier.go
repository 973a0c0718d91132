// Package classify applies a learned RuleSet to unlabelled records,
// appending a trailing "true"/"false" field to each. It never fails on a
// record: a record too short for a given rule's fields simply fails that
// rule, which is evidence of nothing — missing fields are not treated as
// evidence of invalidity.
package classify

import (
	"github.com/katalvlaran/ruleforge/record"
	"github.com/katalvlaran/ruleforge/ruleset"
)

// ClassifyAll mutates g in place, appending a label field to every record:
// "false" if rules passes the record (it matched an invalid-coverage
// rule), "true" otherwise. Record order and count are unchanged.
func ClassifyAll(g *record.Group, rules *ruleset.RuleSet) {
	for i, r := range g.Records {
		label := Classify(r, rules)
		nr := make(record.Record, len(r)+1)
		copy(nr, r)
		nr[len(r)] = label.String()
		g.Records[i] = nr
	}
	g.Arity++
}

// Classify reports the label for a single record against rules: Invalid
// iff rules passes the record, Valid otherwise.
func Classify(r record.Record, rules *ruleset.RuleSet) record.Label {
	if rules.Passes([]string(r)) {
		return record.Invalid
	}
	return record.Valid
}

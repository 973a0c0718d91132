package classify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ruleforge/classify"
	"github.com/katalvlaran/ruleforge/predicate"
	"github.com/katalvlaran/ruleforge/record"
	"github.com/katalvlaran/ruleforge/ruleset"
)

func mustPredicate(t *testing.T, field predicate.Field, value string) predicate.FieldPredicate {
	t.Helper()
	p, err := predicate.New(field, value)
	require.NoError(t, err)
	return p
}

// S1: classifying per the single-field rule learned from that scenario.
func TestClassifySingleFieldRule(t *testing.T) {
	rules := ruleset.New()
	rules.Add(predicate.Of(mustPredicate(t, 1, "value3")))

	require.Equal(t, record.Valid, classify.Classify(record.Record{"value1", "value4"}, rules))
	require.Equal(t, record.Invalid, classify.Classify(record.Record{"value5", "value3"}, rules))
}

// S6: a record shorter than a rule's last field can never match that
// rule, so it is classified valid rather than erroring.
func TestClassifyPartialRecordTolerance(t *testing.T) {
	rules := ruleset.New()
	rules.Add(predicate.Of(mustPredicate(t, 3, "z")))

	require.Equal(t, record.Valid, classify.Classify(record.Record{"a", "b"}, rules))
}

// P6: classifying twice (stripping the appended label in between) yields
// the same labels both times.
func TestClassifyAllIdempotent(t *testing.T) {
	rules := ruleset.New()
	rules.Add(predicate.Of(mustPredicate(t, 0, "bad")))

	g, err := record.NewGroup([]record.Record{{"bad", "x"}, {"good", "y"}})
	require.NoError(t, err)

	classify.ClassifyAll(g, rules)
	first := []string{g.Records[0][len(g.Records[0])-1], g.Records[1][len(g.Records[1])-1]}

	stripped, err := record.NewGroup([]record.Record{
		g.Records[0][:len(g.Records[0])-1],
		g.Records[1][:len(g.Records[1])-1],
	})
	require.NoError(t, err)
	classify.ClassifyAll(stripped, rules)
	second := []string{stripped.Records[0][len(stripped.Records[0])-1], stripped.Records[1][len(stripped.Records[1])-1]}

	require.Equal(t, first, second)
}

package induce_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ruleforge/induce"
	"github.com/katalvlaran/ruleforge/predicate"
	"github.com/katalvlaran/ruleforge/record"
)

func mustGroup(t *testing.T, recs ...record.Record) *record.Group {
	t.Helper()
	g, err := record.NewGroup(recs)
	require.NoError(t, err)
	return g
}

// S1: a single field separates the classes; the rule must be the minimal
// single-field group, not the two-field group that would also work.
func TestSingleFieldRule(t *testing.T) {
	training := mustGroup(t,
		record.Record{"value1", "value2", "true"},
		record.Record{"value1", "value3", "false"},
	)
	rules, err := induce.Induce(training, induce.Options{})
	require.NoError(t, err)
	require.Equal(t, 1, rules.Len())
	require.Equal(t, "[1->value3]", rules.Groups()[0].String())
}

// S2: no single field separates every record; the rule set must mix arity
// 1 and arity 2 groups.
func TestTwoFieldRuleRequired(t *testing.T) {
	training := mustGroup(t,
		record.Record{"test1", "test3", "test6", "true"},
		record.Record{"test1", "test3", "test5", "false"},
		record.Record{"test3", "test4", "test6", "false"},
		record.Record{"test1", "test4", "test5", "true"},
	)
	rules, err := induce.Induce(training, induce.Options{})
	require.NoError(t, err)

	rendered := make(map[string]bool)
	for _, g := range rules.Groups() {
		rendered[g.String()] = true
	}
	require.True(t, rendered["[0->test3]"], "expected rule [0->test3], got %v", rendered)
	require.True(t, rendered["[1->test3, 2->test5]"], "expected rule [1->test3, 2->test5], got %v", rendered)
}

// S3: a record sharing every classify field with one of the other label
// must surface ContradictoryTraining.
func TestContradictionDetected(t *testing.T) {
	training := mustGroup(t,
		record.Record{"v1", "v3", "v5", "false"},
		record.Record{"v1", "v3", "v5", "true"},
	)
	_, err := induce.Induce(training, induce.Options{})
	require.Error(t, err)
}

// S4: a training set with only one label class fails before any
// induction work starts.
func TestOnlyInvalidLabelsIsInputError(t *testing.T) {
	training := mustGroup(t,
		record.Record{"a", "b", "false"},
		record.Record{"c", "d", "false"},
	)
	_, err := induce.Induce(training, induce.Options{})
	require.Error(t, err)
}

// S5: excluding the only field that distinguishes two otherwise-identical
// records from different classes makes them contradictory on the
// remaining classify fields.
func TestExclusionCanCauseContradiction(t *testing.T) {
	training := mustGroup(t,
		record.Record{"value1", "value2", "true"},
		record.Record{"value1", "value3", "false"},
	)
	_, err := induce.Induce(training, induce.Options{Exclude: []predicate.Field{1}})
	require.Error(t, err)
}

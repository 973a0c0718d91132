package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ruleforge/predicate"
)

func TestNewRejectsNegativeField(t *testing.T) {
	_, err := predicate.New(-1, "x")
	require.Error(t, err)
}

func TestNewAllowsEmptyValue(t *testing.T) {
	p, err := predicate.New(0, "")
	require.NoError(t, err)
	require.True(t, p.Passes([]string{""}))
}

func TestFromRecordRejectsOutOfRange(t *testing.T) {
	_, err := predicate.FromRecord([]string{"a"}, 5)
	require.Error(t, err)
}

func TestPassesFailsOnShortRecord(t *testing.T) {
	p, err := predicate.New(1, "x")
	require.NoError(t, err)
	require.False(t, p.Passes([]string{"only-one"}))
	require.False(t, p.Passes(nil))
}

func TestPassesMatchesExactValue(t *testing.T) {
	p, err := predicate.New(1, "test2")
	require.NoError(t, err)
	require.True(t, p.Passes([]string{"test1", "test2", "test3"}))
	require.False(t, p.Passes([]string{"test1", "wrong", "test3"}))
}

func TestCompareOrdersByFieldThenValue(t *testing.T) {
	a, _ := predicate.New(1, "a")
	b, _ := predicate.New(1, "b")
	c, _ := predicate.New(2, "a")

	require.Negative(t, a.Compare(b))
	require.Negative(t, a.Compare(c))
	require.Positive(t, c.Compare(a))
}

func TestEqualAndSameField(t *testing.T) {
	a, _ := predicate.New(1, "x")
	b, _ := predicate.New(1, "x")
	c, _ := predicate.New(1, "y")

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.True(t, a.SameField(c))
}

func TestString(t *testing.T) {
	p, _ := predicate.New(3, "hello")
	require.Equal(t, "3->hello", p.String())
}

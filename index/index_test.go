package index_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/ruleforge/index"
	"github.com/katalvlaran/ruleforge/predicate"
	"github.com/katalvlaran/ruleforge/record"
)

func group(t *testing.T, recs ...record.Record) *record.Group {
	t.Helper()
	g, err := record.NewGroup(recs)
	require.NoError(t, err)
	return g
}

type IndexSuite struct {
	suite.Suite
}

func (s *IndexSuite) TestConstructionRejectsEmpty() {
	_, err := index.New(nil, nil)
	s.Require().Error(err)
}

func (s *IndexSuite) TestConstructionRejectsExcludingEverything() {
	recs := group(s.T(),
		record.Record{"a", "b", "true"},
		record.Record{"a", "c", "false"},
	)
	_, err := index.New(recs, []predicate.Field{0, 1})
	s.Require().Error(err)
}

func (s *IndexSuite) TestSingleFieldSelection() {
	// Two records differing only on field 1; field 1 alone separates them.
	recs := group(s.T(),
		record.Record{"value1", "value2", "true"},
		record.Record{"value1", "value3", "false"},
	)
	idx, err := index.New(recs, nil)
	s.Require().NoError(err)
	s.False(idx.IsEmpty())

	g, ok := idx.SelectLargest()
	s.True(ok)
	s.Equal(1, g.Arity())
}

func (s *IndexSuite) TestDeleteLastRemovesCoverage() {
	recs := group(s.T(),
		record.Record{"test1", "test3", "test6", "true"},
		record.Record{"test1", "test3", "test5", "false"},
		record.Record{"test3", "test4", "test6", "false"},
		record.Record{"test1", "test4", "test5", "true"},
	)
	idx, err := index.New(recs, nil)
	s.Require().NoError(err)

	// classify fields are 0,1,2; field 0 value "test3" appears only on r2
	// ("test3","test4","test6") among these four at arity 1.
	pOk, err := predicate.New(0, "test3")
	s.Require().NoError(err)
	target := predicate.Of(pOk)
	s.True(idx.HasGroup(target))

	g, ok := idx.SelectLargest()
	s.Require().True(ok)
	s.Equal("[0->test1]", g.String()) // covers r0,r1,r3, the unique largest group

	// Deleting it strips r0, r1, r3 out of every other group they covered,
	// leaving only groups still anchored on r2 ("test3","test4","test6"),
	// each now covering exactly that one record.
	next, hasNext, err := idx.DeleteLast()
	s.Require().NoError(err)
	s.False(idx.HasGroup(g))
	s.True(hasNext)
	s.Equal(1, next.Arity())
	s.True(next.Passes([]string(recs.Records[2])))

	survivors := map[string]bool{"[0->test3]": true, "[1->test4]": true, "[2->test6]": true}
	s.True(survivors[next.String()], "unexpected next group %s", next.String())
	s.Len(forwardGroups(idx), len(survivors))
}

func (s *IndexSuite) TestDeleteLastWithoutSelectIsInvariantViolation() {
	recs := group(s.T(), record.Record{"a", "true"}, record.Record{"b", "false"})
	idx, err := index.New(recs, nil)
	s.Require().NoError(err)
	_, _, err = idx.DeleteLast()
	s.Require().Error(err)
}

func (s *IndexSuite) TestIncrArityGrowsSpecificity() {
	recs := group(s.T(),
		record.Record{"test1", "test3", "test6", "true"},
		record.Record{"test1", "test3", "test5", "false"},
		record.Record{"test3", "test4", "test6", "false"},
		record.Record{"test1", "test4", "test5", "true"},
	)
	idx, err := index.New(recs, nil)
	s.Require().NoError(err)
	s.Equal(1, idx.Arity())
	s.Require().NoError(idx.IncrArity())
	s.Equal(2, idx.Arity())
	for _, e := range forwardGroups(idx) {
		s.Equal(2, e.Arity())
	}
}

func (s *IndexSuite) TestOneFiltersAllFieldsBecomesTrueAtMaxArity() {
	recs := group(s.T(), record.Record{"a", "true"}, record.Record{"b", "false"})
	idx, err := index.New(recs, nil)
	s.Require().NoError(err)
	s.True(idx.OneFiltersAllFields()) // single classify field, arity already 1
}

// forwardGroups drains every group currently in the index via repeated
// selection, without mutating coverage (selection alone never deletes).
func forwardGroups(idx *index.TrainingIndex) []predicate.Group {
	var out []predicate.Group
	g, ok := idx.SelectLargest()
	for ok {
		out = append(out, g)
		g, ok = idx.SelectNextLargest()
	}
	return out
}

func TestIndexSuite(t *testing.T) {
	suite.Run(t, new(IndexSuite))
}

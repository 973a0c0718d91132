package gendata_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ruleforge/internal/gendata"
)

// TestGeneratorLabelsMatchValidation reproduces TestRecordCreator.java's
// own worked example: three fields with three values each, one banned
// value in each of the first two fields, and combination rules permitting a narrow set of
// third-field values. Every generated record's label must agree with a
// fresh application of the same rules.
func TestGeneratorLabelsMatchValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	fields := []gendata.ValueRule{
		gendata.NewEqual(rng, "test11", "test12", "test13"),
		gendata.NewEqual(rng, "test21", "test22", "test23"),
		gendata.NewEqual(rng, "test31", "test32", "test33"),
	}

	validation := []gendata.ValidationRule{
		gendata.NewSimpleValuesRule(0, true, "test12"),
		gendata.NewSimpleValuesRule(1, true, "test22"),
		gendata.NewCombinationValuesRule(0, "test11", 1, "test21", 2, false, "test31", "test32"),
		gendata.NewCombinationValuesRule(0, "test13", 1, "test23", 2, false, "test31", "test32"),
		gendata.NewCombinationValuesRule(0, "test11", 1, "test23", 2, false, "test32", "test33"),
		gendata.NewCombinationValuesRule(0, "test13", 1, "test21", 2, false, "test31", "test33"),
	}

	g := gendata.New(fields, validation)
	group, err := g.Generate(200)
	require.NoError(t, err)
	require.Equal(t, 200, len(group.Records))
	require.Equal(t, 4, group.Arity)

	for i, rec := range group.Records {
		want := true
		for _, v := range validation {
			if v.FailsValidation(rec[:3]) {
				want = false
				break
			}
		}
		label, err := group.Label(i)
		require.NoError(t, err)
		require.Equal(t, want, bool(label))
	}
}

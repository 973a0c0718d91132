package record_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ruleforge/record"
)

func TestReadCSVSkipsBlankLines(t *testing.T) {
	in := "a,b,true\n\nc,d,false\n"
	g, err := record.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, g.Records, 2)
}

func TestReadCSVRejectsMismatchedArity(t *testing.T) {
	in := "a,b,true\nc,d,e,false\n"
	_, err := record.ReadCSV(strings.NewReader(in))
	require.Error(t, err)
}

func TestReadCSVRejectsEmptyInput(t *testing.T) {
	_, err := record.ReadCSV(strings.NewReader(""))
	require.Error(t, err)
}

// P7: a CSV write followed by a CSV read yields a record-equal dataset.
func TestCSVRoundTrip(t *testing.T) {
	g, err := record.NewGroup([]record.Record{
		{"a", "b", "true"},
		{"c", "d", "false"},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, record.WriteCSV(&buf, g))

	roundTripped, err := record.ReadCSV(&buf)
	require.NoError(t, err)
	require.Equal(t, g.Records, roundTripped.Records)
}

func TestParseLabel(t *testing.T) {
	v, err := record.ParseLabel("true")
	require.NoError(t, err)
	require.Equal(t, record.Valid, v)

	inv, err := record.ParseLabel("false")
	require.NoError(t, err)
	require.Equal(t, record.Invalid, inv)

	_, err = record.ParseLabel("maybe")
	require.Error(t, err)
}

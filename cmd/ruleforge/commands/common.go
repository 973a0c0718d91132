package commands

import (
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/ruleforge/errs"
	"github.com/katalvlaran/ruleforge/predicate"
	"github.com/katalvlaran/ruleforge/record"
)

// parseIgnoreFields parses a comma-separated list of non-negative field
// indices with no spaces, per the CLI surface's "ignore-fields" argument.
// An empty string yields no exclusions.
func parseIgnoreFields(s string) ([]predicate.Field, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	fields := make([]predicate.Field, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, errs.Input("ignore-fields must be a comma-separated list of non-negative integers, got "+strconv.Quote(s), err)
		}
		fields = append(fields, predicate.Field(n))
	}
	return fields, nil
}

func readRecordsFile(path string) (*record.Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Input("opening "+path, err)
	}
	defer f.Close()
	return record.ReadCSV(f)
}

func writeRecordsFile(path string, g *record.Group) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return record.WriteCSV(f, g)
}

func createFile(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errs.Output("creating "+path, err)
	}
	return f, nil
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Input("opening "+path, err)
	}
	return f, nil
}

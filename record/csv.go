package record

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/ruleforge/errs"
)

// ReadCSV reads the line-oriented, comma-separated format spec'd for
// ruleforge: one record per line, fields split on a single ',', no
// escaping and no quoting. Blank lines are skipped. Every non-blank line
// must split into the same number of fields as the first one, or the read
// fails.
//
// This is deliberately not encoding/csv: that package (and every
// third-party CSV library built on the same RFC 4180 model) interprets
// quotes and escapes fields it is given. This format has none of that —
// a literal comma always ends a field, full stop — so a plain
// split-on-comma scan is the only implementation that doesn't silently
// reinterpret input the wire format says is unambiguous.
func ReadCSV(r io.Reader) (*Group, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var recs []Record
	arity := -1
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if arity == -1 {
			arity = len(fields)
		} else if len(fields) != arity {
			return nil, errs.Input(fmt.Sprintf("line %d has %d fields, expected %d", lineNo, len(fields), arity), nil)
		}
		recs = append(recs, Record(fields))
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Input("reading CSV", err)
	}
	if len(recs) == 0 {
		return nil, errs.Input("input file has no records", nil)
	}
	return NewGroup(recs)
}

// WriteCSV writes g back out in the same format ReadCSV accepts: one
// record per line, fields joined with ',', no trailing blank line beyond
// each record's own newline.
func WriteCSV(w io.Writer, g *Group) error {
	bw := bufio.NewWriter(w)
	for _, r := range g.Records {
		if _, err := bw.WriteString(strings.Join([]string(r), ",")); err != nil {
			return errs.Output("writing CSV", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errs.Output("writing CSV", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return errs.Output("writing CSV", err)
	}
	return nil
}

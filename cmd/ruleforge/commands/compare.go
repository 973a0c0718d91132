package commands

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ruleforge/errs"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <baseline-file> <results-file> <mismatches-output-file>",
		Short: "Report records where the results file's classification differs from the baseline",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(args[0], args[1], args[2])
		},
	}
}

// runCompare walks baseline and results in lockstep. Lines with identical
// record fields but differing classifications are written to the
// mismatches file; a difference in the record fields themselves, or a
// difference in line counts, is an InputError since the two files no
// longer describe the same records.
func runCompare(baselinePath, resultsPath, mismatchesPath string) error {
	baseline, err := openFile(baselinePath)
	if err != nil {
		return err
	}
	defer baseline.Close()

	results, err := openFile(resultsPath)
	if err != nil {
		return err
	}
	defer results.Close()

	out, err := createFile(mismatchesPath)
	if err != nil {
		return err
	}
	defer out.Close()
	w := bufio.NewWriter(out)

	baseScanner := bufio.NewScanner(baseline)
	resultScanner := bufio.NewScanner(results)

	mismatches := 0
	lineNum := 0
	for {
		baseOK := baseScanner.Scan()
		resultOK := resultScanner.Scan()
		if !baseOK && !resultOK {
			break
		}
		if baseOK != resultOK {
			return errs.Input("baseline and results files have unequal number of records", nil)
		}
		lineNum++

		baseLine := baseScanner.Text()
		resultLine := resultScanner.Text()
		if baseLine == resultLine {
			continue
		}

		baseCut := strings.LastIndex(baseLine, ",")
		resultCut := strings.LastIndex(resultLine, ",")
		if baseCut == -1 || resultCut == -1 {
			return errs.Input("record at line "+strconv.Itoa(lineNum)+" of baseline or results has no record fields", nil)
		}
		baseRecord := baseLine[:baseCut]
		resultRecord := resultLine[:resultCut]
		if baseRecord != resultRecord {
			return errs.Input("records in baseline and results do not line up at line "+strconv.Itoa(lineNum), nil)
		}

		mismatches++
		line := "Record: " + resultRecord +
			" Baseline: " + baseLine[baseCut+1:] +
			" Result: " + resultLine[resultCut+1:] + "\n"
		if _, err := w.WriteString(line); err != nil {
			return errs.Output("writing "+mismatchesPath, err)
		}
	}
	if err := baseScanner.Err(); err != nil {
		return errs.Input("reading "+baselinePath, err)
	}
	if err := resultScanner.Err(); err != nil {
		return errs.Input("reading "+resultsPath, err)
	}
	if err := w.Flush(); err != nil {
		return errs.Output("writing "+mismatchesPath, err)
	}

	Log.WithFields(logrus.Fields{
		"records":    lineNum,
		"mismatches": mismatches,
	}).Info("compare: done")
	return nil
}

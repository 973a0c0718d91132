package commands

import (
	"bufio"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ruleforge/errs"
)

func newSliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slice <input-file> <slice-output-file> <remainder-output-file> <first-slice-line> <slice-count>",
		Short: "Extract a contiguous run of lines from a data file, leaving the rest in a second file",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			firstLine, err := strconv.Atoi(args[3])
			if err != nil || firstLine <= 0 {
				return errs.Input("first slice line must be a positive integer", err)
			}
			count, err := strconv.Atoi(args[4])
			if err != nil || count <= 0 {
				return errs.Input("slice count must be a positive integer", err)
			}
			return runSlice(args[0], args[1], args[2], firstLine, count)
		},
	}
}

// runSlice copies lines [firstLine, firstLine+count) of input (1-based,
// inclusive) to sliceOut and every other line to remainderOut, preserving
// order in both outputs. An input shorter than firstLine is an InputError.
func runSlice(inputPath, sliceOutPath, remainderOutPath string, firstLine, count int) error {
	in, err := openFile(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	sliceOut, err := createFile(sliceOutPath)
	if err != nil {
		return err
	}
	defer sliceOut.Close()

	remainderOut, err := createFile(remainderOutPath)
	if err != nil {
		return err
	}
	defer remainderOut.Close()

	sliceW := bufio.NewWriter(sliceOut)
	remainderW := bufio.NewWriter(remainderOut)
	firstNonSliceLine := firstLine + count

	lineNum := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if lineNum >= firstLine && lineNum < firstNonSliceLine {
			if _, err := sliceW.WriteString(line + "\n"); err != nil {
				return errs.Output("writing "+sliceOutPath, err)
			}
		} else {
			if _, err := remainderW.WriteString(line + "\n"); err != nil {
				return errs.Output("writing "+remainderOutPath, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return errs.Input("reading "+inputPath, err)
	}
	if lineNum < firstLine {
		return errs.Input("input file has only "+strconv.Itoa(lineNum)+" lines, not sliced", nil)
	}
	if err := sliceW.Flush(); err != nil {
		return errs.Output("writing "+sliceOutPath, err)
	}
	if err := remainderW.Flush(); err != nil {
		return errs.Output("writing "+remainderOutPath, err)
	}

	Log.WithFields(logrus.Fields{
		"input_lines":  lineNum,
		"slice_lines":  min(count, lineNum-firstLine+1),
		"first_line":   firstLine,
		"slice_output": sliceOutPath,
	}).Info("slice: done")
	return nil
}

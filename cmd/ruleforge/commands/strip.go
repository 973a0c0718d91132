package commands

import (
	"bufio"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ruleforge/errs"
)

func newStripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strip <input-file> <output-file>",
		Short: "Remove the trailing classification field from every line of a CSV file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrip(args[0], args[1])
		},
	}
}

// runStrip cuts each input line at its last comma and writes the prefix, so
// a classified file can be replayed through classify without its labels.
// A line with no comma produces an empty output line and a warning, matching
// the original tool's tolerant behavior.
func runStrip(inputPath, outputPath string) error {
	in, err := openFile(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := createFile(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()
	w := bufio.NewWriter(out)

	lineNum := 0
	warnings := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		cut := strings.LastIndex(line, ",")
		stripped := ""
		if cut == -1 {
			warnings++
			Log.WithField("line", lineNum).Warn("strip: no comma field found, result is empty")
		} else {
			stripped = line[:cut]
		}
		if _, err := w.WriteString(stripped + "\n"); err != nil {
			return errs.Output("writing "+outputPath, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return errs.Input("reading "+inputPath, err)
	}
	if err := w.Flush(); err != nil {
		return errs.Output("writing "+outputPath, err)
	}

	Log.WithFields(logrus.Fields{
		"lines":    lineNum,
		"warnings": warnings,
	}).Info("strip: done")
	return nil
}

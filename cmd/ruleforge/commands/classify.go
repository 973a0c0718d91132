package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ruleforge/classify"
	"github.com/katalvlaran/ruleforge/errs"
	"github.com/katalvlaran/ruleforge/induce"
)

func newClassifyCmd() *cobra.Command {
	var ignoreFields string
	var dumpRules string

	cmd := &cobra.Command{
		Use:   "classify <training-file> <to-classify-file> <output-file> [ignore-fields]",
		Short: "Learn rules from a training file and classify another file",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ignore := ignoreFields
			if len(args) == 4 {
				ignore = args[3]
			}
			return runClassify(args[0], args[1], args[2], ignore, dumpRules)
		},
	}
	cmd.Flags().StringVar(&ignoreFields, "ignore-fields", "", "Comma-separated field indices excluded from rule induction (overridden by the positional form)")
	cmd.Flags().StringVar(&dumpRules, "dump-rules", "", "Optional path to write the learned rule set's stable rendering")
	return cmd
}

func runClassify(trainingPath, toClassifyPath, outputPath, ignoreFields, dumpRulesPath string) error {
	exclude, err := parseIgnoreFields(ignoreFields)
	if err != nil {
		return err
	}

	training, err := readRecordsFile(trainingPath)
	if err != nil {
		return err
	}

	Log.WithFields(logrus.Fields{
		"training_file": trainingPath,
		"records":       len(training.Records),
	}).Info("classify: learning rules")

	rules, err := induce.Induce(training, induce.Options{Exclude: exclude, Log: Log})
	if err != nil {
		return err
	}
	Log.WithField("rules", rules.Len()).Info("classify: induction complete")

	if dumpRulesPath != "" {
		if err := writeRulesFile(dumpRulesPath, rules); err != nil {
			return err
		}
	}

	toClassify, err := readRecordsFile(toClassifyPath)
	if err != nil {
		return err
	}
	classify.ClassifyAll(toClassify, rules)

	if err := writeRecordsFile(outputPath, toClassify); err != nil {
		return err
	}
	Log.WithFields(logrus.Fields{
		"output_file": outputPath,
		"records":     len(toClassify.Records),
	}).Info("classify: wrote classified records")
	return nil
}

func writeRulesFile(path string, rules fmt.Stringer) error {
	return writeTextFile(path, rules.String())
}

func writeTextFile(path, content string) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteString(content + "\n"); err != nil {
		return errs.Output("writing "+path, err)
	}
	return nil
}

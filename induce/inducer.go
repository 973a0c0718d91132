// Package induce drives the Induction Learning Algorithm: it splits
// labelled training data into valid and invalid classes, grows a
// TrainingIndex for each in lock-step, and emits the shortest predicate
// groups that select invalid records without ever selecting a valid one.
package induce

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/ruleforge/errs"
	"github.com/katalvlaran/ruleforge/index"
	"github.com/katalvlaran/ruleforge/predicate"
	"github.com/katalvlaran/ruleforge/record"
	"github.com/katalvlaran/ruleforge/ruleset"
)

// Options configures a single induction run.
type Options struct {
	// Exclude names additional fields (beyond the implicit label field)
	// to drop from classification.
	Exclude []predicate.Field
	// Log receives structured progress at each outer-loop iteration. Nil
	// is treated as a discard logger.
	Log *logrus.Logger
}

// Induce runs ILA over trainingSet (labels in the final field of every
// record) and returns the learned RuleSet. It fails with an InputError if
// the training set is empty, has fewer than two fields per record, or is
// missing either label class; with ContradictoryTraining if a valid and
// an invalid record agree on every classify field; and with an
// InvariantViolation if either TrainingIndex detects internal corruption,
// in which case no partial RuleSet is returned.
func Induce(trainingSet *record.Group, opts Options) (*ruleset.RuleSet, error) {
	base := opts.Log
	if base == nil {
		base = discardLogger()
	}
	log := base.WithField("run_id", uuid.NewString())

	if trainingSet == nil || len(trainingSet.Records) == 0 {
		return nil, errs.Input("training set must be non-empty", nil)
	}
	if trainingSet.Arity < 2 {
		return nil, errs.Input("training records need at least one field plus a label", nil)
	}

	validRecs, invalidRecs, err := splitByLabel(trainingSet)
	if err != nil {
		return nil, err
	}
	if len(validRecs) == 0 || len(invalidRecs) == 0 {
		return nil, errs.Input("training set must contain both valid and invalid examples", nil)
	}

	validGroup, err := record.NewGroup(validRecs)
	if err != nil {
		return nil, err
	}
	invalidGroup, err := record.NewGroup(invalidRecs)
	if err != nil {
		return nil, err
	}

	valid, err := index.New(validGroup, opts.Exclude)
	if err != nil {
		return nil, err
	}
	invalid, err := index.New(invalidGroup, opts.Exclude)
	if err != nil {
		return nil, err
	}

	rules := ruleset.New()
	iterations := 0
	for !invalid.IsEmpty() && !invalid.OneFiltersAllFields() {
		iterations++
		log.WithFields(logrus.Fields{
			"iteration": iterations,
			"arity":     invalid.Arity(),
		}).Debug("induction: outer loop iteration")

		g, ok := invalid.SelectLargest()
		for ok {
			if !valid.HasGroup(g) {
				rules.Add(g)
				log.WithFields(logrus.Fields{
					"rule":  g.String(),
					"arity": g.Arity(),
				}).Debug("induction: emitted rule")
				g, ok, err = invalid.DeleteLast()
				if err != nil {
					return nil, err
				}
			} else {
				g, ok = invalid.SelectNextLargest()
			}
		}

		if !invalid.IsEmpty() && !invalid.OneFiltersAllFields() {
			if err := invalid.IncrArity(); err != nil {
				return nil, err
			}
			if err := valid.IncrArity(); err != nil {
				return nil, err
			}
		}
	}

	if !invalid.IsEmpty() {
		return nil, errs.Contradictory("a valid and an invalid training record share every classify field value")
	}

	log.WithFields(logrus.Fields{
		"rules":      rules.Len(),
		"iterations": iterations,
	}).Info("induction complete")
	return rules, nil
}

func splitByLabel(trainingSet *record.Group) (valid, invalid []record.Record, err error) {
	for i, r := range trainingSet.Records {
		label, lerr := trainingSet.Label(i)
		if lerr != nil {
			return nil, nil, lerr
		}
		if label == record.Valid {
			valid = append(valid, r)
		} else {
			invalid = append(invalid, r)
		}
	}
	return valid, invalid, nil
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

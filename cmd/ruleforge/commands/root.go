// Package commands implements the ruleforge CLI subcommands: classify,
// slice, strip, and compare. Each is a thin cobra.Command that does file
// I/O and one call into the core packages, following
// KleaSCM-Akaylee's cmd/fuzzer/commands split of "one file per verb,
// RunE does the work, shared setup lives in root.go".
package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/ruleforge/internal/logging"
)

// Log is the shared logger every subcommand's RunE uses, configured by
// root.PersistentPreRunE before any subcommand body runs.
var Log *logrus.Logger

// NewRoot builds the ruleforge root command with its persistent logging
// flags and every subcommand attached.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:     "ruleforge",
		Short:   "Learn and apply categorical filter rules for record validation",
		Version: "1.0.0",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("log-level", "info", "Logging level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "text", "Logging format (text, json)")
	_ = viper.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log_format", root.PersistentFlags().Lookup("log-format"))

	root.AddCommand(newClassifyCmd())
	root.AddCommand(newSliceCmd())
	root.AddCommand(newStripCmd())
	root.AddCommand(newCompareCmd())
	return root
}

func setupLogging() error {
	l, err := logging.New(logging.Config{
		Level:  logging.Level(viper.GetString("log_level")),
		Format: logging.Format(viper.GetString("log_format")),
	})
	if err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}
	Log = l
	return nil
}

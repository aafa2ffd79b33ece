// Package cli assembles the confval command-line tool's cobra command
// tree. It is kept separate from package main (as the teacher repo
// keeps its command wiring under an internal package of its own) so
// the command tree can be exercised directly in tests without going
// through os.Args.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// globalFlags holds state shared across every subcommand.
type globalFlags struct {
	color string // "auto", "always", "never"
}

// NewRootCommand builds the confval command tree. logger is the
// ambient diagnostics sink (grounded on the teacher's zap-based
// logging throughout its own cmd tree); subcommands log only at Debug,
// for steps a user wouldn't normally want to see, and report failures
// as returned errors.
func NewRootCommand(logger *zap.SugaredLogger) *cobra.Command {
	flags := &globalFlags{color: "auto"}

	root := &cobra.Command{
		Use:           "confval",
		Short:         "Inspect, print, and diff confval configuration values",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.color, "color", "auto", `colorize output: "auto", "always", or "never"`)

	root.AddCommand(newParseCommand(logger, flags))
	root.AddCommand(newDiffCommand(logger, flags))
	root.AddCommand(newLoadCommand(logger, flags))

	return root
}

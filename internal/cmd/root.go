// Package cmd wires the wellscreen CLI: the interactive questionnaire
// runner, the HTTP serve mode, and catalog validation.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for wellscreen
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wellscreen",
		Short: "Emotional-wellbeing screening questionnaire",
		Long: `Wellscreen runs a self-administered emotional-wellbeing screening:
a fixed battery of Likert items in three categories plus one safety
question, scored into a severity tier with a triage recommendation.

Results can be reviewed in the terminal, exported as an HTML report,
and submitted once per session to a configured results sink.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewRunCommand())
	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewValidateCommand())

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"
)

// RootCmd is the root command for the CLI
var RootCmd = &cobra.Command{
	Use:   "dp",
	Short: "dp - keyboard-driven date picker",
	Long: `A terminal date picker. Type a date or browse a calendar with the keyboard;
the chosen date is printed to stdout as MM/DD/YYYY.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPick,
}

func init() {
	addPickFlags(RootCmd)

	RootCmd.AddCommand(pickCmd)
	RootCmd.AddCommand(validateCmd)
	RootCmd.AddCommand(gridCmd)
	RootCmd.AddCommand(parseCmd)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

package cli

import (
	"fmt"
	"time"

	"github.com/MikeBiancalana/datepicker/internal/caldate"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <text>",
	Short: "Check that text is a valid MM/DD/YYYY date",
	Long: `Checks text with the same rules the picker applies to its input: a month of
1-12, a four-digit year and a day that exists in that month. Prints the date in
MM/DD/YYYY form and exits non-zero when the text is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := args[0]
		if err := caldate.Validate(text); err != nil {
			return fmt.Errorf("%q: %w", text, err)
		}

		// Empty text is valid and has nothing to print.
		if d, ok := caldate.ParseLenient(text, false, time.Time{}); ok {
			fmt.Fprintln(cmd.OutOrStdout(), d.Format())
		}
		return nil
	},
}

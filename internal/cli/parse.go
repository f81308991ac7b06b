package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/MikeBiancalana/datepicker/internal/caldate"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Show how the picker reads a date",
	Long: `Shows the date the calendar opens on for text, including two-digit year
expansion, and whether the text would pass validation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := describeParse(args[0], time.Now())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

// describeParse reports the lenient reading of text and its strict validity.
func describeParse(text string, now time.Time) (string, error) {
	d, ok := caldate.ParseLenient(text, true, now)
	if !ok {
		return "", fmt.Errorf("%q: no date could be read", text)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "input:  %s\n", text)
	fmt.Fprintf(&b, "date:   %s\n", d.Format())
	fmt.Fprintf(&b, "label:  %s\n", d.Label())
	if err := caldate.Validate(text); err != nil {
		fmt.Fprintf(&b, "strict: invalid (%s)\n", err)
	} else {
		fmt.Fprintf(&b, "strict: valid\n")
	}
	return b.String(), nil
}

package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/MikeBiancalana/datepicker/internal/caldate"
	"github.com/spf13/cobra"
)

var weekdayAbbrs = []string{"S", "M", "T", "W", "Th", "F", "S"}

var gridCmd = &cobra.Command{
	Use:   "grid [date]",
	Short: "Print the day grid for a date",
	Long: `Prints the calendar grid the picker shows for a date (today by default).
The date is marked with brackets and days of the neighbouring months with
parentheses.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		focus := caldate.Today(now)
		if len(args) == 1 {
			d, ok := caldate.ParseLenient(args[0], true, now)
			if !ok {
				return fmt.Errorf("%q: no date could be read", args[0])
			}
			focus = d
		}

		fmt.Fprint(cmd.OutOrStdout(), formatGrid(focus))
		return nil
	},
}

// formatGrid renders the day grid for focus as text, one week per line.
func formatGrid(focus caldate.Date) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", focus.Month(), focus.Year())

	for _, abbr := range weekdayAbbrs {
		fmt.Fprintf(&b, " %2s ", abbr)
	}
	b.WriteString("\n")

	for _, week := range caldate.Weeks(caldate.DayGrid(focus)) {
		for _, c := range week {
			switch {
			case c.Focused:
				fmt.Fprintf(&b, "[%2d]", c.Date.Day())
			case c.Adjacent():
				fmt.Fprintf(&b, "(%2d)", c.Date.Day())
			default:
				fmt.Fprintf(&b, " %2d ", c.Date.Day())
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

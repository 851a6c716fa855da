package cli

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridcal/pkg/errors"
	"github.com/matzehuels/gridcal/pkg/isoweek"
)

// weekCommand creates the "week YEAR WEEK" command.
func (c *CLI) weekCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "week YEAR WEEK",
		Short:   "Print the date range of an ISO week",
		Example: "  gridcal week 2026 53",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			week, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.New(errors.ErrCodeInvalidWeek, "week must be a number, got %q", args[1])
			}

			r, err := isoweek.WeekRange(year, week)
			if err != nil {
				return err
			}

			printKeyValue("Week", fmt.Sprintf("%d-W%02d", year, week))
			printKeyValue("Range", r.String())
			printKeyValue("Dates", r.Start.String()+" … "+r.End.String())
			if week == isoweek.MaxWeek && !isoweek.HasWeek53(year) {
				printInfo("%d has only 52 weeks; this is week 1 of %d", year, year+1)
			}
			return nil
		},
	}
}

// weeksCommand creates the "weeks YEAR" command.
func (c *CLI) weeksCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "weeks YEAR",
		Short: "List every ISO week of a year",
		Long: `List every ISO week of a year with its date range.

With -i, open an interactive browser: ←/→ change the year, q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			if interactive {
				_, err := tea.NewProgram(newWeekBrowser(year), tea.WithContext(cmd.Context())).Run()
				return err
			}
			fmt.Fprintln(stdout, weeksTable(year, currentWeek(year), 0, isoweek.MaxWeek))
			printDetail("%d ISO weeks", isoweek.WeeksInYear(year))
			printNextStep("Browse years", fmt.Sprintf("%s weeks %d -i", appName, year))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse years interactively")
	return cmd
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidYear, "year must be a number, got %q", s)
	}
	if err := errors.ValidateYear(year); err != nil {
		return 0, err
	}
	return year, nil
}

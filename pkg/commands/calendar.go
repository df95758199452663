package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/questnote/pkg/commands/options"
	"tableflip.dev/questnote/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command, e *env) {
	co := &options.CalendarOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     "calendar [YYYY-MM]",
		Aliases: []string{"cal"},
		Short:   "Show a month with the days you played marked",
		Long: `Show a month calendar. Days with at least one diary entry are bold and
today is underlined.

With --interactive the calendar opens full screen:
  arrows / hjkl   move the cursor
  [ ] / n p       previous or next month
  t               jump to today
  enter           list the entries of the selected day
  q               quit`,
		Example: `
questnote calendar
questnote calendar 2025-02 --long
questnote cal -i
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.service(cmd.Context())
			if err != nil {
				return err
			}
			c := calendar.Calendar{
				Long:        co.Long,
				Interactive: i.Interactive,
				Service:     svc,
				Logger:      e.log(),
				Out:         cmd.OutOrStdout(),
			}
			if len(args) > 0 {
				c.Month = args[0]
			}
			return c.Do(cmd.Context())
		},
	}

	options.AddCalendarArgs(cmd, co)
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}

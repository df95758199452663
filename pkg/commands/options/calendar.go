package options

import (
	"github.com/spf13/cobra"
)

// CalendarOptions
type CalendarOptions struct {
	Long bool
}

func AddCalendarArgs(cmd *cobra.Command, o *CalendarOptions) {
	cmd.Flags().BoolVarP(&o.Long, "long", "l", false,
		"List every day of the month with its entries.")
}

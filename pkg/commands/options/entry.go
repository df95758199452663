package options

import (
	"github.com/spf13/cobra"
)

// EntryOptions
type EntryOptions struct {
	Accomplished string
	Goal         string
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVar(&o.Accomplished, "accomplished", "",
		"What got done this session, used when no entry text is given.")
	cmd.Flags().StringVar(&o.Goal, "goal", "",
		"The goal for next session, used when no entry text is given.")
}

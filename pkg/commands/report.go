package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/questnote/pkg/commands/options"
	"tableflip.dev/questnote/pkg/runner/report"
)

func addReport(topLevel *cobra.Command, e *env) {
	var last string
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show recent entries grouped by game",
		Long: `Report lists the entries recorded within a time window, grouped by game
with the most recently played game first.`,
		Example: `
questnote report
questnote report --last 3d
questnote report --last 1w2d
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			window, label, err := report.ParseWindow(last)
			if err != nil {
				return err
			}
			svc, err := e.service(cmd.Context())
			if err != nil {
				return err
			}
			e.log().Debug("report window", zap.String("last", label))
			r := report.Report{
				Window:  window,
				ShowID:  io.ShowID,
				Service: svc,
				Out:     cmd.OutOrStdout(),
			}
			return r.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&last, "last", report.DefaultWindow, "time window to include (for example 3d, 1w)")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

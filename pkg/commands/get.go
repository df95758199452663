package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/questnote/pkg/commands/options"
	"tableflip.dev/questnote/pkg/entry"
	"tableflip.dev/questnote/pkg/runner/get"
)

func addGet(topLevel *cobra.Command, e *env) {
	io := &options.IDOptions{}
	on := &options.OnOptions{}
	oo := &options.OutputOptions{}
	var table bool

	cmd := &cobra.Command{
		Use:   "get [game]",
		Short: "List diary entries, newest first",
		Example: `
questnote get
questnote get Hades
questnote get --on 6/1
`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return e.gameCompletions(cmd.Context(), toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.service(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			g := get.Get{
				ShowID:  io.ShowID,
				Table:   table,
				Service: svc,
				Out:     cmd.OutOrStdout(),
			}
			if len(args) > 0 {
				g.Game = args[0]
			}
			day, ok, err := on.GetOn(time.Now().In(svc.Location()))
			if err != nil {
				return oo.HandleError(err)
			}
			if ok {
				g.Day = day.String()
			}

			if oo.JSON {
				var list []entry.DiaryEntry
				switch {
				case ok:
					list = g.Filter(svc.EntriesOn(day))
				case g.Game != "":
					list = svc.EntriesForGame(g.Game)
				default:
					list = svc.Entries()
				}
				if list == nil {
					list = []entry.DiaryEntry{}
				}
				oo.Out = cmd.OutOrStdout()
				return oo.Print(list)
			}
			return oo.HandleError(g.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVarP(&table, "table", "t", false, "Print one row per entry.")

	topLevel.AddCommand(cmd)
}

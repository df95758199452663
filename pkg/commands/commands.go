package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

// New builds the questnote command tree.
func New() *cobra.Command {
	e := &env{}

	cmd := &cobra.Command{
		Use:   "questnote",
		Short: base.Wrap80("A game diary on the command line."),
		Long: base.Wrap80("Keep a short diary of what you played, what you got done " +
			"and what is next, browsable by game or on a month calendar."),
		SilenceUsage:      true,
		PersistentPreRunE: e.setup,
		PersistentPostRun: e.teardown,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	e.addFlags(cmd)

	AddCommands(cmd, e)
	return cmd
}

func AddCommands(topLevel *cobra.Command, e *env) {
	addAdd(topLevel, e)
	addGet(topLevel, e)
	addGames(topLevel, e)
	addRm(topLevel, e)
	addCalendar(topLevel, e)
	addReport(topLevel, e)
	addTranslate(topLevel, e, "questnote")
	addMCP(topLevel, e)
	addVersion(topLevel, "questnote")
	addCompletions(topLevel)
}

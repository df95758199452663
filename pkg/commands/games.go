package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/questnote/pkg/commands/options"
	"tableflip.dev/questnote/pkg/prompt"
	"tableflip.dev/questnote/pkg/runner/games"
	"tableflip.dev/questnote/pkg/runner/rm"
)

func addGames(topLevel *cobra.Command, e *env) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "games",
		Aliases: []string{"game", "ls"},
		Short:   "List tracked games, most recently played first",
		Example: `
questnote games
questnote games add "Hollow Knight"
questnote games rm "Hollow Knight"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.service(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			if oo.JSON {
				oo.Out = cmd.OutOrStdout()
				return oo.Print(svc.Games())
			}
			g := games.Games{Service: svc, Out: cmd.OutOrStdout()}
			return oo.HandleError(g.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, oo)

	addGamesAdd(cmd, e)
	addGamesRm(cmd, e)

	topLevel.AddCommand(cmd)
}

func addGamesAdd(parent *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Start tracking a game",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a game name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.service(cmd.Context())
			if err != nil {
				return err
			}
			a := games.Add{
				Name:    strings.Join(args, " "),
				Service: svc,
				Out:     cmd.OutOrStdout(),
			}
			return a.Do(cmd.Context())
		},
	}
	parent.AddCommand(cmd)
}

func addGamesRm(parent *cobra.Command, e *env) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove"},
		Short:   "Stop tracking a game; its entries are kept",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a game name")
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return e.gameCompletions(cmd.Context(), toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.service(cmd.Context())
			if err != nil {
				return err
			}
			r := rm.Game{
				Name:    strings.Join(args, " "),
				Yes:     co.Yes,
				Confirm: prompt.IO{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}.Confirm,
				Service: svc,
				Out:     cmd.OutOrStdout(),
			}
			return r.Do(cmd.Context())
		},
	}
	options.AddConfirmArgs(cmd, co)
	parent.AddCommand(cmd)
}

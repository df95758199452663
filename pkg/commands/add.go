package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/questnote/pkg/commands/options"
	"tableflip.dev/questnote/pkg/prompt"
	"tableflip.dev/questnote/pkg/runner/add"
)

const newGameChoice = "(new game)"

func addAdd(topLevel *cobra.Command, e *env) {
	eo := &options.EntryOptions{}
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add <game> [text]",
		Short: "Record a diary entry for a game",
		Example: `
questnote add "Hades" cleared Elysium for the first time
questnote add Zelda --accomplished "Beat the first dungeon" --goal "Find the bow"
questnote add -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if i.Interactive {
				return nil
			}
			if len(args) < 1 {
				return errors.New("requires a game")
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return e.gameCompletions(cmd.Context(), toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.service(cmd.Context())
			if err != nil {
				return err
			}
			a := add.Add{
				Accomplished: eo.Accomplished,
				Goal:         eo.Goal,
				ShowID:       io.ShowID,
				Service:      svc,
				Out:          cmd.OutOrStdout(),
			}
			if i.Interactive {
				if err := addWizard(prompt.IO{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}, svc.Games(), &a); err != nil {
					return oo.HandleError(err)
				}
			} else {
				a.Game = args[0]
				a.Text = strings.Join(args[1:], " ")
			}
			return oo.HandleError(a.Do(cmd.Context()))
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.AddShowIDArgs(cmd, io)
	options.InteractiveArgs(cmd, i)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

// addWizard fills a by asking for the game and the session notes.
func addWizard(p prompt.IO, games []string, a *add.Add) error {
	items := append(append([]string{}, games...), newGameChoice)
	idx, err := p.Choose("Game", items)
	if err != nil {
		return err
	}
	if items[idx] == newGameChoice {
		if a.Game, err = p.Text("Game title"); err != nil {
			return err
		}
	} else {
		a.Game = items[idx]
	}
	if a.Accomplished, err = p.Text("What did you get done"); err != nil {
		return err
	}
	if a.Goal, err = p.Text("Goal for next session"); err != nil {
		return err
	}
	return nil
}

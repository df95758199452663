package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/questnote/pkg/commands/options"
	"tableflip.dev/questnote/pkg/prompt"
	"tableflip.dev/questnote/pkg/runner/rm"
)

func addRm(topLevel *cobra.Command, e *env) {
	co := &options.ConfirmOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "rm <entry id>",
		Aliases: []string{"delete"},
		Short:   "Delete a diary entry",
		Example: `
questnote get -k
questnote rm 6c1b0f5e-3c8e-4a8f-9a55-0f6a8f0e2d11
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires one entry id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := e.service(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			r := rm.Entry{
				ID:      args[0],
				Yes:     co.Yes,
				Confirm: prompt.IO{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}.Confirm,
				Service: svc,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddConfirmArgs(cmd, co)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

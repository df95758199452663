package commands

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(questnote completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(questnote completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)
}

func (e *env) gameCompletions(ctx context.Context, toComplete string) []string {
	if ctx == nil {
		ctx = context.Background()
	}
	svc, err := e.service(ctx)
	if err != nil {
		return nil
	}
	prefix := strings.ToLower(toComplete)
	var out []string
	for _, g := range svc.Games() {
		if strings.HasPrefix(strings.ToLower(g), prefix) {
			out = append(out, strconv.Quote(g))
		}
	}
	return out
}

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/questnote/pkg/chat"
	"tableflip.dev/questnote/pkg/prompt"
	chatrunner "tableflip.dev/questnote/pkg/runner/chat"
)

// NewSpanishChat builds the spanishchat command tree.
func NewSpanishChat() *cobra.Command {
	e := &env{}

	cmd := &cobra.Command{
		Use:   "spanishchat [topic]",
		Short: base.Wrap80("Practice Spanish by answering questions on a topic."),
		Long: base.Wrap80("Each answer is translated to English and back so you can see " +
			"another way to say it. Move the cursor with up and down, press tab to " +
			"translate the highlighted message and esc to close it."),
		Example: `
spanishchat
spanishchat Food
spanishchat 3
`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		PersistentPreRunE: e.setup,
		PersistentPostRun: e.teardown,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			bank, err := chat.DefaultBank()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return bank.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, err := chat.DefaultBank()
			if err != nil {
				return err
			}
			var topic chat.Topic
			if len(args) > 0 {
				topic, err = bank.Find(strings.Join(args, " "))
			} else {
				topic, err = pickTopic(prompt.IO{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}, bank)
			}
			if err != nil {
				return err
			}
			c := chatrunner.Chat{
				Topic:      topic,
				Translator: e.translator(),
				Logger:     e.log(),
			}
			return c.Do(cmd.Context())
		},
	}
	e.addFlags(cmd)

	addTopics(cmd)
	addTranslate(cmd, e, "spanishchat")
	addVersion(cmd, "spanishchat")
	addCompletions(cmd)
	return cmd
}

func pickTopic(p prompt.IO, bank *chat.Bank) (chat.Topic, error) {
	names := bank.Names()
	i, err := p.Choose("Topic", names)
	if err != nil {
		return chat.Topic{}, err
	}
	return bank.Find(names[i])
}

func addTopics(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "List the conversation topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bank, err := chat.DefaultBank()
			if err != nil {
				return err
			}
			for i, name := range bank.Names() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, name)
			}
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

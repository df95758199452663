package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/questnote/pkg/runner/translate"
	tr "tableflip.dev/questnote/pkg/translate"
)

func addTranslate(topLevel *cobra.Command, e *env, name string) {
	var from, to string

	cmd := &cobra.Command{
		Use:   "translate <text>",
		Short: "Translate text between Spanish and English",
		Example: fmt.Sprintf(`
%[1]s translate ¿Dónde está la biblioteca?
%[1]s translate --from en --to es Where is the library?
`, name),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires text to translate")
			}
			for _, lang := range []string{from, to} {
				if lang != tr.Spanish && lang != tr.English {
					return fmt.Errorf("unsupported language %q (expected %s or %s)", lang, tr.Spanish, tr.English)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t := translate.Translate{
				Text:   strings.Join(args, " "),
				From:   from,
				To:     to,
				Client: e.translator(),
				Out:    cmd.OutOrStdout(),
			}
			return t.Do(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&from, "from", tr.Spanish, "source language")
	cmd.Flags().StringVar(&to, "to", tr.English, "destination language")

	topLevel.AddCommand(cmd)
}

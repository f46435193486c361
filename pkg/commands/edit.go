package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/commands/options"
	"tableflip.dev/weekly/pkg/runner/edit"
	"tableflip.dev/weekly/pkg/snake"
)

func addEdit(topLevel *cobra.Command) {
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     "edit <day> <task id> <text>",
		Aliases: []string{"rename"},
		Short:   "Replace the text of a task.",
		Example: `
weekly edit monday task_1741165200000_k3j9x0a1q buy oat milk
weekly edit monday -i
`,
		Args: func(_ *cobra.Command, args []string) error {
			if !i.Interactive && len(args) < 3 {
				return errors.New("requires a day, a task id and the new text")
			}
			return nil
		},
		ValidArgsFunction: options.CompleteDays(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := openEnv(false)
			if err != nil {
				return err
			}
			defer e.close()

			d, err := dayArg(cmd, e, args, 0, "Day")
			if err != nil {
				return err
			}
			t, err := taskArg(cmd, e, args, 1, d)
			if err != nil {
				return err
			}
			text := ""
			if len(args) > 2 {
				text = strings.Join(args[2:], " ")
			} else if text, err = snake.PromptText(cmd, "Text", t.Text); err != nil {
				return err
			}
			s := edit.Edit{
				Day:   d,
				ID:    t.ID,
				Text:  text,
				Store: e.store,
				Out:   color.Output,
			}
			return s.Do(context.Background())
		},
	}

	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/commands/options"
	"tableflip.dev/weekly/pkg/runner/add"
	"tableflip.dev/weekly/pkg/snake"
)

func addAdd(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "add <day> <text>",
		Short: "Add a task to the end of a day.",
		Example: `
weekly add monday buy milk
weekly add today call Bob
weekly add -i
`,
		Args: func(_ *cobra.Command, args []string) error {
			if !i.Interactive && len(args) < 2 {
				return errors.New("requires a day and the task text")
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

			d, err := dayArg(cmd, e, args, 0, "Add to")
			if err != nil {
				return err
			}
			text := ""
			if len(args) > 1 {
				text = strings.Join(args[1:], " ")
			} else if text, err = snake.PromptText(cmd, "Task", ""); err != nil {
				return err
			}
			s := add.Add{
				Day:    d,
				Text:   text,
				ShowID: io.ShowID,
				Store:  e.store,
				Out:    color.Output,
			}
			return s.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}

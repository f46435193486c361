package commands

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/commands/options"
	"tableflip.dev/weekly/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     "mv <from day> <to day> <task id>",
		Aliases: []string{"move"},
		Short:   "Move a task to the end of another day.",
		Example: `
weekly mv monday tuesday task_1741165200000_k3j9x0a1q
weekly mv -i
`,
		Args:              interactiveArgs(i, 3, "requires two days and a task id"),
		ValidArgsFunction: options.CompleteDays(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := openEnv(false)
			if err != nil {
				return err
			}
			defer e.close()

			from, err := dayArg(cmd, e, args, 0, "Move from")
			if err != nil {
				return err
			}
			// Pick the task before the destination so the prompts follow the drag.
			var id string
			if len(args) == 3 {
				id = args[2]
			} else {
				t, err := taskArg(cmd, e, nil, 0, from)
				if err != nil {
					return err
				}
				id = t.ID
			}
			to, err := dayArg(cmd, e, args, 1, "Move to")
			if err != nil {
				return err
			}
			s := move.Move{
				From:  from,
				To:    to,
				ID:    id,
				Store: e.store,
				Out:   color.Output,
			}
			return s.Do(context.Background())
		},
	}

	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/commands/options"
	"tableflip.dev/weekly/pkg/runner/complete"
)

func addDone(topLevel *cobra.Command) {
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     "done <day> <task id>",
		Aliases: []string{"toggle", "complete"},
		Short:   "Mark a task done, or open again if it already is.",
		Example: `
weekly done monday task_1741165200000_k3j9x0a1q
weekly done -i
`,
		Args:              interactiveArgs(i, 2, "requires a day and a task id"),
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
			s := complete.Complete{
				Day:   d,
				ID:    t.ID,
				Store: e.store,
				Out:   color.Output,
			}
			return s.Do(context.Background())
		},
	}

	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}

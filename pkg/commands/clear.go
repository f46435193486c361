package commands

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/commands/options"
	clearer "tableflip.dev/weekly/pkg/runner/clear"
)

func addClear(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}
	all := false

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear completed tasks, or every task with --all.",
		Example: `
weekly clear
weekly clear --all
weekly clear --all --yes
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := openEnv(false)
			if err != nil {
				return err
			}
			defer e.close()

			s := clearer.Clear{
				All:     all,
				Yes:     co.Yes,
				Confirm: options.Confirm,
				Store:   e.store,
				Out:     color.Output,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Delete every task, done or not.")
	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}

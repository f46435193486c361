package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	demo := false

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
weekly ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := openEnv(true)
			if err != nil {
				return err
			}
			defer e.close()

			if demo || e.cfg.Demo {
				e.store.SeedDemo()
			}
			i := ui.UI{
				Store:   e.store,
				Watcher: e.watcher(),
				Key:     e.cfg.Key,
				Log:     e.log,
			}
			return i.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "Add sample tasks to an empty week.")

	topLevel.AddCommand(cmd)
}

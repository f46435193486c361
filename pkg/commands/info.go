package commands

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the configuration and where tasks are stored.",
		Example: `
weekly info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := openEnv(false)
			if err != nil {
				return err
			}
			defer e.close()

			s := info.Info{
				Config: e.cfg,
				Store:  e.store,
				Out:    color.Output,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/weekly/pkg/commands/options"
	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	summary := false

	long := strings.Builder{}
	long.WriteString("Get the tasks for the whole week or for the given days.\n\n")
	long.WriteString("Days: ")
	long.WriteString(strings.Join(day.Names(), ", "))
	long.WriteString(", or today. Three letter names work too.\n")

	cmd := &cobra.Command{
		Use:     "get [day...]",
		Aliases: []string{"ls", "list"},
		Short:   "Get the tasks of the week.",
		Long:    long.String(),
		Example: `
weekly get
weekly get today
weekly get mon tue --show-id
weekly get --summary
`,
		ValidArgsFunction: options.CompleteDays(len(day.All())),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := openEnv(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()

			days, err := options.ParseDays(args, e.store.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			if oo.JSON && summary {
				return oo.HandleError(fmt.Errorf("--json and --summary can not be combined"))
			}
			s := get.Get{
				Days:    days,
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
				Summary: summary,
				Store:   e.store,
				Out:     color.Output,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&summary, "summary", false, "Show open and done counts per day.")

	topLevel.AddCommand(cmd)
}

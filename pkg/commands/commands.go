package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/weekly/pkg/printers"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: base.Wrap80("A week of to-do lists, one column per day, on the command line, in the terminal and in the browser."),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			printers.DisableColorFromEnv()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addServe(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addDone(topLevel)
	addRemove(topLevel)
	addMove(topLevel)
	addEdit(topLevel)
	addClear(topLevel)
	addMCP(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/runner/serve"
)

func addServe(topLevel *cobra.Command) {
	addr := ""
	demo := false

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the week as a web page.",
		Example: `
weekly serve
weekly serve --addr :9000 --demo
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := openEnv(false)
			if err != nil {
				return err
			}
			defer e.close()

			if addr == "" {
				addr = e.cfg.Addr
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := serve.Serve{
				Addr:    addr,
				Demo:    demo || e.cfg.Demo,
				Store:   e.store,
				Watcher: e.watcher(),
				Log:     e.log,

				CORSOrigins: e.cfg.CORSOrigins,
				EventRate:   e.cfg.EventRate,
				EventBurst:  e.cfg.EventBurst,
			}
			return s.Do(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Address to listen on, the configured addr by default.")
	cmd.Flags().BoolVar(&demo, "demo", false, "Add sample tasks to an empty week.")

	topLevel.AddCommand(cmd)
}

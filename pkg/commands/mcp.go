package commands

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport string
		httpAddr  string
		httpPath  string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that lets assistants list, add, complete, rename,
move and delete the tasks of the week.`,
		Example: `
weekly mcp
weekly mcp --transport stdio
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			// stdio carries the protocol, keep logs off it.
			stdio := strings.EqualFold(strings.TrimSpace(transport), string(mcp.TransportStdio))
			e, err := openEnv(stdio)
			if err != nil {
				return err
			}
			defer e.close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			runner := mcp.Runner{
				Store:            e.store,
				Name:             "weekly",
				Version:          version,
				Log:              e.log,
				Watcher:          e.watcher(),
				HTTPListenAddr:   httpAddr,
				HTTPEndpointPath: httpPath,
			}

			switch strings.ToLower(strings.TrimSpace(transport)) {
			case "", string(mcp.TransportHTTP):
				runner.Transport = mcp.TransportHTTP
				runner.OnHTTPListening = func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on http://%s%s\n", a, httpPath)
				}
			case string(mcp.TransportStdio):
				runner.Transport = mcp.TransportStdio
			default:
				return fmt.Errorf("unsupported transport %q (expected http or stdio)", transport)
			}

			return runner.Do(ctx)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportHTTP), "transport to use: http or stdio")
	cmd.Flags().StringVar(&httpAddr, "http-addr", "127.0.0.1:8081", "address for the HTTP transport")
	cmd.Flags().StringVar(&httpPath, "http-path", "/mcp", "HTTP endpoint path")

	topLevel.AddCommand(cmd)
}

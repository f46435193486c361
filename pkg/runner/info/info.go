package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/weekly/pkg/app"
	"tableflip.dev/weekly/pkg/store"
)

type Info struct {
	Config *store.Config
	Store  *app.Store
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	w := n.Out
	if w == nil {
		w = color.Output
	}

	if override := os.Getenv("WEEKLY_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(w, "WEEKLY_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(w, "WEEKLY_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(w, "Config.backend:", n.Config.Backend)
	switch n.Config.Backend {
	case store.BackendRedis:
		_, _ = fmt.Fprintln(w, "Config.redis.addr:", n.Config.Redis.Addr)
	case store.BackendDisk:
		_, _ = fmt.Fprintln(w, "Config.path:", n.Config.Path)
	}
	_, _ = fmt.Fprintln(w, "Config.key:", n.Config.Key)

	if n.Store == nil {
		return fmt.Errorf("failed to open the task store")
	}
	_, _ = fmt.Fprintf(w, "Tasks: %d\n", n.Store.Count())
	return nil
}

package edit

import (
	"context"
	"errors"
	"io"
	"strings"

	"tableflip.dev/weekly/pkg/app"
	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/printers"
	"tableflip.dev/weekly/pkg/runner"
)

type Edit struct {
	Day   day.Key
	ID    string
	Text  string
	Store *app.Store
	Out   io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Store == nil {
		return runner.ErrNoStore
	}
	if strings.TrimSpace(n.Text) == "" {
		return errors.New("task text can not be empty")
	}
	if !n.Store.Rename(n.Day, n.ID, n.Text) {
		return runner.NotFound(n.Day, n.ID)
	}
	if err := runner.Saved(n.Store); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.NewLine()
	pp.Week(n.Store.Snapshot(), n.Store.Now(), n.Day)
	return nil
}

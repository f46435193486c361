package add

import (
	"context"
	"fmt"
	"io"

	"tableflip.dev/weekly/pkg/app"
	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/printers"
	"tableflip.dev/weekly/pkg/runner"
)

type Add struct {
	Day    day.Key
	Text   string
	ShowID bool
	Store  *app.Store
	Out    io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return runner.ErrNoStore
	}
	t, _ := n.Store.Add(n.Day, n.Text)
	if t == nil {
		return fmt.Errorf("nothing to add to %s", n.Day)
	}
	if err := runner.Saved(n.Store); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.NewLine()
	pp.Week(n.Store.Snapshot(), n.Store.Now(), n.Day)
	return nil
}

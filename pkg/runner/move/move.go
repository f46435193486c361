package move

import (
	"context"
	"fmt"
	"io"

	"tableflip.dev/weekly/pkg/app"
	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/printers"
	"tableflip.dev/weekly/pkg/runner"
)

type Move struct {
	From  day.Key
	To    day.Key
	ID    string
	Store *app.Store
	Out   io.Writer
}

func (n *Move) Do(ctx context.Context) error {
	if n.Store == nil {
		return runner.ErrNoStore
	}
	if n.From == n.To {
		return fmt.Errorf("task is already on %s", n.To)
	}
	if n.Store.Move(n.From, n.To, n.ID) == nil {
		return runner.NotFound(n.From, n.ID)
	}
	if err := runner.Saved(n.Store); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.NewLine()
	pp.Week(n.Store.Snapshot(), n.Store.Now(), n.From, n.To)
	return nil
}

// Package complete toggles the completed state of a task.
package complete

import (
	"context"
	"io"

	"tableflip.dev/weekly/pkg/app"
	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/printers"
	"tableflip.dev/weekly/pkg/runner"
)

// Complete flips a task between open and done.
type Complete struct {
	Day   day.Key
	ID    string
	Store *app.Store
	Out   io.Writer
}

// Do toggles the task and prints its day.
func (n *Complete) Do(ctx context.Context) error {
	if n.Store == nil {
		return runner.ErrNoStore
	}
	if n.Store.Toggle(n.Day, n.ID) == nil {
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

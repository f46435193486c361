// Package strike removes a task from its day.
package strike

import (
	"context"
	"io"

	"tableflip.dev/weekly/pkg/app"
	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/printers"
	"tableflip.dev/weekly/pkg/runner"
)

// Strike deletes one task.
type Strike struct {
	Day   day.Key
	ID    string
	Store *app.Store
	Out   io.Writer
}

// Do deletes the task and prints what is left of the day.
func (n *Strike) Do(ctx context.Context) error {
	if n.Store == nil {
		return runner.ErrNoStore
	}
	if n.Store.Delete(n.Day, n.ID) == nil {
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

// Package clear removes completed tasks, or every task after confirmation.
package clear

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/weekly/pkg/app"
	"tableflip.dev/weekly/pkg/printers"
	"tableflip.dev/weekly/pkg/router"
	"tableflip.dev/weekly/pkg/runner"
)

// ErrNotConfirmed is returned when the user declines to clear everything.
var ErrNotConfirmed = errors.New("clear all not confirmed, nothing deleted")

type Clear struct {
	All bool
	// Yes skips the confirmation for All.
	Yes bool
	// Confirm asks the user; required for All unless Yes is set.
	Confirm func(prompt string) bool
	Store   *app.Store
	Out     io.Writer
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Store == nil {
		return runner.ErrNoStore
	}
	pp := printers.PrettyPrint{Out: n.Out}

	if !n.All {
		before := n.Store.Count()
		n.Store.ClearCompleted()
		if err := runner.Saved(n.Store); err != nil {
			return err
		}
		pp.Message("Cleared %d completed tasks.", before-n.Store.Count())
		return nil
	}

	if !n.Yes && (n.Confirm == nil || !n.Confirm(router.ClearAllPrompt)) {
		return ErrNotConfirmed
	}
	before := n.Store.Count()
	n.Store.ClearAll()
	if err := runner.Saved(n.Store); err != nil {
		return err
	}
	pp.Message("Deleted all %d tasks.", before)
	return nil
}

package get

import (
	"context"
	"io"

	"tableflip.dev/weekly/pkg/app"
	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/printers"
	"tableflip.dev/weekly/pkg/runner"
)

type Get struct {
	// Days limits the output, all seven when empty.
	Days    []day.Key
	ShowID  bool
	JSON    bool
	Summary bool
	Store   *app.Store
	Out     io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return runner.ErrNoStore
	}
	wk := n.Store.Snapshot()
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}

	if n.JSON {
		if len(n.Days) == 0 {
			return pp.JSON(wk)
		}
		out := make(map[day.Key]any, len(n.Days))
		for _, d := range n.Days {
			out[d] = wk[d]
		}
		return pp.JSON(out)
	}

	if n.Summary {
		pp.Summary(wk, n.Store.Now())
		return nil
	}

	pp.NewLine()
	pp.Week(wk, n.Store.Now(), n.Days...)
	return nil
}

// Package runner holds what the CLI verbs share.
package runner

import (
	"errors"
	"fmt"

	"tableflip.dev/weekly/pkg/app"
	"tableflip.dev/weekly/pkg/day"
)

// ErrNoStore is returned by runners constructed without a task store.
var ErrNoStore = errors.New("no task store")

// Saved reports a failed write during this command. The store logs and
// swallows persistence failures, but a one-shot command must say so.
func Saved(s *app.Store) error {
	if n := s.Failures(); n > 0 {
		return fmt.Errorf("changes were kept in memory but not saved (%d failed writes)", n)
	}
	return nil
}

// NotFound describes a task id missing from a day.
func NotFound(d day.Key, id string) error {
	return fmt.Errorf("no task %q on %s", id, d)
}

package app

import (
	"context"

	"go.uber.org/zap"

	"tableflip.dev/weekly/pkg/store"
)

// Follow reloads the week every time w reports a change to the store's key,
// until ctx is done or the feed closes. Long running surfaces call it so a
// write from another process is not overwritten by their next mutation.
func (s *Store) Follow(ctx context.Context, w store.Watcher) error {
	ch, err := w.Watch(ctx, s.key)
	if err != nil {
		return err
	}
	go func() {
		for ev := range ch {
			s.log.Debug("stored week changed", zap.String("key", ev.Key))
			s.Reload()
		}
	}()
	return nil
}

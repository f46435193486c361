package snake

import (
	"testing"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/day"
)

func TestDayItems(t *testing.T) {
	now := time.Date(2025, time.March, 5, 12, 0, 0, 0, time.Local)
	items := dayItems(now)
	if len(items) != 7 {
		t.Fatalf("expected seven days, got %d", len(items))
	}
	if items[0].Key != day.Monday || items[0].Label != "Mar 3" {
		t.Fatalf("unexpected first item %+v", items[0])
	}
	for i, it := range items {
		if it.Today != (it.Key == day.Wednesday) {
			t.Fatalf("item %d today=%v", i, it.Today)
		}
	}
}

func TestPickTaskEmpty(t *testing.T) {
	if _, err := PickTask(&cobra.Command{}, "Task", nil); err != ErrNoTasks {
		t.Fatalf("expected ErrNoTasks, got %v", err)
	}
}

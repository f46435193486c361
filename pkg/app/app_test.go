package app

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/store"
	"tableflip.dev/weekly/pkg/task"
)

func fixedClock() func() time.Time {
	now := time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func newTestStore(t *testing.T) (*Store, *store.Memory, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	mem := store.NewMemory()
	s := Open(mem, WithLogger(zap.New(core)), WithClock(fixedClock()))
	return s, mem, logs
}

func texts(tasks []*task.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Text)
	}
	return out
}

func idOf(t *testing.T, s *Store, d day.Key, text string) string {
	t.Helper()
	for _, tk := range s.Tasks(d) {
		if tk.Text == text {
			return tk.ID
		}
	}
	t.Fatalf("task %q not found in %s", text, d)
	return ""
}

func TestAddAppendsIncompleteTask(t *testing.T) {
	s, mem, _ := newTestStore(t)

	tk, redraw := s.Add(day.Monday, "  Buy milk  ")
	if tk == nil {
		t.Fatal("expected a task")
	}
	if !reflect.DeepEqual(redraw, []day.Key{day.Monday}) {
		t.Fatalf("expected monday redraw, got %v", redraw)
	}
	got := s.Tasks(day.Monday)
	if len(got) != 1 || got[0].Text != "Buy milk" || got[0].Completed {
		t.Fatalf("unexpected monday %v", got)
	}
	if mem.Writes() != 1 {
		t.Fatalf("expected one write, got %d", mem.Writes())
	}
}

func TestAddBlankIsNoop(t *testing.T) {
	s, mem, _ := newTestStore(t)
	for _, text := range []string{"", "   ", "\n\t"} {
		tk, redraw := s.Add(day.Monday, text)
		if tk != nil || redraw != nil {
			t.Fatalf("expected no-op for %q", text)
		}
	}
	if s.Count() != 0 || mem.Writes() != 0 {
		t.Fatalf("expected nothing stored, count=%d writes=%d", s.Count(), mem.Writes())
	}
}

func TestAddUnknownDayIsNoop(t *testing.T) {
	s, _, _ := newTestStore(t)
	if tk, _ := s.Add(day.Key("funday"), "party"); tk != nil {
		t.Fatal("expected no task for unknown day")
	}
}

func TestToggleIsInvolution(t *testing.T) {
	s, _, _ := newTestStore(t)
	tk, _ := s.Add(day.Tuesday, "Call Bob")

	s.Toggle(day.Tuesday, tk.ID)
	if !s.Tasks(day.Tuesday)[0].Completed {
		t.Fatal("expected completed after first toggle")
	}
	s.Toggle(day.Tuesday, tk.ID)
	if s.Tasks(day.Tuesday)[0].Completed {
		t.Fatal("expected incomplete after second toggle")
	}

	if redraw := s.Toggle(day.Monday, tk.ID); redraw != nil {
		t.Fatalf("toggle in the wrong day should be a no-op, got %v", redraw)
	}
}

func TestDelete(t *testing.T) {
	s, mem, _ := newTestStore(t)
	a, _ := s.Add(day.Friday, "a")
	s.Add(day.Friday, "b")
	writes := mem.Writes()

	if redraw := s.Delete(day.Friday, "missing"); redraw != nil {
		t.Fatalf("expected no-op, got %v", redraw)
	}
	if mem.Writes() != writes {
		t.Fatal("no-op delete should not write")
	}

	s.Delete(day.Friday, a.ID)
	if got := texts(s.Tasks(day.Friday)); !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("unexpected friday %v", got)
	}
}

func TestRename(t *testing.T) {
	s, _, _ := newTestStore(t)
	tk, _ := s.Add(day.Monday, "draft")

	if s.Rename(day.Monday, tk.ID, "   ") {
		t.Fatal("blank rename must be rejected")
	}
	if !s.Rename(day.Monday, tk.ID, " final ") {
		t.Fatal("expected rename to apply")
	}
	got := s.Tasks(day.Monday)[0]
	if got.Text != "final" || got.ID != tk.ID || !got.CreatedAt.Equal(tk.CreatedAt.Time) {
		t.Fatalf("unexpected task after rename %+v", got)
	}
	if s.Rename(day.Monday, "missing", "x") {
		t.Fatal("rename of missing task should report false")
	}
}

func TestMovePreservesIdentity(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.Add(day.Tuesday, "already there")
	tk, _ := s.Add(day.Monday, "Buy milk")
	s.Toggle(day.Monday, tk.ID)
	before := s.Tasks(day.Monday)[0]
	total := s.Count()

	redraw := s.Move(day.Monday, day.Tuesday, tk.ID)
	if !reflect.DeepEqual(redraw, []day.Key{day.Monday, day.Tuesday}) {
		t.Fatalf("expected both days redrawn, got %v", redraw)
	}
	if len(s.Tasks(day.Monday)) != 0 {
		t.Fatal("task should leave monday")
	}
	tue := s.Tasks(day.Tuesday)
	last := tue[len(tue)-1]
	if !reflect.DeepEqual(last, before) {
		t.Fatalf("moved task changed: %+v vs %+v", last, before)
	}
	if s.Count() != total {
		t.Fatalf("total changed from %d to %d", total, s.Count())
	}
}

func TestMoveSameDayIsNoop(t *testing.T) {
	s, mem, _ := newTestStore(t)
	a, _ := s.Add(day.Monday, "a")
	s.Add(day.Monday, "b")
	writes := mem.Writes()

	if redraw := s.Move(day.Monday, day.Monday, a.ID); redraw != nil {
		t.Fatalf("expected no-op, got %v", redraw)
	}
	if redraw := s.Move(day.Monday, day.Sunday, "missing"); redraw != nil {
		t.Fatalf("expected no-op for missing id, got %v", redraw)
	}
	if got := texts(s.Tasks(day.Monday)); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("monday changed: %v", got)
	}
	if mem.Writes() != writes {
		t.Fatal("no-op move should not write")
	}
}

func TestClearCompletedKeepsOrder(t *testing.T) {
	s, _, _ := newTestStore(t)
	for _, text := range []string{"a", "b", "c", "d"} {
		s.Add(day.Wednesday, text)
	}
	s.Add(day.Sunday, "e")
	s.Toggle(day.Wednesday, idOf(t, s, day.Wednesday, "b"))
	s.Toggle(day.Wednesday, idOf(t, s, day.Wednesday, "d"))
	s.Toggle(day.Sunday, idOf(t, s, day.Sunday, "e"))

	if redraw := s.ClearCompleted(); len(redraw) != 7 {
		t.Fatalf("expected all days redrawn, got %v", redraw)
	}
	if got := texts(s.Tasks(day.Wednesday)); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("unexpected wednesday %v", got)
	}
	if len(s.Tasks(day.Sunday)) != 0 {
		t.Fatal("expected sunday cleared")
	}
}

func TestClearAll(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.Add(day.Monday, "a")
	s.Add(day.Saturday, "b")
	s.ClearAll()
	if s.Count() != 0 {
		t.Fatalf("expected empty week, got %d tasks", s.Count())
	}
	snap := s.Snapshot()
	for _, d := range day.All() {
		if snap[d] == nil {
			t.Fatalf("%s should be an empty list", d)
		}
	}
}

func TestPersistedWeekReloads(t *testing.T) {
	s, mem, _ := newTestStore(t)
	s.Add(day.Monday, "Buy milk")
	tk, _ := s.Add(day.Thursday, "Write docs")
	s.Toggle(day.Thursday, tk.ID)

	reopened := Open(mem)
	if !reflect.DeepEqual(reopened.Snapshot(), s.Snapshot()) {
		t.Fatal("reloaded week differs from the original")
	}
}

func TestPersistFailureIsLoggedAndSwallowed(t *testing.T) {
	s, mem, logs := newTestStore(t)
	mem.FailWith = errors.New("quota exceeded")

	tk, redraw := s.Add(day.Monday, "still here")
	if tk == nil || redraw == nil {
		t.Fatal("add should succeed in memory when storage fails")
	}
	if len(s.Tasks(day.Monday)) != 1 {
		t.Fatal("in-memory effect should stand")
	}
	if s.Failures() != 1 {
		t.Fatalf("expected one failure, got %d", s.Failures())
	}
	entries := logs.FilterMessage("error saving tasks").All()
	if len(entries) != 1 || entries[0].Level != zapcore.ErrorLevel {
		t.Fatalf("expected one error log, got %v", entries)
	}
}

func TestCorruptDataFallsBackToEmptyWeek(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mem := store.NewMemory()
	if err := mem.Write(store.DefaultKey, []byte("{definitely not json")); err != nil {
		t.Fatal(err)
	}

	s := Open(mem, WithLogger(zap.New(core)))
	if s.Count() != 0 {
		t.Fatalf("expected empty week, got %d", s.Count())
	}
	if len(s.Snapshot()) != 7 {
		t.Fatal("expected seven days")
	}
	if logs.FilterMessage("error loading tasks, discarding stored data").Len() != 1 {
		t.Fatalf("expected corruption to be logged, got %v", logs.All())
	}
}

func TestScenario(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.Add(day.Monday, "Buy milk")
	s.Add(day.Monday, "Call Bob")

	s.Move(day.Monday, day.Tuesday, idOf(t, s, day.Monday, "Buy milk"))
	if got := texts(s.Tasks(day.Monday)); !reflect.DeepEqual(got, []string{"Call Bob"}) {
		t.Fatalf("unexpected monday %v", got)
	}
	if got := texts(s.Tasks(day.Tuesday)); !reflect.DeepEqual(got, []string{"Buy milk"}) {
		t.Fatalf("unexpected tuesday %v", got)
	}

	s.Toggle(day.Tuesday, idOf(t, s, day.Tuesday, "Buy milk"))
	if !s.Tasks(day.Tuesday)[0].Completed {
		t.Fatal("expected buy milk completed")
	}

	s.ClearCompleted()
	if len(s.Tasks(day.Tuesday)) != 0 {
		t.Fatal("expected tuesday empty")
	}
	if got := texts(s.Tasks(day.Monday)); !reflect.DeepEqual(got, []string{"Call Bob"}) {
		t.Fatalf("monday should be unchanged, got %v", got)
	}
}

func TestSeedDemo(t *testing.T) {
	s, _, _ := newTestStore(t)
	if redraw := s.SeedDemo(); len(redraw) != 7 {
		t.Fatalf("expected full redraw, got %v", redraw)
	}
	if s.Count() != len(demoTasks) {
		t.Fatalf("expected %d demo tasks, got %d", len(demoTasks), s.Count())
	}
	if redraw := s.SeedDemo(); redraw != nil {
		t.Fatal("seeding twice should be a no-op")
	}
}

type feed chan store.Event

func (f feed) Watch(context.Context, string) (<-chan store.Event, error) {
	return f, nil
}

func TestFollowReloadsExternalWrites(t *testing.T) {
	mem := store.NewMemory()
	s := Open(mem)
	other := Open(mem)
	changes := make(feed, 1)
	defer close(changes)

	if err := s.Follow(context.Background(), changes); err != nil {
		t.Fatalf("follow: %v", err)
	}
	other.Add(day.Monday, "from elsewhere")
	changes <- store.Event{Type: store.EventChanged, Key: store.DefaultKey}

	deadline := time.Now().Add(5 * time.Second)
	for s.Count() != 1 {
		if time.Now().After(deadline) {
			t.Fatal("store never reloaded")
		}
		time.Sleep(10 * time.Millisecond)
	}

	s.Add(day.Tuesday, "from here")
	stored := Open(mem).Snapshot()
	if len(stored[day.Monday]) != 1 || len(stored[day.Tuesday]) != 1 {
		t.Fatalf("expected both writes kept, got %v", stored)
	}
}

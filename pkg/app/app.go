// Package app holds the task store: every mutation of the week goes through
// it, is written back to the storage backend, and reports which days need
// to be redrawn.
package app

import (
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/logging"
	"tableflip.dev/weekly/pkg/store"
	"tableflip.dev/weekly/pkg/task"
	"tableflip.dev/weekly/pkg/week"
)

// Store owns the week. Operations run to completion under a lock, so they
// are atomic with respect to each other.
type Store struct {
	backend store.Backend
	key     string
	log     *zap.Logger
	now     func() time.Time

	mu       sync.Mutex
	week     week.Week
	failures int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger routes diagnostics (persistence failures, discarded data).
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = logging.OrNop(l) }
}

// WithClock replaces time.Now for ids, timestamps and "today".
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithKey sets the storage key, store.DefaultKey otherwise.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// New creates a store with an empty week. Call Load to hydrate it.
func New(backend store.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		key:     store.DefaultKey,
		log:     zap.NewNop(),
		now:     time.Now,
		week:    week.Empty(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Open creates a store and loads it from the backend.
func Open(backend store.Backend, opts ...Option) *Store {
	s := New(backend, opts...)
	s.Load()
	return s
}

// Now is the store's clock.
func (s *Store) Now() time.Time {
	return s.now()
}

// Load replaces the in-memory week with what the backend holds. Missing or
// corrupt data yields the empty week; corruption is logged, never returned.
func (s *Store) Load() []day.Key {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.week = s.read()
	return day.All()
}

// Reload re-reads the backend after an external change.
func (s *Store) Reload() []day.Key {
	return s.Load()
}

func (s *Store) read() week.Week {
	if s.backend == nil {
		return week.Empty()
	}
	data, err := s.backend.Read(s.key)
	if errors.Is(err, store.ErrNotFound) {
		s.log.Debug("no stored week, starting empty", zap.String("key", s.key))
		return week.Empty()
	}
	if err != nil {
		s.log.Error("error loading tasks", zap.String("key", s.key), zap.Error(err))
		return week.Empty()
	}
	w, notes, err := week.Decode(data)
	if err != nil {
		s.log.Error("error loading tasks, discarding stored data", zap.String("key", s.key), zap.Error(err))
		return week.Empty()
	}
	for _, n := range notes {
		s.log.Warn("stored week normalized", zap.String("key", s.key), zap.String("note", n))
	}
	return w
}

// Persist writes the whole week to the backend.
func (s *Store) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked()
}

// persistLocked reports failures to the logger and leaves the in-memory
// state as is.
func (s *Store) persistLocked() error {
	if s.backend == nil {
		return nil
	}
	data, err := s.week.Encode()
	if err == nil {
		err = s.backend.Write(s.key, data)
	}
	if err != nil {
		s.failures++
		s.log.Error("error saving tasks", zap.String("key", s.key), zap.Error(err))
		return err
	}
	return nil
}

// Failures counts persistence attempts that did not make it to storage.
func (s *Store) Failures() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failures
}

// Add appends a new task to d. Blank text is a no-op.
func (s *Store) Add(d day.Key, text string) (*task.Task, []day.Key) {
	text = strings.TrimSpace(text)
	if text == "" || !d.Valid() {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t := task.New(text, s.now())
	s.week[d] = append(s.week[d], t)
	_ = s.persistLocked()
	s.log.Debug("added task", zap.Stringer("day", d), zap.String("id", t.ID))
	return t.Clone(), []day.Key{d}
}

// Delete removes the task id from d.
func (s *Store) Delete(d day.Key, id string) []day.Key {
	if !d.Valid() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.week[d], id)
	if i < 0 {
		return nil
	}
	s.week[d] = append(s.week[d][:i:i], s.week[d][i+1:]...)
	_ = s.persistLocked()
	s.log.Debug("deleted task", zap.Stringer("day", d), zap.String("id", id))
	return []day.Key{d}
}

// Toggle flips the completed flag of task id in d.
func (s *Store) Toggle(d day.Key, id string) []day.Key {
	if !d.Valid() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.week[d], id)
	if i < 0 {
		return nil
	}
	t := s.week[d][i]
	t.Completed = !t.Completed
	_ = s.persistLocked()
	s.log.Debug("toggled task", zap.Stringer("day", d), zap.String("id", id), zap.Bool("completed", t.Completed))
	return []day.Key{d}
}

// Rename replaces the text of task id in d. The edit happens in place, so
// nothing needs redrawing; ok reports whether the task changed.
func (s *Store) Rename(d day.Key, id, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || !d.Valid() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.week[d], id)
	if i < 0 {
		return false
	}
	s.week[d][i].Text = text
	_ = s.persistLocked()
	s.log.Debug("renamed task", zap.Stringer("day", d), zap.String("id", id))
	return true
}

// Move takes task id out of from and appends it to to, keeping its identity.
func (s *Store) Move(from, to day.Key, id string) []day.Key {
	if from == to || !from.Valid() || !to.Valid() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.week[from], id)
	if i < 0 {
		return nil
	}
	t := s.week[from][i]
	s.week[from] = append(s.week[from][:i:i], s.week[from][i+1:]...)
	s.week[to] = append(s.week[to], t)
	_ = s.persistLocked()
	s.log.Debug("moved task", zap.String("id", id), zap.Stringer("from", from), zap.Stringer("to", to))
	return []day.Key{from, to}
}

// ClearCompleted drops every completed task, keeping the order of the rest.
func (s *Store) ClearCompleted() []day.Key {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for _, d := range day.All() {
		kept := make([]*task.Task, 0, len(s.week[d]))
		for _, t := range s.week[d] {
			if t.Completed {
				removed++
				continue
			}
			kept = append(kept, t)
		}
		s.week[d] = kept
	}
	_ = s.persistLocked()
	s.log.Debug("cleared completed tasks", zap.Int("removed", removed))
	return day.All()
}

// ClearAll empties every day. Callers confirm with the user first.
func (s *Store) ClearAll() []day.Key {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.week = week.Empty()
	_ = s.persistLocked()
	s.log.Debug("cleared all tasks")
	return day.All()
}

// Tasks returns a copy of the tasks in d.
func (s *Store) Tasks(d day.Key) []*task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*task.Task, 0, len(s.week[d]))
	for _, t := range s.week[d] {
		out = append(out, t.Clone())
	}
	return out
}

// Snapshot deep copies the whole week.
func (s *Store) Snapshot() week.Week {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.week.Clone()
}

// Find locates a task by id anywhere in the week.
func (s *Store) Find(id string) (day.Key, *task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, t, ok := s.week.Find(id)
	return d, t.Clone(), ok
}

// Count is the number of tasks in the week.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.week.Count()
}

func indexOf(tasks []*task.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

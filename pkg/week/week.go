// Package week models the day keyed task collection and the calendar dates
// of the current week.
package week

import (
	"encoding/json"
	"fmt"
	"strings"

	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/task"
)

// Week maps every day key to its ordered tasks. Order is display order.
type Week map[day.Key][]*task.Task

// Empty returns a week with seven empty days.
func Empty() Week {
	w := make(Week, 7)
	for _, d := range day.All() {
		w[d] = []*task.Task{}
	}
	return w
}

// Clone deep copies the week.
func (w Week) Clone() Week {
	out := make(Week, 7)
	for _, d := range day.All() {
		tasks := w[d]
		cp := make([]*task.Task, 0, len(tasks))
		for _, t := range tasks {
			cp = append(cp, t.Clone())
		}
		out[d] = cp
	}
	return out
}

// Count is the number of tasks across all days.
func (w Week) Count() int {
	n := 0
	for _, d := range day.All() {
		n += len(w[d])
	}
	return n
}

// IsEmpty reports whether no day holds a task.
func (w Week) IsEmpty() bool {
	return w.Count() == 0
}

// Find locates the task with the given id.
func (w Week) Find(id string) (day.Key, *task.Task, bool) {
	for _, d := range day.All() {
		for _, t := range w[d] {
			if t.ID == id {
				return d, t, true
			}
		}
	}
	return "", nil, false
}

// Encode serializes the week as {"monday": [...], ..., "sunday": [...]}.
func (w Week) Encode() ([]byte, error) {
	out := make(map[string][]*task.Task, 7)
	for _, d := range day.All() {
		tasks := w[d]
		if tasks == nil {
			tasks = []*task.Task{}
		}
		out[string(d)] = tasks
	}
	return json.Marshal(out)
}

// Decode parses stored data. The result is normalized; the returned notes
// describe everything that was dropped along the way.
func Decode(data []byte) (Week, []string, error) {
	var raw map[string][]*task.Task
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("week: decode: %w", err)
	}
	if raw == nil {
		return nil, nil, fmt.Errorf("week: decode: not an object")
	}
	w := make(Week, 7)
	var notes []string
	for k, tasks := range raw {
		d := day.Key(k)
		if !d.Valid() {
			notes = append(notes, fmt.Sprintf("ignored unknown day %q", k))
			continue
		}
		w[d] = tasks
	}
	notes = append(notes, w.Normalize()...)
	return w, notes, nil
}

// Normalize fills missing days and drops entries that are malformed:
// nil tasks, blank text and repeated ids.
func (w Week) Normalize() []string {
	var notes []string
	seen := make(map[string]struct{})
	for _, d := range day.All() {
		tasks := w[d]
		kept := make([]*task.Task, 0, len(tasks))
		for _, t := range tasks {
			switch {
			case t == nil:
				notes = append(notes, fmt.Sprintf("%s: dropped null task", d))
				continue
			case strings.TrimSpace(t.Text) == "":
				notes = append(notes, fmt.Sprintf("%s: dropped task %q with empty text", d, t.ID))
				continue
			case t.ID == "":
				notes = append(notes, fmt.Sprintf("%s: dropped task without id", d))
				continue
			}
			if _, dup := seen[t.ID]; dup {
				notes = append(notes, fmt.Sprintf("%s: dropped duplicate task %q", d, t.ID))
				continue
			}
			seen[t.ID] = struct{}{}
			kept = append(kept, t)
		}
		w[d] = kept
	}
	return notes
}

// Package task holds the to-do entry stored in each day of the week.
package task

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// IDPrefix starts every generated task id.
const IDPrefix = "task_"

// Task is a single to-do entry. ID and CreatedAt never change once set.
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt Timestamp `json:"createdAt"`
}

// New builds an incomplete task with a fresh id. The text is trimmed; callers
// reject blank text before getting here.
func New(text string, now time.Time) *Task {
	return &Task{
		ID:        NewID(now),
		Text:      strings.TrimSpace(text),
		CreatedAt: Timestamp{Time: now},
	}
}

// Clone returns a copy safe to hand out of the store.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

func (t *Task) String() string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s", mark, t.Text)
}

// NewID makes "task_<unix millis>_<random base 36>". Uniqueness is
// probabilistic only.
func NewID(now time.Time) string {
	return IDPrefix + strconv.FormatInt(now.UnixMilli(), 10) + "_" + randomSuffix(9)
}

func randomSuffix(n int) string {
	var b strings.Builder
	for b.Len() < n {
		b.WriteString(strconv.FormatUint(rand.Uint64(), 36))
	}
	return b.String()[:n]
}

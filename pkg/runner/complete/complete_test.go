package complete

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/weekly/pkg/app"
	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/store"
)

func init() {
	color.NoColor = true
}

func TestComplete(t *testing.T) {
	s := app.Open(store.NewMemory())
	tk, _ := s.Add(day.Tuesday, "Call Bob")

	var buf bytes.Buffer
	c := Complete{Day: day.Tuesday, ID: tk.ID, Store: s, Out: &buf}
	require.NoError(t, c.Do(context.Background()))
	assert.True(t, s.Tasks(day.Tuesday)[0].Completed)
	assert.Contains(t, buf.String(), "[x] Call Bob")

	buf.Reset()
	require.NoError(t, c.Do(context.Background()))
	assert.False(t, s.Tasks(day.Tuesday)[0].Completed)
	assert.Contains(t, buf.String(), "[ ] Call Bob")
}

func TestCompleteErrors(t *testing.T) {
	mem := store.NewMemory()
	s := app.Open(mem)
	tk, _ := s.Add(day.Tuesday, "Call Bob")
	writes := mem.Writes()

	tests := map[string]struct {
		complete Complete
		want     string
	}{
		"unknown id": {
			complete: Complete{Day: day.Tuesday, ID: "task_0_missing", Store: s},
			want:     `no task "task_0_missing" on tuesday`,
		},
		"wrong day": {
			complete: Complete{Day: day.Monday, ID: tk.ID, Store: s},
			want:     `no task "` + tk.ID + `" on monday`,
		},
		"no store": {
			complete: Complete{Day: day.Tuesday, ID: tk.ID},
			want:     "no task store",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			tc.complete.Out = &bytes.Buffer{}
			assert.EqualError(t, tc.complete.Do(context.Background()), tc.want)
		})
	}

	assert.False(t, s.Tasks(day.Tuesday)[0].Completed)
	assert.Equal(t, writes, mem.Writes())
}

package strike

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

func TestStrike(t *testing.T) {
	s := app.Open(store.NewMemory())
	tk, _ := s.Add(day.Friday, "Deploy")
	s.Add(day.Friday, "Celebrate")

	var buf bytes.Buffer
	st := Strike{Day: day.Friday, ID: tk.ID, Store: s, Out: &buf}
	require.NoError(t, st.Do(context.Background()))

	got := s.Tasks(day.Friday)
	require.Len(t, got, 1)
	assert.Equal(t, "Celebrate", got[0].Text)
	assert.NotContains(t, buf.String(), "Deploy")
	assert.Contains(t, buf.String(), "[ ] Celebrate")
}

func TestStrikeErrors(t *testing.T) {
	mem := store.NewMemory()
	s := app.Open(mem)
	tk, _ := s.Add(day.Friday, "Deploy")
	writes := mem.Writes()

	tests := map[string]struct {
		strike Strike
		want   string
	}{
		"unknown id": {
			strike: Strike{Day: day.Friday, ID: "task_0_missing", Store: s},
			want:   `no task "task_0_missing" on friday`,
		},
		"wrong day": {
			strike: Strike{Day: day.Saturday, ID: tk.ID, Store: s},
			want:   `no task "` + tk.ID + `" on saturday`,
		},
		"no store": {
			strike: Strike{Day: day.Friday, ID: tk.ID},
			want:   "no task store",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			tc.strike.Out = &bytes.Buffer{}
			assert.EqualError(t, tc.strike.Do(context.Background()), tc.want)
		})
	}

	assert.Len(t, s.Tasks(day.Friday), 1)
	assert.Equal(t, writes, mem.Writes())
}

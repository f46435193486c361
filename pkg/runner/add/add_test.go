package add

import (
	"bytes"
	"context"
	"errors"
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

func TestAdd(t *testing.T) {
	s := app.Open(store.NewMemory())

	var buf bytes.Buffer
	a := Add{Day: day.Thursday, Text: "Write docs", Store: s, Out: &buf}
	require.NoError(t, a.Do(context.Background()))

	require.Len(t, s.Tasks(day.Thursday), 1)
	assert.Contains(t, buf.String(), "Thursday")
	assert.Contains(t, buf.String(), "[ ] Write docs")
}

func TestAddErrors(t *testing.T) {
	tests := map[string]struct {
		add     Add
		failing bool
	}{
		"blank text": {
			add: Add{Day: day.Monday, Text: "   "},
		},
		"unknown day": {
			add: Add{Day: day.Key("funday"), Text: "party"},
		},
		"write fails": {
			add:     Add{Day: day.Monday, Text: "Buy milk"},
			failing: true,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			mem := store.NewMemory()
			if tc.failing {
				mem.FailWith = errors.New("disk full")
			}
			tc.add.Store = app.Open(mem)
			tc.add.Out = &bytes.Buffer{}
			assert.Error(t, tc.add.Do(context.Background()))
			assert.Zero(t, mem.Writes())
		})
	}

	none := Add{Day: day.Monday, Text: "Buy milk"}
	assert.Error(t, none.Do(context.Background()))
}

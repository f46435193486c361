package get

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/weekly/pkg/app"
	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/store"
	"tableflip.dev/weekly/pkg/task"
)

func init() {
	color.NoColor = true
}

func TestGetJSONFiltersDays(t *testing.T) {
	s := app.Open(store.NewMemory())
	s.Add(day.Monday, "Buy milk")
	s.Add(day.Friday, "Deploy")

	var buf bytes.Buffer
	g := Get{Days: []day.Key{day.Friday}, JSON: true, Store: s, Out: &buf}
	require.NoError(t, g.Do(context.Background()))

	var got map[day.Key][]task.Task
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	require.Len(t, got[day.Friday], 1)
	assert.Equal(t, "Deploy", got[day.Friday][0].Text)
}

func TestGetPrintsWholeWeek(t *testing.T) {
	s := app.Open(store.NewMemory())
	s.Add(day.Wednesday, "Write docs")

	var buf bytes.Buffer
	g := Get{Store: s, Out: &buf}
	require.NoError(t, g.Do(context.Background()))

	out := buf.String()
	for _, d := range day.All() {
		assert.Contains(t, out, d.Title())
	}
	assert.Contains(t, out, "[ ] Write docs")
	assert.Contains(t, out, "No tasks yet")
}

package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/weekly/pkg/commands/options"
	"tableflip.dev/weekly/pkg/day"
)

func TestVerbsRegistered(t *testing.T) {
	root := New()
	for _, name := range []string{"add", "get", "done", "rm", "mv", "edit", "clear", "serve", "ui", "mcp", "info", "version", "completion"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestAliases(t *testing.T) {
	root := New()
	cmd, _, err := root.Find([]string{"toggle"})
	require.NoError(t, err)
	assert.Equal(t, "done", cmd.Name())

	cmd, _, err = root.Find([]string{"delete"})
	require.NoError(t, err)
	assert.Equal(t, "rm", cmd.Name())
}

func TestArgsNeedInteractive(t *testing.T) {
	root := New()
	cmd, _, err := root.Find([]string{"done"})
	require.NoError(t, err)

	assert.Error(t, cmd.Args(cmd, []string{"monday"}))
	assert.NoError(t, cmd.Args(cmd, []string{"monday", "task_1"}))
	assert.Error(t, cmd.Args(cmd, []string{"monday", "task_1", "extra"}))

	require.NoError(t, cmd.Flags().Set("interactive", "true"))
	assert.NoError(t, cmd.Args(cmd, []string{"monday"}))
	assert.NoError(t, cmd.Args(cmd, nil))
}

func TestParseDays(t *testing.T) {
	now := time.Date(2025, time.March, 7, 8, 0, 0, 0, time.Local)
	days, err := options.ParseDays([]string{"Mon", "today", "sunday"}, now)
	require.NoError(t, err)
	assert.Equal(t, []day.Key{day.Monday, day.Friday, day.Sunday}, days)

	_, err = options.ParseDays([]string{"someday"}, now)
	assert.ErrorContains(t, err, "want one of monday")
}

func TestCompleteDays(t *testing.T) {
	complete := options.CompleteDays(1)
	got, _ := complete(nil, nil, "t")
	assert.Equal(t, []string{"tuesday", "thursday", "today"}, got)

	got, _ = complete(nil, []string{"monday"}, "")
	assert.Empty(t, got)
}

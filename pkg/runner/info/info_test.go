package info

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/weekly/pkg/app"
	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/store"
)

func TestInfo(t *testing.T) {
	t.Setenv("WEEKLY_CONFIG_PATH", "")
	s := app.Open(store.NewMemory())
	s.Add(day.Monday, "Buy milk")
	s.Add(day.Sunday, "Rest")

	cfg := &store.Config{Backend: store.BackendDisk, Path: "/tmp/weekly", Key: store.DefaultKey}
	var buf bytes.Buffer
	i := Info{Config: cfg, Store: s, Out: &buf}
	require.NoError(t, i.Do(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "WEEKLY_CONFIG_PATH env var not set")
	assert.Contains(t, out, "Config.backend: disk")
	assert.Contains(t, out, "Config.path: /tmp/weekly")
	assert.Contains(t, out, "Config.key: "+store.DefaultKey)
	assert.Contains(t, out, "Tasks: 2")
}

func TestInfoRedis(t *testing.T) {
	t.Setenv("WEEKLY_CONFIG_PATH", "/etc/weekly")
	cfg := &store.Config{Backend: store.BackendRedis, Key: store.DefaultKey}
	cfg.Redis.Addr = "localhost:6379"

	var buf bytes.Buffer
	i := Info{Config: cfg, Out: &buf}
	assert.Error(t, i.Do(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "WEEKLY_CONFIG_PATH found on env, using /etc/weekly")
	assert.Contains(t, out, "Config.redis.addr: localhost:6379")
	assert.NotContains(t, out, "Config.path")
}

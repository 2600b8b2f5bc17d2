package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/userbot/internal/config"
)

const testConfig = `
[telegram]
api_id = 12345
api_hash = "0123456789abcdef"
bot_token = "123456:ABC-DEF"

[ai]
api_key = "sk-test"
api_url = "https://api.example.com/v1"
model = "single-model"

[log]
level = "error"

[[users]]
id = 1001
name = "Alice"
system_prompt = "Be nice."
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))
	return path
}

// The tests below are sequential: run installs a process-wide default logger.

func TestRunLookup(t *testing.T) {
	var out bytes.Buffer
	code := run(context.Background(), []string{"-config", writeTestConfig(t), "-lookup", "1001"}, &out)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "user:1001 -> Alice (id 1001)")
	assert.Contains(t, out.String(), "chat:1001 -> Alice (id 1001)")
}

func TestRunLookupUntracked(t *testing.T) {
	var out bytes.Buffer
	code := run(context.Background(), []string{"-config", writeTestConfig(t), "-lookup", "7"}, &out)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "user:7 -> not tracked")
}

func TestRunDump(t *testing.T) {
	src := writeTestConfig(t)
	dst := filepath.Join(t.TempDir(), "dump.yaml")

	code := run(context.Background(), []string{"-config", src, "-dump", dst}, &bytes.Buffer{})
	require.Equal(t, 0, code)

	want, err := config.Load(src)
	require.NoError(t, err)
	got, err := config.Load(dst)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRunFailures(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.toml")
	assert.Equal(t, 1, run(context.Background(), []string{"-config", missing}, &bytes.Buffer{}))
	assert.Equal(t, 2, run(context.Background(), []string{"-unknown-flag"}, &bytes.Buffer{}))
}

func TestRunWatchStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := run(ctx, []string{"-config", writeTestConfig(t), "-watch"}, &bytes.Buffer{})
	assert.Equal(t, 0, code)
}

// TestRunWatchReportsLiveSnapshot checks that -watch resolves lookups from
// the snapshot the watcher starts with.
func TestRunWatchReportsLiveSnapshot(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	code := run(ctx, []string{"-config", writeTestConfig(t), "-watch", "-lookup", "1001"}, &out)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "chat:1001 -> Alice (id 1001)")
}

func TestRunWatchMissingConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.toml")
	assert.Equal(t, 1, run(context.Background(), []string{"-config", missing, "-watch"}, &bytes.Buffer{}))
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const minimalTOML = `
[telegram]
api_id = 12345
api_hash = "0123456789abcdef"
bot_token = "123456:ABC-DEF"

[ai]
api_key = "sk-test"
api_url = "https://api.example.com/v1"
`

const fullTOML = `
[telegram]
api_id = 12345
api_hash = "0123456789abcdef"
bot_token = "123456:ABC-DEF"

[ai]
api_key = "sk-test"
api_url = "https://api.example.com/v1"
model = "fallback-model"
models = ["primary-model", "secondary-model"]
temperature = 0.7

[settings]
session_file = "data/bot.session"
debounce_seconds = 3
history_limit = 50

[log]
level = "debug"
json = true

[[users]]
id = 1001
name = "Alice"
system_prompt = """You are talking to Alice.
Keep it short."""

[[users]]
id = 1002
name = "Bob"
system_prompt = "You are talking to Bob."
`

// writeConfig writes content to name inside a fresh temp dir and returns the path.
func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

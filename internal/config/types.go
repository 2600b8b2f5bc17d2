package config

import (
	"log/slog"
	"time"
)

// Config is the root of the userbot configuration. A Config is never mutated
// after Load returns it; hot reload replaces the whole value (see Live).
type Config struct {
	Telegram TelegramConfig `mapstructure:"telegram" toml:"telegram" yaml:"telegram" json:"telegram"`
	AI       AIConfig       `mapstructure:"ai"       toml:"ai"       yaml:"ai"       json:"ai"`
	Settings Settings       `mapstructure:"settings" toml:"settings" yaml:"settings" json:"settings"`
	Log      LogConfig      `mapstructure:"log"      toml:"log"      yaml:"log"      json:"log"`
	Users    []TrackedUser  `mapstructure:"users"    toml:"users"    yaml:"users"    json:"users"    validate:"dive"`
}

// TelegramConfig holds the MTProto application credentials and the bot token
// used to sign in. All three fields are mandatory.
type TelegramConfig struct {
	APIID    int32  `mapstructure:"api_id"    toml:"api_id"    yaml:"api_id"    json:"api_id"`
	APIHash  string `mapstructure:"api_hash"  toml:"api_hash"  yaml:"api_hash"  json:"api_hash"`
	BotToken string `mapstructure:"bot_token" toml:"bot_token" yaml:"bot_token" json:"bot_token"`
}

// AIConfig describes the OpenAI-compatible backend. Model and Models are two
// ways of naming the desired model(s); see ModelsPriority.
type AIConfig struct {
	APIKey      string   `mapstructure:"api_key"     toml:"api_key"     yaml:"api_key"     json:"api_key"`
	APIURL      string   `mapstructure:"api_url"     toml:"api_url"     yaml:"api_url"     json:"api_url"     validate:"url"`
	Model       string   `mapstructure:"model"       toml:"model"       yaml:"model"       json:"model"`
	Models      []string `mapstructure:"models"      toml:"models"      yaml:"models"      json:"models"`
	Temperature float32  `mapstructure:"temperature" toml:"temperature" yaml:"temperature" json:"temperature" validate:"min=0,max=2"`
}

// Settings tunes the message handler. Every field has a default.
type Settings struct {
	SessionFile     string `mapstructure:"session_file"     toml:"session_file"     yaml:"session_file"     json:"session_file"     validate:"required"`
	DebounceSeconds uint64 `mapstructure:"debounce_seconds" toml:"debounce_seconds" yaml:"debounce_seconds" json:"debounce_seconds"`
	HistoryLimit    uint64 `mapstructure:"history_limit"    toml:"history_limit"    yaml:"history_limit"    json:"history_limit"`
}

// Debounce returns DebounceSeconds as a time.Duration.
func (s Settings) Debounce() time.Duration {
	return time.Duration(s.DebounceSeconds) * time.Second
}

// LogConfig selects the slog handler built by the logger package.
type LogConfig struct {
	Level string `mapstructure:"level" toml:"level" yaml:"level" json:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"  toml:"json"  yaml:"json"  json:"json"`
}

// TrackedUser is a participant the bot answers with a dedicated persona.
type TrackedUser struct {
	ID           int64  `mapstructure:"id"            toml:"id"            yaml:"id"            json:"id"            validate:"required"`
	Name         string `mapstructure:"name"          toml:"name"          yaml:"name"          json:"name"          validate:"required"`
	SystemPrompt string `mapstructure:"system_prompt" toml:"system_prompt" yaml:"system_prompt" json:"system_prompt" validate:"required"`
}

// UserPeer is the identity of a one-to-one conversation with u.
func (u TrackedUser) UserPeer() PeerID {
	return UserPeer(u.ID)
}

// ChatPeer is the identity of u's id used as a group chat.
func (u TrackedUser) ChatPeer() PeerID {
	return ChatPeer(u.ID)
}

// LogValue implements slog.LogValuer. Credentials are left out.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("telegram_api_id", int(c.Telegram.APIID)),
		slog.String("ai_api_url", c.AI.APIURL),
		slog.Any("ai_models", c.AI.ModelsPriority()),
		slog.Float64("ai_temperature", float64(c.AI.Temperature)),
		slog.String("session_file", c.Settings.SessionFile),
		slog.Uint64("debounce_seconds", c.Settings.DebounceSeconds),
		slog.Uint64("history_limit", c.Settings.HistoryLimit),
		slog.Int("users", len(c.Users)),
	)
}

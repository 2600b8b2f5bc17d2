package config

import "github.com/spf13/viper"

// Default values for optional configuration keys.
const (
	DefaultSessionFile     = "userbot.session"
	DefaultDebounceSeconds = 1
	DefaultHistoryLimit    = 25
	DefaultTemperature     = 1.5

	DefaultLogLevel = "info"
	DefaultLogJSON  = false
)

// requiredKeys have no default; Load fails with a MissingFieldError when any
// of them is absent from both the file and the environment.
var requiredKeys = []string{
	"telegram.api_id",
	"telegram.api_hash",
	"telegram.bot_token",
	"ai.api_key",
	"ai.api_url",
}

var defaults = map[string]any{
	"ai.model":       "",
	"ai.models":      []string{},
	"ai.temperature": DefaultTemperature,

	"settings.session_file":     DefaultSessionFile,
	"settings.debounce_seconds": DefaultDebounceSeconds,
	"settings.history_limit":    DefaultHistoryLimit,

	"log.level": DefaultLogLevel,
	"log.json":  DefaultLogJSON,
}

// setDefaults registers defaults for every optional key.
func setDefaults(v *viper.Viper) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that override file values, e.g.
// USERBOT_TELEGRAM_API_HASH overrides telegram.api_hash.
const EnvPrefix = "USERBOT"

// EnvName returns the environment variable that overrides key.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// readSource builds a viper instance for path with defaults and env bindings.
// The file format is taken from the extension.
func readSource(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees env values for keys viper knows about.
	for _, key := range requiredKeys {
		if err := v.BindEnv(key, EnvName(key)); err != nil {
			return nil, unreadable(path, fmt.Errorf("failed to bind env for %s: %w", key, err))
		}
	}
	for key := range defaults {
		if err := v.BindEnv(key, EnvName(key)); err != nil {
			return nil, unreadable(path, fmt.Errorf("failed to bind env for %s: %w", key, err))
		}
	}

	read := v.ReadInConfig
	if strings.EqualFold(filepath.Ext(path), ".json") {
		read = func() error { return readJSON(v, path) }
	}
	if err := read(); err != nil {
		return nil, unreadable(path, fmt.Errorf("failed to read config file: %w", err))
	}

	return v, nil
}

// decode checks required keys, unmarshals v into a Config and validates it.
func decode(v *viper.Viper, path string) (*Config, error) {
	var missing []error
	for _, key := range requiredKeys {
		if !v.IsSet(key) {
			missing = append(missing, &MissingFieldError{Field: key})
		}
	}
	if len(missing) > 0 {
		return nil, mismatch(path, errors.Join(missing...))
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg, strictDecoding()); err != nil {
		return nil, mismatch(path, fmt.Errorf("failed to unmarshal config: %w", err))
	}

	// Absent and empty lists are the same thing; keep them comparable.
	if cfg.Users == nil {
		cfg.Users = []TrackedUser{}
	}
	if cfg.AI.Models == nil {
		cfg.AI.Models = []string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, mismatch(path, err)
	}

	return cfg, nil
}

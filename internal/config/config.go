// Package config defines the userbot configuration, loads it from a TOML,
// YAML or JSON file with defaults and environment overrides, and derives the
// roster used to resolve incoming peers to tracked users.
package config

import (
	"log/slog"
	"time"
)

// Load reads the configuration file at path, applies defaults and USERBOT_*
// environment overrides, and validates the result.
//
// Errors wrap ErrSourceUnreadable when the file cannot be read or parsed, and
// ErrSchemaMismatch when its content does not fit the schema. A missing
// required key additionally matches ErrMissingField.
func Load(path string) (*Config, error) {
	startTime := time.Now()
	slog.Debug("loading configuration", "path", path)

	// Failures are returned, not logged; the caller owns reporting them.
	v, err := readSource(path)
	if err != nil {
		return nil, err
	}

	cfg, err := decode(v, path)
	if err != nil {
		return nil, err
	}

	if dups := DuplicateUserIDs(cfg.Users); len(dups) > 0 {
		slog.Warn("duplicate user ids in roster, later entries take precedence",
			"path", path,
			"user_ids", dups)
	}

	slog.Info("configuration loaded successfully",
		"path", path,
		"models", cfg.AI.ModelsPriority(),
		"users", len(cfg.Users),
		"duration_ms", time.Since(startTime).Milliseconds())
	slog.Debug("detailed configuration", "config", cfg)

	return cfg, nil
}

// LoadRoster loads path and builds the roster of its tracked users.
func LoadRoster(path string) (*Config, Roster, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, cfg.Roster(), nil
}

package config

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// Snapshot is one loaded configuration together with its roster. Snapshots
// are immutable; a reload produces a new one.
type Snapshot struct {
	Config   *Config
	Roster   Roster
	LoadedAt time.Time
}

// Live serves the current Snapshot of a configuration file to concurrent
// readers and replaces it on Reload.
type Live struct {
	path   string
	logger *slog.Logger

	current atomic.Pointer[Snapshot]
	group   singleflight.Group

	// OnReload, if set before Watch starts, is called once per successful
	// reload with the new snapshot.
	OnReload func(*Snapshot)
}

// NewLive loads path and returns a Live serving it.
func NewLive(path string, logger *slog.Logger) (*Live, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	l := &Live{
		path:   path,
		logger: logger.With("component", "config"),
	}

	snap, err := l.load()
	if err != nil {
		return nil, err
	}
	l.current.Store(snap)
	return l, nil
}

// SetLogger replaces the logger used for reload and watch events. It must
// be called before Watch starts.
func (l *Live) SetLogger(logger *slog.Logger) {
	l.logger = logger.With("component", "config")
}

// Path returns the watched configuration file.
func (l *Live) Path() string {
	return l.path
}

// Current returns the active snapshot. Callers must not modify it.
func (l *Live) Current() *Snapshot {
	return l.current.Load()
}

// Reload loads the file again and, on success, swaps the active snapshot.
// On failure the previous snapshot stays active. Concurrent calls share a
// single load.
func (l *Live) Reload() (*Snapshot, error) {
	v, err, _ := l.group.Do("reload", func() (any, error) {
		snap, err := l.load()
		if err != nil {
			return nil, err
		}
		prev := l.current.Swap(snap)
		l.logger.Info("configuration reloaded",
			"path", l.path,
			"users", len(snap.Config.Users),
			"previous_loaded_at", prev.LoadedAt.Format(time.RFC3339))
		if l.OnReload != nil {
			l.OnReload(snap)
		}
		return snap, nil
	})
	if err != nil {
		l.logger.Error("configuration reload failed, keeping previous", "path", l.path, "error", err)
		return nil, err
	}

	return v.(*Snapshot), nil
}

func (l *Live) load() (*Snapshot, error) {
	cfg, roster, err := LoadRoster(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &Snapshot{
		Config:   cfg,
		Roster:   roster,
		LoadedAt: time.Now(),
	}, nil
}

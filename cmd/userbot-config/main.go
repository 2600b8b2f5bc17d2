// Package main contains a command that loads, checks and optionally watches
// the userbot configuration.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/edgard/userbot/internal/config"
	"github.com/edgard/userbot/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitCode)
}

// run loads the configuration named by args, reports on it, and performs the
// requested actions. It returns the process exit code.
func run(ctx context.Context, args []string, out io.Writer) int {
	fs := flag.NewFlagSet("userbot-config", flag.ContinueOnError)
	configPath := fs.String("config", "./config.toml", "Path to configuration file")
	dumpPath := fs.String("dump", "", "Write the loaded configuration to this path (format by extension)")
	lookupID := fs.Int64("lookup", 0, "Resolve a numeric peer id against the roster")
	watch := fs.Bool("watch", false, "Keep running and reload the configuration when it changes")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// With -watch the Live owns the only load, so the report and the watcher
	// start from the same snapshot.
	var (
		live *config.Live
		snap *config.Snapshot
	)
	if *watch {
		l, err := config.NewLive(*configPath, nil)
		if err != nil {
			slog.Error("Failed to load configuration", "path", *configPath, "error", err)
			return 1
		}
		live, snap = l, l.Current()
	} else {
		cfg, roster, err := config.LoadRoster(*configPath)
		if err != nil {
			slog.Error("Failed to load configuration", "path", *configPath, "error", err)
			return 1
		}
		snap = &config.Snapshot{Config: cfg, Roster: roster}
	}
	cfg := snap.Config

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.JSON)
	report(log, cfg, snap.Roster)

	if *lookupID != 0 {
		printLookup(out, snap.Roster, *lookupID)
	}

	if *dumpPath != "" {
		if err := config.Save(cfg, *dumpPath); err != nil {
			log.Error("Failed to write configuration", "path", *dumpPath, "error", err)
			return 1
		}
		log.Info("Configuration written", "path", *dumpPath)
	}

	if live == nil {
		return 0
	}

	live.SetLogger(log)
	live.OnReload = func(s *config.Snapshot) {
		report(log, s.Config, s.Roster)
	}

	if err := live.Watch(ctx, config.DefaultWatchDebounce); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Configuration watcher failed", "error", err)
		return 1
	}

	log.Info("Stopped watching configuration.")
	return 0
}

// report logs a summary of cfg: models in priority order, session settings
// and the tracked users.
func report(log *slog.Logger, cfg *config.Config, roster config.Roster) {
	models := cfg.AI.ModelsPriority()
	if len(models) == 0 {
		log.Warn("No AI model configured")
	}

	log.Info("Configuration summary",
		"models", models,
		"temperature", cfg.AI.Temperature,
		"session_file", cfg.Settings.SessionFile,
		"debounce", cfg.Settings.Debounce(),
		"history_limit", cfg.Settings.HistoryLimit,
		"users", len(cfg.Users),
		"roster_keys", len(roster))

	for _, u := range cfg.Users {
		log.Debug("Tracked user",
			"id", u.ID,
			"name", u.Name,
			"system_prompt", logger.Preview(u.SystemPrompt, 60))
	}
}

func printLookup(out io.Writer, roster config.Roster, id int64) {
	for _, peer := range []config.PeerID{config.UserPeer(id), config.ChatPeer(id)} {
		if u, ok := roster.Lookup(peer); ok {
			fmt.Fprintf(out, "%s -> %s (id %d)\n", peer, u.Name, u.ID)
		} else {
			fmt.Fprintf(out, "%s -> not tracked\n", peer)
		}
	}
}

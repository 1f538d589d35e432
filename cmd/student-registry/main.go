// main is the entry point of the student registry application.
//
// STARTUP SEQUENCE:
//  1. Load configuration (optional YAML file + environment)
//  2. Initialise the logger
//  3. Construct the record store selected by the config
//  4. Wrap it in a registry (the business-rule layer)
//  5. Run the interactive menu on stdin/stdout until exit or EOF
//
// RUNNING:
//
//	go run ./cmd/student-registry
//
// or with an explicit config:
//
//	go run ./cmd/student-registry --config=config/local.yaml
//
// All state is process-lifetime only — exiting discards every record.
package main

import (
	"log/slog"
	"os"

	"github.com/aanand-mishra/student-registry/internal/config"
	"github.com/aanand-mishra/student-registry/internal/menu"
	"github.com/aanand-mishra/student-registry/internal/registry"
	"github.com/aanand-mishra/student-registry/internal/storage"
	"github.com/aanand-mishra/student-registry/internal/storage/memory"
	"github.com/aanand-mishra/student-registry/internal/storage/sqlite"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	// MustLoad falls back to env vars + defaults when no file is given,
	// so the program boots with no flags at all.
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// slog is Go's structured logger (stdlib since Go 1.21). Logs go to
	// stderr so they never interleave with the menu on stdout.
	log := setupLogger(cfg.Env)

	log.Info("starting student-registry",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver),
	)

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	// We hold the result as the storage.Storage INTERFACE, not as a
	// concrete type — the registry only ever sees the interface, so the
	// backend is swappable from config alone.
	var store storage.Storage
	switch cfg.Storage.Driver {
	case "sqlite":
		db, err := sqlite.New(cfg.Storage.DSN)
		if err != nil {
			log.Error("failed to initialise storage",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
		store = db
	default: // "memory" and anything unrecognised
		store = memory.New()
	}

	// ── 4. Construct the Registry ─────────────────────────────────────────
	// One explicitly constructed registry per store — no package-level
	// singleton anywhere in the program.
	reg := registry.New(store, log)

	// ── 5. Run the Menu ───────────────────────────────────────────────────
	// Run blocks until the user picks exit or stdin reaches EOF; it is
	// the lifetime owner of the process.
	m := menu.New(reg, os.Stdin, os.Stdout, log)
	if err := m.Run(); err != nil {
		log.Error("menu terminated", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("student-registry stopped")
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}

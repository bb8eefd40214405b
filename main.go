// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"eventlink/cliparse"
	"eventlink/middleware"
	"eventlink/router"
	"eventlink/store"
)

func main() {
	var err error

	// Load .env if present; real deployments set env directly
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	if cfg.UsingDefaultSecrets() {
		slog.Warn("running with default admin password or session secret; override ADMIN_PASSWORD and SESSION_SECRET in any real deployment")
	}

	// Connect to the database
	st, err := store.Open(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	// Create schema (tables)
	if err := st.CreateSchema(context.Background()); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// One-time repair for events that predate the token feature. Non-fatal:
	// new events always get a token at insert time.
	repaired, err := st.BackfillTokens(context.Background())
	if err != nil {
		slog.Warn("token backfill failed", "error", err)
	} else if repaired > 0 {
		slog.Info("backfilled registration tokens", "events", repaired)
	}

	// Create router
	mux := router.NewRouter(st, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.Recover(middleware.CORS(mux)),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "base_url", cfg.BaseURL)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// Copyright (c) 2025 The gradebook authors.
// MIT licensed; see LICENSE.

package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/mattn/go-isatty"

	"gradebook/cliparse"
	"gradebook/db"
	"gradebook/queries"
	"gradebook/report"
	"gradebook/router"
)

func main() {
	setupLogging()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the configured engine
	conn, err := db.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	// Create schema (tables + index)
	if err := db.CreateSchema(conn, cfg.DatabaseDriver); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "driver", cfg.DatabaseDriver)

	// Seed the fixed classroom dataset
	if err := db.Seed(conn); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Seeded sample data", "students", db.StudentCount, "grades", db.GradeCount)

	// Run the query catalog and print the classroom report
	store := queries.NewStore(conn)
	if err := report.Write(os.Stdout, store, report.DefaultOptions()); err != nil {
		slog.Error("report failed", "error", err)
		os.Exit(1)
	}

	if !cfg.Serve {
		return
	}

	// Serve the report API
	mux := router.NewRouter(store, cfg)
	server := http.Server{
		Handler: mux,
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

	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// setupLogging picks a text handler on a terminal, JSON otherwise.
func setupLogging() {
	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) {
		handler = slog.NewTextHandler(os.Stderr, nil)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	}
	slog.SetDefault(slog.New(handler))
}

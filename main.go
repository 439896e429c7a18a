// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/project-request/cliparse"
	"github.com/danielhkuo/project-request/db"
	"github.com/danielhkuo/project-request/form"
	"github.com/danielhkuo/project-request/metrics"
	"github.com/danielhkuo/project-request/router"
	"github.com/danielhkuo/project-request/seed"
	"github.com/danielhkuo/project-request/wizard"
)

func main() {
	if err := cliparse.LoadEnvFile(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Command {
	case cliparse.CommandSeed:
		err = runSeed(ctx, dbConn, cfg.Reset)
	case cliparse.CommandIntake:
		err = runIntake(ctx, dbConn)
	default:
		err = serve(ctx, dbConn, cfg)
	}
	if err != nil {
		slog.Error("command failed", "command", cfg.Command, "error", err)
		dbConn.Close()
		os.Exit(1)
	}
}

func runSeed(ctx context.Context, dbConn *sql.DB, reset bool) error {
	if reset {
		if err := db.ResetSchema(dbConn); err != nil {
			return err
		}
		slog.Warn("Database reset", "tables", "all")
	}
	_, err := seed.Run(ctx, dbConn, time.Now())
	return err
}

func runIntake(ctx context.Context, dbConn *sql.DB) error {
	store := db.NewStore(dbConn)

	audiences, err := store.ListAudiences(ctx)
	if err != nil {
		return err
	}
	taskTypes, err := store.ListTaskTypes(ctx)
	if err != nil {
		return err
	}
	if len(audiences) == 0 || len(taskTypes) == 0 {
		slog.Warn("reference data is empty, run the seed command first")
	}

	o, err := form.New(store, form.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	result, err := wizard.Run(ctx, wizard.NewSurveyDriver(os.Stdout), o, audiences, taskTypes, os.Stdout)
	if errors.Is(err, wizard.ErrAborted) {
		slog.Info("Intake cancelled")
		return nil
	}
	if err != nil {
		return err
	}
	slog.Info("Request submitted", "project_id", result.ProjectID)
	return nil
}

func serve(ctx context.Context, dbConn *sql.DB, cfg cliparse.Config) error {
	if cfg.SeedOnStart {
		if err := runSeed(ctx, dbConn, cfg.Reset); err != nil {
			return err
		}
	}

	handler := router.NewHandler(dbConn, cfg, router.WithMetrics(metrics.New()))

	server := http.Server{
		Handler:           handler,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		// Wait for Ctrl-C signal
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	slog.Info("Listening", "port", cfg.Port)
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("Server closed")
	return nil
}

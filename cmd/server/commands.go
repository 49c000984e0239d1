package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/trentd187/fiber-starter/internal/apperr"
	"github.com/trentd187/fiber-starter/internal/config"
	"github.com/trentd187/fiber-starter/internal/database"
	"github.com/trentd187/fiber-starter/internal/logging"
	"github.com/trentd187/fiber-starter/internal/server"
)

// shutdownTimeout bounds how long in-flight requests get after SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "server",
		Short:         "Fiber starter API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Running the binary without a subcommand serves, like the `serve` subcommand.
		RunE: runServe,
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Apply migrations and start the HTTP server",
			Args:  cobra.NoArgs,
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations and exit",
			Args:  cobra.NoArgs,
			RunE:  runMigrate,
		},
	)
	return root
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	log := logging.New(os.Stderr, cfg.IsProduction())
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open creates the file if needed, enables WAL, and applies migrations before returning.
	db, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return apperr.Wrap(apperr.KindOf(err), err, "failed to initialize SQLite database connection pool")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}()

	app := server.New(cfg, db, log)

	listenErr := make(chan error, 1)
	go func() {
		log.Info("starting HTTP server", "addr", "http://"+cfg.Addr())
		listenErr <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-listenErr:
		return apperr.Wrap(apperr.KindInfrastructure, err, "failed to bind server to address "+cfg.Addr())
	case <-ctx.Done():
	}

	log.Info("shutting down", "timeout", shutdownTimeout)
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return apperr.Wrap(apperr.KindInfrastructure, err, "server shutdown failed")
	}
	// Listen returns once the listener is closed; drain it so the goroutine exits.
	if err := <-listenErr; err != nil && !errors.Is(err, context.Canceled) {
		log.Warn("listener stopped with error", "error", err)
	}
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	db, err := database.Open(cmd.Context(), cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close(db)

	version, err := database.Migrate(db)
	if err != nil {
		return apperr.Wrap(apperr.KindInfrastructure, err, "failed to read schema version")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema is at version %d\n", version)
	return nil
}

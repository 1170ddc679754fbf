package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"animal-sounds/internal/adapters/storage/sqlstore"
	"animal-sounds/internal/config"
	"animal-sounds/internal/domain/animals"
	"animal-sounds/internal/platform/logger"
	"animal-sounds/internal/router"
)

type serveFlags struct {
	configPath string
	port       int
	db         string
	autoSchema bool
	logLevel   string
	logFormat  string
	logFile    string
}

func serve(cmd *cobra.Command, flags serveFlags) error {
	cfg, err := config.Load(flags.configPath, os.Getenv)
	if err != nil {
		return err
	}
	applyFlags(cmd, flags, &cfg)

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    "animal-sounds",
		File:   cfg.Log.File,
	})
	// los paquetes que usan el logger global (sqlstore) escriben al mismo destino
	zlog.Logger = log

	var repo animals.Repository
	if dsn := cfg.ConnectionString(config.Api1DB); dsn != "" {
		db, err := sqlstore.Open(dsn)
		if err != nil {
			return fmt.Errorf("open %s: %w", config.Api1DB, err)
		}
		defer db.Close()

		if cfg.AutoSchema {
			if err := db.EnsureSchema(cmd.Context()); err != nil {
				return err
			}
		}

		log.Info().Str("driver", db.Driver()).Msg("using relational store")
		repo = sqlstore.NewAnimalsRepo(db)
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router.NewRouter(router.Options{Repo: repo, Logger: log}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return run(cmd.Context(), srv, log)
}

// run sirve hasta SIGINT/SIGTERM y luego hace shutdown ordenado.
func run(parent context.Context, srv *http.Server, log zerolog.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Los flags sólo pisan la config si se pasaron explícitamente.
func applyFlags(cmd *cobra.Command, flags serveFlags, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("port") && flags.port > 0 {
		cfg.Addr = fmt.Sprintf(":%d", flags.port)
	}
	if fs.Changed("db") {
		cfg.SetConnectionString(config.Api1DB, flags.db)
	}
	if fs.Changed("auto-schema") {
		cfg.AutoSchema = flags.autoSchema
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if fs.Changed("log-format") {
		cfg.Log.Format = flags.logFormat
	}
	if fs.Changed("log-file") {
		cfg.Log.File = flags.logFile
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chitfund-app-go/internal/app"
	"chitfund-app-go/internal/config"
	"chitfund-app-go/internal/db"
	"chitfund-app-go/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	log := logger.NewFromEnv()
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		os.Exit(migrateOnly(log))
	}
	os.Exit(run(log))
}

// migrateOnly applies pending schema migrations and exits, for deployments
// that run migrations as a separate step with DB_AUTO_MIGRATE=false.
func migrateOnly(log logger.Logger) int {
	cfg, err := config.Load(log)
	if err != nil {
		log.Critical("migrate: load config failed", "err", err)
		return 1
	}
	if err := db.Migrate(cfg.DB, log); err != nil {
		log.Critical("migrate: failed", "err", err)
		return 1
	}
	return 0
}

func run(log logger.Logger) int {
	log.Info("app: starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(log)
	if err != nil {
		log.Critical("app: init failed", "err", err)
		return 1
	}

	srv := application.HTTPServer()
	log.Info("http: listening", "addr", srv.Addr, "env", application.Env())

	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
		log.Info("app: shutdown signal received")
	case err := <-serverErrCh:
		if err != nil {
			log.Critical("http: server failed", "addr", srv.Addr, "err", err)
			exitCode = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("http: graceful shutdown failed", "err", err)
		exitCode = 1
	}

	if err := application.Close(); err != nil {
		log.Error("app: close failed", "err", err)
		exitCode = 1
	}

	if exitCode == 0 {
		log.Info("app: stopped")
	}
	return exitCode
}

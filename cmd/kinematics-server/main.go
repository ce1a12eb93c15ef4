// Command kinematics-server runs the cloud kinematics engine's HTTP API.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/config"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/httpapi"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/presets"
)

// version is overridable at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("kinematics-server: %w", err)
	}

	logger, err := newLogger(cfg.LogDev)
	if err != nil {
		return fmt.Errorf("kinematics-server: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	reg, err := presets.New()
	if err != nil {
		return fmt.Errorf("kinematics-server: %w", err)
	}

	server := httpapi.NewServer(logger, reg, cfg, version)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr), zap.String("version", version))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return fmt.Errorf("kinematics-server: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("kinematics-server: shutdown: %w", err)
	}
	return nil
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

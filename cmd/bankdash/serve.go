package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/iammorganparry/bankdash/internal/api"
	"github.com/iammorganparry/bankdash/internal/config"
	"github.com/iammorganparry/bankdash/internal/dataset"
	"github.com/iammorganparry/bankdash/internal/view"
)

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runServe(ctx, cfg, logger); err != nil {
		logger.Error("server failed", "error", err)
		return err
	}
	return nil
}

// runServe loads the dataset, then listens. A LoadError is returned before
// any port is opened.
func runServe(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	ds, err := loadDataset(cfg, logger)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return serve(ctx, ln, newServer(ds, cfg, logger), logger)
}

func loadDataset(cfg *config.Config, logger *slog.Logger) (*dataset.Dataset, error) {
	start := time.Now()
	ds, err := dataset.Load(cfg.DataPath, cfg.DelimiterRune())
	if err != nil {
		return nil, err
	}
	logger.Info("dataset loaded",
		"path", cfg.DataPath,
		"records", ds.Len(),
		"columns", len(ds.Columns()),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return ds, nil
}

func newServer(ds *dataset.Dataset, cfg *config.Config, logger *slog.Logger) *http.Server {
	router := api.NewRouter(
		ds,
		view.NewLayout(cfg.Title),
		vg.Points(cfg.FigureWidth), vg.Points(cfg.FigureHeight),
		cfg.Debug,
		logger,
	)
	return &http.Server{
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// serve runs srv on ln until ctx is done, then shuts down gracefully.
func serve(ctx context.Context, ln net.Listener, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("dashboard server starting", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

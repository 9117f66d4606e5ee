// SPDX-License-Identifier: MIT

// Command plantsim serves the plant simulation HTTP API.
//
//	plantsim -addr :8000 -origin http://localhost:5173 -log-level debug
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/katalvlaran/plantsim/internal/api"
)

var (
	addr            = flag.String("addr", ":8000", "Listen address")
	origin          = flag.String("origin", api.DefaultAllowedOrigin, "Allowed CORS origin (\"*\" for any)")
	maxCount        = flag.Int64("max-count", api.DefaultMaxCount, "Largest count accepted per request")
	logLevel        = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFormat       = flag.String("log-format", "text", "Log format: text or json")
	shutdownTimeout = flag.Duration("shutdown-timeout", 10*time.Second, "Grace period for in-flight requests")
)

func main() {
	flag.Parse()

	logger, err := newLogger(*logLevel, *logFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if *maxCount <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -max-count must be > 0, got %d\n", *maxCount)
		os.Exit(2)
	}
	if *origin == "" {
		fmt.Fprintln(os.Stderr, "Error: -origin must not be empty")
		os.Exit(2)
	}

	if err := run(logger); err != nil {
		logger.Error("server stopped", slog.Any("err", err))
		os.Exit(1)
	}
}

// run serves until SIGINT/SIGTERM, then drains in-flight requests.
func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr: *addr,
		Handler: api.NewServer(
			api.WithLogger(logger),
			api.WithAllowedOrigin(*origin),
			api.WithMaxCount(*maxCount),
		).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", *addr), slog.String("origin", *origin))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", *shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), *shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// newLogger builds a slog logger writing to stderr.
func newLogger(level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("-log-level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	default:
		return nil, fmt.Errorf("-log-format must be text or json, got %q", format)
	}
}

// Package cli provides the financas command tree and the initialization
// helpers shared by cmd/financas and cmd/alert-worker.
package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"financas/internal/config"
	"financas/internal/log"
)

// SetupLogger initializes structured logging at the given level and sets
// it as the default logger.
func SetupLogger(level string, w io.Writer) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}
	logger := log.New(log.Config{Level: lvl, Component: log.ComponentCLI, Output: w})
	log.SetDefault(logger)
	return logger, nil
}

// LoadAndValidateConfig loads the optional env file, reads the
// environment and validates the result.
func LoadAndValidateConfig(envFiles ...string) (*config.Config, error) {
	if err := config.LoadEnvFile(envFiles...); err != nil {
		return nil, err
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GracefulShutdown sets up signal handling for graceful shutdown.
// Returns a context that will be cancelled on shutdown signals,
// and a channel that signals when cleanup is complete.
func GracefulShutdown(logger *log.Logger, timeout time.Duration, cleanup func()) (context.Context, <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String(), log.FieldOperation, log.OpShutdown)
		cancel()

		finished := make(chan struct{})
		go func() {
			if cleanup != nil {
				cleanup()
			}
			close(finished)
		}()

		select {
		case <-finished:
			logger.Info("Shutdown complete")
		case <-time.After(timeout):
			logger.Warn("Shutdown timeout reached")
		}
		close(done)
	}()

	return ctx, done
}

// WaitForShutdown blocks until the context is cancelled and cleanup ran.
func WaitForShutdown(ctx context.Context, done <-chan struct{}) {
	<-ctx.Done()
	<-done
}

func describeConfigError(err error) error {
	return WrapExitError(ExitCommandError, "invalid configuration", err)
}

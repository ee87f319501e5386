package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"financas/internal/backend"
	"financas/internal/cli"
	"financas/internal/log"
	"financas/internal/worker"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Configuration validation failed:", err)
		return 1
	}

	logger, err := cli.SetupLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger = logger.WithComponent(log.ComponentWorker)
	logger.Info("Starting alert-worker", log.FieldOperation, log.OpStartup)

	if !cfg.AlertsEnabled() {
		logger.Error("AMQP_URL is required to consume goal alerts")
		return 1
	}

	b, err := backend.NewFactory(logger).Create(context.Background(), cfg)
	if err != nil {
		logger.Error("Failed to initialize backend", log.FieldError, err)
		return 1
	}
	defer b.Close()

	if b.Alerts == nil {
		logger.Error("AMQP broker unreachable")
		return 1
	}

	b.Caches().StartCleanup(time.Minute)
	alerts := worker.NewAlertWorker(b.Store, b.Dashboard, os.Stdout, worker.WithLogger(logger))

	stopped := make(chan struct{})
	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func() { <-stopped })

	var consumeErr error
	go func() {
		defer close(stopped)
		consumeErr = b.Alerts.ConsumeGoalAlerts(ctx, alerts.HandleGoalAlert)
	}()

	exitCode := 0
	select {
	case <-stopped:
		if consumeErr != nil && !errors.Is(consumeErr, context.Canceled) {
			logger.Error("Message consumption failed", log.FieldError, consumeErr)
			exitCode = 1
		}
	case <-done:
	}

	handled, stale := alerts.Stats()
	logger.Info("Alert worker stopped", "handled", handled, "stale", stale)
	return exitCode
}

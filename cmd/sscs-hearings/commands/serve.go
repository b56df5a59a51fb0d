package commands

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	apphearings "github.com/hmcts/sscs-hearings-go/internal/application/hearings"
	"github.com/hmcts/sscs-hearings-go/internal/infrastructure/casestore"
	"github.com/hmcts/sscs-hearings-go/internal/infrastructure/ops"
	"github.com/hmcts/sscs-hearings-go/internal/infrastructure/queue"
	"github.com/hmcts/sscs-hearings-go/pkg/config"
)

// ServeCmd runs the orchestrator: queue worker plus operational HTTP
// surface.
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the hearings orchestrator",
	Long: `Consume hearing requests from the message queue and reconcile them
against the scheduling service and the case store. Health, readiness
and metrics are served over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		slog.SetDefault(logger)

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		store, err := newCaseStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		registry := prometheus.NewRegistry()
		metrics := ops.NewMetrics(registry)

		service, err := newService(cfg, store, apphearings.WithRecorder(metrics))
		if err != nil {
			return err
		}

		consumer, err := queue.NewConsumer(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, cfg.AMQPRoutingKeys)
		if err != nil {
			return err
		}
		defer consumer.Close()

		publisher, err := queue.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return err
		}
		defer publisher.Close()

		worker := queue.NewWorker(consumer, publisher, service, metrics,
			queue.WorkerConfig{DeadLetterKey: cfg.AMQPDeadLetterKey}, logger)

		checks := map[string]ops.ReadinessCheck{
			// A not-found probe still proves the store answers.
			"casestore": func(ctx context.Context) error {
				_, err := store.GetCase(ctx, "readiness-probe")
				if err != nil && !errors.Is(err, casestore.ErrCaseNotFound) {
					return err
				}
				return nil
			},
		}
		server := ops.NewServer(registry, checks)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 2)
		go func() {
			logger.Info("ops server listening", "addr", cfg.OpsHTTPAddr)
			errCh <- server.Run(cfg.OpsHTTPAddr)
		}()
		go func() {
			logger.Info("worker consuming", "queue", cfg.AMQPQueue)
			errCh <- worker.Run(ctx)
		}()

		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return nil
		case err := <-errCh:
			return err
		}
	},
}

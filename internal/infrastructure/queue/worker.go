package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	domain "github.com/hmcts/sscs-hearings-go/internal/domain/hearings"
	"github.com/hmcts/sscs-hearings-go/internal/infrastructure/casestore"
)

// Processor executes one hearing lifecycle transition.
type Processor interface {
	ProcessHearingRequest(ctx context.Context, request domain.HearingRequest) error
}

// Observer records processing outcomes. Implementations must be safe for
// concurrent use.
type Observer interface {
	RequestProcessed(state, outcome string)
}

// Deliverer is the delivery-stream side of the consumer.
type Deliverer interface {
	Deliveries(ctx context.Context) (<-chan amqp.Delivery, error)
}

// DeadLetterer publishes fatally failed requests for manual intervention.
type DeadLetterer interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Worker drives the orchestrator from the hearing-request queue. Each
// message is processed exactly once: success and fatal failures are acked
// (fatal failures after dead-lettering), transient failures are nacked for
// redelivery.
type Worker struct {
	consumer      Deliverer
	deadLetters   DeadLetterer
	processor     Processor
	observer      Observer
	deadLetterKey string
	logger        *slog.Logger
}

// WorkerConfig configures a Worker.
type WorkerConfig struct {
	// DeadLetterKey is the routing key dead-lettered requests are published
	// under. Defaults to "hearings.deadletter".
	DeadLetterKey string
}

// NewWorker creates a queue worker. The dead-letterer and observer are
// optional; a nil logger falls back to slog.Default.
func NewWorker(consumer Deliverer, deadLetters DeadLetterer, processor Processor, observer Observer, config WorkerConfig, logger *slog.Logger) *Worker {
	if config.DeadLetterKey == "" {
		config.DeadLetterKey = "hearings.deadletter"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{
		consumer:      consumer,
		deadLetters:   deadLetters,
		processor:     processor,
		observer:      observer,
		deadLetterKey: config.DeadLetterKey,
		logger:        logger,
	}
}

// Run consumes deliveries until the context is cancelled or the delivery
// stream closes.
func (w *Worker) Run(ctx context.Context) error {
	deliveries, err := w.consumer.Deliveries(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return nil
			}
			w.handle(ctx, delivery)
		}
	}
}

func (w *Worker) handle(ctx context.Context, delivery amqp.Delivery) {
	var request domain.HearingRequest
	if err := json.Unmarshal(delivery.Body, &request); err != nil {
		w.logger.Error("discarding malformed hearing request", "error", err)
		w.deadLetter(ctx, json.RawMessage(delivery.Body))
		w.observe("", "malformed")
		_ = delivery.Ack(false)
		return
	}

	err := w.processor.ProcessHearingRequest(ctx, request)
	switch {
	case err == nil:
		w.observe(string(request.HearingState), "ok")
		_ = delivery.Ack(false)

	case isFatal(err):
		w.logger.Error("hearing request failed fatally",
			"caseId", request.CaseID,
			"state", string(request.HearingState),
			"error", err)
		w.deadLetter(ctx, request)
		w.observe(string(request.HearingState), "fatal")
		_ = delivery.Ack(false)

	default:
		w.logger.Warn("hearing request failed, requeueing",
			"caseId", request.CaseID,
			"state", string(request.HearingState),
			"error", err)
		w.observe(string(request.HearingState), "requeued")
		_ = delivery.Nack(false, true)
	}
}

func (w *Worker) deadLetter(ctx context.Context, v any) {
	if w.deadLetters == nil {
		return
	}
	if err := w.deadLetters.PublishJSON(ctx, w.deadLetterKey, v); err != nil {
		w.logger.Error("failed to dead-letter hearing request", "error", err)
	}
}

func (w *Worker) observe(state, outcome string) {
	if w.observer != nil {
		w.observer.RequestProcessed(state, outcome)
	}
}

// isFatal reports whether a processing error cannot succeed on redelivery:
// bad input, a missing case or hearing, or an exhausted retry policy whose
// compensation has already run.
func isFatal(err error) bool {
	return errors.Is(err, domain.ErrUnhandleableState) ||
		errors.Is(err, domain.ErrListing) ||
		errors.Is(err, domain.ErrRetriesExhausted) ||
		errors.Is(err, domain.ErrNoHearing) ||
		errors.Is(err, casestore.ErrCaseNotFound)
}

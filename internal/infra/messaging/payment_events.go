package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
)

const (
	PaymentEventSucceeded = "payment.succeeded"
	PaymentEventFailed    = "payment.failed"
)

type PaymentEvent struct {
	Type          string `json:"type"`
	TransactionID string `json:"transaction_id"`
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

const (
	retryBackoff      = 200 * time.Millisecond
	maxRetryBackoff   = 30 * time.Second
	alertAfterAttempt = 5
)

// PaymentEventConsumer applies provider outcomes published on a Kafka topic.
// Offsets are committed after the event is applied or judged unprocessable,
// so delivery is at least once; the handlers are idempotent.
// A database failure holds the partition: the event is retried until it
// applies or ctx is cancelled, and its offset is never committed before that.
type PaymentEventConsumer struct {
	reader     messageReader
	events     commands.PaymentEvents
	logger     *slog.Logger
	backoff    time.Duration
	maxBackoff time.Duration
}

func NewPaymentEventConsumer(brokers []string, topic, groupID string, events commands.PaymentEvents, logger *slog.Logger) *PaymentEventConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return newPaymentEventConsumer(reader, events, logger)
}

func newPaymentEventConsumer(reader messageReader, events commands.PaymentEvents, logger *slog.Logger) *PaymentEventConsumer {
	return &PaymentEventConsumer{
		reader:     reader,
		events:     events,
		logger:     logger,
		backoff:    retryBackoff,
		maxBackoff: maxRetryBackoff,
	}
}

// Run blocks until ctx is cancelled or the reader fails.
func (c *PaymentEventConsumer) Run(ctx context.Context) error {
	c.logger.InfoContext(ctx, "payment event consumer started")
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errs.Wrap(err, "failed to fetch payment event")
		}

		if err := c.handle(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errs.Wrapf(err, "payment event at offset %d not applied", msg.Offset)
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errs.Wrap(err, "failed to commit payment event offset")
		}
	}
}

func (c *PaymentEventConsumer) Close() error {
	return c.reader.Close()
}

func (c *PaymentEventConsumer) handle(ctx context.Context, msg kafka.Message) error {
	var evt PaymentEvent
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		c.logger.WarnContext(ctx, "skipping undecodable payment event", "offset", msg.Offset, "error", err)
		return nil
	}

	var apply func(context.Context, string) (*commands.PaymentResult, error)
	switch evt.Type {
	case PaymentEventSucceeded:
		apply = c.events.HandlePaymentSuccess
	case PaymentEventFailed:
		apply = c.events.HandlePaymentFailure
	default:
		c.logger.WarnContext(ctx, "skipping payment event of unknown type", "type", evt.Type, "offset", msg.Offset)
		return nil
	}

	for attempt := 1; ; attempt++ {
		res, err := apply(ctx, evt.TransactionID)
		if err == nil {
			c.logger.InfoContext(ctx, "payment event applied",
				"type", evt.Type, "transaction_id", evt.TransactionID,
				"booking_id", res.BookingID, "outcome", res.Outcome)
			return nil
		}
		if !errs.Is(err, commands.ErrDatabaseOperationFailed) {
			c.logger.WarnContext(ctx, "payment event rejected",
				"type", evt.Type, "transaction_id", evt.TransactionID, "error", err)
			return nil
		}
		if attempt == alertAfterAttempt {
			c.logger.ErrorContext(ctx, "payment event still failing, holding offset",
				"type", evt.Type, "transaction_id", evt.TransactionID,
				"partition", msg.Partition, "offset", msg.Offset, "error", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.retryDelay(attempt)):
		}
	}
}

func (c *PaymentEventConsumer) retryDelay(attempt int) time.Duration {
	d := c.backoff * time.Duration(attempt)
	if d > c.maxBackoff {
		return c.maxBackoff
	}
	return d
}

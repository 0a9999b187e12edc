//go:build unit

package messaging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	mu        sync.Mutex
	messages  []kafka.Message
	committed []int64
	drained   chan struct{}
}

func newFakeReader(values ...string) *fakeReader {
	r := &fakeReader{drained: make(chan struct{})}
	for i, v := range values {
		r.messages = append(r.messages, kafka.Message{Offset: int64(i), Value: []byte(v)})
	}
	return r
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.messages) > 0 {
		msg := r.messages[0]
		r.messages = r.messages[1:]
		r.mu.Unlock()
		return msg, nil
	}
	r.mu.Unlock()
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	if len(r.messages) == 0 {
		select {
		case <-r.drained:
		default:
			close(r.drained)
		}
	}
	return nil
}

func (r *fakeReader) Close() error { return nil }

type recordingEvents struct {
	mu        sync.Mutex
	successes []string
	failures  []string
	failWith  []error
}

func (e *recordingEvents) next() error {
	if len(e.failWith) == 0 {
		return nil
	}
	err := e.failWith[0]
	e.failWith = e.failWith[1:]
	return err
}

func (e *recordingEvents) HandlePaymentSuccess(_ context.Context, transactionID string) (*commands.PaymentResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.successes = append(e.successes, transactionID)
	if err := e.next(); err != nil {
		return nil, err
	}
	return &commands.PaymentResult{BookingID: uuid.New(), TransactionID: transactionID, Outcome: commands.OutcomeConfirmed}, nil
}

func (e *recordingEvents) HandlePaymentFailure(_ context.Context, transactionID string) (*commands.PaymentResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failures = append(e.failures, transactionID)
	if err := e.next(); err != nil {
		return nil, err
	}
	return &commands.PaymentResult{BookingID: uuid.New(), TransactionID: transactionID, Outcome: commands.OutcomeFailed}, nil
}

func runUntilDrained(t *testing.T, reader *fakeReader, events *recordingEvents) {
	t.Helper()
	c := newPaymentEventConsumer(reader, events, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.backoff = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	select {
	case <-reader.drained:
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not drain messages")
	}
	cancel()
	require.NoError(t, <-done)
}

func TestPaymentEventConsumer_Dispatch(t *testing.T) {
	reader := newFakeReader(
		`{"type":"payment.succeeded","transaction_id":"pi_1"}`,
		`{"type":"payment.failed","transaction_id":"pi_2"}`,
	)
	events := &recordingEvents{}

	runUntilDrained(t, reader, events)

	assert.Equal(t, []string{"pi_1"}, events.successes)
	assert.Equal(t, []string{"pi_2"}, events.failures)
	assert.Equal(t, []int64{0, 1}, reader.committed)
}

func TestPaymentEventConsumer_SkipsPoisonMessages(t *testing.T) {
	reader := newFakeReader(
		`not json`,
		`{"type":"payment.disputed","transaction_id":"pi_1"}`,
		`{"type":"payment.succeeded","transaction_id":"pi_unknown"}`,
	)
	events := &recordingEvents{failWith: []error{commands.ErrPaymentNotFound}}

	runUntilDrained(t, reader, events)

	assert.Equal(t, []string{"pi_unknown"}, events.successes, "rejected events are not retried")
	assert.Equal(t, []int64{0, 1, 2}, reader.committed)
}

func TestPaymentEventConsumer_RetriesTransientFailures(t *testing.T) {
	reader := newFakeReader(`{"type":"payment.succeeded","transaction_id":"pi_1"}`)
	transient := errs.Mark(errors.New("connection reset"), commands.ErrDatabaseOperationFailed)
	events := &recordingEvents{}
	for range 7 {
		events.failWith = append(events.failWith, transient)
	}

	runUntilDrained(t, reader, events)

	assert.Len(t, events.successes, 8)
	assert.Equal(t, []int64{0}, reader.committed)
}

func TestPaymentEventConsumer_HoldsOffsetWhileDatabaseFails(t *testing.T) {
	reader := newFakeReader(`{"type":"payment.succeeded","transaction_id":"pi_1"}`)
	transient := errs.Mark(errors.New("connection reset"), commands.ErrDatabaseOperationFailed)
	events := &recordingEvents{}
	for range 1000 {
		events.failWith = append(events.failWith, transient)
	}

	c := newPaymentEventConsumer(reader, events, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.backoff = time.Millisecond
	c.maxBackoff = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	require.Eventually(t, func() bool {
		events.mu.Lock()
		defer events.mu.Unlock()
		return len(events.successes) >= 10
	}, 5*time.Second, time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	reader.mu.Lock()
	defer reader.mu.Unlock()
	assert.Empty(t, reader.committed, "a failed event must not be committed")
}

func TestPaymentEventConsumer_RetryDelayIsCapped(t *testing.T) {
	c := newPaymentEventConsumer(newFakeReader(), &recordingEvents{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, retryBackoff, c.retryDelay(1))
	assert.Equal(t, 3*retryBackoff, c.retryDelay(3))
	assert.Equal(t, maxRetryBackoff, c.retryDelay(10000))
}

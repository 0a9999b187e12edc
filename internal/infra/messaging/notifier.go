package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

type Notification struct {
	UserID  uuid.UUID                 `json:"user_id"`
	Type    commands.NotificationType `json:"type"`
	Message string                    `json:"message"`
	SentAt  time.Time                 `json:"sent_at"`
}

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type channelDialer func(url, queue string) (amqpChannel, func() error, error)

const (
	dialTimeout    = 3 * time.Second
	publishTimeout = 3 * time.Second
	outboxSize     = 256
)

var (
	ErrOutboxFull     = errs.New("notification outbox is full")
	ErrNotifierClosed = errs.New("notifier is closed")
)

type outgoing struct {
	kind commands.NotificationType
	body []byte
}

// RabbitNotifier publishes notifications to a durable queue on the default exchange.
// Send only enqueues; one worker owns the connection, opening it on first use
// and reopening it after a failed publish. A full outbox drops the notification.
type RabbitNotifier struct {
	url            string
	queue          string
	clk            clock.Clock
	logger         *slog.Logger
	dial           channelDialer
	publishTimeout time.Duration

	outbox   chan outgoing
	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once

	// owned by the worker
	ch    amqpChannel
	close func() error
}

func NewRabbitNotifier(url, queue string, clk clock.Clock, logger *slog.Logger) *RabbitNotifier {
	return newRabbitNotifier(url, queue, clk, logger, dialQueue, outboxSize)
}

func newRabbitNotifier(url, queue string, clk clock.Clock, logger *slog.Logger, dial channelDialer, size int) *RabbitNotifier {
	n := &RabbitNotifier{
		url:            url,
		queue:          queue,
		clk:            clk,
		logger:         logger,
		dial:           dial,
		publishTimeout: publishTimeout,
		outbox:         make(chan outgoing, size),
		done:           make(chan struct{}),
		stopped:        make(chan struct{}),
	}
	go n.run()
	return n
}

func dialQueue(url, queue string) (amqpChannel, func() error, error) {
	conn, err := amqp.DialConfig(url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(dialTimeout),
	})
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "failed to open rabbitmq channel")
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, errs.Wrapf(err, "failed to declare queue %s", queue)
	}
	closeFn := func() error {
		_ = ch.Close()
		return conn.Close()
	}
	return ch, closeFn, nil
}

func (n *RabbitNotifier) Send(_ context.Context, userID uuid.UUID, kind commands.NotificationType, message string) error {
	body, err := json.Marshal(Notification{
		UserID:  userID,
		Type:    kind,
		Message: message,
		SentAt:  n.clk.Now(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode notification")
	}

	select {
	case <-n.done:
		return ErrNotifierClosed
	default:
	}
	select {
	case n.outbox <- outgoing{kind: kind, body: body}:
		return nil
	default:
		return errs.Wrapf(ErrOutboxFull, "dropped %s notification", kind)
	}
}

// Close stops the worker after it publishes what is already queued.
func (n *RabbitNotifier) Close() error {
	n.stopOnce.Do(func() { close(n.done) })
	<-n.stopped
	return n.resetConn()
}

func (n *RabbitNotifier) run() {
	defer close(n.stopped)
	for {
		select {
		case msg := <-n.outbox:
			n.deliver(msg)
		case <-n.done:
			for {
				select {
				case msg := <-n.outbox:
					n.deliver(msg)
				default:
					return
				}
			}
		}
	}
}

func (n *RabbitNotifier) deliver(msg outgoing) {
	if err := n.publish(msg); err != nil {
		n.logger.Warn("failed to publish notification", "type", string(msg.kind), "error", err)
	}
}

func (n *RabbitNotifier) publish(msg outgoing) error {
	if n.ch == nil {
		ch, closeFn, err := n.dial(n.url, n.queue)
		if err != nil {
			return err
		}
		n.ch, n.close = ch, closeFn
	}

	ctx, cancel := context.WithTimeout(context.Background(), n.publishTimeout)
	defer cancel()
	err := n.ch.PublishWithContext(ctx, "", n.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    n.clk.Now(),
		Body:         msg.body,
	})
	if err != nil {
		_ = n.resetConn()
		return errs.Wrapf(err, "failed to publish %s notification", msg.kind)
	}
	return nil
}

func (n *RabbitNotifier) resetConn() error {
	var err error
	if n.close != nil {
		err = n.close()
	}
	n.ch, n.close = nil, nil
	return err
}

// LogNotifier is used when no broker is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(ctx context.Context, userID uuid.UUID, kind commands.NotificationType, message string) error {
	n.logger.InfoContext(ctx, "notification", "user_id", userID, "type", kind, "message", message)
	return nil
}

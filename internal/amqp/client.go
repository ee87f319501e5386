package amqp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// Circuit breaker states
const (
	StateClosed int32 = iota
	StateOpen
	StateHalfOpen
)

const (
	maxFailures        = 5
	openTimeout        = 30 * time.Second
	maxBackoff         = 30 * time.Second
	maxConnectAttempts = 3
	publishTimeout     = 5 * time.Second
)

type Client struct {
	url          string
	exchangeName string
	queueName    string

	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel

	state        int32
	failureCount int64
	lastFailure  atomic.Int64 // unix nanoseconds
}

type alertHandler func(context.Context, *GoalAlertMessage) error

// consumeFunc consumes until the channel fails. started is called once
// deliveries are flowing.
type consumeFunc func(ctx context.Context, handler alertHandler, started func()) error

// NewClient dials the broker and declares the exchange and queue.
func NewClient(ctx context.Context, url, exchangeName, queueName string) (*Client, error) {
	client := &Client{
		url:          url,
		exchangeName: exchangeName,
		queueName:    queueName,
	}

	var lastErr error
	for attempt := 0; attempt < maxConnectAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(exponentialBackoff(attempt - 1)):
			}
		}
		if _, lastErr = client.ensureChannel(); lastErr == nil {
			return client, nil
		}
		slog.WarnContext(ctx, "AMQP connection attempt failed",
			"component", "amqp",
			"attempt", attempt+1,
			"error", lastErr)
	}

	return nil, fmt.Errorf("connect AMQP after %d attempts: %w", maxConnectAttempts, lastErr)
}

// ensureChannel returns an open channel, dialing again if the previous
// connection was lost.
func (c *Client) ensureChannel() (*amqp091.Channel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil && !c.conn.IsClosed() && c.channel != nil && !c.channel.IsClosed() {
		return c.channel, nil
	}
	c.closeLocked()

	conn, err := amqp091.Dial(c.url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	c.conn = conn
	c.channel = channel

	if err := c.setup(); err != nil {
		c.closeLocked()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return channel, nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = c.channel.QueueDeclare(
		c.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	// routing key is the queue name on a direct exchange
	err = c.channel.QueueBind(c.queueName, c.queueName, c.exchangeName, false, nil)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// PublishGoalAlert publishes a goal alert message
func (c *Client) PublishGoalAlert(ctx context.Context, msg *GoalAlertMessage) error {
	if c.isCircuitOpen() {
		return fmt.Errorf("circuit breaker is open: goal alerts suspended for %v", openTimeout)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	channel, err := c.ensureChannel()
	if err != nil {
		c.recordFailure()
		return err
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = channel.PublishWithContext(
		pubCtx,
		c.exchangeName, // exchange
		c.queueName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    msg.ID,
			Timestamp:    msg.Timestamp,
			Body:         body,
		},
	)
	if err != nil {
		c.recordFailure()
		if isConnectionError(err) {
			c.mu.Lock()
			c.closeLocked()
			c.mu.Unlock()
		}
		return fmt.Errorf("publish message: %w", err)
	}
	c.recordSuccess()

	slog.InfoContext(ctx, "Published goal alert",
		"component", "amqp",
		"message_id", msg.ID,
		"owner_id", msg.OwnerID,
		"category", msg.Category,
		"exchange", c.exchangeName,
		"queue", c.queueName)

	return nil
}

// ConsumeGoalAlerts consumes goal alerts until ctx is cancelled. A lost
// connection is re-established with exponential backoff, which starts
// over once a reconnect succeeds.
func (c *Client) ConsumeGoalAlerts(ctx context.Context, handler func(context.Context, *GoalAlertMessage) error) error {
	return c.consumeWithRetry(ctx, handler, c.consumeOnce, time.After)
}

func (c *Client) consumeWithRetry(ctx context.Context, handler alertHandler, consume consumeFunc, after func(time.Duration) <-chan time.Time) error {
	attempt := 0
	for {
		err := consume(ctx, handler, func() { attempt = 0 })
		if ctx.Err() != nil {
			slog.InfoContext(ctx, "Stopping message consumption", "component", "amqp", "reason", ctx.Err())
			return ctx.Err()
		}
		if err == nil || !isConnectionError(err) {
			return err
		}

		wait := exponentialBackoff(attempt)
		attempt++
		slog.WarnContext(ctx, "AMQP consumer lost connection, reconnecting",
			"component", "amqp",
			"error", err,
			"backoff", wait)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-after(wait):
		}
	}
}

func (c *Client) consumeOnce(ctx context.Context, handler alertHandler, started func()) error {
	channel, err := c.ensureChannel()
	if err != nil {
		return err
	}

	msgs, err := channel.Consume(
		c.queueName, // queue
		"",          // consumer
		false,       // auto-ack (we want manual ack)
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // args
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	slog.InfoContext(ctx, "Started consuming goal alerts", "component", "amqp", "queue", c.queueName)
	started()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				return fmt.Errorf("message channel closed: %w", amqp091.ErrClosed)
			}
			c.handleDelivery(ctx, delivery, handler)
		}
	}
}

func (c *Client) handleDelivery(ctx context.Context, delivery amqp091.Delivery, handler alertHandler) {
	msg, err := GoalAlertMessageFromJSON(delivery.Body)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to unmarshal message", "component", "amqp", "error", err)
		delivery.Nack(false, false) // reject and don't requeue
		return
	}

	if err := handler(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to handle goal alert",
			"component", "amqp",
			"error", err,
			"message_id", msg.ID)
		delivery.Nack(false, !delivery.Redelivered) // requeue once
		return
	}

	delivery.Ack(false)
}

func (c *Client) isCircuitOpen() bool {
	if atomic.LoadInt32(&c.state) != StateOpen {
		return false
	}
	if time.Since(time.Unix(0, c.lastFailure.Load())) > openTimeout {
		atomic.CompareAndSwapInt32(&c.state, StateOpen, StateHalfOpen)
		return false
	}
	return true
}

func (c *Client) recordFailure() {
	n := atomic.AddInt64(&c.failureCount, 1)
	c.lastFailure.Store(time.Now().UnixNano())
	if n >= maxFailures || atomic.LoadInt32(&c.state) == StateHalfOpen {
		atomic.StoreInt32(&c.state, StateOpen)
	}
}

func (c *Client) recordSuccess() {
	atomic.StoreInt64(&c.failureCount, 0)
	atomic.StoreInt32(&c.state, StateClosed)
}

// exponentialBackoff doubles from one second, capped at maxBackoff.
func exponentialBackoff(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if attempt >= 5 {
		return maxBackoff
	}
	d := time.Second << attempt
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, amqp091.ErrClosed) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, needle := range []string{"connection", "eof", "broken pipe", "closed network"} {
		if strings.Contains(msg, needle) {
			return true
		}
	}
	return false
}

func (c *Client) closeLocked() {
	if c.channel != nil {
		c.channel.Close()
		c.channel = nil
	}
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
	return nil
}

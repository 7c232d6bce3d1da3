// Package queue publishes notification events to RabbitMQ for out-of-process
// consumers such as email or push delivery.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const publishTimeout = 5 * time.Second

// Message is a delivered event.
type Message struct {
	Type string
	Body []byte
}

// Decode unmarshals the message body into v.
func (m Message) Decode(v any) error {
	return json.Unmarshal(m.Body, v)
}

// RabbitMQ publishes JSON events to one durable queue.
type RabbitMQ struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
	mu      sync.Mutex
	log     logrus.FieldLogger
}

// NewRabbitMQ connects to url and declares the durable queue name.
func NewRabbitMQ(url string, name string, log logrus.FieldLogger) (*RabbitMQ, error) {
	if url == "" {
		return nil, errors.New("rabbitmq url is empty")
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	q, err := ch.QueueDeclare(
		name,  // queue name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	if log == nil {
		log = logrus.StandardLogger()
	}
	log.WithField("queue", q.Name).Info("Connected to RabbitMQ and declared queue")

	return &RabbitMQ{conn: conn, channel: ch, queue: q, log: log}, nil
}

// Publish sends payload as a persistent JSON message tagged with eventType.
func (r *RabbitMQ) Publish(ctx context.Context, eventType string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", eventType, err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.channel.PublishWithContext(
		ctx,
		"",           // exchange
		r.queue.Name, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         eventType,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}

// Consume delivers messages to handler until ctx is done or the channel closes.
// A message is acked when handler returns nil and requeued once otherwise.
func (r *RabbitMQ) Consume(ctx context.Context, handler func(Message) error) error {
	msgs, err := r.channel.ConsumeWithContext(
		ctx,
		r.queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := handler(Message{Type: d.Type, Body: d.Body}); err != nil {
				r.log.WithError(err).WithField("type", d.Type).Warn("Failed to handle queued event")
				_ = d.Nack(false, !d.Redelivered)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

// Close closes the channel and the connection.
func (r *RabbitMQ) Close() error {
	chErr := r.channel.Close()
	connErr := r.conn.Close()
	return errors.Join(chErr, connErr)
}

package queue

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
)

// Event describes a campaign lifecycle change published for downstream
// consumers (notifier worker). Kinds mirror the audit actions.
type Event struct {
	Kind       string    `json:"kind"`
	CampaignID string    `json:"campaign_id"`
	Actor      string    `json:"actor"`
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

const (
	EventCampaignCreated    = "campaign.created"
	EventCampaignUpdated    = "campaign.updated"
	EventCampaignDeleted    = "campaign.deleted"
	EventStatusChanged      = "campaign.status_changed"
	EventCampaignDuplicated = "campaign.duplicated"
	EventAttachmentAdded    = "attachment.added"
	EventAttachmentRemoved  = "attachment.removed"
)

// Queue interface
type Queue interface {
	Publish(topic string, event Event) error
	Close() error
}

// AMQPQueue publishes events to a durable RabbitMQ queue.
type AMQPQueue struct {
	conn      *amqp.Connection
	ch        *amqp.Channel
	queueName string
	log       zerolog.Logger
}

func NewAMQPQueue(url, queueName string, log zerolog.Logger) (*AMQPQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &AMQPQueue{
		conn:      conn,
		ch:        ch,
		queueName: queueName,
		log:       log.With().Str("component", "queue").Logger(),
	}, nil
}

func (q *AMQPQueue) Publish(topic string, event Event) error {
	event.OccurredAt = time.Now()
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = q.ch.Publish(
		"",
		q.queueName,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		q.log.Error().Err(err).Str("kind", event.Kind).Msg("Failed to publish event")
		return err
	}
	return nil
}

// Consume delivers decoded events on the returned channel until the
// connection closes. Malformed payloads are logged and skipped.
func (q *AMQPQueue) Consume() (<-chan Event, error) {
	deliveries, err := q.ch.Consume(
		q.queueName,
		"",    // consumer tag
		true,  // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start consumer: %w", err)
	}

	events := make(chan Event)
	go func() {
		defer close(events)
		for d := range deliveries {
			var event Event
			if err := json.Unmarshal(d.Body, &event); err != nil {
				q.log.Error().Err(err).Msg("Failed to decode event payload")
				continue
			}
			events <- event
		}
	}()
	return events, nil
}

func (q *AMQPQueue) Close() error {
	q.ch.Close()
	return q.conn.Close()
}

var _ Queue = (*AMQPQueue)(nil)

// InMemoryQueue fans events out to in-process handlers. Used in tests and
// when running without RabbitMQ.
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(Event) error
	Events   []Event
}

func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(Event) error),
	}
}

func (q *InMemoryQueue) Subscribe(topic string, handler func(Event) error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers[topic] = append(q.handlers[topic], handler)
}

func (q *InMemoryQueue) Publish(topic string, event Event) error {
	event.OccurredAt = time.Now()

	q.mu.Lock()
	q.Events = append(q.Events, event)
	handlers := q.handlers[topic]
	q.mu.Unlock()

	for _, handler := range handlers {
		if err := handler(event); err != nil {
			return err
		}
	}
	return nil
}

func (q *InMemoryQueue) Close() error { return nil }

var _ Queue = (*InMemoryQueue)(nil)

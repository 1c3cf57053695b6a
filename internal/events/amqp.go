package events

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/streadway/amqp"
)

// AMQPQueue publishes to a RabbitMQ broker. Subscribing is done by cmd/worker
// against the broker directly, so Subscribe is not supported here.
type AMQPQueue struct {
	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func DialAMQP(url string) (*AMQPQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	if _, err := DeclareRecordUpdates(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	log.Println("[Events] ✅ Connected to RabbitMQ")
	return &AMQPQueue{conn: conn, ch: ch}, nil
}

// DeclareRecordUpdates declares the durable queue both sides agree on.
func DeclareRecordUpdates(ch *amqp.Channel) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(
		TopicRecordUpdates, // name
		true,               // durable
		false,              // delete when unused
		false,              // exclusive
		false,              // no-wait
		nil,                // arguments
	)
	if err != nil {
		return q, fmt.Errorf("failed to declare queue: %w", err)
	}
	return q, nil
}

func (q *AMQPQueue) Publish(topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	}
	if ev, ok := payload.(RecordUpdated); ok {
		msg.MessageId = ev.ID
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ch.Publish("", topic, false, false, msg)
}

func (q *AMQPQueue) Subscribe(topic string, handler func(payload any) error) error {
	return fmt.Errorf("subscribe to %s via the worker", topic)
}

func (q *AMQPQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if err := q.ch.Close(); err != nil {
		q.conn.Close()
		return err
	}
	return q.conn.Close()
}

var (
	_ Queue = (*AMQPQueue)(nil)
	_ Queue = (*InMemoryQueue)(nil)
)

package events

import (
	"fmt"
	"log"
	"sync"
)

// Queue is the publish/subscribe surface shared by the in-memory and AMQP transports.
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue fans a message out to every subscriber of its topic, each in
// its own goroutine. A failed handler is logged and the message is dropped.
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
	wg       sync.WaitGroup
}

func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
	}
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	for _, handler := range handlers {
		q.wg.Add(1)
		go q.process(topic, handler, payload)
	}
	return nil
}

func (q *InMemoryQueue) process(topic string, handler func(payload any) error, payload any) {
	defer q.wg.Done()
	if err := handler(payload); err != nil {
		log.Printf("[Events] ⚠️ %s handler failed: %v", topic, err)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// Wait blocks until every handler started so far has returned.
func (q *InMemoryQueue) Wait() {
	q.wg.Wait()
}

// StartRecordUpdateSubscriber hands every RecordUpdated published on q to sink.
func StartRecordUpdateSubscriber(q Queue, sink func(RecordUpdated)) error {
	return q.Subscribe(TopicRecordUpdates, func(payload any) error {
		ev, ok := payload.(RecordUpdated)
		if !ok {
			log.Printf("[Events] ⚠️ Invalid payload type %T, expected RecordUpdated", payload)
			return nil
		}
		sink(ev)
		return nil
	})
}

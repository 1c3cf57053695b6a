package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/streadway/amqp"

	"github.com/unclebandit/fabricator-bff/internal/config"
	"github.com/unclebandit/fabricator-bff/internal/events"
	"github.com/unclebandit/fabricator-bff/internal/service"
)

func main() {
	cfg := config.Load()
	if cfg.AMQPURL == "" {
		log.Fatal("AMQP_URL is required for the worker")
	}

	// Connect to RabbitMQ
	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		log.Fatal("Failed to connect to RabbitMQ:", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("Failed to open a channel:", err)
	}
	defer ch.Close()

	q, err := events.DeclareRecordUpdates(ch)
	if err != nil {
		log.Fatal(err)
	}

	msgs, err := ch.Consume(
		q.Name,
		"",
		false, // autoAck = false, ack after the audit line is written
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Fatal("Failed to register consumer:", err)
	}

	audit := make(chan events.RecordUpdated)
	done := make(chan struct{})
	go func() {
		service.NewAuditWorker(audit, service.LogSink).Start()
		close(done)
	}()

	go consume(msgs, audit)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	log.Println("Worker running, waiting for record updates...")
	select {
	case <-stop:
		log.Println("🛑 Worker stopping")
	case <-done:
		log.Println("⚠️ Delivery channel closed")
	}
}

// Acknowledger is the part of amqp.Delivery the consumer needs.
type Acknowledger interface {
	Ack(multiple bool) error
}

// consume decodes deliveries into audit events. Malformed bodies are acked and
// dropped; nothing is requeued.
func consume(msgs <-chan amqp.Delivery, audit chan<- events.RecordUpdated) {
	for d := range msgs {
		handleDelivery(d.Body, d, audit)
	}
	close(audit)
}

func handleDelivery(body []byte, ack Acknowledger, audit chan<- events.RecordUpdated) {
	ev, err := events.DecodeRecordUpdated(body)
	if err != nil {
		log.Println("Invalid event:", err)
		ack.Ack(false)
		return
	}
	audit <- ev
	ack.Ack(false)
}

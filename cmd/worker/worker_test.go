package main

import (
	"sync"
	"testing"

	"github.com/unclebandit/fabricator-bff/internal/events"
	"github.com/unclebandit/fabricator-bff/internal/service"
)

// MockAck counts acknowledgements
type MockAck struct {
	mu   sync.Mutex
	acks int
}

func (m *MockAck) Ack(multiple bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.acks++
	return nil
}

func TestWorker(t *testing.T) {
	audit := make(chan events.RecordUpdated, 1)
	ack := &MockAck{}

	body := []byte(`{"id":"e1","kind":"lead","record_id":"FT-000932","status":"in-progress","fabricator":"Demo Fabricator","at":"2024-10-13T09:00:00Z"}`)
	handleDelivery(body, ack, audit)
	close(audit)

	var wg sync.WaitGroup
	wg.Add(1)

	var lines []string
	worker := service.NewAuditWorker(audit, func(line string) bool {
		lines = append(lines, line)
		return true
	})

	go func() {
		worker.Start()
		wg.Done()
	}()

	wg.Wait()

	if len(lines) != 1 {
		t.Fatalf("expected 1 audit line, got %d", len(lines))
	}
	want := "2024-10-13T09:00:00Z Demo Fabricator updated lead FT-000932 -> in-progress"
	if lines[0] != want {
		t.Errorf("expected %q, got %q", want, lines[0])
	}
	if ack.acks != 1 {
		t.Errorf("expected 1 ack, got %d", ack.acks)
	}
}

func TestWorker_MalformedBodyIsAckedAndDropped(t *testing.T) {
	audit := make(chan events.RecordUpdated, 1)
	ack := &MockAck{}

	handleDelivery([]byte("not json"), ack, audit)

	if len(audit) != 0 {
		t.Error("expected nothing forwarded for a malformed body")
	}
	if ack.acks != 1 {
		t.Errorf("expected malformed delivery to be acked, got %d", ack.acks)
	}
}

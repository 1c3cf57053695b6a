package service

import (
	"log"
	"time"

	"github.com/unclebandit/fabricator-bff/internal/events"
)

// AuditWorker turns RecordUpdated events into audit lines.
type AuditWorker struct {
	Events <-chan events.RecordUpdated
	Sink   func(line string) bool
}

func NewAuditWorker(ch <-chan events.RecordUpdated, sink func(line string) bool) *AuditWorker {
	return &AuditWorker{
		Events: ch,
		Sink:   sink,
	}
}

// Start processes events until the channel is closed.
func (w *AuditWorker) Start() {
	for ev := range w.Events {
		if !w.Sink(AuditLine(ev)) {
			log.Println("Failed to record audit line for event:", ev.ID)
		}
	}
}

func AuditLine(ev events.RecordUpdated) string {
	status := ev.Status
	if status == "" {
		status = "(unchanged)"
	}
	return RenderTemplate(AuditTemplate, map[string]string{
		"at":         ev.At.Format(time.RFC3339),
		"fabricator": ev.Fabricator,
		"kind":       ev.Kind,
		"record_id":  ev.RecordID,
		"status":     status,
	})
}

// LogSink writes audit lines to the standard logger.
func LogSink(line string) bool {
	log.Println("📝 [Audit]", line)
	return true
}

package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/unclebandit/fabricator-bff/internal/events"
	"github.com/unclebandit/fabricator-bff/internal/service"
)

func TestAuditWorker(t *testing.T) {
	ch := make(chan events.RecordUpdated, 2)
	ch <- events.RecordUpdated{ID: "e1", Kind: "lead", RecordID: "FT-000932", Status: "in-progress", Fabricator: "Demo Fabricator", At: time.Date(2024, 10, 13, 9, 0, 0, 0, time.UTC)}
	ch <- events.RecordUpdated{ID: "e2", Kind: "service_request", RecordID: "SR-001", Status: "completed", Fabricator: "Demo Fabricator"}
	close(ch)

	var lines []string
	w := service.NewAuditWorker(ch, func(line string) bool {
		lines = append(lines, line)
		return true
	})
	w.Start()

	if len(lines) != 2 {
		t.Fatalf("expected 2 audit lines, got %d", len(lines))
	}
	want := "2024-10-13T09:00:00Z Demo Fabricator updated lead FT-000932 -> in-progress"
	if lines[0] != want {
		t.Errorf("expected %q, got %q", want, lines[0])
	}
	if !strings.Contains(lines[1], "service_request SR-001 -> completed") {
		t.Errorf("unexpected line %q", lines[1])
	}
}

func TestAuditLine_UnchangedStatus(t *testing.T) {
	line := service.AuditLine(events.RecordUpdated{Kind: "lead", RecordID: "FT-000932"})
	if !strings.HasSuffix(line, "-> (unchanged)") {
		t.Errorf("unexpected line %q", line)
	}
}

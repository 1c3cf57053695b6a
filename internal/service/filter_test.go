package service

import (
	"testing"

	"github.com/unclebandit/fabricator-bff/internal/model"
	"github.com/unclebandit/fabricator-bff/internal/repository"
)

func TestFilterLeads(t *testing.T) {
	leads := repository.SampleLeads()

	tests := []struct {
		name    string
		status  string
		q       string
		wantIDs []string
	}{
		{"no filters returns all", "", "", []string{"FT-000932", "FT-002263", "FT-003317", "FT-003318", "FT-003319"}},
		{"status is exact", "in-progress", "", []string{"FT-002263", "FT-003317"}},
		{"status has no prefix match", "in", "", nil},
		{"search ignores case", "", "PRIYA", []string{"FT-002263"}},
		{"search by id", "", "ft-0033", []string{"FT-003317", "FT-003318", "FT-003319"}},
		{"search by address", "", "begumpet", []string{"FT-003317"}},
		{"status and search combine", "active", "madhapur", []string{"FT-003319"}},
		{"blank search is no search", "completed", "   ", []string{"FT-003318"}},
		{"no match yields empty", "", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterLeads(leads, tt.status, tt.q)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("expected %d leads, got %d", len(tt.wantIDs), len(got))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestFilterServiceRequests(t *testing.T) {
	requests := repository.SampleServiceRequests()

	got := FilterServiceRequests(requests, model.CaseStatusOpen, "", "")
	if len(got) != 2 || got[0].ID != "SR-001" || got[1].ID != "SR-003" {
		t.Errorf("expected SR-001 and SR-003 open, got %+v", ids(got))
	}

	got = FilterServiceRequests(requests, "", "", "2024-01-15")
	if len(got) != 2 {
		t.Errorf("expected 2 requests on 2024-01-15, got %v", ids(got))
	}

	got = FilterServiceRequests(requests, "", "window HANDLE", "")
	if len(got) != 1 || got[0].ID != "SR-001" {
		t.Errorf("expected issue search to hit SR-001, got %v", ids(got))
	}

	got = FilterServiceRequests(requests, model.CaseStatusCompleted, "rajesh", "")
	if len(got) != 0 {
		t.Errorf("expected no completed requests for rajesh, got %v", ids(got))
	}
}

func ids(requests []model.ServiceRequest) []string {
	out := make([]string, len(requests))
	for i, sr := range requests {
		out[i] = sr.ID
	}
	return out
}

package model

import "testing"

func TestPriorityFromStatus(t *testing.T) {
	tests := []struct {
		status string
		want   Priority
	}{
		{"Closed Won", PriorityHigh},
		{"Closed Lost", PriorityHigh},
		{"closed", PriorityHigh},
		{"CLOSED", PriorityHigh},
		{"Field Visit - Sales Rep", PriorityMedium},
		{"in-progress", PriorityMedium},
		{"Prospecting", PriorityMedium}, // "in" inside the word
		{"Negotiation/Review", PriorityLow},
		{"Qualification", PriorityLow},
		{"active", PriorityLow},
		{"", PriorityLow},
	}

	for _, tt := range tests {
		if got := PriorityFromStatus(tt.status); got != tt.want {
			t.Errorf("PriorityFromStatus(%q) = %s, want %s", tt.status, got, tt.want)
		}
	}
}

func TestClosedTakesPrecedenceOverIn(t *testing.T) {
	// "Closed - In Field" matches all three substrings; closed wins.
	if got := PriorityFromStatus("Closed - In Field"); got != PriorityHigh {
		t.Errorf("expected high, got %s", got)
	}
}

func TestBucketPriority(t *testing.T) {
	tests := []struct {
		priority, status string
		want             Priority
	}{
		{"High", "New", PriorityHigh},
		{"Critical", "New", PriorityHigh},
		{"Medium", "New", PriorityMedium},
		{"Low", "Closed", PriorityLow},
		{"", "Closed", PriorityHigh},
		{"  ", "Working", PriorityMedium},
	}
	for _, tt := range tests {
		if got := BucketPriority(tt.priority, tt.status); got != tt.want {
			t.Errorf("BucketPriority(%q, %q) = %s, want %s", tt.priority, tt.status, got, tt.want)
		}
	}
}

func TestCaseStatus(t *testing.T) {
	tests := []struct {
		status   string
		priority Priority
		want     string
	}{
		{"Closed", PriorityLow, CaseStatusCompleted},
		{"Resolved", PriorityHigh, CaseStatusCompleted},
		{"In Progress", PriorityLow, CaseStatusInProgress},
		{"Working", PriorityLow, CaseStatusInProgress},
		{"New", PriorityHigh, CaseStatusOpen},
		{"", PriorityHigh, CaseStatusOpen},
		{"", PriorityMedium, CaseStatusInProgress},
		{"", PriorityLow, CaseStatusOpen},
	}
	for _, tt := range tests {
		if got := CaseStatus(tt.status, tt.priority); got != tt.want {
			t.Errorf("CaseStatus(%q, %s) = %s, want %s", tt.status, tt.priority, got, tt.want)
		}
	}
}

func TestIsValidActionTaken(t *testing.T) {
	if !IsValidActionTaken("Replaced") {
		t.Error("Replaced should be accepted")
	}
	if IsValidActionTaken("replaced") {
		t.Error("action match is exact")
	}
	if IsValidActionTaken("") {
		t.Error("empty action should be rejected")
	}
}

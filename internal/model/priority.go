// internal/model/priority.go
package model

import "strings"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PriorityFromStatus buckets a free-form stage name. Matching is case-insensitive
// and on substrings, so "in" also hits words like "Prospecting".
func PriorityFromStatus(status string) Priority {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "closed"):
		return PriorityHigh
	case strings.Contains(s, "field"), strings.Contains(s, "in"):
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// BucketPriority collapses a CRM case priority into three levels. An empty
// priority falls back to the stage-name rule on status.
func BucketPriority(crmPriority, status string) Priority {
	p := strings.ToLower(strings.TrimSpace(crmPriority))
	switch {
	case p == "":
		return PriorityFromStatus(status)
	case strings.Contains(p, "high"), strings.Contains(p, "critical"), strings.Contains(p, "urgent"):
		return PriorityHigh
	case strings.Contains(p, "medium"):
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// CaseStatus maps a CRM case status onto open / in-progress / completed. When the
// CRM sent no status it is inferred from priority.
func CaseStatus(crmStatus string, priority Priority) string {
	s := strings.ToLower(strings.TrimSpace(crmStatus))
	if s == "" {
		if priority == PriorityMedium {
			return CaseStatusInProgress
		}
		return CaseStatusOpen
	}
	switch {
	case strings.Contains(s, "closed"), strings.Contains(s, "complete"), strings.Contains(s, "resolved"):
		return CaseStatusCompleted
	case strings.Contains(s, "progress"), strings.Contains(s, "working"), strings.Contains(s, "field"):
		return CaseStatusInProgress
	default:
		return CaseStatusOpen
	}
}

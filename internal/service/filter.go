package service

import (
	"strings"

	"github.com/unclebandit/fabricator-bff/internal/model"
)

// FilterLeads keeps leads whose status equals status (any status when empty)
// and whose name, id or address contains q, ignoring case.
func FilterLeads(leads []model.Lead, status, q string) []model.Lead {
	term := strings.ToLower(strings.TrimSpace(q))
	out := make([]model.Lead, 0, len(leads))
	for _, l := range leads {
		if status != "" && l.Status != status {
			continue
		}
		if !matches(term, l.CustomerName, l.Name, l.ID, l.Address) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// FilterServiceRequests applies the same status and search rules, plus an
// optional scheduled date in YYYY-MM-DD form.
func FilterServiceRequests(requests []model.ServiceRequest, status, q, date string) []model.ServiceRequest {
	term := strings.ToLower(strings.TrimSpace(q))
	out := make([]model.ServiceRequest, 0, len(requests))
	for _, sr := range requests {
		if status != "" && sr.Status != status {
			continue
		}
		if date != "" && sr.ScheduledDate != date {
			continue
		}
		if !matches(term, sr.CustomerName, sr.ID, sr.Number, sr.Address, sr.Issue) {
			continue
		}
		out = append(out, sr)
	}
	return out
}

func matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

package service

import (
	"context"
	"log"
	"strings"

	appErrors "github.com/unclebandit/fabricator-bff/internal/errors"
	"github.com/unclebandit/fabricator-bff/internal/events"
	"github.com/unclebandit/fabricator-bff/internal/model"
	"github.com/unclebandit/fabricator-bff/internal/repository"
)

type LeadService struct {
	Repo       repository.LeadRepositoryInterface
	Queue      events.Queue
	Fabricator string
}

// LeadDetail is a lead lookup result. Fallback is set when the requested id
// was not found and the first lead of the collection was returned instead.
type LeadDetail struct {
	Lead     model.Lead `json:"lead"`
	Fallback bool       `json:"fallback"`
}

// SaveResult tells the client what to show and where to go next.
type SaveResult struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

func (s *LeadService) ListLeads(ctx context.Context, status, q string) ([]model.Lead, error) {
	leads, err := s.Repo.ListLeads(ctx)
	if err != nil {
		return nil, err
	}
	return FilterLeads(leads, status, q), nil
}

func (s *LeadService) GetLead(ctx context.Context, id string) (*LeadDetail, error) {
	lead, err := s.Repo.GetLead(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead != nil {
		return &LeadDetail{Lead: *lead}, nil
	}

	leads, err := s.Repo.ListLeads(ctx)
	if err != nil {
		return nil, err
	}
	if len(leads) == 0 {
		return nil, appErrors.NewRecordNotFound(model.RecordKindLead, id)
	}
	log.Printf("⚠️ lead %s not found, falling back to %s", id, leads[0].ID)
	return &LeadDetail{Lead: leads[0], Fallback: true}, nil
}

// UpdateLead saves notes, status and line-item dimensions. Empty notes are
// rejected before anything is sent upstream.
func (s *LeadService) UpdateLead(ctx context.Context, u model.LeadUpdate) (*SaveResult, error) {
	if strings.TrimSpace(u.Notes) == "" {
		return nil, appErrors.ErrNotesRequired
	}
	u.Status = strings.TrimSpace(u.Status)

	if err := s.Repo.UpdateLead(ctx, u); err != nil {
		return nil, err
	}

	msg := LeadSavedTemplate
	if u.Status != "" {
		msg = RenderTemplate(LeadStatusTemplate, map[string]string{"status": humanStatus(u.Status)})
	}
	publish(s.Queue, events.NewRecordUpdated(model.RecordKindLead, u.LeadID, u.Status, s.Fabricator))

	return &SaveResult{Message: msg, Redirect: "/leads"}, nil
}

// publish is best effort: the save has already happened.
func publish(q events.Queue, ev events.RecordUpdated) {
	if q == nil {
		return
	}
	if err := q.Publish(events.TopicRecordUpdates, ev); err != nil {
		log.Printf("[Events] ⚠️ failed to publish %s %s: %v", ev.Kind, ev.RecordID, err)
	}
}

package repository

import (
	"context"
	"sync"
	"time"

	appErrors "github.com/unclebandit/fabricator-bff/internal/errors"
	"github.com/unclebandit/fabricator-bff/internal/model"
)

// SampleRepository serves a fixed in-memory data set. Edits are applied in
// memory so the demo flow behaves like the CRM would, and are lost on restart.
type SampleRepository struct {
	mu       sync.RWMutex
	leads    []model.Lead
	requests []model.ServiceRequest
}

func NewSampleRepository() *SampleRepository {
	return &SampleRepository{
		leads:    SampleLeads(),
		requests: SampleServiceRequests(),
	}
}

// NewSampleRepositoryWith is used by tests to seed their own collections.
func NewSampleRepositoryWith(leads []model.Lead, requests []model.ServiceRequest) *SampleRepository {
	return &SampleRepository{leads: leads, requests: requests}
}

// ====================== Leads ======================

func (r *SampleRepository) ListLeads(ctx context.Context) ([]model.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Lead, len(r.leads))
	for i, l := range r.leads {
		out[i] = copyLead(l)
	}
	return out, nil
}

func (r *SampleRepository) GetLead(ctx context.Context, id string) (*model.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.leads {
		if l.ID == id {
			c := copyLead(l)
			return &c, nil
		}
	}
	return nil, nil
}

func (r *SampleRepository) UpdateLead(ctx context.Context, u model.LeadUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.leads {
		l := &r.leads[i]
		if l.ID != u.LeadID {
			continue
		}
		l.Notes = u.Notes
		if u.Status != "" {
			l.Status = u.Status
		}
		applyLineItems(l, u.LineItems)
		return nil
	}
	return appErrors.NewRecordNotFound(model.RecordKindLead, u.LeadID)
}

// ====================== Service requests ======================

func (r *SampleRepository) ListServiceRequests(ctx context.Context) ([]model.ServiceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.ServiceRequest, len(r.requests))
	copy(out, r.requests)
	return out, nil
}

func (r *SampleRepository) GetServiceRequest(ctx context.Context, id string) (*model.ServiceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, sr := range r.requests {
		if sr.ID == id || sr.Number == id {
			c := sr
			return &c, nil
		}
	}
	return nil, nil
}

func (r *SampleRepository) UpdateServiceRequest(ctx context.Context, u model.ServiceRequestUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.requests {
		sr := &r.requests[i]
		if sr.ID != u.RequestID && sr.Number != u.RequestID {
			continue
		}
		sr.ActionTaken = u.ActionTaken
		sr.Notes = u.Notes
		if u.Status != "" {
			sr.Status = u.Status
		}
		now := time.Now()
		sr.UpdatedAt = &now
		return nil
	}
	return appErrors.NewRecordNotFound(model.RecordKindServiceRequest, u.RequestID)
}

func applyLineItems(l *model.Lead, edits []model.LineItem) {
	for _, e := range edits {
		for i := range l.LineItems {
			if l.LineItems[i].ID != e.ID {
				continue
			}
			l.LineItems[i].Length = e.Length
			l.LineItems[i].Width = e.Width
			l.LineItems[i].Thickness = e.Thickness
			l.LineItems[i].Quantity = e.Quantity
		}
	}
}

func copyLead(l model.Lead) model.Lead {
	items := make([]model.LineItem, len(l.LineItems))
	copy(items, l.LineItems)
	l.LineItems = items
	return l
}

var (
	_ LeadRepositoryInterface           = (*SampleRepository)(nil)
	_ ServiceRequestRepositoryInterface = (*SampleRepository)(nil)
)

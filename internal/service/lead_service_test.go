package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	appErrors "github.com/unclebandit/fabricator-bff/internal/errors"
	"github.com/unclebandit/fabricator-bff/internal/events"
	"github.com/unclebandit/fabricator-bff/internal/model"
	"github.com/unclebandit/fabricator-bff/internal/service"
)

// --- Mocks ---

type MockLeadRepo struct {
	leads       []model.Lead
	updates     []model.LeadUpdate
	listCalls   int
	updateError error
}

func (m *MockLeadRepo) ListLeads(ctx context.Context) ([]model.Lead, error) {
	m.listCalls++
	return m.leads, nil
}

func (m *MockLeadRepo) GetLead(ctx context.Context, id string) (*model.Lead, error) {
	for _, l := range m.leads {
		if l.ID == id {
			l := l
			return &l, nil
		}
	}
	return nil, nil
}

func (m *MockLeadRepo) UpdateLead(ctx context.Context, u model.LeadUpdate) error {
	m.updates = append(m.updates, u)
	return m.updateError
}

type MockQueue struct {
	mu        sync.Mutex
	published []any
	err       error
}

func (q *MockQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.published = append(q.published, payload)
	return q.err
}

func (q *MockQueue) Subscribe(topic string, handler func(payload any) error) error { return nil }

func twoLeads() []model.Lead {
	return []model.Lead{
		{ID: "FT-000932", CustomerName: "Rajesh Reddy", Status: "active"},
		{ID: "FT-002263", CustomerName: "Priya Sharma", Status: "in-progress"},
	}
}

// --- Tests ---

func TestGetLead_Found(t *testing.T) {
	svc := &service.LeadService{Repo: &MockLeadRepo{leads: twoLeads()}}

	detail, err := svc.GetLead(context.Background(), "FT-002263")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Fallback || detail.Lead.ID != "FT-002263" {
		t.Errorf("expected FT-002263 without fallback, got %+v", detail)
	}
}

func TestGetLead_FallsBackToFirst(t *testing.T) {
	svc := &service.LeadService{Repo: &MockLeadRepo{leads: twoLeads()}}

	detail, err := svc.GetLead(context.Background(), "FT-404404")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !detail.Fallback || detail.Lead.ID != "FT-000932" {
		t.Errorf("expected fallback to FT-000932, got %+v", detail)
	}
}

func TestGetLead_EmptyCollectionIsNotFound(t *testing.T) {
	svc := &service.LeadService{Repo: &MockLeadRepo{}}

	_, err := svc.GetLead(context.Background(), "FT-000932")
	var nf *appErrors.ErrRecordNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if nf.Kind != model.RecordKindLead {
		t.Errorf("expected kind lead, got %s", nf.Kind)
	}
}

func TestUpdateLead_EmptyNotesMakesNoCall(t *testing.T) {
	repo := &MockLeadRepo{leads: twoLeads()}
	q := &MockQueue{}
	svc := &service.LeadService{Repo: repo, Queue: q}

	for _, notes := range []string{"", "   ", "\n\t"} {
		_, err := svc.UpdateLead(context.Background(), model.LeadUpdate{LeadID: "FT-000932", Notes: notes})
		if !errors.Is(err, appErrors.ErrNotesRequired) {
			t.Errorf("notes %q: expected ErrNotesRequired, got %v", notes, err)
		}
	}
	if len(repo.updates) != 0 {
		t.Errorf("expected no update calls, got %d", len(repo.updates))
	}
	if len(q.published) != 0 {
		t.Errorf("expected no events, got %d", len(q.published))
	}
}

func TestUpdateLead_SavesAndPublishes(t *testing.T) {
	repo := &MockLeadRepo{leads: twoLeads()}
	q := &MockQueue{}
	svc := &service.LeadService{Repo: repo, Queue: q, Fabricator: "Demo Fabricator"}

	res, err := svc.UpdateLead(context.Background(), model.LeadUpdate{
		LeadID: "FT-000932",
		Notes:  "Quote sent for 12 windows",
		Status: "in-progress",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Redirect != "/leads" {
		t.Errorf("expected redirect to /leads, got %q", res.Redirect)
	}
	if res.Message != "Lead status changed to in progress" {
		t.Errorf("unexpected message %q", res.Message)
	}
	if len(repo.updates) != 1 || repo.updates[0].Notes != "Quote sent for 12 windows" {
		t.Fatalf("expected one update with notes, got %+v", repo.updates)
	}

	if len(q.published) != 1 {
		t.Fatalf("expected one event, got %d", len(q.published))
	}
	ev := q.published[0].(events.RecordUpdated)
	if ev.RecordID != "FT-000932" || ev.Kind != model.RecordKindLead || ev.Fabricator != "Demo Fabricator" {
		t.Errorf("unexpected event %+v", ev)
	}
}

func TestUpdateLead_PublishFailureDoesNotFailSave(t *testing.T) {
	repo := &MockLeadRepo{leads: twoLeads()}
	svc := &service.LeadService{Repo: repo, Queue: &MockQueue{err: errors.New("broker down")}}

	if _, err := svc.UpdateLead(context.Background(), model.LeadUpdate{LeadID: "FT-000932", Notes: "ok"}); err != nil {
		t.Errorf("expected save to succeed, got %v", err)
	}
}

func TestUpdateLead_RepositoryErrorIsReturned(t *testing.T) {
	crmErr := &appErrors.CRMError{Op: "update", StatusCode: 500}
	repo := &MockLeadRepo{leads: twoLeads(), updateError: crmErr}
	q := &MockQueue{}
	svc := &service.LeadService{Repo: repo, Queue: q}

	_, err := svc.UpdateLead(context.Background(), model.LeadUpdate{LeadID: "FT-000932", Notes: "ok"})
	var ce *appErrors.CRMError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CRMError, got %v", err)
	}
	if len(q.published) != 0 {
		t.Error("a failed save must not publish")
	}
}

func TestListLeads_Filters(t *testing.T) {
	svc := &service.LeadService{Repo: &MockLeadRepo{leads: twoLeads()}}

	leads, err := svc.ListLeads(context.Background(), "in-progress", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leads) != 1 || leads[0].ID != "FT-002263" {
		t.Errorf("expected only FT-002263, got %+v", leads)
	}
}

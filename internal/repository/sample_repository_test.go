package repository_test

import (
	"context"
	"testing"

	"github.com/unclebandit/fabricator-bff/internal/model"
	"github.com/unclebandit/fabricator-bff/internal/repository"
)

func TestSampleRepository_UpdateLeadAppliesInMemory(t *testing.T) {
	repo := repository.NewSampleRepository()
	ctx := context.Background()

	err := repo.UpdateLead(ctx, model.LeadUpdate{
		LeadID: "FT-002263",
		Notes:  "measured balcony",
		LineItems: []model.LineItem{
			{ID: "LI-0003", Length: "2100", Width: "900", Thickness: "24", Quantity: "2"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lead, err := repo.GetLead(ctx, "FT-002263")
	if err != nil || lead == nil {
		t.Fatalf("expected lead, got %v / %v", lead, err)
	}
	if lead.Notes != "measured balcony" {
		t.Errorf("expected notes to be saved, got %q", lead.Notes)
	}
	if lead.Status != "in-progress" {
		t.Errorf("empty status must keep the existing one, got %q", lead.Status)
	}
	if lead.LineItems[0].Length != "2100" || lead.LineItems[0].Quantity != "2" {
		t.Errorf("line item dimensions not applied: %+v", lead.LineItems[0])
	}
}

func TestSampleRepository_ListReturnsCopies(t *testing.T) {
	repo := repository.NewSampleRepository()
	ctx := context.Background()

	leads, _ := repo.ListLeads(ctx)
	leads[0].LineItems[0].Name = "mutated"

	again, _ := repo.ListLeads(ctx)
	if again[0].LineItems[0].Name == "mutated" {
		t.Error("callers must not be able to mutate the fixture store")
	}
}

func TestSampleRepository_GetServiceRequestByNumber(t *testing.T) {
	sr := model.ServiceRequest{ID: "500000000000001AAA", Number: "00001026", Status: model.CaseStatusOpen}
	repo := repository.NewSampleRepositoryWith(nil, []model.ServiceRequest{sr})
	ctx := context.Background()

	got, err := repo.GetServiceRequest(ctx, "00001026")
	if err != nil || got == nil {
		t.Fatalf("expected case by number, got %v / %v", got, err)
	}
	if got.ID != sr.ID {
		t.Errorf("expected %s, got %s", sr.ID, got.ID)
	}

	if err := repo.UpdateServiceRequest(ctx, model.ServiceRequestUpdate{
		RequestID:   "00001026",
		ActionTaken: "Adjusted",
		Notes:       "hinge adjusted",
		Status:      model.CaseStatusCompleted,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ = repo.GetServiceRequest(ctx, sr.ID)
	if got.Status != model.CaseStatusCompleted || got.UpdatedAt == nil {
		t.Errorf("expected completed with updated_at, got %+v", got)
	}
}

func TestSampleRepository_GetUnknownReturnsNil(t *testing.T) {
	repo := repository.NewSampleRepository()
	lead, err := repo.GetLead(context.Background(), "FT-999999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lead != nil {
		t.Errorf("expected nil lead, got %+v", lead)
	}
}

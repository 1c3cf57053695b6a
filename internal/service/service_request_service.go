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

type ServiceRequestService struct {
	Repo       repository.ServiceRequestRepositoryInterface
	Queue      events.Queue
	Fabricator string
}

type ServiceRequestDetail struct {
	Request  model.ServiceRequest `json:"request"`
	Fallback bool                 `json:"fallback"`
	Actions  []string             `json:"actions"`
}

func (s *ServiceRequestService) ListServiceRequests(ctx context.Context, status, q, date string) ([]model.ServiceRequest, error) {
	requests, err := s.Repo.ListServiceRequests(ctx)
	if err != nil {
		return nil, err
	}
	return FilterServiceRequests(requests, status, q, date), nil
}

// GetServiceRequest resolves id as a record id or display number, falling
// back to the first request when neither matches.
func (s *ServiceRequestService) GetServiceRequest(ctx context.Context, id string) (*ServiceRequestDetail, error) {
	sr, err := s.Repo.GetServiceRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if sr != nil {
		return &ServiceRequestDetail{Request: *sr, Actions: model.ActionsTaken}, nil
	}

	requests, err := s.Repo.ListServiceRequests(ctx)
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, appErrors.NewRecordNotFound(model.RecordKindServiceRequest, id)
	}
	log.Printf("⚠️ service request %s not found, falling back to %s", id, requests[0].ID)
	return &ServiceRequestDetail{Request: requests[0], Fallback: true, Actions: model.ActionsTaken}, nil
}

// CompleteServiceRequest closes a case with the action taken and notes. id may
// be the record id or the display number.
func (s *ServiceRequestService) CompleteServiceRequest(ctx context.Context, id, actionTaken, notes string) (*SaveResult, error) {
	actionTaken = strings.TrimSpace(actionTaken)
	if actionTaken == "" {
		return nil, appErrors.ErrActionTakenRequired
	}
	if !model.IsValidActionTaken(actionTaken) {
		return nil, appErrors.ErrInvalidActionTaken
	}
	if strings.TrimSpace(notes) == "" {
		return nil, appErrors.ErrNotesRequired
	}

	// The route may carry the display number; the update must target the record id.
	sr, err := s.Repo.GetServiceRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	recordID, number := id, id
	if sr != nil {
		recordID = sr.ID
		if sr.Number != "" {
			number = sr.Number
		}
	}

	err = s.Repo.UpdateServiceRequest(ctx, model.ServiceRequestUpdate{
		RequestID:   recordID,
		ActionTaken: actionTaken,
		Notes:       notes,
		Status:      model.CaseStatusCompleted,
	})
	if err != nil {
		return nil, err
	}

	publish(s.Queue, events.NewRecordUpdated(model.RecordKindServiceRequest, recordID, model.CaseStatusCompleted, s.Fabricator))
	return &SaveResult{
		Message:  RenderTemplate(RequestCompleteTemplate, map[string]string{"number": number}),
		Redirect: "/service-requests",
	}, nil
}

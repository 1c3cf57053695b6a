package repository

import (
	"context"

	"github.com/unclebandit/fabricator-bff/internal/model"
)

// LeadRepositoryInterface is what the lead service needs from a data source.
// GetLead returns nil, nil when the id is unknown.
type LeadRepositoryInterface interface {
	ListLeads(ctx context.Context) ([]model.Lead, error)
	GetLead(ctx context.Context, id string) (*model.Lead, error)
	UpdateLead(ctx context.Context, u model.LeadUpdate) error
}

// ServiceRequestRepositoryInterface is the case equivalent. GetServiceRequest
// matches either the record id or the display number.
type ServiceRequestRepositoryInterface interface {
	ListServiceRequests(ctx context.Context) ([]model.ServiceRequest, error)
	GetServiceRequest(ctx context.Context, id string) (*model.ServiceRequest, error)
	UpdateServiceRequest(ctx context.Context, u model.ServiceRequestUpdate) error
}

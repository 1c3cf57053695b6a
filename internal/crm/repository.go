package crm

import (
	"context"

	"github.com/unclebandit/fabricator-bff/internal/model"
	"github.com/unclebandit/fabricator-bff/internal/repository"
)

var opportunityFields = []string{
	"Id", "Name", "StageName", "CreatedDate", "Description", "Fabricator_Notes__c",
	"Account.Name", "Account.Phone", "Account.BillingStreet", "Account.BillingCity",
	"Account.BillingState", "Account.BillingPostalCode",
}

var caseFields = []string{
	"Id", "CaseNumber", "Subject", "Reason", "Priority", "Status", "Description", "CreatedDate",
	"Scheduled_Date__c", "Scheduled_Time__c", "Action_Taken__c",
	"Contact.Name", "Contact.Phone",
	"Account.Name", "Account.Phone", "Account.BillingStreet", "Account.BillingCity",
	"Account.BillingState", "Account.BillingPostalCode",
}

// LeadQuery builds the Opportunity query scoped to one fabricator.
func LeadQuery(fabricator string) *SOQL {
	return Select(opportunityFields...).
		Child("OpportunityContactRoles", "Contact.Name", "Contact.Phone", "Contact.Email").
		Child("OpportunityLineItems", "Id", "Name", "Product2.Name", "Quantity", "Length__c", "Width__c", "Thickness__c").
		From("Opportunity").
		WhereEq("Fabricator_Name__c", fabricator).
		OrderBy("CreatedDate DESC")
}

// CaseQuery builds the Case query scoped to one fabricator.
func CaseQuery(fabricator string) *SOQL {
	return Select(caseFields...).
		Child("CaseComments", "CommentBody").
		Child("Attachments", "Name").
		From("Case").
		WhereEq("Fabricator_Name__c", fabricator).
		OrderBy("CreatedDate DESC")
}

// LeadRepository serves leads straight from the CRM.
type LeadRepository struct {
	Client     *Client
	Fabricator string
}

func (r *LeadRepository) ListLeads(ctx context.Context) ([]model.Lead, error) {
	return r.queryLeads(ctx, LeadQuery(r.Fabricator))
}

// GetLead looks a lead up by Opportunity Id. An id that passes ValidateID but
// is not shaped like a record Id returns nil without a query, so the caller
// falls back to the first lead.
func (r *LeadRepository) GetLead(ctx context.Context, id string) (*model.Lead, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	if !IsRecordID(id) {
		return nil, nil
	}
	q, err := LeadQuery(r.Fabricator).WhereID("Id", id)
	if err != nil {
		return nil, err
	}
	leads, err := r.queryLeads(ctx, q.Limit(1))
	if err != nil {
		return nil, err
	}
	if len(leads) == 0 {
		return nil, nil
	}
	return &leads[0], nil
}

func (r *LeadRepository) queryLeads(ctx context.Context, q *SOQL) ([]model.Lead, error) {
	token, err := r.Client.Token(ctx)
	if err != nil {
		return nil, err
	}
	var resp queryResponse[RawOpportunity]
	if err := r.Client.Query(ctx, token, q.String(), &resp); err != nil {
		return nil, err
	}
	leads := make([]model.Lead, 0, len(resp.Records))
	for _, raw := range resp.Records {
		leads = append(leads, NormalizeOpportunity(raw))
	}
	return leads, nil
}

func (r *LeadRepository) UpdateLead(ctx context.Context, u model.LeadUpdate) error {
	if err := ValidateID(u.LeadID); err != nil {
		return err
	}
	token, err := r.Client.Token(ctx)
	if err != nil {
		return err
	}
	payload := UpdatePayload{
		RecordType: "Opportunity",
		RecordID:   u.LeadID,
		Notes:      u.Notes,
		StageName:  u.Status,
	}
	for _, item := range u.LineItems {
		payload.LineItems = append(payload.LineItems, UpdateLineItem{
			ID:        item.ID,
			Length:    item.Length,
			Width:     item.Width,
			Thickness: item.Thickness,
			Quantity:  item.Quantity,
		})
	}
	return r.Client.Update(ctx, token, payload)
}

// ServiceRequestRepository serves cases straight from the CRM.
type ServiceRequestRepository struct {
	Client         *Client
	Fabricator     string
	TechnicianName string
	TechnicianID   string
}

func (r *ServiceRequestRepository) ListServiceRequests(ctx context.Context) ([]model.ServiceRequest, error) {
	return r.queryCases(ctx, CaseQuery(r.Fabricator))
}

// GetServiceRequest looks a case up by record Id or, for anything that is not
// shaped like a record Id, by CaseNumber.
func (r *ServiceRequestRepository) GetServiceRequest(ctx context.Context, id string) (*model.ServiceRequest, error) {
	field := "CaseNumber"
	if IsRecordID(id) {
		field = "Id"
	}
	q, err := CaseQuery(r.Fabricator).WhereID(field, id)
	if err != nil {
		return nil, err
	}
	cases, err := r.queryCases(ctx, q.Limit(1))
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return nil, nil
	}
	return &cases[0], nil
}

func (r *ServiceRequestRepository) queryCases(ctx context.Context, q *SOQL) ([]model.ServiceRequest, error) {
	token, err := r.Client.Token(ctx)
	if err != nil {
		return nil, err
	}
	var resp queryResponse[RawCase]
	if err := r.Client.Query(ctx, token, q.String(), &resp); err != nil {
		return nil, err
	}
	out := make([]model.ServiceRequest, 0, len(resp.Records))
	for _, raw := range resp.Records {
		out = append(out, NormalizeCase(raw, r.TechnicianName, r.TechnicianID))
	}
	return out, nil
}

func (r *ServiceRequestRepository) UpdateServiceRequest(ctx context.Context, u model.ServiceRequestUpdate) error {
	if err := ValidateID(u.RequestID); err != nil {
		return err
	}
	token, err := r.Client.Token(ctx)
	if err != nil {
		return err
	}
	status := u.Status
	if status == model.CaseStatusCompleted {
		status = "Closed"
	}
	return r.Client.Update(ctx, token, UpdatePayload{
		RecordType:  "Case",
		RecordID:    u.RequestID,
		Notes:       u.Notes,
		Status:      status,
		ActionTaken: u.ActionTaken,
	})
}

var (
	_ repository.LeadRepositoryInterface           = (*LeadRepository)(nil)
	_ repository.ServiceRequestRepositoryInterface = (*ServiceRequestRepository)(nil)
)

package crm

import (
	"strconv"
	"strings"
	"time"

	"github.com/unclebandit/fabricator-bff/internal/model"
)

const (
	PlaceholderCustomer = "Unknown Customer"
	PlaceholderAddress  = "No address on file"
	PlaceholderContact  = "N/A"
	PlaceholderProduct  = "Unnamed Product"
	PlaceholderIssue    = "General Service"
)

// crmTimeLayout is how the REST API renders datetimes, e.g. 2024-10-14T09:12:00.000+0000.
const crmTimeLayout = "2006-01-02T15:04:05.000-0700"

// NormalizeOpportunity turns a raw Opportunity into a Lead.
func NormalizeOpportunity(raw RawOpportunity) model.Lead {
	lead := model.Lead{
		ID:           raw.ID,
		Name:         raw.Name,
		CustomerName: PlaceholderCustomer,
		Address:      PlaceholderAddress,
		Phone:        PlaceholderContact,
		Email:        PlaceholderContact,
		CreatedAt:    parseCRMTime(raw.CreatedDate),
		Status:       raw.StageName,
		Priority:     model.PriorityFromStatus(raw.StageName),
		Notes:        firstNonEmpty(deref(raw.Notes), deref(raw.Description)),
		LineItems:    []model.LineItem{},
	}

	if acc := raw.Account; acc != nil {
		if acc.Name != "" {
			lead.CustomerName = acc.Name
		}
		if addr := joinAddress(acc); addr != "" {
			lead.Address = addr
		}
		if acc.Phone != "" {
			lead.Phone = acc.Phone
		}
	}

	if contact := primaryContact(raw.OpportunityContactRoles); contact != nil {
		if contact.Name != "" && lead.CustomerName == PlaceholderCustomer {
			lead.CustomerName = contact.Name
		}
		if contact.Phone != "" {
			lead.Phone = contact.Phone
		}
		if contact.Email != "" {
			lead.Email = contact.Email
		}
	}

	if raw.OpportunityLineItems != nil {
		for _, item := range raw.OpportunityLineItems.Records {
			lead.LineItems = append(lead.LineItems, normalizeLineItem(item))
		}
	}

	return lead
}

func normalizeLineItem(raw rawLineItem) model.LineItem {
	name := raw.Name
	if raw.Product2 != nil && raw.Product2.Name != "" {
		name = raw.Product2.Name
	}
	if name == "" {
		name = PlaceholderProduct
	}
	return model.LineItem{
		ID:        raw.ID,
		Name:      name,
		Length:    formatNumber(raw.Length),
		Width:     formatNumber(raw.Width),
		Thickness: formatNumber(raw.Thickness),
		Quantity:  formatNumber(raw.Quantity),
	}
}

// NormalizeCase turns a raw Case into a ServiceRequest. The technician is not
// on the case record, so the caller supplies it.
func NormalizeCase(raw RawCase, technicianName, technicianID string) model.ServiceRequest {
	crmStatus := deref(raw.Status)
	priority := model.BucketPriority(deref(raw.Priority), crmStatus)

	sr := model.ServiceRequest{
		ID:             raw.ID,
		Number:         raw.CaseNumber,
		CustomerName:   PlaceholderCustomer,
		Address:        PlaceholderAddress,
		Phone:          PlaceholderContact,
		Issue:          firstNonEmpty(deref(raw.Reason), deref(raw.Subject), PlaceholderIssue),
		Description:    deref(raw.Description),
		Priority:       priority,
		Status:         model.CaseStatus(crmStatus, priority),
		ScheduledDate:  deref(raw.ScheduledDate),
		ScheduledTime:  deref(raw.ScheduledTime),
		TechnicianName: technicianName,
		TechnicianID:   technicianID,
		ActionTaken:    deref(raw.ActionTaken),
		CreatedAt:      parseCRMTime(raw.CreatedDate),
	}

	if c := raw.Contact; c != nil {
		if c.Name != "" {
			sr.CustomerName = c.Name
		}
		if c.Phone != "" {
			sr.Phone = c.Phone
		}
	}
	if acc := raw.Account; acc != nil {
		if sr.CustomerName == PlaceholderCustomer && acc.Name != "" {
			sr.CustomerName = acc.Name
		}
		if addr := joinAddress(acc); addr != "" {
			sr.Address = addr
		}
		if sr.Phone == PlaceholderContact && acc.Phone != "" {
			sr.Phone = acc.Phone
		}
	}

	if raw.CaseComments != nil {
		var comments []string
		for _, c := range raw.CaseComments.Records {
			if body := strings.TrimSpace(c.CommentBody); body != "" {
				comments = append(comments, body)
			}
		}
		sr.Notes = strings.Join(comments, "\n")
	}

	if sr.ScheduledDate == "" && !sr.CreatedAt.IsZero() {
		sr.ScheduledDate = sr.CreatedAt.Format("2006-01-02")
	}

	return sr
}

func primaryContact(roles *childList[rawContactRole]) *rawContact {
	if roles == nil {
		return nil
	}
	for _, r := range roles.Records {
		if r.Contact != nil {
			return r.Contact
		}
	}
	return nil
}

func joinAddress(acc *rawAccount) string {
	var parts []string
	for _, p := range []string{acc.BillingStreet, acc.BillingCity, acc.BillingState} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	addr := strings.Join(parts, ", ")
	if pc := strings.TrimSpace(acc.BillingPostalCode); pc != "" {
		if addr == "" {
			return pc
		}
		addr += " - " + pc
	}
	return addr
}

func parseCRMTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{crmTimeLayout, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func formatNumber(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

package crm

// Raw shapes returned by the query endpoint. Relationship fields are pointers
// because the CRM sends null when a relation is absent.

type queryResponse[T any] struct {
	TotalSize int  `json:"totalSize"`
	Done      bool `json:"done"`
	Records   []T  `json:"records"`
}

type childList[T any] struct {
	TotalSize int `json:"totalSize"`
	Records   []T `json:"records"`
}

type rawAccount struct {
	Name              string `json:"Name"`
	Phone             string `json:"Phone"`
	BillingStreet     string `json:"BillingStreet"`
	BillingCity       string `json:"BillingCity"`
	BillingState      string `json:"BillingState"`
	BillingPostalCode string `json:"BillingPostalCode"`
}

type rawContact struct {
	Name  string `json:"Name"`
	Phone string `json:"Phone"`
	Email string `json:"Email"`
}

type rawContactRole struct {
	Contact *rawContact `json:"Contact"`
}

type rawProduct struct {
	Name string `json:"Name"`
}

type rawLineItem struct {
	ID        string      `json:"Id"`
	Name      string      `json:"Name"`
	Product2  *rawProduct `json:"Product2"`
	Length    *float64    `json:"Length__c"`
	Width     *float64    `json:"Width__c"`
	Thickness *float64    `json:"Thickness__c"`
	Quantity  *float64    `json:"Quantity"`
}

// RawOpportunity is one Opportunity record from the lead query.
type RawOpportunity struct {
	ID                      string                     `json:"Id"`
	Name                    string                     `json:"Name"`
	StageName               string                     `json:"StageName"`
	CreatedDate             string                     `json:"CreatedDate"`
	Description             *string                    `json:"Description"`
	Notes                   *string                    `json:"Fabricator_Notes__c"`
	Account                 *rawAccount                `json:"Account"`
	OpportunityContactRoles *childList[rawContactRole] `json:"OpportunityContactRoles"`
	OpportunityLineItems    *childList[rawLineItem]    `json:"OpportunityLineItems"`
}

type rawComment struct {
	CommentBody string `json:"CommentBody"`
}

type rawAttachment struct {
	Name string `json:"Name"`
}

// RawCase is one Case record from the service-request query.
type RawCase struct {
	ID            string                    `json:"Id"`
	CaseNumber    string                    `json:"CaseNumber"`
	Subject       *string                   `json:"Subject"`
	Reason        *string                   `json:"Reason"`
	Priority      *string                   `json:"Priority"`
	Status        *string                   `json:"Status"`
	Description   *string                   `json:"Description"`
	CreatedDate   string                    `json:"CreatedDate"`
	ScheduledDate *string                   `json:"Scheduled_Date__c"`
	ScheduledTime *string                   `json:"Scheduled_Time__c"`
	ActionTaken   *string                   `json:"Action_Taken__c"`
	Contact       *rawContact               `json:"Contact"`
	Account       *rawAccount               `json:"Account"`
	CaseComments  *childList[rawComment]    `json:"CaseComments"`
	Attachments   *childList[rawAttachment] `json:"Attachments"`
}

// UpdatePayload is the body posted to the fixed update endpoint.
type UpdatePayload struct {
	RecordType  string           `json:"recordType"`
	RecordID    string           `json:"recordId"`
	Notes       string           `json:"notes,omitempty"`
	StageName   string           `json:"stageName,omitempty"`
	Status      string           `json:"status,omitempty"`
	ActionTaken string           `json:"actionTaken,omitempty"`
	LineItems   []UpdateLineItem `json:"lineItems,omitempty"`
}

type UpdateLineItem struct {
	ID        string `json:"id"`
	Length    string `json:"length,omitempty"`
	Width     string `json:"width,omitempty"`
	Thickness string `json:"thickness,omitempty"`
	Quantity  string `json:"quantity,omitempty"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	InstanceURL string `json:"instance_url"`
	TokenType   string `json:"token_type"`
}

// Token is a bearer credential for one adapter operation.
type Token struct {
	AccessToken string
	InstanceURL string
}

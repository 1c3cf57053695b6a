// internal/model/service_request.go
package model

import "time"

// ServiceRequest is a CRM case assigned to a fabricator.
type ServiceRequest struct {
    ID             string     `db:"id" json:"id"`
    Number         string     `db:"number" json:"number"`
    CustomerName   string     `db:"customer_name" json:"customer_name"`
    Address        string     `db:"address" json:"address"`
    Phone          string     `db:"phone" json:"phone"`
    Issue          string     `db:"issue" json:"issue"`
    Description    string     `db:"description" json:"description"`
    Priority       Priority   `db:"priority" json:"priority"`
    Status         string     `db:"status" json:"status"`
    ScheduledDate  string     `db:"scheduled_date" json:"scheduled_date"`
    ScheduledTime  string     `db:"scheduled_time" json:"scheduled_time"`
    TechnicianName string     `db:"technician_name" json:"technician_name"`
    TechnicianID   string     `db:"technician_id" json:"technician_id"`
    Notes          string     `db:"notes" json:"notes"`
    ActionTaken    string     `db:"action_taken" json:"action_taken,omitempty"`
    CreatedAt      time.Time  `db:"created_at" json:"created_at"`
    UpdatedAt      *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// ServiceRequestUpdate is the completion payload for a case.
type ServiceRequestUpdate struct {
    RequestID   string `json:"request_id"`
    ActionTaken string `json:"action_taken"`
    Notes       string `json:"notes"`
    Status      string `json:"status"`
}

// Case statuses used by the portal.
const (
    CaseStatusOpen       = "open"
    CaseStatusInProgress = "in-progress"
    CaseStatusCompleted  = "completed"
)

// ActionsTaken lists the accepted resolution actions, in display order.
var ActionsTaken = []string{
    "Repaired",
    "Replaced",
    "Adjusted",
    "Inspected - No Fault",
    "Follow-up Required",
}

func IsValidActionTaken(action string) bool {
    for _, a := range ActionsTaken {
        if a == action {
            return true
        }
    }
    return false
}

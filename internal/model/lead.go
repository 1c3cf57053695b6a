// internal/model/lead.go
package model

import "time"

// Lead is an opportunity as shown to a fabricator.
type Lead struct {
    ID           string     `db:"id" json:"id"`
    Name         string     `db:"name" json:"name"`
    CustomerName string     `db:"customer_name" json:"customer_name"`
    Address      string     `db:"address" json:"address"`
    Phone        string     `db:"phone" json:"phone"`
    Email        string     `db:"email" json:"email"`
    CreatedAt    time.Time  `db:"created_at" json:"created_at"`
    Status       string     `db:"status" json:"status"`
    Priority     Priority   `db:"priority" json:"priority"`
    Notes        string     `db:"notes" json:"notes"`
    LineItems    []LineItem `json:"line_items"`
}

// LineItem is a product attached to a lead. The dimension fields are whatever
// the fabricator typed; they are passed through unvalidated.
type LineItem struct {
    ID        string `db:"id" json:"id"`
    Name      string `db:"name" json:"name"`
    Length    string `db:"length" json:"length,omitempty"`
    Width     string `db:"width" json:"width,omitempty"`
    Thickness string `db:"thickness" json:"thickness,omitempty"`
    Quantity  string `db:"quantity" json:"quantity,omitempty"`
}

// LeadUpdate carries the fields a fabricator may edit on a lead.
type LeadUpdate struct {
    LeadID    string     `json:"lead_id"`
    Notes     string     `json:"notes"`
    Status    string     `json:"status"`
    LineItems []LineItem `json:"line_items"`
}

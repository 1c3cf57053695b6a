// internal/model/photo.go
package model

import "time"

// Photo is a still captured during a detail-view session. It lives in memory only.
type Photo struct {
    ID         string    `json:"id"`
    RecordKind string    `json:"record_kind"`
    RecordID   string    `json:"record_id"`
    DataURI    string    `json:"data_uri"`
    Width      int       `json:"width"`
    Height     int       `json:"height"`
    CapturedAt time.Time `json:"captured_at"`
}

const (
    RecordKindLead           = "lead"
    RecordKindServiceRequest = "service_request"
)

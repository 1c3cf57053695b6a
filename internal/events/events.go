package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TopicRecordUpdates doubles as the durable AMQP queue name.
const TopicRecordUpdates = "fabricator_record_updates"

// RecordUpdated is emitted after a lead or service request has been saved.
type RecordUpdated struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	RecordID   string    `json:"record_id"`
	Status     string    `json:"status"`
	Fabricator string    `json:"fabricator"`
	At         time.Time `json:"at"`
}

func NewRecordUpdated(kind, recordID, status, fabricator string) RecordUpdated {
	return RecordUpdated{
		ID:         uuid.NewString(),
		Kind:       kind,
		RecordID:   recordID,
		Status:     status,
		Fabricator: fabricator,
		At:         time.Now().UTC(),
	}
}

func DecodeRecordUpdated(body []byte) (RecordUpdated, error) {
	var ev RecordUpdated
	err := json.Unmarshal(body, &ev)
	return ev, err
}

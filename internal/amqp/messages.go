package amqp

import (
	"encoding/json"
	"time"
)

// Record kinds carried on change messages.
const (
	KindTransaction = "transaction"
	KindGoal        = "goal"
	KindInvestment  = "investment"
)

// RecordChangeMessage notifies the export worker that a record changed.
// It carries only identifiers; the worker re-reads state from the database.
type RecordChangeMessage struct {
	Kind      string    `json:"kind"`
	ID        string    `json:"id"`
	Month     string    `json:"month,omitempty"` // "2006-01" month the change affects, when dated
	Timestamp time.Time `json:"timestamp"`
}

func NewRecordChangeMessage(kind, id, month string) *RecordChangeMessage {
	return &RecordChangeMessage{
		Kind:      kind,
		ID:        id,
		Month:     month,
		Timestamp: time.Now(),
	}
}

func (m *RecordChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func RecordChangeMessageFromJSON(data []byte) (*RecordChangeMessage, error) {
	var msg RecordChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

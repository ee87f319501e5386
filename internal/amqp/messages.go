package amqp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GoalAlertMessage is published when an owner's spending in a category
// exceeds the goal set for it. Amounts are in cents.
type GoalAlertMessage struct {
	ID          string    `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Category    string    `json:"category"`
	SpentCents  int64     `json:"spent_cents"`
	TargetCents int64     `json:"target_cents"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewGoalAlertMessage creates an alert with a fresh message id.
func NewGoalAlertMessage(ownerID int64, category string, spentCents, targetCents int64) *GoalAlertMessage {
	return &GoalAlertMessage{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Category:    category,
		SpentCents:  spentCents,
		TargetCents: targetCents,
		Timestamp:   time.Now(),
	}
}

// OverByCents is how far spending is above the target.
func (m *GoalAlertMessage) OverByCents() int64 {
	return m.SpentCents - m.TargetCents
}

// ToJSON converts the message to JSON bytes
func (m *GoalAlertMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// GoalAlertMessageFromJSON creates a message from JSON bytes
func GoalAlertMessageFromJSON(data []byte) (*GoalAlertMessage, error) {
	var msg GoalAlertMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if msg.OwnerID <= 0 || msg.Category == "" {
		return nil, fmt.Errorf("goal alert missing owner or category")
	}
	return &msg, nil
}

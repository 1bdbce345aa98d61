// Package events announces committed ledger changes to other systems.
package events

import (
	"context"
	"encoding/json"
	"time"
)

type Type string

const (
	TransactionCreated Type = "transaction.created"
	TransactionUpdated Type = "transaction.updated"
	TransactionDeleted Type = "transaction.deleted"
	CategoryCreated    Type = "category.created"
	CategoryUpdated    Type = "category.updated"
	CategoryDeleted    Type = "category.deleted"
)

// Event describes one committed change to a user's ledger.
type Event struct {
	Type       Type      `json:"type"`
	UserID     int64     `json:"usuario_id"`
	EntityID   int64     `json:"id"`
	OccurredAt time.Time `json:"timestamp"`
}

func New(eventType Type, userID, entityID int64) Event {
	return Event{
		Type:       eventType,
		UserID:     userID,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
}

func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error {
	return nil
}

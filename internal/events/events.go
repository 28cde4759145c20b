package events

import (
	"context"
	"encoding/json"
	"time"
)

const (
	TransactionCreated = "transaction.created"
	TransactionUpdated = "transaction.updated"
	TransactionDeleted = "transaction.deleted"
)

// TransactionEvent announces a committed change to one transaction.
type TransactionEvent struct {
	Type          string    `json:"type"`
	TransactionID int64     `json:"transactionId"`
	UserID        int64     `json:"userId"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func NewTransactionEvent(eventType string, transactionID, userID int64) TransactionEvent {
	return TransactionEvent{
		Type:          eventType,
		TransactionID: transactionID,
		UserID:        userID,
		OccurredAt:    time.Now().UTC(),
	}
}

func (e TransactionEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

type Publisher interface {
	Publish(ctx context.Context, event TransactionEvent) error
	Close() error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, TransactionEvent) error { return nil }

func (NopPublisher) Close() error { return nil }

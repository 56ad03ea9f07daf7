package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "PRODUCT_ADDED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

const (
	TypeProductAdded    = "PRODUCT_ADDED"
	TypeCatalogReloaded = "CATALOG_RELOADED"
	TypeContactReceived = "CONTACT_RECEIVED"
)

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func NewProductAdded(id, name, category string, price float64) BaseEvent {
	now := time.Now()
	return BaseEvent{
		Type: TypeProductAdded,
		Data: map[string]interface{}{
			"product_id":  id,
			"name":        name,
			"category":    category,
			"price":       price,
			"entity_type": "product",
			"entity_id":   id,
			"occurred_at": now,
		},
		OccurredAt: now,
	}
}

func NewCatalogReloaded(count int, fallback bool) BaseEvent {
	now := time.Now()
	return BaseEvent{
		Type: TypeCatalogReloaded,
		Data: map[string]interface{}{
			"product_count": count,
			"fallback":      fallback,
			"occurred_at":   now,
		},
		OccurredAt: now,
	}
}

func NewContactReceived(id, email string) BaseEvent {
	now := time.Now()
	return BaseEvent{
		Type: TypeContactReceived,
		Data: map[string]interface{}{
			"contact_id":  id,
			"email":       email,
			"entity_type": "contact_message",
			"entity_id":   id,
			"occurred_at": now,
		},
		OccurredAt: now,
	}
}

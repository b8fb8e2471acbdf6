package kafka

import (
	"time"

	"github.com/google/uuid"
)

// EventType определяет тип события.
type EventType string

const (
	// EventTypeOrderCreated публикуется после успешной вставки заказа.
	EventTypeOrderCreated EventType = "order.created"
)

// Topics для Kafka.
const (
	TopicOrderEvents = "storefront.order.events"
)

// OrderEvent представляет событие заказа.
type OrderEvent struct {
	EventID   string    `json:"event_id"`
	EventType EventType `json:"event_type"`
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	Total     float64   `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}

// NewOrderCreatedEvent создаёт событие о созданном заказе.
func NewOrderCreatedEvent(orderID, userID string, total float64) *OrderEvent {
	return &OrderEvent{
		EventID:   uuid.NewString(),
		EventType: EventTypeOrderCreated,
		OrderID:   orderID,
		UserID:    userID,
		Total:     total,
		Timestamp: time.Now().UTC(),
	}
}

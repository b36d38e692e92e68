package events

import (
	"context"
	"encoding/json"
	"time"
)

// Broker fans order events out to external consumers (display boards,
// analytics). The websocket hub is fed separately; losing the broker
// never blocks an order.
type Broker interface {
	Publish(ctx context.Context, queueName string, message []byte) error
	Close() error
}

const QueueOrderEvents = "order-events"

const (
	EventOrderCreated = "order.created"
	EventOrderStatus  = "order.status"
)

type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      uint      `json:"orderId"`
	Number       string    `json:"number"`
	RestaurantID uint      `json:"restaurantId"`
	Status       string    `json:"status"`
	Total        int64     `json:"total"`
	At           time.Time `json:"at"`
}

func (e OrderEvent) Marshal() []byte {
	b, _ := json.Marshal(e)
	return b
}

package events

import (
	"encoding/json"
	"time"

	"github.com/brewdash/brewdash/internal/models"
)

type OrderEvent struct {
	OrderID     string             `json:"order_id"`
	CustomerID  string             `json:"customer_id"`
	Status      models.OrderStatus `json:"status"`
	TotalAmount string             `json:"total_amount"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

func NewOrderEvent(order *models.Order, occurredAt time.Time) OrderEvent {
	return OrderEvent{
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		OccurredAt:  occurredAt,
	}
}

func (e OrderEvent) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

package order_status_changed

import (
	"errors"

	"dashboard/internal/entities"
)

var ErrInvalidEvent = errors.New("invalid order status event")

type statusChangedEvent struct {
	OrderID          int64  `json:"order_id"`
	CustomerID       int64  `json:"customer_id"`
	DeliveryPersonID int64  `json:"delivery_person_id"`
	Status           string `json:"status"`
}

func (e statusChangedEvent) toEntity() (entities.OrderStatusEvent, error) {
	if e.OrderID <= 0 || e.CustomerID <= 0 {
		return entities.OrderStatusEvent{}, ErrInvalidEvent
	}

	return entities.OrderStatusEvent{
		OrderID:          e.OrderID,
		CustomerID:       e.CustomerID,
		DeliveryPersonID: e.DeliveryPersonID,
		Status:           entities.OrderStatus(e.Status),
	}, nil
}

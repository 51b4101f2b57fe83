package entities

import "time"

type Order struct {
	ID                    int64
	CustomerID            int64
	ItemDescription       string
	Weight                float64
	PickupAddress         string
	DeliveryAddress       string
	Status                OrderStatus
	OrderDate             time.Time
	PreferredDeliveryTime *time.Time
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderAssigned  OrderStatus = "ASSIGNED"
	OrderPickup    OrderStatus = "PICKUP"
	OrderTransit   OrderStatus = "TRANSIT"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderAssigned, OrderPickup,
		OrderTransit, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// OrderCreate данные нового заказа от клиента.
type OrderCreate struct {
	CustomerID            int64
	PickupAddress         string
	DeliveryAddress       string
	ItemDescription       string
	Weight                float64
	PreferredDeliveryTime *time.Time
}

// OrderStatusEvent событие смены статуса заказа из Kafka.
type OrderStatusEvent struct {
	OrderID          int64
	CustomerID       int64
	DeliveryPersonID int64
	Status           OrderStatus
}

package order

import (
	"dashboard/internal/entities"
	"dashboard/internal/gateway/rest/payload"
)

type orderDTO struct {
	ID                    int64         `json:"id"`
	CustomerID            int64         `json:"customerId"`
	ItemDescription       string        `json:"itemDescription"`
	Weight                float64       `json:"weight"`
	PickupAddress         string        `json:"pickupAddress"`
	DeliveryAddress       string        `json:"deliveryAddress"`
	Status                string        `json:"status"`
	OrderDate             payload.Time  `json:"orderDate"`
	PreferredDeliveryTime *payload.Time `json:"preferredDeliveryTime,omitempty"`
}

type createRequest struct {
	CustomerID            int64   `json:"customerId"`
	PickupAddress         string  `json:"pickupAddress"`
	DeliveryAddress       string  `json:"deliveryAddress"`
	ItemDescription       string  `json:"itemDescription"`
	Weight                float64 `json:"weight"`
	PreferredDeliveryTime *string `json:"preferredDeliveryTime,omitempty"`
}

func toDomainList(dtos []orderDTO) []entities.Order {
	orders := make([]entities.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, toDomain(dto))
	}
	return orders
}

func toDomain(dto orderDTO) entities.Order {
	order := entities.Order{
		ID:              dto.ID,
		CustomerID:      dto.CustomerID,
		ItemDescription: dto.ItemDescription,
		Weight:          dto.Weight,
		PickupAddress:   dto.PickupAddress,
		DeliveryAddress: dto.DeliveryAddress,
		Status:          entities.OrderStatus(dto.Status),
		OrderDate:       dto.OrderDate.Time,
	}
	if dto.PreferredDeliveryTime != nil && !dto.PreferredDeliveryTime.IsZero() {
		preferred := dto.PreferredDeliveryTime.Time
		order.PreferredDeliveryTime = &preferred
	}
	return order
}

func toCreateRequest(create entities.OrderCreate) createRequest {
	req := createRequest{
		CustomerID:      create.CustomerID,
		PickupAddress:   create.PickupAddress,
		DeliveryAddress: create.DeliveryAddress,
		ItemDescription: create.ItemDescription,
		Weight:          create.Weight,
	}
	if create.PreferredDeliveryTime != nil {
		// order-service ждёт LocalDateTime без зоны
		formatted := create.PreferredDeliveryTime.UTC().Format("2006-01-02T15:04:05")
		req.PreferredDeliveryTime = &formatted
	}
	return req
}

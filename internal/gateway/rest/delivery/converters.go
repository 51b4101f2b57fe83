package delivery

import "dashboard/internal/entities"

type deliveryDTO struct {
	ID               int64  `json:"id"`
	OrderID          int64  `json:"orderId"`
	DeliveryPersonID int64  `json:"deliveryPersonId"`
	PickupAddress    string `json:"pickupAddress"`
	DeliveryAddress  string `json:"deliveryAddress"`
	Status           string `json:"status"`
	CurrentLocation  string `json:"currentLocation"`
}

type createRequest struct {
	OrderID          int64  `json:"orderId"`
	DeliveryPersonID int64  `json:"deliveryPersonId"`
	PickupAddress    string `json:"pickupAddress"`
	DeliveryAddress  string `json:"deliveryAddress"`
	CurrentLocation  string `json:"currentLocation"`
}

func toDomainList(dtos []deliveryDTO) []entities.Delivery {
	deliveries := make([]entities.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		deliveries = append(deliveries, entities.Delivery{
			ID:               dto.ID,
			OrderID:          dto.OrderID,
			DeliveryPersonID: dto.DeliveryPersonID,
			PickupAddress:    dto.PickupAddress,
			DeliveryAddress:  dto.DeliveryAddress,
			Status:           entities.DeliveryStatus(dto.Status),
			CurrentLocation:  dto.CurrentLocation,
		})
	}
	return deliveries
}

func toCreateRequest(create entities.DeliveryCreate) createRequest {
	location := create.CurrentLocation
	if location == "" {
		location = entities.DefaultDeliveryLocation
	}

	return createRequest{
		OrderID:          create.OrderID,
		DeliveryPersonID: create.DeliveryPersonID,
		PickupAddress:    create.PickupAddress,
		DeliveryAddress:  create.DeliveryAddress,
		CurrentLocation:  location,
	}
}

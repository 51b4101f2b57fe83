package dto

type StatusRequest struct {
	Status string `json:"status"`
}

type AssignDeliveryRequest struct {
	OrderID          int64 `json:"orderId"`
	DeliveryPersonID int64 `json:"deliveryPersonId"`
}

type CreateOrderRequest struct {
	PickupAddress         string  `json:"pickupAddress"`
	DeliveryAddress       string  `json:"deliveryAddress"`
	ItemDescription       string  `json:"itemDescription"`
	Weight                float64 `json:"weight"`
	PreferredDeliveryTime string  `json:"preferredDeliveryTime,omitempty"`
}

type SortRequest struct {
	Order string `json:"order"`
}

type MutationResponse struct {
	Success bool   `json:"success"`
	Toast   *Toast `json:"toast,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Message string `json:"message"`
}

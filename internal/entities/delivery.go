package entities

type Delivery struct {
	ID               int64
	OrderID          int64
	DeliveryPersonID int64
	PickupAddress    string
	DeliveryAddress  string
	Status           DeliveryStatus
	CurrentLocation  string
}

type DeliveryStatus string

const (
	DeliveryAssigned  DeliveryStatus = "ASSIGNED"
	DeliveryPickup    DeliveryStatus = "PICKUP"
	DeliveryTransit   DeliveryStatus = "TRANSIT"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
)

func (s DeliveryStatus) String() string {
	return string(s)
}

func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryAssigned, DeliveryPickup, DeliveryTransit, DeliveryDelivered:
		return true
	default:
		return false
	}
}

// DefaultDeliveryLocation стартовая точка для новой доставки.
const DefaultDeliveryLocation = "Warehouse"

type DeliveryCreate struct {
	OrderID          int64
	DeliveryPersonID int64
	PickupAddress    string
	DeliveryAddress  string
	CurrentLocation  string
}

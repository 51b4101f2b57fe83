package entities

import "time"

type DataKind string

const (
	KindOrders        DataKind = "orders"
	KindUsers         DataKind = "users"
	KindDeliveries    DataKind = "deliveries"
	KindNotifications DataKind = "notifications"
)

func (k DataKind) String() string {
	return string(k)
}

type ViewKind string

const (
	ViewAdmin    ViewKind = "admin"
	ViewCustomer ViewKind = "customer"
	ViewDelivery ViewKind = "delivery"
)

func (k ViewKind) String() string {
	return string(k)
}

func (k ViewKind) IsValid() bool {
	switch k {
	case ViewAdmin, ViewCustomer, ViewDelivery:
		return true
	default:
		return false
	}
}

// AllowedRoles роли, которым открыт экран.
func (k ViewKind) AllowedRoles() []Role {
	switch k {
	case ViewAdmin:
		return []Role{RoleAdmin}
	case ViewCustomer:
		return []Role{RoleCustomer}
	case ViewDelivery:
		return []Role{RoleDeliveryPerson}
	default:
		return nil
	}
}

// DataKinds данные, которые экран опрашивает.
func (k ViewKind) DataKinds() []DataKind {
	switch k {
	case ViewAdmin:
		return []DataKind{KindOrders, KindUsers, KindNotifications}
	case ViewCustomer:
		return []DataKind{KindOrders, KindNotifications}
	case ViewDelivery:
		return []DataKind{KindDeliveries, KindNotifications}
	default:
		return nil
	}
}

type ToastSeverity string

const (
	ToastSuccess ToastSeverity = "success"
	ToastError   ToastSeverity = "error"
	ToastInfo    ToastSeverity = "info"
	ToastWarning ToastSeverity = "warning"
)

type Toast struct {
	ID        string
	Message   string
	Severity  ToastSeverity
	CreatedAt time.Time
	ExpiresAt time.Time
}

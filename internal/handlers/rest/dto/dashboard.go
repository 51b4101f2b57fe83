package dto

import (
	"time"

	"dashboard/internal/entities"
	"dashboard/internal/store"
)

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"userType"`
}

type Order struct {
	ID                    int64      `json:"id"`
	CustomerID            int64      `json:"customerId"`
	ItemDescription       string     `json:"itemDescription"`
	Weight                float64    `json:"weight"`
	PickupAddress         string     `json:"pickupAddress"`
	DeliveryAddress       string     `json:"deliveryAddress"`
	Status                string     `json:"status"`
	OrderDate             *time.Time `json:"orderDate,omitempty"`
	PreferredDeliveryTime *time.Time `json:"preferredDeliveryTime,omitempty"`
}

type Delivery struct {
	ID               int64  `json:"id"`
	OrderID          int64  `json:"orderId"`
	DeliveryPersonID int64  `json:"deliveryPersonId"`
	PickupAddress    string `json:"pickupAddress"`
	DeliveryAddress  string `json:"deliveryAddress"`
	Status           string `json:"status"`
	CurrentLocation  string `json:"currentLocation"`
}

type Notification struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	Message   string     `json:"message"`
	Type      string     `json:"type,omitempty"`
	IsRead    bool       `json:"isRead"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type SessionUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type OrderStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Delivered int `json:"delivered"`
	Cancelled int `json:"cancelled"`
}

type DeliveryStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Delivered int `json:"delivered"`
}

type NotificationStats struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
}

type Stats struct {
	Orders        OrderStats        `json:"orders"`
	Deliveries    DeliveryStats     `json:"deliveries"`
	Notifications NotificationStats `json:"notifications"`
}

// Dashboard снимок экрана для отрисовки.
type Dashboard struct {
	View          string               `json:"view"`
	User          SessionUser          `json:"user"`
	Orders        []Order              `json:"orders"`
	Users         []User               `json:"users"`
	Deliveries    []Delivery           `json:"deliveries"`
	Notifications []Notification       `json:"notifications"`
	SortOrder     string               `json:"sortOrder"`
	Stats         Stats                `json:"stats"`
	Loading       bool                 `json:"loading"`
	Unavailable   []string             `json:"unavailable"`
	UpdatedAt     map[string]time.Time `json:"updatedAt"`
	Toast         *Toast               `json:"toast"`
}

func FromSnapshot(kind entities.ViewKind, session entities.Session, snap store.Snapshot) Dashboard {
	d := Dashboard{
		View:          kind.String(),
		Orders:        make([]Order, 0, len(snap.Orders)),
		Users:         make([]User, 0, len(snap.Users)),
		Deliveries:    make([]Delivery, 0, len(snap.Deliveries)),
		Notifications: make([]Notification, 0, len(snap.Notifications)),
		SortOrder:     string(snap.SortOrder),
		Stats: Stats{
			Orders:        OrderStats(snap.OrderStats),
			Deliveries:    DeliveryStats(snap.DeliveryStats),
			Notifications: NotificationStats(snap.NotificationStats),
		},
		Loading:     snap.Loading,
		Unavailable: make([]string, 0, len(snap.Unavailable)),
		UpdatedAt:   make(map[string]time.Time, len(snap.UpdatedAt)),
	}

	if session.User != nil {
		d.User = SessionUser{ID: session.User.ID, Name: session.User.Name, Role: session.User.Role.String()}
	}
	for _, o := range snap.Orders {
		d.Orders = append(d.Orders, FromOrder(o))
	}
	for _, u := range snap.Users {
		d.Users = append(d.Users, User{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, Role: u.Role.String()})
	}
	for _, dl := range snap.Deliveries {
		d.Deliveries = append(d.Deliveries, Delivery{
			ID:               dl.ID,
			OrderID:          dl.OrderID,
			DeliveryPersonID: dl.DeliveryPersonID,
			PickupAddress:    dl.PickupAddress,
			DeliveryAddress:  dl.DeliveryAddress,
			Status:           dl.Status.String(),
			CurrentLocation:  dl.CurrentLocation,
		})
	}
	for _, n := range snap.Notifications {
		d.Notifications = append(d.Notifications, Notification{
			ID:        n.ID,
			UserID:    n.UserID,
			Message:   n.Message,
			Type:      n.Type,
			IsRead:    n.IsRead,
			CreatedAt: timePtr(n.CreatedAt),
		})
	}
	for _, kind := range snap.Unavailable {
		d.Unavailable = append(d.Unavailable, kind.String())
	}
	for kind, at := range snap.UpdatedAt {
		d.UpdatedAt[kind.String()] = at
	}
	if snap.Toast != nil {
		d.Toast = FromToast(*snap.Toast)
	}

	return d
}

func FromOrder(o entities.Order) Order {
	return Order{
		ID:                    o.ID,
		CustomerID:            o.CustomerID,
		ItemDescription:       o.ItemDescription,
		Weight:                o.Weight,
		PickupAddress:         o.PickupAddress,
		DeliveryAddress:       o.DeliveryAddress,
		Status:                o.Status.String(),
		OrderDate:             timePtr(o.OrderDate),
		PreferredDeliveryTime: o.PreferredDeliveryTime,
	}
}

func FromToast(t entities.Toast) *Toast {
	return &Toast{
		ID:        t.ID,
		Message:   t.Message,
		Severity:  string(t.Severity),
		ExpiresAt: t.ExpiresAt,
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

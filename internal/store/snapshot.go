package store

import (
	"time"

	"dashboard/internal/entities"
)

type Query struct {
	// OrderStatus если задан, в снимок попадают только заказы с этим статусом.
	OrderStatus        *entities.OrderStatus
	NotificationsLimit int
}

type Snapshot struct {
	Orders        []entities.Order
	Users         []entities.User
	Deliveries    []entities.Delivery
	Notifications []entities.Notification
	SortOrder     entities.SortOrder

	OrderStats        OrderStats
	DeliveryStats     DeliveryStats
	NotificationStats NotificationStats

	Loading     bool
	Unavailable []entities.DataKind
	UpdatedAt   map[entities.DataKind]time.Time
	Toast       *entities.Toast
}

type OrderStats struct {
	Total     int
	Pending   int
	Delivered int
	Cancelled int
}

type DeliveryStats struct {
	Total     int
	Active    int
	Delivered int
}

type NotificationStats struct {
	Total  int
	Unread int
}

func orderStats(orders []entities.Order) OrderStats {
	stats := OrderStats{Total: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case entities.OrderPending:
			stats.Pending++
		case entities.OrderDelivered:
			stats.Delivered++
		case entities.OrderCancelled:
			stats.Cancelled++
		}
	}
	return stats
}

func deliveryStats(deliveries []entities.Delivery) DeliveryStats {
	stats := DeliveryStats{Total: len(deliveries)}
	for _, d := range deliveries {
		if d.Status == entities.DeliveryDelivered {
			stats.Delivered++
		} else {
			stats.Active++
		}
	}
	return stats
}

func notificationStats(notifications []entities.Notification) NotificationStats {
	stats := NotificationStats{Total: len(notifications)}
	for _, n := range notifications {
		if !n.IsRead {
			stats.Unread++
		}
	}
	return stats
}

// FilterOrdersByStatus пустой статус даёт пустой список.
func FilterOrdersByStatus(orders []entities.Order, status entities.OrderStatus) []entities.Order {
	filtered := []entities.Order{}
	if status == "" {
		return filtered
	}
	for _, o := range orders {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

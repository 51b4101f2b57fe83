package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dashboard/internal/entities"

	"golang.org/x/sync/errgroup"
)

// Action одна пользовательская мутация. Список действий закрыт:
// конструируются только типы этого пакета.
type Action interface {
	Name() string
	validate(v View) error
	execute(ctx context.Context, g gateways, v View) error
	affects() []entities.DataKind
	successMessage(v View) string
	failureMessage() string
}

type gateways struct {
	orders        OrderGateway
	deliveries    DeliveryGateway
	users         UserGateway
	notifications NotificationGateway
}

type UpdateOrderStatus struct {
	OrderID int64
	Status  entities.OrderStatus
}

func ConfirmOrder(orderID int64) UpdateOrderStatus {
	return UpdateOrderStatus{OrderID: orderID, Status: entities.OrderConfirmed}
}

func CancelOrder(orderID int64) UpdateOrderStatus {
	return UpdateOrderStatus{OrderID: orderID, Status: entities.OrderCancelled}
}

func (a UpdateOrderStatus) Name() string { return "update_order_status" }

func (a UpdateOrderStatus) validate(View) error {
	if a.OrderID <= 0 {
		return invalid("orderId", "must be positive")
	}
	if !a.Status.IsValid() {
		return invalid("status", fmt.Sprintf("unknown order status %q", a.Status))
	}
	return nil
}

func (a UpdateOrderStatus) execute(ctx context.Context, g gateways, _ View) error {
	return g.orders.UpdateStatus(ctx, a.OrderID, a.Status)
}

func (a UpdateOrderStatus) affects() []entities.DataKind {
	return []entities.DataKind{entities.KindOrders}
}

func (a UpdateOrderStatus) successMessage(View) string {
	return fmt.Sprintf("Order #%d status updated to %s", a.OrderID, a.Status)
}

func (a UpdateOrderStatus) failureMessage() string { return "Failed to update order status" }

// AssignDelivery адреса берутся из заказа, который уже есть на экране.
type AssignDelivery struct {
	OrderID          int64
	DeliveryPersonID int64
}

func (a AssignDelivery) Name() string { return "assign_delivery" }

func (a AssignDelivery) validate(v View) error {
	if a.DeliveryPersonID <= 0 {
		return invalid("deliveryPersonId", "must be positive")
	}
	if _, ok := v.FindOrder(a.OrderID); !ok {
		return invalid("", "Order not found")
	}
	return nil
}

func (a AssignDelivery) execute(ctx context.Context, g gateways, v View) error {
	order, ok := v.FindOrder(a.OrderID)
	if !ok {
		return invalid("", "Order not found")
	}
	return g.deliveries.Create(ctx, entities.DeliveryCreate{
		OrderID:          a.OrderID,
		DeliveryPersonID: a.DeliveryPersonID,
		PickupAddress:    order.PickupAddress,
		DeliveryAddress:  order.DeliveryAddress,
		CurrentLocation:  entities.DefaultDeliveryLocation,
	})
}

func (a AssignDelivery) affects() []entities.DataKind {
	return []entities.DataKind{entities.KindOrders}
}

func (a AssignDelivery) successMessage(View) string {
	return fmt.Sprintf("Delivery for order #%d assigned", a.OrderID)
}

func (a AssignDelivery) failureMessage() string {
	return "Failed to assign delivery. Please try again."
}

type UpdateDeliveryStatus struct {
	DeliveryID int64
	Status     entities.DeliveryStatus
}

func (a UpdateDeliveryStatus) Name() string { return "update_delivery_status" }

func (a UpdateDeliveryStatus) validate(View) error {
	if a.DeliveryID <= 0 {
		return invalid("deliveryId", "must be positive")
	}
	if !a.Status.IsValid() {
		return invalid("status", fmt.Sprintf("unknown delivery status %q", a.Status))
	}
	return nil
}

func (a UpdateDeliveryStatus) execute(ctx context.Context, g gateways, _ View) error {
	return g.deliveries.UpdateStatus(ctx, a.DeliveryID, a.Status)
}

func (a UpdateDeliveryStatus) affects() []entities.DataKind {
	return []entities.DataKind{entities.KindDeliveries}
}

func (a UpdateDeliveryStatus) successMessage(View) string {
	return fmt.Sprintf("Delivery #%d status updated to %s", a.DeliveryID, a.Status)
}

func (a UpdateDeliveryStatus) failureMessage() string { return "Failed to update delivery status" }

// DeleteUser администраторов удалить нельзя.
type DeleteUser struct {
	UserID int64
}

func (a DeleteUser) Name() string { return "delete_user" }

func (a DeleteUser) validate(v View) error {
	user, ok := v.FindUser(a.UserID)
	if !ok {
		return invalid("", "User not found")
	}
	if user.Role == entities.RoleAdmin {
		return invalid("", "Administrators cannot be deleted")
	}
	return nil
}

func (a DeleteUser) execute(ctx context.Context, g gateways, _ View) error {
	return g.users.Delete(ctx, a.UserID)
}

func (a DeleteUser) affects() []entities.DataKind {
	return []entities.DataKind{entities.KindUsers}
}

func (a DeleteUser) successMessage(v View) string {
	user, _ := v.FindUser(a.UserID)
	return fmt.Sprintf("User \"%s\" deleted successfully", user.Name)
}

func (a DeleteUser) failureMessage() string { return "Failed to delete user. Please try again." }

// DeleteOrder клиент может удалить только свой заказ в статусе PENDING.
type DeleteOrder struct {
	OrderID int64
}

func (a DeleteOrder) Name() string { return "delete_order" }

func (a DeleteOrder) validate(v View) error {
	order, ok := v.FindOrder(a.OrderID)
	if !ok {
		return invalid("", "Order not found")
	}
	if order.Status != entities.OrderPending {
		return invalid("", "Only pending orders can be deleted")
	}
	return nil
}

func (a DeleteOrder) execute(ctx context.Context, g gateways, _ View) error {
	return g.orders.Delete(ctx, a.OrderID)
}

func (a DeleteOrder) affects() []entities.DataKind {
	return []entities.DataKind{entities.KindOrders}
}

func (a DeleteOrder) successMessage(View) string { return "Order deleted successfully!" }

func (a DeleteOrder) failureMessage() string { return "Failed to delete order" }

// CreateOrder заказ создаётся от имени пользователя сессии.
type CreateOrder struct {
	PickupAddress         string
	DeliveryAddress       string
	ItemDescription       string
	Weight                float64
	PreferredDeliveryTime *time.Time
}

func (a CreateOrder) Name() string { return "create_order" }

func (a CreateOrder) validate(View) error {
	switch {
	case strings.TrimSpace(a.PickupAddress) == "":
		return invalid("pickupAddress", "is required")
	case strings.TrimSpace(a.DeliveryAddress) == "":
		return invalid("deliveryAddress", "is required")
	case strings.TrimSpace(a.ItemDescription) == "":
		return invalid("itemDescription", "is required")
	case a.Weight <= 0:
		return invalid("weight", "must be greater than zero")
	}
	return nil
}

func (a CreateOrder) execute(ctx context.Context, g gateways, v View) error {
	return g.orders.Create(ctx, entities.OrderCreate{
		CustomerID:            v.Session().User.ID,
		PickupAddress:         strings.TrimSpace(a.PickupAddress),
		DeliveryAddress:       strings.TrimSpace(a.DeliveryAddress),
		ItemDescription:       strings.TrimSpace(a.ItemDescription),
		Weight:                a.Weight,
		PreferredDeliveryTime: a.PreferredDeliveryTime,
	})
}

func (a CreateOrder) affects() []entities.DataKind {
	return []entities.DataKind{entities.KindOrders}
}

func (a CreateOrder) successMessage(View) string { return "Order placed successfully!" }

func (a CreateOrder) failureMessage() string { return "Failed to place order" }

type MarkNotificationRead struct {
	NotificationID int64
}

func (a MarkNotificationRead) Name() string { return "mark_notification_read" }

func (a MarkNotificationRead) validate(View) error {
	if a.NotificationID <= 0 {
		return invalid("notificationId", "must be positive")
	}
	return nil
}

func (a MarkNotificationRead) execute(ctx context.Context, g gateways, _ View) error {
	return g.notifications.MarkRead(ctx, a.NotificationID)
}

func (a MarkNotificationRead) affects() []entities.DataKind {
	return []entities.DataKind{entities.KindNotifications}
}

func (a MarkNotificationRead) successMessage(View) string { return "Notification marked as read" }

func (a MarkNotificationRead) failureMessage() string { return "Failed to mark notification as read" }

// MarkAllNotificationsRead отмечает все непрочитанные уведомления параллельно.
// Уведомления перечитываются и при частичной ошибке.
type MarkAllNotificationsRead struct{}

func (a MarkAllNotificationsRead) Name() string { return "mark_all_notifications_read" }

func (a MarkAllNotificationsRead) validate(View) error { return nil }

func (a MarkAllNotificationsRead) execute(ctx context.Context, g gateways, v View) error {
	unread := v.UnreadNotifications()

	errs := make([]error, len(unread))
	var group errgroup.Group
	for i, n := range unread {
		group.Go(func() error {
			if err := g.notifications.MarkRead(ctx, n.ID); err != nil {
				errs[i] = fmt.Errorf("notification %d: %w", n.ID, err)
			}
			return nil
		})
	}
	_ = group.Wait()

	return errors.Join(errs...)
}

func (a MarkAllNotificationsRead) affects() []entities.DataKind {
	return []entities.DataKind{entities.KindNotifications}
}

func (a MarkAllNotificationsRead) refetchOnFailure() bool { return true }

func (a MarkAllNotificationsRead) successMessage(View) string {
	return "All notifications marked as read"
}

func (a MarkAllNotificationsRead) failureMessage() string {
	return "Failed to mark all notifications as read"
}

type CreateTestNotification struct{}

func (a CreateTestNotification) Name() string { return "create_test_notification" }

func (a CreateTestNotification) validate(View) error { return nil }

func (a CreateTestNotification) execute(ctx context.Context, g gateways, v View) error {
	return g.notifications.CreateTest(ctx, v.Session().User.ID)
}

func (a CreateTestNotification) affects() []entities.DataKind {
	return []entities.DataKind{entities.KindNotifications}
}

func (a CreateTestNotification) successMessage(View) string { return "Test notification created" }

func (a CreateTestNotification) failureMessage() string { return "Failed to create test notification" }

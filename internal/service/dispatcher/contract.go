//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatcher_test
package dispatcher

import (
	"context"

	"dashboard/internal/entities"
	"dashboard/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type OrderGateway interface {
	Create(ctx context.Context, create entities.OrderCreate) error
	Delete(ctx context.Context, orderID int64) error
	UpdateStatus(ctx context.Context, orderID int64, status entities.OrderStatus) error
}

type DeliveryGateway interface {
	Create(ctx context.Context, create entities.DeliveryCreate) error
	UpdateStatus(ctx context.Context, deliveryID int64, status entities.DeliveryStatus) error
}

type UserGateway interface {
	Delete(ctx context.Context, userID int64) error
}

type NotificationGateway interface {
	MarkRead(ctx context.Context, notificationID int64) error
	CreateTest(ctx context.Context, userID int64) error
}

// View экран, от имени которого выполняется действие.
type View interface {
	Session() entities.Session
	FindOrder(orderID int64) (entities.Order, bool)
	FindUser(userID int64) (entities.User, bool)
	UnreadNotifications() []entities.Notification
	ShowToast(severity entities.ToastSeverity, message string) entities.Toast
	RefreshKind(ctx context.Context, kind entities.DataKind) error
}

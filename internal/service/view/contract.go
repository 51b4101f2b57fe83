//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=view_test
package view

import (
	"context"

	"dashboard/internal/entities"
)

type OrderGateway interface {
	ListAll(ctx context.Context) ([]entities.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]entities.Order, error)
}

type UserGateway interface {
	ListAll(ctx context.Context) ([]entities.User, error)
}

type DeliveryGateway interface {
	ListByPerson(ctx context.Context, deliveryPersonID int64) ([]entities.Delivery, error)
}

type NotificationGateway interface {
	ListAll(ctx context.Context, adminID int64) ([]entities.Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]entities.Notification, error)
}

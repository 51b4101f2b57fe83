package notification

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"dashboard/internal/entities"
	"dashboard/internal/pkg/resolver"
)

type NotificationGateway struct {
	resolver   endpointResolver
	directURL  string
	gatewayURL string
}

func New(r endpointResolver, directURL, gatewayURL string) *NotificationGateway {
	return &NotificationGateway{
		resolver:   r,
		directURL:  directURL,
		gatewayURL: gatewayURL,
	}
}

// ListAll все уведомления системы. У gateway такого маршрута нет,
// поэтому запасной вариант - уведомления самого администратора.
func (n *NotificationGateway) ListAll(ctx context.Context, adminID int64) ([]entities.Notification, error) {
	op := resolver.Operation{
		Name: "notifications.list_all",
		Primary: resolver.Call{
			Target:  resolver.TargetDirect,
			BaseURL: n.directURL,
			Path:    "/api/notifications/debug/all",
		},
		Secondary: resolver.Call{
			Target:  resolver.TargetDirect,
			BaseURL: n.directURL,
			Path:    userPath(adminID),
		},
	}

	return n.list(ctx, op)
}

func (n *NotificationGateway) ListByUser(ctx context.Context, userID int64) ([]entities.Notification, error) {
	return n.list(ctx, n.operation("notifications.list_by_user", http.MethodGet, userPath(userID)))
}

func (n *NotificationGateway) MarkRead(ctx context.Context, notificationID int64) error {
	path := "/api/notifications/" + strconv.FormatInt(notificationID, 10) + "/read"

	if _, err := n.resolver.Resolve(ctx, n.operation("notifications.mark_read", http.MethodPut, path)); err != nil {
		return fmt.Errorf("gateway notification, mark read %d: %w", notificationID, err)
	}
	return nil
}

// CreateTest просит notification-service сгенерировать тестовое уведомление.
func (n *NotificationGateway) CreateTest(ctx context.Context, userID int64) error {
	path := "/api/notifications/test/" + strconv.FormatInt(userID, 10)

	if _, err := n.resolver.Resolve(ctx, n.operation("notifications.create_test", http.MethodPost, path)); err != nil {
		return fmt.Errorf("gateway notification, create test for %d: %w", userID, err)
	}
	return nil
}

func (n *NotificationGateway) list(ctx context.Context, op resolver.Operation) ([]entities.Notification, error) {
	res, err := n.resolver.Resolve(ctx, op)
	if err != nil {
		return nil, fmt.Errorf("gateway notification, %s: %w", op.Name, err)
	}

	dtos, err := resolver.DecodeList[notificationDTO](res.Body, "notifications")
	if err != nil {
		return nil, fmt.Errorf("gateway notification, %s: %w", op.Name, err)
	}
	return toDomainList(dtos), nil
}

func (n *NotificationGateway) operation(name, method, path string) resolver.Operation {
	return resolver.Operation{
		Name: name,
		Primary: resolver.Call{
			Target:  resolver.TargetDirect,
			BaseURL: n.directURL,
			Method:  method,
			Path:    path,
		},
		Secondary: resolver.Call{
			Target:  resolver.TargetGateway,
			BaseURL: n.gatewayURL,
			Method:  method,
			Path:    path,
		},
	}
}

func userPath(userID int64) string {
	return "/api/notifications/user/" + strconv.FormatInt(userID, 10)
}

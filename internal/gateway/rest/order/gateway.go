package order

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"dashboard/internal/entities"
	"dashboard/internal/pkg/resolver"
)

// OrderGateway клиент order-service. Сначала идёт напрямую в сервис,
// при ошибке один раз через API gateway.
type OrderGateway struct {
	resolver   endpointResolver
	directURL  string
	gatewayURL string
}

func New(r endpointResolver, directURL, gatewayURL string) *OrderGateway {
	return &OrderGateway{
		resolver:   r,
		directURL:  directURL,
		gatewayURL: gatewayURL,
	}
}

// ListAll все заказы (экран администратора).
func (o *OrderGateway) ListAll(ctx context.Context) ([]entities.Order, error) {
	op := resolver.Operation{
		Name: "orders.list_all",
		Primary: resolver.Call{
			Target:  resolver.TargetDirect,
			BaseURL: o.directURL,
			Path:    "/api/orders/debug/all",
		},
		Secondary: resolver.Call{
			Target:  resolver.TargetGateway,
			BaseURL: o.gatewayURL,
			Path:    "/api/orders",
		},
	}

	return o.list(ctx, op)
}

func (o *OrderGateway) ListByCustomer(ctx context.Context, customerID int64) ([]entities.Order, error) {
	path := "/api/orders/customer/" + strconv.FormatInt(customerID, 10)

	return o.list(ctx, o.operation("orders.list_by_customer", http.MethodGet, path, nil, nil))
}

func (o *OrderGateway) Create(ctx context.Context, create entities.OrderCreate) error {
	op := o.operation("orders.create", http.MethodPost, "/api/orders", nil, toCreateRequest(create))

	if _, err := o.resolver.Resolve(ctx, op); err != nil {
		return fmt.Errorf("gateway order, create: %w", err)
	}
	return nil
}

func (o *OrderGateway) Delete(ctx context.Context, orderID int64) error {
	path := "/api/orders/" + strconv.FormatInt(orderID, 10)

	if _, err := o.resolver.Resolve(ctx, o.operation("orders.delete", http.MethodDelete, path, nil, nil)); err != nil {
		return fmt.Errorf("gateway order, delete %d: %w", orderID, err)
	}
	return nil
}

func (o *OrderGateway) UpdateStatus(ctx context.Context, orderID int64, status entities.OrderStatus) error {
	path := "/api/orders/" + strconv.FormatInt(orderID, 10) + "/status"
	query := url.Values{"status": {status.String()}}

	if _, err := o.resolver.Resolve(ctx, o.operation("orders.update_status", http.MethodPut, path, query, nil)); err != nil {
		return fmt.Errorf("gateway order, update status %d: %w", orderID, err)
	}
	return nil
}

func (o *OrderGateway) list(ctx context.Context, op resolver.Operation) ([]entities.Order, error) {
	res, err := o.resolver.Resolve(ctx, op)
	if err != nil {
		return nil, fmt.Errorf("gateway order, %s: %w", op.Name, err)
	}

	dtos, err := resolver.DecodeList[orderDTO](res.Body, "orders")
	if err != nil {
		return nil, fmt.Errorf("gateway order, %s: %w", op.Name, err)
	}
	return toDomainList(dtos), nil
}

// operation одинаковый путь на сервисе и на gateway.
func (o *OrderGateway) operation(name, method, path string, query url.Values, body any) resolver.Operation {
	return resolver.Operation{
		Name: name,
		Primary: resolver.Call{
			Target:  resolver.TargetDirect,
			BaseURL: o.directURL,
			Method:  method,
			Path:    path,
			Query:   query,
			Body:    body,
		},
		Secondary: resolver.Call{
			Target:  resolver.TargetGateway,
			BaseURL: o.gatewayURL,
			Method:  method,
			Path:    path,
			Query:   query,
			Body:    body,
		},
	}
}

package delivery

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"dashboard/internal/entities"
	"dashboard/internal/pkg/resolver"
)

type DeliveryGateway struct {
	resolver   endpointResolver
	directURL  string
	gatewayURL string
}

func New(r endpointResolver, directURL, gatewayURL string) *DeliveryGateway {
	return &DeliveryGateway{
		resolver:   r,
		directURL:  directURL,
		gatewayURL: gatewayURL,
	}
}

// ListByPerson доставки, назначенные курьеру.
func (d *DeliveryGateway) ListByPerson(ctx context.Context, deliveryPersonID int64) ([]entities.Delivery, error) {
	path := "/api/deliveries/person/" + strconv.FormatInt(deliveryPersonID, 10)

	res, err := d.resolver.Resolve(ctx, d.operation("deliveries.list_by_person", http.MethodGet, path, nil, nil))
	if err != nil {
		return nil, fmt.Errorf("gateway delivery, list by person %d: %w", deliveryPersonID, err)
	}

	dtos, err := resolver.DecodeList[deliveryDTO](res.Body, "deliveries")
	if err != nil {
		return nil, fmt.Errorf("gateway delivery, list by person %d: %w", deliveryPersonID, err)
	}
	return toDomainList(dtos), nil
}

func (d *DeliveryGateway) Create(ctx context.Context, create entities.DeliveryCreate) error {
	op := d.operation("deliveries.create", http.MethodPost, "/api/deliveries", nil, toCreateRequest(create))

	if _, err := d.resolver.Resolve(ctx, op); err != nil {
		return fmt.Errorf("gateway delivery, create for order %d: %w", create.OrderID, err)
	}
	return nil
}

func (d *DeliveryGateway) UpdateStatus(ctx context.Context, deliveryID int64, status entities.DeliveryStatus) error {
	path := "/api/deliveries/" + strconv.FormatInt(deliveryID, 10) + "/status"
	query := url.Values{"status": {status.String()}}

	if _, err := d.resolver.Resolve(ctx, d.operation("deliveries.update_status", http.MethodPut, path, query, nil)); err != nil {
		return fmt.Errorf("gateway delivery, update status %d: %w", deliveryID, err)
	}
	return nil
}

func (d *DeliveryGateway) operation(name, method, path string, query url.Values, body any) resolver.Operation {
	return resolver.Operation{
		Name: name,
		Primary: resolver.Call{
			Target:  resolver.TargetDirect,
			BaseURL: d.directURL,
			Method:  method,
			Path:    path,
			Query:   query,
			Body:    body,
		},
		Secondary: resolver.Call{
			Target:  resolver.TargetGateway,
			BaseURL: d.gatewayURL,
			Method:  method,
			Path:    path,
			Query:   query,
			Body:    body,
		},
	}
}

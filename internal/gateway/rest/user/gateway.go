package user

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"dashboard/internal/entities"
	"dashboard/internal/pkg/resolver"
)

type UserGateway struct {
	resolver   endpointResolver
	directURL  string
	gatewayURL string
}

func New(r endpointResolver, directURL, gatewayURL string) *UserGateway {
	return &UserGateway{
		resolver:   r,
		directURL:  directURL,
		gatewayURL: gatewayURL,
	}
}

func (u *UserGateway) ListAll(ctx context.Context) ([]entities.User, error) {
	res, err := u.resolver.Resolve(ctx, u.operation("users.list_all", http.MethodGet, "/api/users"))
	if err != nil {
		return nil, fmt.Errorf("gateway user, list: %w", err)
	}

	dtos, err := resolver.DecodeList[userDTO](res.Body, "users")
	if err != nil {
		return nil, fmt.Errorf("gateway user, list: %w", err)
	}
	return toDomainList(dtos), nil
}

func (u *UserGateway) Delete(ctx context.Context, userID int64) error {
	path := "/api/users/" + strconv.FormatInt(userID, 10)

	if _, err := u.resolver.Resolve(ctx, u.operation("users.delete", http.MethodDelete, path)); err != nil {
		return fmt.Errorf("gateway user, delete %d: %w", userID, err)
	}
	return nil
}

func (u *UserGateway) operation(name, method, path string) resolver.Operation {
	return resolver.Operation{
		Name: name,
		Primary: resolver.Call{
			Target:  resolver.TargetDirect,
			BaseURL: u.directURL,
			Method:  method,
			Path:    path,
		},
		Secondary: resolver.Call{
			Target:  resolver.TargetGateway,
			BaseURL: u.gatewayURL,
			Method:  method,
			Path:    path,
		},
	}
}

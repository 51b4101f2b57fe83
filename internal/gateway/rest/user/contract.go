//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"dashboard/internal/pkg/resolver"
)

type endpointResolver interface {
	Resolve(ctx context.Context, op resolver.Operation) (*resolver.Result, error)
}

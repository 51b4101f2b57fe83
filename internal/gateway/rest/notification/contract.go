//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"dashboard/internal/pkg/resolver"
)

type endpointResolver interface {
	Resolve(ctx context.Context, op resolver.Operation) (*resolver.Result, error)
}

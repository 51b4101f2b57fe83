//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=probe_test
package probe

import (
	"context"
	"net/http"

	"dashboard/pkg/logger"
)

type probeLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

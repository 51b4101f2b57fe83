//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifications_read_all_post_test
package notifications_read_all_post

import (
	"context"

	"dashboard/internal/entities"
	"dashboard/internal/service/dispatcher"
	"dashboard/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Dispatcher interface {
	Dispatch(ctx context.Context, view dispatcher.View, action dispatcher.Action) (entities.Toast, error)
}

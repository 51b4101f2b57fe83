//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dashboard_delete_test
package dashboard_delete

import (
	"dashboard/internal/entities"
	"dashboard/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Releaser interface {
	Release(kind entities.ViewKind, userID int64) error
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dashboard_get_test
package dashboard_get

import (
	"dashboard/internal/entities"
	"dashboard/internal/store"
	"dashboard/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type View interface {
	Kind() entities.ViewKind
	Session() entities.Session
	Snapshot(q store.Query) store.Snapshot
}

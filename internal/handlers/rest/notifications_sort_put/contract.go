//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifications_sort_put_test
package notifications_sort_put

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
	SetSortOrder(order entities.SortOrder) error
	Snapshot(q store.Query) store.Snapshot
}

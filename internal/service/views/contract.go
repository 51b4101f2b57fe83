//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=views_test
package views

import (
	"context"
	"time"

	"dashboard/internal/entities"
	"dashboard/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// View активный экран, которым управляет Manager.
type View interface {
	Session() entities.Session
	Kind() entities.ViewKind
	RefreshKind(ctx context.Context, kind entities.DataKind) error
	Touch(now time.Time)
	IdleSince() time.Time
	Close()
}

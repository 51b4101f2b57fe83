//go:generate mockgen -source=view_cleanup.go -destination=./view_cleanup_mocks_test.go -package=view_cleanup_test
package view_cleanup

import (
	"context"
	"time"

	"dashboard/pkg/logger"
)

type Registry interface {
	CloseIdle(ttl time.Duration) int
}

// ViewCleanup закрывает экраны, к которым давно не обращались:
// вкладка закрыта без явного DELETE, опрос иначе шёл бы вечно.
type ViewCleanup struct {
	log      logger.Logger
	registry Registry
	interval time.Duration
	idleTTL  time.Duration
}

func NewViewCleanup(log logger.Logger, registry Registry, interval, idleTTL time.Duration) *ViewCleanup {
	return &ViewCleanup{
		log:      log,
		registry: registry,
		interval: interval,
		idleTTL:  idleTTL,
	}
}

func (v *ViewCleanup) TTL() time.Duration {
	return v.interval
}

func (v *ViewCleanup) Do(context.Context) error {
	if closed := v.registry.CloseIdle(v.idleTTL); closed > 0 {
		v.log.With(
			logger.NewField("closed_views", closed),
			logger.NewField("idle_ttl", v.idleTTL),
		).Info("view cleanup")
	}
	return nil
}

func (v *ViewCleanup) Info() string {
	return "view cleanup"
}

//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"

	"dashboard/internal/handlers/tasks/view_cleanup"
	"dashboard/internal/pkg/config"
	"dashboard/pkg/logger"

	"github.com/google/wire"
)

// InitializeApplication для HTTP сервиса (cmd/dashboard)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	client *http.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideResolver,

		provideOrderGateway,
		provideUserGateway,
		provideDeliveryGateway,
		provideNotificationGateway,
		provideViewGateways,

		provideViewFactory,
		provideViewRegistry,
		provideDispatcher,

		provideViewCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(view_cleanup.Registry), new(*ViewRegistry)),
	)
	return &Application{}, nil
}

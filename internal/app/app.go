package app

import (
	"context"
	"net/http"

	"dashboard/internal/entities"
	deliveryGateway "dashboard/internal/gateway/rest/delivery"
	notificationGateway "dashboard/internal/gateway/rest/notification"
	orderGateway "dashboard/internal/gateway/rest/order"
	userGateway "dashboard/internal/gateway/rest/user"
	"dashboard/internal/handlers/tasks/view_cleanup"
	"dashboard/internal/pkg/config"
	"dashboard/internal/pkg/resolver"
	"dashboard/internal/service/dispatcher"
	"dashboard/internal/service/view"
	"dashboard/internal/service/views"
	"dashboard/pkg/background"
	"dashboard/pkg/logger"
)

type (
	ViewRegistry = views.Manager[*view.View]
	ViewFactory  func(ctx context.Context, kind entities.ViewKind, session entities.Session) (*view.View, error)
)

type Application struct {
	Views             *ViewRegistry
	Dispatcher        *dispatcher.Dispatcher
	BackgroundWorkers *background.Worker
}

// Close останавливает фоновые задачи и закрывает все экраны.
func (a *Application) Close() {
	a.BackgroundWorkers.Stop()
	a.Views.Close()
}

func provideResolver(log logger.Logger, client *http.Client, cfg *config.Config) *resolver.Resolver {
	return resolver.New(log, client, cfg.Backend.CallTimeout)
}

func provideOrderGateway(r *resolver.Resolver, cfg *config.Config) *orderGateway.OrderGateway {
	return orderGateway.New(r, cfg.Backend.OrderServiceURL, cfg.Backend.GatewayURL)
}

func provideUserGateway(r *resolver.Resolver, cfg *config.Config) *userGateway.UserGateway {
	return userGateway.New(r, cfg.Backend.UserServiceURL, cfg.Backend.GatewayURL)
}

func provideDeliveryGateway(r *resolver.Resolver, cfg *config.Config) *deliveryGateway.DeliveryGateway {
	return deliveryGateway.New(r, cfg.Backend.DeliveryServiceURL, cfg.Backend.GatewayURL)
}

func provideNotificationGateway(r *resolver.Resolver, cfg *config.Config) *notificationGateway.NotificationGateway {
	return notificationGateway.New(r, cfg.Backend.NotificationServiceURL, cfg.Backend.GatewayURL)
}

func provideViewGateways(
	orders *orderGateway.OrderGateway,
	users *userGateway.UserGateway,
	deliveries *deliveryGateway.DeliveryGateway,
	notifications *notificationGateway.NotificationGateway,
) view.Gateways {
	return view.Gateways{
		Orders:        orders,
		Users:         users,
		Deliveries:    deliveries,
		Notifications: notifications,
	}
}

func provideViewFactory(log logger.Logger, gateways view.Gateways, cfg *config.Config) ViewFactory {
	viewCfg := view.Config{
		PollInterval: cfg.Dashboard.PollInterval,
		ToastTTL:     cfg.Dashboard.ToastTTL,
	}

	return func(ctx context.Context, kind entities.ViewKind, session entities.Session) (*view.View, error) {
		return view.New(ctx, log, gateways, viewCfg, kind, session)
	}
}

func provideViewRegistry(log logger.Logger, factory ViewFactory) *ViewRegistry {
	return views.NewManager[*view.View](log, factory)
}

func provideDispatcher(
	log logger.Logger,
	orders *orderGateway.OrderGateway,
	deliveries *deliveryGateway.DeliveryGateway,
	users *userGateway.UserGateway,
	notifications *notificationGateway.NotificationGateway,
) *dispatcher.Dispatcher {
	return dispatcher.New(log, orders, deliveries, users, notifications)
}

func provideViewCleanupTask(log logger.Logger, registry view_cleanup.Registry, cfg *config.Config) *view_cleanup.ViewCleanup {
	return view_cleanup.NewViewCleanup(log, registry, cfg.Dashboard.ViewCleanupInterval, cfg.Dashboard.ViewIdleTTL)
}

func provideTaskList(
	viewCleanupTask *view_cleanup.ViewCleanup,
) []background.Task {
	return []background.Task{
		viewCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

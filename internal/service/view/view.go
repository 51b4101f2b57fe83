package view

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"dashboard/internal/entities"
	"dashboard/internal/store"
	"dashboard/pkg/background"
	"dashboard/pkg/logger"
)

type Config struct {
	PollInterval time.Duration
	ToastTTL     time.Duration
}

type Gateways struct {
	Orders        OrderGateway
	Users         UserGateway
	Deliveries    DeliveryGateway
	Notifications NotificationGateway
}

// View экран одного пользователя: стор и опрашивающий его воркер.
// Живёт от активации до Close.
type View struct {
	log     logger.Logger
	kind    entities.ViewKind
	session entities.Session
	store   *store.Store
	worker  *background.Worker

	lastUsed  atomic.Int64
	closeOnce sync.Once
}

// New активирует экран: сразу загружает все нужные данные и запускает опрос
// с интервалом cfg.PollInterval. Ошибки первой загрузки видны в снимке,
// а не возвращаются отсюда.
func New(
	ctx context.Context,
	log logger.Logger,
	gateways Gateways,
	cfg Config,
	kind entities.ViewKind,
	session entities.Session,
) (*View, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownView, kind)
	}
	if session.User == nil {
		return nil, ErrNoUser
	}

	user := *session.User
	session.User = &user

	v := &View{
		log: log.With(
			logger.NewField("view", kind.String()),
			logger.NewField("user_id", user.ID),
		),
		kind:    kind,
		session: session,
		store:   store.New(cfg.ToastTTL),
	}
	v.Touch(time.Now())

	tasks := v.loaders(gateways, cfg.PollInterval, user.ID)

	// Опрос переживает запрос, который активировал экран.
	worker, err := background.New(context.WithoutCancel(ctx), v.log, tasks, background.WithTolerantInit())
	if err != nil {
		v.store.Close()
		return nil, fmt.Errorf("start poller: %w", err)
	}
	v.worker = worker

	v.log.Info("view activated")
	return v, nil
}

func (v *View) loaders(g Gateways, ttl time.Duration, userID int64) []background.Task {
	var tasks []background.Task

	for _, kind := range v.kind.DataKinds() {
		switch {
		case kind == entities.KindOrders && v.kind == entities.ViewAdmin:
			tasks = append(tasks, &loader[entities.Order]{
				kind: kind, ttl: ttl, store: v.store,
				fetch: g.Orders.ListAll,
				apply: v.store.SetOrders,
			})

		case kind == entities.KindOrders:
			tasks = append(tasks, &loader[entities.Order]{
				kind: kind, ttl: ttl, store: v.store,
				fetch: func(ctx context.Context) ([]entities.Order, error) {
					return g.Orders.ListByCustomer(ctx, userID)
				},
				apply: v.store.SetOrders,
			})

		case kind == entities.KindUsers:
			tasks = append(tasks, &loader[entities.User]{
				kind: kind, ttl: ttl, store: v.store,
				fetch: g.Users.ListAll,
				apply: v.store.SetUsers,
			})

		case kind == entities.KindDeliveries:
			tasks = append(tasks, &loader[entities.Delivery]{
				kind: kind, ttl: ttl, store: v.store,
				fetch: func(ctx context.Context) ([]entities.Delivery, error) {
					return g.Deliveries.ListByPerson(ctx, userID)
				},
				apply: v.store.SetDeliveries,
			})

		case kind == entities.KindNotifications && v.kind == entities.ViewAdmin:
			tasks = append(tasks, &loader[entities.Notification]{
				kind: kind, ttl: ttl, store: v.store,
				fetch: func(ctx context.Context) ([]entities.Notification, error) {
					return g.Notifications.ListAll(ctx, userID)
				},
				apply: v.store.SetNotifications,
			})

		case kind == entities.KindNotifications:
			tasks = append(tasks, &loader[entities.Notification]{
				kind: kind, ttl: ttl, store: v.store,
				fetch: func(ctx context.Context) ([]entities.Notification, error) {
					return g.Notifications.ListByUser(ctx, userID)
				},
				apply: v.store.SetNotifications,
			})
		}
	}

	return tasks
}

func (v *View) Kind() entities.ViewKind {
	return v.kind
}

func (v *View) Session() entities.Session {
	return v.session
}

func (v *View) Snapshot(q store.Query) store.Snapshot {
	v.Touch(time.Now())
	return v.store.Snapshot(q)
}

// Refresh ручное обновление всех данных экрана.
func (v *View) Refresh(ctx context.Context) error {
	v.Touch(time.Now())
	return v.worker.Trigger(ctx)
}

// RefreshKind обновляет один вид данных. Если экран его не показывает, ничего не делает.
func (v *View) RefreshKind(ctx context.Context, kind entities.DataKind) error {
	if !slices.Contains(v.kind.DataKinds(), kind) {
		return nil
	}
	return v.worker.Trigger(ctx, kind.String())
}

func (v *View) SetSortOrder(order entities.SortOrder) error {
	if !order.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSortOrder, order)
	}
	v.Touch(time.Now())
	v.store.SetSortOrder(order)
	return nil
}

func (v *View) ShowToast(severity entities.ToastSeverity, message string) entities.Toast {
	return v.store.ShowToast(severity, message)
}

func (v *View) FindOrder(orderID int64) (entities.Order, bool) {
	return v.store.FindOrder(orderID)
}

func (v *View) FindUser(userID int64) (entities.User, bool) {
	return v.store.FindUser(userID)
}

func (v *View) UnreadNotifications() []entities.Notification {
	return v.store.UnreadNotifications()
}

func (v *View) Subscribe() (<-chan struct{}, func()) {
	return v.store.Subscribe()
}

func (v *View) Touch(now time.Time) {
	v.lastUsed.Store(now.UnixNano())
}

func (v *View) IdleSince() time.Time {
	return time.Unix(0, v.lastUsed.Load())
}

// Close останавливает опрос и закрывает стор. Повторные вызовы ничего не делают.
func (v *View) Close() {
	v.closeOnce.Do(func() {
		v.worker.Stop()
		v.store.Close()
		v.log.Info("view closed")
	})
}

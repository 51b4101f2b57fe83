package views

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dashboard/internal/entities"
	"dashboard/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const (
	reasonReleased = "released"
	reasonIdle     = "idle"
	reasonReplaced = "replaced"
	reasonShutdown = "shutdown"
)

// FactoryFunc создаёт и активирует экран.
type FactoryFunc[V View] func(ctx context.Context, kind entities.ViewKind, session entities.Session) (V, error)

type key struct {
	userID int64
	kind   entities.ViewKind
}

type refreshTarget[V View] struct {
	view  V
	kinds []entities.DataKind
}

type entry[V View] struct {
	ready chan struct{}
	view  V
	err   error
}

// Manager хранит активные экраны: не больше одного на пользователя и вид экрана.
// Экран создаётся при первом обращении и живёт до Release, простоя или Close.
type Manager[V View] struct {
	log    handlerLogger
	create FactoryFunc[V]
	now    func() time.Time

	mu      sync.Mutex
	closed  bool
	entries map[key]*entry[V]
}

func NewManager[V View](
	log handlerLogger,
	create func(ctx context.Context, kind entities.ViewKind, session entities.Session) (V, error),
) *Manager[V] {
	return &Manager[V]{
		log:     log,
		create:  create,
		now:     time.Now,
		entries: make(map[key]*entry[V]),
	}
}

// Acquire возвращает активный экран пользователя или активирует новый.
// Одновременные вызовы для одного экрана создают его один раз.
// Если с момента активации у пользователя сменилась сессия, экран пересоздаётся.
func (m *Manager[V]) Acquire(ctx context.Context, kind entities.ViewKind, session entities.Session) (V, error) {
	var zero V
	if session.User == nil {
		return zero, ErrNoUser
	}
	k := key{userID: session.User.ID, kind: kind}

	for {
		m.mu.Lock()
		if m.closed {
			m.mu.Unlock()
			return zero, ErrClosed
		}

		e, ok := m.entries[k]
		if !ok {
			e = &entry[V]{ready: make(chan struct{})}
			m.entries[k] = e
			m.mu.Unlock()
			return m.activate(ctx, k, e, session)
		}
		m.mu.Unlock()

		select {
		case <-e.ready:
		case <-ctx.Done():
			return zero, ctx.Err()
		}
		if e.err != nil {
			return zero, e.err
		}

		if sameUser(e.view.Session(), session) {
			e.view.Touch(m.now())
			return e.view, nil
		}

		m.remove(k, e, reasonReplaced)
	}
}

func (m *Manager[V]) activate(ctx context.Context, k key, e *entry[V], session entities.Session) (V, error) {
	var zero V

	v, err := m.create(ctx, k.kind, session)

	m.mu.Lock()
	defer m.mu.Unlock()
	defer close(e.ready)

	if err != nil {
		e.err = fmt.Errorf("activate %s view: %w", k.kind, err)
		delete(m.entries, k)
		return zero, e.err
	}
	if m.closed {
		v.Close()
		e.err = ErrClosed
		delete(m.entries, k)
		return zero, ErrClosed
	}

	e.view = v
	ActiveViews.WithLabelValues(k.kind.String()).Inc()
	m.log.Info("view activated",
		logger.NewField("view", k.kind.String()),
		logger.NewField("user_id", k.userID),
	)
	return v, nil
}

// Release закрывает экран пользователя. Возвращает ErrUnknown, если экран не активен.
func (m *Manager[V]) Release(kind entities.ViewKind, userID int64) error {
	k := key{userID: userID, kind: kind}

	m.mu.Lock()
	e, ok := m.entries[k]
	m.mu.Unlock()
	if !ok {
		return ErrUnknown
	}

	<-e.ready
	if e.err != nil {
		return ErrUnknown
	}
	if !m.remove(k, e, reasonReleased) {
		return ErrUnknown
	}
	return nil
}

// CloseIdle закрывает экраны, к которым не обращались дольше ttl.
func (m *Manager[V]) CloseIdle(ttl time.Duration) int {
	deadline := m.now().Add(-ttl)

	m.mu.Lock()
	idle := make(map[key]*entry[V])
	for k, e := range m.entries {
		if !isReady(e) || e.err != nil {
			continue
		}
		if e.view.IdleSince().Before(deadline) {
			idle[k] = e
		}
	}
	m.mu.Unlock()

	closed := 0
	for k, e := range idle {
		if m.remove(k, e, reasonIdle) {
			closed++
		}
	}
	return closed
}

// RefreshForOrderEvent обновляет экраны, которые показывают заказ из события:
// все экраны администраторов, экран клиента-владельца и экран назначенного курьера.
func (m *Manager[V]) RefreshForOrderEvent(ctx context.Context, event entities.OrderStatusEvent) (int, error) {
	var targets []refreshTarget[V]

	m.mu.Lock()
	for k, e := range m.entries {
		if !isReady(e) || e.err != nil {
			continue
		}
		switch {
		case k.kind == entities.ViewAdmin:
			targets = append(targets, refreshTarget[V]{e.view, []entities.DataKind{entities.KindOrders, entities.KindNotifications}})
		case k.kind == entities.ViewCustomer && k.userID == event.CustomerID:
			targets = append(targets, refreshTarget[V]{e.view, []entities.DataKind{entities.KindOrders, entities.KindNotifications}})
		case k.kind == entities.ViewDelivery && event.DeliveryPersonID != 0 && k.userID == event.DeliveryPersonID:
			targets = append(targets, refreshTarget[V]{e.view, []entities.DataKind{entities.KindDeliveries, entities.KindNotifications}})
		}
	}
	m.mu.Unlock()

	var group errgroup.Group
	for _, t := range targets {
		group.Go(func() error {
			for _, kind := range t.kinds {
				if err := t.view.RefreshKind(ctx, kind); err != nil {
					return fmt.Errorf("refresh %s view %s: %w", t.view.Kind(), kind, err)
				}
			}
			return nil
		})
	}

	OrderEventRefreshesTotal.Add(float64(len(targets)))
	return len(targets), group.Wait()
}

// Len число активных экранов.
func (m *Manager[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, e := range m.entries {
		if isReady(e) && e.err == nil {
			n++
		}
	}
	return n
}

// Close закрывает все экраны. Новые экраны после этого не создаются.
func (m *Manager[V]) Close() {
	m.mu.Lock()
	m.closed = true
	entries := m.entries
	m.entries = make(map[key]*entry[V])
	m.mu.Unlock()

	for k, e := range entries {
		<-e.ready
		if e.err != nil {
			continue
		}
		m.closeView(k, e.view, reasonShutdown)
	}
}

// remove удаляет запись, если она всё ещё актуальна, и закрывает экран.
func (m *Manager[V]) remove(k key, e *entry[V], reason string) bool {
	m.mu.Lock()
	if m.entries[k] != e {
		m.mu.Unlock()
		return false
	}
	delete(m.entries, k)
	m.mu.Unlock()

	m.closeView(k, e.view, reason)
	return true
}

func (m *Manager[V]) closeView(k key, v V, reason string) {
	v.Close()
	ActiveViews.WithLabelValues(k.kind.String()).Dec()
	ViewsClosedTotal.WithLabelValues(k.kind.String(), reason).Inc()
	m.log.Info("view closed",
		logger.NewField("view", k.kind.String()),
		logger.NewField("user_id", k.userID),
		logger.NewField("reason", reason),
	)
}

func isReady[V View](e *entry[V]) bool {
	select {
	case <-e.ready:
		return true
	default:
		return false
	}
}

func sameUser(a, b entities.Session) bool {
	if a.User == nil || b.User == nil {
		return a.User == b.User
	}
	return *a.User == *b.User
}

package store

import (
	"slices"
	"sync"
	"time"

	"dashboard/internal/entities"
	"dashboard/internal/pkg/notification_sort"

	"github.com/google/uuid"
)

var allKinds = []entities.DataKind{
	entities.KindOrders,
	entities.KindUsers,
	entities.KindDeliveries,
	entities.KindNotifications,
}

type kindState struct {
	issued      uint64
	applied     uint64
	inFlight    int
	unavailable bool
	lastErr     error
	updatedAt   time.Time
}

// Store состояние одного экрана. Данные меняются только через
// последовательность Begin -> Set*/Fail. Ответ применяется, только если его
// номер больше номера уже показанных данных, поэтому запоздавший ответ
// старого опроса не перетирает свежий.
type Store struct {
	mu sync.RWMutex

	now      func() time.Time
	toastTTL time.Duration
	closed   bool

	orders        []entities.Order
	users         []entities.User
	deliveries    []entities.Delivery
	notifications []entities.Notification
	sortOrder     entities.SortOrder
	toast         *entities.Toast

	kinds map[entities.DataKind]*kindState

	subscribers map[int]chan struct{}
	nextSubID   int
}

func New(toastTTL time.Duration) *Store {
	kinds := make(map[entities.DataKind]*kindState, len(allKinds))
	for _, kind := range allKinds {
		kinds[kind] = &kindState{}
	}

	return &Store{
		now:         time.Now,
		toastTTL:    toastTTL,
		sortOrder:   entities.SortLatest,
		kinds:       kinds,
		subscribers: make(map[int]chan struct{}),
	}
}

// Begin выдаёт номер очередного запроса данных и отмечает его как выполняющийся.
func (s *Store) Begin(kind entities.DataKind) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.kinds[kind]
	st.issued++
	st.inFlight++

	s.notifyLocked()
	return st.issued
}

func (s *Store) SetOrders(seq uint64, orders []entities.Order) bool {
	return s.apply(entities.KindOrders, seq, func() { s.orders = slices.Clone(orders) })
}

func (s *Store) SetUsers(seq uint64, users []entities.User) bool {
	return s.apply(entities.KindUsers, seq, func() { s.users = slices.Clone(users) })
}

func (s *Store) SetDeliveries(seq uint64, deliveries []entities.Delivery) bool {
	return s.apply(entities.KindDeliveries, seq, func() { s.deliveries = slices.Clone(deliveries) })
}

func (s *Store) SetNotifications(seq uint64, notifications []entities.Notification) bool {
	return s.apply(entities.KindNotifications, seq, func() { s.notifications = slices.Clone(notifications) })
}

// Fail фиксирует, что запрос seq не удался. Последние успешные данные
// остаются на месте, вид данных помечается недоступным.
func (s *Store) Fail(kind entities.DataKind, seq uint64, err error) bool {
	return s.apply(kind, seq, func() {
		st := s.kinds[kind]
		st.unavailable = true
		st.lastErr = err
	})
}

// Abandon снимает отметку о выполнении запроса seq, не трогая данные.
// Для запросов, отменённых вызывающей стороной.
func (s *Store) Abandon(kind entities.DataKind, seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.kinds[kind]
	if s.closed || seq > st.issued || st.inFlight == 0 {
		return
	}
	st.inFlight--
	s.notifyLocked()
}

func (s *Store) apply(kind entities.DataKind, seq uint64, set func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	st := s.kinds[kind]
	if st.inFlight > 0 {
		st.inFlight--
	}

	if seq <= st.applied || seq > st.issued {
		s.notifyLocked()
		return false
	}

	st.applied = seq
	st.unavailable = false
	st.lastErr = nil
	set()
	if !st.unavailable {
		st.updatedAt = s.now()
	}

	s.notifyLocked()
	return true
}

func (s *Store) SetSortOrder(order entities.SortOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.sortOrder = order
	s.notifyLocked()
}

// ShowToast показывает сообщение, заменяя предыдущее.
func (s *Store) ShowToast(severity entities.ToastSeverity, message string) entities.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	toast := entities.Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: now,
		ExpiresAt: now.Add(s.toastTTL),
	}

	if !s.closed {
		s.toast = &toast
		s.notifyLocked()
	}
	return toast
}

func (s *Store) FindOrder(orderID int64) (entities.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := slices.IndexFunc(s.orders, func(o entities.Order) bool { return o.ID == orderID })
	if idx < 0 {
		return entities.Order{}, false
	}
	return s.orders[idx], true
}

func (s *Store) FindUser(userID int64) (entities.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := slices.IndexFunc(s.users, func(u entities.User) bool { return u.ID == userID })
	if idx < 0 {
		return entities.User{}, false
	}
	return s.users[idx], true
}

func (s *Store) UnreadNotifications() []entities.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	unread := make([]entities.Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsRead {
			unread = append(unread, n)
		}
	}
	return unread
}

// Snapshot согласованный срез состояния для отрисовки.
func (s *Store) Snapshot(q Query) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Orders:            slices.Clone(s.orders),
		Users:             slices.Clone(s.users),
		Deliveries:        slices.Clone(s.deliveries),
		Notifications:     notification_sort.Sort(s.notifications, s.sortOrder),
		SortOrder:         s.sortOrder,
		OrderStats:        orderStats(s.orders),
		DeliveryStats:     deliveryStats(s.deliveries),
		NotificationStats: notificationStats(s.notifications),
		UpdatedAt:         make(map[entities.DataKind]time.Time),
		Unavailable:       []entities.DataKind{},
	}

	for _, kind := range allKinds {
		st := s.kinds[kind]
		if st.inFlight > 0 {
			snap.Loading = true
		}
		if st.unavailable {
			snap.Unavailable = append(snap.Unavailable, kind)
		}
		if !st.updatedAt.IsZero() {
			snap.UpdatedAt[kind] = st.updatedAt
		}
	}

	if q.OrderStatus != nil {
		snap.Orders = FilterOrdersByStatus(snap.Orders, *q.OrderStatus)
	}
	if q.NotificationsLimit > 0 && len(snap.Notifications) > q.NotificationsLimit {
		snap.Notifications = snap.Notifications[:q.NotificationsLimit]
	}

	if s.toast != nil && s.now().Before(s.toast.ExpiresAt) {
		toast := *s.toast
		snap.Toast = &toast
	}

	return snap
}

// Subscribe канал получает сигнал после каждого изменения состояния.
// Сигналы не копятся: несколько изменений подряд дают один сигнал.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan struct{}, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if sub, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(sub)
		}
	}
}

// Close после закрытия стор не принимает данные, подписки закрываются.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}
}

func (s *Store) notifyLocked() {
	for _, ch := range s.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

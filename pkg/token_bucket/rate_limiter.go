package token_bucket

import (
	"sync"
	"time"
)

// TokenBucket ведро на capacity токенов, пополняется со скоростью refillRate токенов в секунду.
// Каждый Allow забирает один токен; пустое ведро отклоняет запрос.
type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        func() time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return newTokenBucket(capacity, refillRate, time.Now)
}

func newTokenBucket(capacity int, refillRate float64, now func() time.Time) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens = min(t.capacity, t.tokens+elapsed*t.refillRate)
	t.lastRefill = now
}

// Keyed отдельное ведро на каждый ключ (сессию, адрес клиента).
// Вёдра, к которым не обращались дольше idleTTL, удаляются.
type Keyed struct {
	capacity   int
	refillRate float64
	idleTTL    time.Duration
	now        func() time.Time

	mu        sync.Mutex
	buckets   map[string]*keyedBucket
	lastSweep time.Time
}

type keyedBucket struct {
	bucket   *TokenBucket
	lastSeen time.Time
}

func NewKeyed(capacity int, refillRate float64, idleTTL time.Duration) *Keyed {
	return NewKeyedWithClock(capacity, refillRate, idleTTL, time.Now)
}

func NewKeyedWithClock(capacity int, refillRate float64, idleTTL time.Duration, now func() time.Time) *Keyed {
	return &Keyed{
		capacity:   capacity,
		refillRate: refillRate,
		idleTTL:    idleTTL,
		now:        now,
		buckets:    make(map[string]*keyedBucket),
		lastSweep:  now(),
	}
}

func (k *Keyed) Allow(key string) bool {
	k.mu.Lock()
	now := k.now()
	k.sweepLocked(now)

	b, ok := k.buckets[key]
	if !ok {
		b = &keyedBucket{bucket: newTokenBucket(k.capacity, k.refillRate, k.now)}
		k.buckets[key] = b
	}
	b.lastSeen = now
	k.mu.Unlock()

	return b.bucket.Allow()
}

// Len число отслеживаемых ключей.
func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	return len(k.buckets)
}

func (k *Keyed) sweepLocked(now time.Time) {
	if k.idleTTL <= 0 || now.Sub(k.lastSweep) < k.idleTTL {
		return
	}
	for key, b := range k.buckets {
		if now.Sub(b.lastSeen) >= k.idleTTL {
			delete(k.buckets, key)
		}
	}
	k.lastSweep = now
}

package view

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dashboard/internal/entities"
	"dashboard/internal/store"
)

// loader фоновая задача опроса одного вида данных.
type loader[T any] struct {
	kind  entities.DataKind
	ttl   time.Duration
	store *store.Store
	fetch func(ctx context.Context) ([]T, error)
	apply func(seq uint64, items []T) bool
}

func (l *loader[T]) TTL() time.Duration {
	return l.ttl
}

func (l *loader[T]) Info() string {
	return l.kind.String()
}

func (l *loader[T]) Do(ctx context.Context) error {
	seq := l.store.Begin(l.kind)

	items, err := l.fetch(ctx)
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			l.store.Abandon(l.kind, seq)
			return fmt.Errorf("load %s: %w", l.kind, err)
		}
		l.store.Fail(l.kind, seq, err)
		return fmt.Errorf("load %s: %w", l.kind, err)
	}

	l.apply(seq, items)
	return nil
}

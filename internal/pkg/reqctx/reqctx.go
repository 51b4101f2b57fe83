package reqctx

import (
	"context"

	"dashboard/internal/entities"
)

type (
	sessionKey struct{}
	viewKey    struct{}
)

func WithSession(ctx context.Context, session entities.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// Session сессия, которую положил session middleware.
func Session(ctx context.Context) (entities.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(entities.Session)
	return session, ok
}

func WithView(ctx context.Context, view any) context.Context {
	return context.WithValue(ctx, viewKey{}, view)
}

// View активный экран запроса, приведённый к нужному обработчику интерфейсу.
func View[T any](ctx context.Context) (T, bool) {
	view, ok := ctx.Value(viewKey{}).(T)
	return view, ok
}

package session

import (
	"net/http"
	"strconv"
	"strings"

	"dashboard/internal/entities"
	"dashboard/internal/pkg/reqctx"
)

// Заголовки, которые выставляет прокси аутентификации.
const (
	HeaderUserID  = "X-User-Id"
	HeaderName    = "X-User-Name"
	HeaderRole    = "X-User-Role"
	HeaderPending = "X-Session-Pending"
)

// Middleware собирает entities.Session из заголовков и кладёт её в контекст.
// Без корректного X-User-Id сессия считается неаутентифицированной.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(reqctx.WithSession(r.Context(), FromHeaders(r.Header))))
		})
	}
}

func FromHeaders(h http.Header) entities.Session {
	session := entities.Session{
		Pending: strings.EqualFold(h.Get(HeaderPending), "true"),
	}

	id, err := strconv.ParseInt(strings.TrimSpace(h.Get(HeaderUserID)), 10, 64)
	if err != nil || id <= 0 {
		return session
	}

	session.User = &entities.SessionUser{
		ID:   id,
		Name: h.Get(HeaderName),
		Role: entities.Role(strings.TrimSpace(h.Get(HeaderRole))),
	}
	return session
}

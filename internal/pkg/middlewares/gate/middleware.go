package gate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"dashboard/internal/entities"
	"dashboard/internal/pkg/reqctx"
	"dashboard/internal/service/access"
	"dashboard/internal/service/views"
	"dashboard/pkg/logger"

	"github.com/gorilla/mux"
)

// ViewVar имя переменной маршрута с видом экрана.
const ViewVar = "view"

type decisionResponse struct {
	State    string `json:"state"`
	Redirect string `json:"redirect,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Check пускает запрос к экрану только авторизованной роли.
// Пока роль проверяется, отвечает 202; без пользователя 401; чужой роли 403.
func Check(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			kind := entities.ViewKind(mux.Vars(r)[ViewVar])
			if !kind.IsValid() {
				writeJSON(w, log, http.StatusNotFound, errorResponse{Error: "unknown view"})
				return
			}

			var session *entities.Session
			if s, ok := reqctx.Session(r.Context()); ok {
				session = &s
			}

			decision := access.Resolve(session, kind.AllowedRoles())
			switch decision.State {
			case access.Authorized:
				next.ServeHTTP(w, r)
				return
			case access.Loading:
				writeJSON(w, log, http.StatusAccepted, decisionResponse{State: string(decision.State)})
			case access.Unauthenticated:
				writeJSON(w, log, http.StatusUnauthorized, decisionResponse{
					State:    string(decision.State),
					Redirect: decision.Redirect(),
				})
			default:
				log.With(
					logger.NewField("view", kind.String()),
					logger.NewField("role", decision.Role.String()),
				).Warn("view access denied")
				writeJSON(w, log, http.StatusForbidden, decisionResponse{
					State:    string(decision.State),
					Redirect: decision.Redirect(),
				})
			}
		})
	}
}

// Acquire активирует экран пользователя (или берёт уже активный) и кладёт его в контекст.
// Ставится после Check.
func Acquire[V any](
	log handlerLogger,
	acquire func(ctx context.Context, kind entities.ViewKind, session entities.Session) (V, error),
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			kind := entities.ViewKind(mux.Vars(r)[ViewVar])
			session, _ := reqctx.Session(r.Context())

			v, err := acquire(r.Context(), kind, session)
			if err != nil {
				status := http.StatusBadGateway
				if errors.Is(err, views.ErrClosed) {
					status = http.StatusServiceUnavailable
				}
				log.With(
					logger.NewField("view", kind.String()),
					logger.NewField("error", err),
				).Error("activate view")
				writeJSON(w, log, status, errorResponse{Error: "view is unavailable"})
				return
			}

			next.ServeHTTP(w, r.WithContext(reqctx.WithView(r.Context(), v)))
		})
	}
}

func writeJSON(w http.ResponseWriter, log handlerLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.With(logger.NewField("error", err)).Error("encode JSON response")
	}
}

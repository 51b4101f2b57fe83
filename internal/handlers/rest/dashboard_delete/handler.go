package dashboard_delete

import (
	"errors"
	"net/http"

	"dashboard/internal/entities"
	"dashboard/internal/handlers/rest/respond"
	"dashboard/internal/pkg/middlewares/gate"
	"dashboard/internal/pkg/reqctx"
	"dashboard/internal/service/views"
	"dashboard/pkg/logger"

	"github.com/gorilla/mux"
)

// Handler закрывает экран пользователя: опрос останавливается, данные сбрасываются.
type Handler struct {
	log      handlerLogger
	releaser Releaser
}

func New(log handlerLogger, releaser Releaser) *Handler {
	return &Handler{
		log:      log.With(logger.NewField("handler", "dashboard_delete")),
		releaser: releaser,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	session, ok := reqctx.Session(r.Context())
	if !ok || session.User == nil {
		respond.Error(w, h.log, http.StatusUnauthorized, "unauthenticated")
		return
	}

	kind := entities.ViewKind(mux.Vars(r)[gate.ViewVar])

	err := h.releaser.Release(kind, session.User.ID)
	switch {
	case err == nil:
		h.log.Info("view released",
			logger.NewField("view", kind.String()),
			logger.NewField("user_id", session.User.ID),
		)
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, views.ErrUnknown):
		respond.Error(w, h.log, http.StatusNotFound, "view is not active")
	default:
		h.log.Error("release view", logger.NewField("error", err))
		respond.Error(w, h.log, http.StatusInternalServerError, "internal error")
	}
}

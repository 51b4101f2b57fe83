package dashboard_refresh_post

import (
	"errors"
	"net/http"

	"dashboard/internal/handlers/rest/dto"
	"dashboard/internal/handlers/rest/respond"
	"dashboard/internal/pkg/reqctx"
	"dashboard/internal/store"
	"dashboard/pkg/background"
	"dashboard/pkg/logger"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(logger.NewField("handler", "dashboard_refresh_post")),
	}
}

// ServeHTTP перечитывает все данные экрана и отдаёт свежий снимок.
// Неудачные чтения уже отмечены в снимке как недоступные, поэтому ответ остаётся 200.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	view, ok := reqctx.View[View](r.Context())
	if !ok {
		respond.Error(w, h.log, http.StatusInternalServerError, "view is not active")
		return
	}

	if err := view.Refresh(r.Context()); err != nil {
		if errors.Is(err, background.ErrStopped) {
			respond.Error(w, h.log, http.StatusServiceUnavailable, "view is closed")
			return
		}
		h.log.Warn("manual refresh incomplete",
			logger.NewField("view", view.Kind().String()),
			logger.NewField("error", err),
		)
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromSnapshot(view.Kind(), view.Session(), view.Snapshot(store.Query{})))
}

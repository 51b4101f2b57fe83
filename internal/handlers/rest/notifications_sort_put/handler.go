package notifications_sort_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"dashboard/internal/entities"
	"dashboard/internal/handlers/rest/dto"
	"dashboard/internal/handlers/rest/respond"
	"dashboard/internal/pkg/reqctx"
	"dashboard/internal/service/view"
	"dashboard/internal/store"
	"dashboard/pkg/logger"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(logger.NewField("handler", "notifications_sort_put")),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v, ok := reqctx.View[View](r.Context())
	if !ok {
		respond.Error(w, h.log, http.StatusInternalServerError, "view is not active")
		return
	}

	var req dto.SortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := v.SetSortOrder(entities.SortOrder(req.Order)); err != nil {
		if errors.Is(err, view.ErrInvalidSortOrder) {
			respond.Error(w, h.log, http.StatusUnprocessableEntity, "order: must be latest or oldest")
			return
		}
		h.log.Error("set sort order", logger.NewField("error", err))
		respond.Error(w, h.log, http.StatusInternalServerError, "internal error")
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromSnapshot(v.Kind(), v.Session(), v.Snapshot(store.Query{})))
}

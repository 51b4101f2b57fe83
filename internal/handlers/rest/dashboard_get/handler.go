package dashboard_get

import (
	"net/http"
	"strconv"

	"dashboard/internal/entities"
	"dashboard/internal/handlers/rest/dto"
	"dashboard/internal/handlers/rest/respond"
	"dashboard/internal/pkg/reqctx"
	"dashboard/internal/store"
	"dashboard/pkg/logger"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(logger.NewField("handler", "dashboard_get")),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	view, ok := reqctx.View[View](r.Context())
	if !ok {
		respond.Error(w, h.log, http.StatusInternalServerError, "view is not active")
		return
	}

	query, err := parseQuery(r)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromSnapshot(view.Kind(), view.Session(), view.Snapshot(query)))
}

func parseQuery(r *http.Request) (store.Query, error) {
	var q store.Query
	values := r.URL.Query()

	if values.Has("status") {
		// пустой статус допустим и даёт пустой список заказов
		status := entities.OrderStatus(values.Get("status"))
		if status != "" && !status.IsValid() {
			return store.Query{}, ErrInvalidStatus
		}
		q.OrderStatus = &status
	}

	if values.Has("notifications_limit") {
		limit, err := strconv.Atoi(values.Get("notifications_limit"))
		if err != nil || limit < 0 {
			return store.Query{}, ErrInvalidLimit
		}
		q.NotificationsLimit = limit
	}

	return q, nil
}

package notification_read_put

import (
	"net/http"
	"strconv"

	"dashboard/internal/handlers/rest/respond"
	"dashboard/internal/pkg/reqctx"
	"dashboard/internal/service/dispatcher"
	"dashboard/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log        handlerLogger
	dispatcher Dispatcher
}

func New(log handlerLogger, d Dispatcher) *Handler {
	return &Handler{
		log:        log.With(logger.NewField("handler", "notification_read_put")),
		dispatcher: d,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	view, ok := reqctx.View[dispatcher.View](r.Context())
	if !ok {
		respond.Error(w, h.log, http.StatusInternalServerError, "view is not active")
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		respond.Error(w, h.log, http.StatusBadRequest, "invalid id")
		return
	}

	action := dispatcher.MarkNotificationRead{NotificationID: id}
	toast, err := h.dispatcher.Dispatch(r.Context(), view, action)
	respond.Outcome(w, h.log, toast, err)
}

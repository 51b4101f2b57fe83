package delivery_status_put

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dashboard/internal/entities"
	"dashboard/internal/handlers/rest/dto"
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
		log:        log.With(logger.NewField("handler", "delivery_status_put")),
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

	var req dto.StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	action := dispatcher.UpdateDeliveryStatus{DeliveryID: id, Status: entities.DeliveryStatus(req.Status)}
	toast, err := h.dispatcher.Dispatch(r.Context(), view, action)
	respond.Outcome(w, h.log, toast, err)
}

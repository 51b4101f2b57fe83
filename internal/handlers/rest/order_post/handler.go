package order_post

import (
	"encoding/json"
	"net/http"
	"strings"

	"dashboard/internal/gateway/rest/payload"
	"dashboard/internal/handlers/rest/dto"
	"dashboard/internal/handlers/rest/respond"
	"dashboard/internal/pkg/reqctx"
	"dashboard/internal/service/dispatcher"
	"dashboard/pkg/logger"
)

type Handler struct {
	log        handlerLogger
	dispatcher Dispatcher
}

func New(log handlerLogger, d Dispatcher) *Handler {
	return &Handler{
		log:        log.With(logger.NewField("handler", "order_post")),
		dispatcher: d,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	view, ok := reqctx.View[dispatcher.View](r.Context())
	if !ok {
		respond.Error(w, h.log, http.StatusInternalServerError, "view is not active")
		return
	}

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	action := dispatcher.CreateOrder{
		PickupAddress:   req.PickupAddress,
		DeliveryAddress: req.DeliveryAddress,
		ItemDescription: req.ItemDescription,
		Weight:          req.Weight,
	}

	// Время доставки необязательно, но если передано, должно разбираться.
	if raw := strings.TrimSpace(req.PreferredDeliveryTime); raw != "" {
		preferred := payload.Parse(raw)
		if preferred.IsZero() {
			respond.Error(w, h.log, http.StatusUnprocessableEntity, "preferredDeliveryTime: invalid time")
			return
		}
		action.PreferredDeliveryTime = &preferred
	}

	toast, err := h.dispatcher.Dispatch(r.Context(), view, action)
	respond.Outcome(w, h.log, toast, err)
}

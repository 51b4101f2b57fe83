package healthcheck_head

import (
	"net/http"
	"strconv"
	"sync/atomic"
)

// ActiveViewsHeader число активных экранов, для балансировщика и отладки.
const ActiveViewsHeader = "X-Active-Views"

type Views interface {
	Len() int
}

type Handler struct {
	isShuttingDown *atomic.Bool
	views          Views
}

// New views может быть nil, тогда заголовок не выставляется.
func New(isShuttingDown *atomic.Bool, views Views) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		views:          views,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.views != nil {
		w.Header().Set(ActiveViewsHeader, strconv.Itoa(h.views.Len()))
	}

	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

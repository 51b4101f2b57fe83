package views

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActiveViews = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dashboard_active_views",
			Help: "Number of dashboard views currently polling the backend",
		},
		[]string{"view"},
	)

	ViewsClosedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_views_closed_total",
			Help: "Total number of dashboard views torn down",
		},
		[]string{"view", "reason"},
	)

	OrderEventRefreshesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashboard_order_event_refreshes_total",
			Help: "Total number of view refreshes caused by order status events",
		},
	)
)

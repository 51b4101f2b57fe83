package dispatcher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var DispatchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "dashboard_actions_total",
		Help: "Total number of dashboard actions by outcome",
	},
	[]string{"action", "outcome"},
)

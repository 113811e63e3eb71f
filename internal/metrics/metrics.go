package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ResourceOps counts dispatched resource operations by kind and verb.
var ResourceOps = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "board_resource_requests_total",
		Help: "Resource operations dispatched through the registry.",
	},
	[]string{"resource", "operation"},
)

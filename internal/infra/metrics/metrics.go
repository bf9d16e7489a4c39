package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RequestsTotal считает запросы к API по маршруту и результату.
var RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "studioops_http_requests_total",
	Help: "API requests by method, route and status code.",
}, []string{"method", "route", "status"})

package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics covers the two failure windows this core cannot repair on its own:
// a failed compensating detach leaves a unit attached but unlocked, and a
// partial bulk unit creation leaves a closed procurement short of units.
// Both need an operator, so both are counted.
type Metrics struct {
	CompensationFailures prometheus.Counter
	CompensationRuns     prometheus.Counter
	PartialUnitCreates   prometheus.Counter
	AlertEmailFailures   prometheus.Counter
	HTTPRequests         *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		CompensationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "retail_core_attach_compensation_failures_total",
			Help: "Compensating cart detaches that failed, leaving a unit attached but unlocked.",
		}),
		CompensationRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "retail_core_attach_compensations_total",
			Help: "Compensating cart detaches performed after a failed unit lock.",
		}),
		PartialUnitCreates: promauto.NewCounter(prometheus.CounterOpts{
			Name: "retail_core_procurement_partial_unit_creates_total",
			Help: "Procurement closes where fewer units were created than submitted.",
		}),
		AlertEmailFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "retail_core_alert_email_failures_total",
			Help: "Operational alert emails that could not be sent.",
		}),
		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "retail_core_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
	}
}

// NewTestMetrics registers against a private registry so parallel tests do
// not collide on the default one.
func NewTestMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		CompensationFailures: factory.NewCounter(prometheus.CounterOpts{Name: "test_attach_compensation_failures_total"}),
		CompensationRuns:     factory.NewCounter(prometheus.CounterOpts{Name: "test_attach_compensations_total"}),
		PartialUnitCreates:   factory.NewCounter(prometheus.CounterOpts{Name: "test_procurement_partial_unit_creates_total"}),
		AlertEmailFailures:   factory.NewCounter(prometheus.CounterOpts{Name: "test_alert_email_failures_total"}),
		HTTPRequests:         factory.NewCounterVec(prometheus.CounterOpts{Name: "test_http_requests_total"}, []string{"method", "route", "status"}),
	}
}

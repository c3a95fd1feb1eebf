// Prometheus metrics of Callboard, exposed on GET /metrics.

package metrics

import (
	"Callboard/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes recorded for every façade call.
const (
	OutcomeRemote   = "remote"
	OutcomeFallback = "fallback"
	OutcomeDemo     = "demo"
	OutcomeFailed   = "failed"
	OutcomeInvalid  = "invalid"
	// A required identifier is not configured.
	OutcomeUnconfigured = "unconfigured"
)

// Collector holds every Callboard metric on its own registry, so each instance
// (one per process, one per test) registers cleanly.
type Collector struct {
	registry *prometheus.Registry

	viewersConnected  prometheus.Gauge
	eventsPublished   *prometheus.CounterVec
	deliveriesDropped prometheus.Counter
	upstreamCalls     *prometheus.CounterVec
}

// NewCollector builds a Collector with the Go and process collectors attached.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		viewersConnected: factory.NewGauge(prometheus.GaugeOpts{
			Name: "callboard_viewers_connected",
			Help: "Number of dashboard viewers currently connected",
		}),
		eventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "callboard_events_published_total",
			Help: "Events handed to the broadcaster, by event type",
		}, []string{"type"}),
		deliveriesDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "callboard_deliveries_dropped_total",
			Help: "Event deliveries skipped because a viewer's send buffer was full",
		}),
		upstreamCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "callboard_upstream_calls_total",
			Help: "Façade calls by operation and outcome",
		}, []string{"operation", "outcome"}),
	}
}

// ViewerConnected increments the connected viewers gauge.
func (c *Collector) ViewerConnected() {
	if c != nil {
		c.viewersConnected.Inc()
	}
}

// ViewerDisconnected decrements the connected viewers gauge.
func (c *Collector) ViewerDisconnected() {
	if c != nil {
		c.viewersConnected.Dec()
	}
}

// EventPublished counts one published event.
func (c *Collector) EventPublished(eventType string) {
	if c != nil {
		c.eventsPublished.WithLabelValues(eventType).Inc()
	}
}

// DeliveriesDropped counts n skipped deliveries.
func (c *Collector) DeliveriesDropped(n int) {
	if c != nil && n > 0 {
		c.deliveriesDropped.Add(float64(n))
	}
}

// UpstreamCall records the outcome of one façade operation.
func (c *Collector) UpstreamCall(operation, outcome string) {
	if c != nil {
		c.upstreamCalls.WithLabelValues(operation, outcome).Inc()
	}
}

// UpstreamFailure records a failed façade operation, the outcome label follows the kind of err.
func (c *Collector) UpstreamFailure(operation string, err error) {
	c.UpstreamCall(operation, failureOutcome(err))
}

func failureOutcome(err error) string {
	switch errors.KindOf(err) {
	case errors.KindValidation:
		return OutcomeInvalid
	case errors.KindMissingConfig:
		return OutcomeUnconfigured
	default:
		return OutcomeFailed
	}
}

// Registry exposes the underlying registry, mostly for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// APIHandlers registers GET /metrics onto the gin server.
func APIHandlers(router *gin.Engine, collector *Collector) {
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(collector.registry, promhttp.HandlerOpts{})))
}

// Package monitoring exposes simulation metrics through a run-scoped
// prometheus registry.
package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"brigade/internal/models"
)

// Collector handles metrics collection and reporting for one simulation
// run. It carries its own registry rather than the process-wide default, so
// repeated runs in one process never collide.
type Collector struct {
	registry *prometheus.Registry

	ordersCompleted *prometheus.CounterVec
	ordersRejected  prometheus.Counter
	revenueCents    *prometheus.CounterVec
	cookTime        prometheus.Histogram
	pendingTime     prometheus.Histogram
	clockAdvances   prometheus.Counter
}

// NewCollector creates a collector and registers its metrics
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		ordersCompleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_completed_total",
				Help: "Orders that finished cooking",
			},
			[]string{"service"},
		),
		ordersRejected: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "orders_rejected_total",
				Help: "Orders rejected before simulation",
			},
		),
		revenueCents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revenue_cents_total",
				Help: "Revenue from completed orders in cents",
			},
			[]string{"service"},
		),
		cookTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "order_cook_time_seconds",
				Help:    "Total cook time of completed orders",
				Buckets: prometheus.LinearBuckets(0, 300, 20), // 5-minute buckets
			},
		),
		pendingTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "order_pending_time_seconds",
				Help:    "Time orders waited before the kitchen started them",
				Buckets: prometheus.LinearBuckets(0, 60, 30),
			},
		),
		clockAdvances: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "sim_clock_advances_total",
				Help: "Whole-minute advances of the simulated clock",
			},
		),
	}
	c.registry.MustRegister(
		c.ordersCompleted,
		c.ordersRejected,
		c.revenueCents,
		c.cookTime,
		c.pendingTime,
		c.clockAdvances,
	)
	return c
}

// Handler returns an HTTP handler serving this collector's registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordOrderCompletion records metrics for a completed order
func (c *Collector) RecordOrderCompletion(order *models.Order) {
	if c == nil {
		return
	}
	c.ordersCompleted.WithLabelValues(order.Service).Inc()
	c.revenueCents.WithLabelValues(order.Service).Add(float64(order.TotalPriceCents))
	c.cookTime.Observe(order.CookDuration().Seconds())
	c.pendingTime.Observe(order.PendingDuration().Seconds())
}

// RecordOrderRejection records a rejected order
func (c *Collector) RecordOrderRejection() {
	if c == nil {
		return
	}
	c.ordersRejected.Inc()
}

// RecordClockAdvance records the simulated clock moving forward
func (c *Collector) RecordClockAdvance(step time.Duration) {
	if c == nil {
		return
	}
	c.clockAdvances.Add(step.Minutes())
}

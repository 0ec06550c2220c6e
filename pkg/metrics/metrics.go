package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all application metrics
type Metrics struct {
	// Queue metrics
	QueueDepth      prometheus.Gauge
	CasesEnqueued   *prometheus.CounterVec
	CasesResponded  *prometheus.CounterVec
	CasesCompleted  prometheus.Counter
	ResponseLatency prometheus.Histogram

	// Inventory metrics
	LowStockItems     prometheus.Gauge
	ReordersGenerated prometheus.Counter

	// Stub-feature metrics
	NotImplementedHits *prometheus.CounterVec
}

// NewMetrics creates all application metrics and registers them on reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		QueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_depth",
			Help:      "Current number of cases in the live queue",
		}),
		CasesEnqueued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cases_enqueued_total",
			Help:      "Total cases added to the queue",
		}, []string{"priority"}),
		CasesResponded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cases_responded_total",
			Help:      "Total operator stock decisions",
		}, []string{"status"}),
		CasesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cases_completed_total",
			Help:      "Total cases removed from the queue as completed",
		}),
		ResponseLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "case_response_duration_seconds",
			Help:      "Time from case intake to first operator decision",
			Buckets:   []float64{30, 60, 300, 600, 1200, 1800, 2700},
		}),
		LowStockItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "inventory_low_stock_items",
			Help:      "Current number of medications at or below reorder point",
		}),
		ReordersGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inventory_reorders_generated_total",
			Help:      "Total reorder suggestions generated",
		}),
		NotImplementedHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "not_implemented_hits_total",
			Help:      "Requests that reached a placeholder feature",
		}, []string{"feature"}),
	}

	reg.MustRegister(
		m.QueueDepth,
		m.CasesEnqueued,
		m.CasesResponded,
		m.CasesCompleted,
		m.ResponseLatency,
		m.LowStockItems,
		m.ReordersGenerated,
		m.NotImplementedHits,
	)

	return m
}

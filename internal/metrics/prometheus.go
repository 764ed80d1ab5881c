package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/ndspace/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered on first use, so constructing a
// PrometheusCollector that is never exercised leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	sliceExtent      *prometheus.GaugeVec
	iterations       *prometheus.CounterVec
	regionDuration   *prometheus.HistogramVec
	regionErrors     *prometheus.CounterVec
	plansPublished   *prometheus.CounterVec
	planWorkers      *prometheus.GaugeVec
	kvOperationDelay *prometheus.HistogramVec
}

var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (prometheus.DefaultRegisterer if nil)
//   - namespace: Metric namespace ("ndspace" if empty)
//
// Returns:
//   - *PrometheusCollector: Collector that registers its metrics lazily
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "ndspace"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.sliceExtent = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "region",
			Name:      "slice_extent",
			Help:      "Extent of the split dimension assigned to each worker.",
		}, []string{"worker"})

		p.iterations = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "region",
			Name:      "iterations_total",
			Help:      "Total indices visited by each worker.",
		}, []string{"worker"})

		p.regionDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "region",
			Name:      "duration_seconds",
			Help:      "Wall time of parallel regions in seconds by worker count.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms .. ~262s
		}, []string{"workers"})

		p.regionErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "region",
			Name:      "errors_total",
			Help:      "Total worker failures inside parallel regions.",
		}, []string{"worker"})

		p.plansPublished = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "plan",
			Name:      "published_total",
			Help:      "Total plans written to the plan store by name.",
		}, []string{"plan"})

		p.planWorkers = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "plan",
			Name:      "workers",
			Help:      "Worker count of the most recently published plan by name.",
		}, []string{"plan"})

		p.kvOperationDelay = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "plan",
			Name:      "kv_operation_seconds",
			Help:      "Latency of plan store KV operations in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"op"})

		p.reg.MustRegister(
			p.sliceExtent,
			p.iterations,
			p.regionDuration,
			p.regionErrors,
			p.plansPublished,
			p.planWorkers,
			p.kvOperationDelay,
		)
	})
}

// RecordSlice sets the slice extent gauge for a worker.
func (p *PrometheusCollector) RecordSlice(workerID int, extent int) {
	p.ensureRegistered()
	p.sliceExtent.WithLabelValues(strconv.Itoa(workerID)).Set(float64(extent))
}

// RecordIterations adds count to the worker's iteration counter.
func (p *PrometheusCollector) RecordIterations(workerID int, count int64) {
	if count <= 0 {
		return
	}
	p.ensureRegistered()
	p.iterations.WithLabelValues(strconv.Itoa(workerID)).Add(float64(count))
}

// RecordRegionDuration observes the wall time of one region.
func (p *PrometheusCollector) RecordRegionDuration(duration float64, workers int) {
	p.ensureRegistered()
	p.regionDuration.WithLabelValues(strconv.Itoa(workers)).Observe(duration)
}

// RecordRegionError increments the worker's failure counter.
func (p *PrometheusCollector) RecordRegionError(workerID int) {
	p.ensureRegistered()
	p.regionErrors.WithLabelValues(strconv.Itoa(workerID)).Inc()
}

// RecordPlanPublished counts a published plan and tracks its worker count.
func (p *PrometheusCollector) RecordPlanPublished(name string, workers int) {
	p.ensureRegistered()
	p.plansPublished.WithLabelValues(name).Inc()
	p.planWorkers.WithLabelValues(name).Set(float64(workers))
}

// RecordKVOperationDuration observes a plan store KV round trip.
func (p *PrometheusCollector) RecordKVOperationDuration(operation string, duration float64) {
	p.ensureRegistered()
	p.kvOperationDelay.WithLabelValues(operation).Observe(duration)
}

package world

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics инкапсулирует Prometheus-метрики сетки.
// Nil *Metrics допустим: все методы становятся no-op.
type Metrics struct {
	edits   *prometheus.CounterVec
	proxies prometheus.Gauge
	faces   prometheus.Gauge
	rebuild prometheus.Histogram
}

// NewMetrics создаёт метрики и регистрирует их в reg (если reg != nil)
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		edits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voxel",
			Subsystem: "grid",
			Name:      "edits_total",
			Help:      "Число запросов на изменение сетки по операции и результату.",
		}, []string{"op", "result"}),
		proxies: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "voxel",
			Subsystem: "grid",
			Name:      "proxies",
			Help:      "Количество прокси открытых блоков.",
		}),
		faces: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "voxel",
			Subsystem: "mesh",
			Name:      "faces",
			Help:      "Количество граней в объединённой поверхности.",
		}),
		rebuild: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "voxel",
			Subsystem: "mesh",
			Name:      "rebuild_seconds",
			Help:      "Длительность полной перестройки поверхности.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
	}

	if reg != nil {
		reg.MustRegister(m.edits, m.proxies, m.faces, m.rebuild)
	}
	return m
}

func (m *Metrics) observeEdit(op string, applied bool) {
	if m == nil {
		return
	}
	result := "ignored"
	if applied {
		result = "applied"
	}
	m.edits.WithLabelValues(op, result).Inc()
}

func (m *Metrics) observeProxies(n int) {
	if m == nil {
		return
	}
	m.proxies.Set(float64(n))
}

func (m *Metrics) observeRebuild(faces int, took time.Duration) {
	if m == nil {
		return
	}
	m.faces.Set(float64(faces))
	m.rebuild.Observe(took.Seconds())
}

package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes server activity to Prometheus. All series are namespaced
// with "archmap_".
//
//   - events_total{kind}: accepted interaction events.
//   - rejected_events_total{reason}: events refused as unparsable or naming
//     unknown nodes.
//   - sessions_active: sessions currently held in memory.
//   - sessions_evicted_total: sessions dropped to stay under the cap.
//   - http_requests_total{route,code}: handled requests.
type Metrics struct {
	events   *prometheus.CounterVec
	rejected *prometheus.CounterVec
	sessions prometheus.Gauge
	evicted  prometheus.Counter
	requests *prometheus.CounterVec
}

// NewMetrics creates the server metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "archmap",
			Name:      "events_total",
			Help:      "Interaction events applied to sessions, by kind.",
		}, []string{"kind"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "archmap",
			Name:      "rejected_events_total",
			Help:      "Interaction events refused, by reason.",
		}, []string{"reason"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "archmap",
			Name:      "sessions_active",
			Help:      "Sessions currently held in memory.",
		}),
		evicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "archmap",
			Name:      "sessions_evicted_total",
			Help:      "Sessions dropped to stay under the session cap.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "archmap",
			Name:      "http_requests_total",
			Help:      "HTTP requests handled, by route pattern and status code.",
		}, []string{"route", "code"}),
	}
	reg.MustRegister(m.events, m.rejected, m.sessions, m.evicted, m.requests)
	return m
}

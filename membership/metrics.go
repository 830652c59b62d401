package membership

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts decisions and their latency.
type Metrics struct {
	// Decisions is centraliser_decisions_total{stage,member}.
	Decisions *prometheus.CounterVec
	// Duration is centraliser_decision_duration_seconds.
	Duration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "centraliser_decisions_total",
				Help: "Membership decisions by deciding stage and answer",
			},
			[]string{"stage", "member"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "centraliser_decision_duration_seconds",
				Help:    "Duration of membership decisions",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
		),
	}
	for _, c := range []prometheus.Collector{m.Decisions, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observe(res *Result, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Decisions.WithLabelValues(res.Stage.String(), strconv.FormatBool(res.Member)).Inc()
	m.Duration.Observe(elapsed.Seconds())
}

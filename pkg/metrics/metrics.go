package metrics

import (
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jwalitptl/passcheck/pkg/password"
)

const statusLabel = "status"

// Metrics holds the password check metrics
type Metrics struct {
	Validations       *prometheus.CounterVec
	ValidationLatency prometheus.Histogram
}

// NewMetrics creates the password check metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer, namespace, subsystem string) (*Metrics, error) {
	m := &Metrics{
		Validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "password_validations_total",
			Help:      "Total number of password validations by resulting status",
		}, []string{statusLabel}),
		ValidationLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "password_validation_duration_seconds",
			Help:      "Time spent validating a password",
			Buckets:   []float64{.000001, .00001, .0001, .001, .01},
		}),
	}

	for _, c := range []prometheus.Collector{m.Validations, m.ValidationLatency} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}

	// Pre-create every label so totals report zero instead of being absent.
	for _, s := range password.Statuses() {
		m.Validations.WithLabelValues(s.String())
	}

	return m, nil
}

// Observe records one validation outcome.
func (m *Metrics) Observe(status password.Status, took time.Duration) {
	m.Validations.WithLabelValues(status.String()).Inc()
	m.ValidationLatency.Observe(took.Seconds())
}

// Snapshot returns the validation totals per status name as gathered from g.
func Snapshot(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	totals := make(map[string]float64)
	for _, mf := range families {
		if !strings.HasSuffix(mf.GetName(), "password_validations_total") {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, lp := range metric.GetLabel() {
				if lp.GetName() == statusLabel {
					totals[lp.GetValue()] += metric.GetCounter().GetValue()
				}
			}
		}
	}
	return totals, nil
}

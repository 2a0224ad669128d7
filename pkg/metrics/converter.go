package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "numconv"

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// ConverterMetrics counts conversions and exchange rate lookups.
type ConverterMetrics struct {
	conversions *prometheus.CounterVec
	rateLookups *prometheus.CounterVec
}

func NewConverterMetrics(registerer prometheus.Registerer) *ConverterMetrics {
	m := &ConverterMetrics{
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Number/word conversions by direction and outcome.",
		}, []string{"direction", "status"}),
		rateLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_lookups_total",
			Help:      "Exchange rate lookups by answering source and outcome.",
		}, []string{"source", "status"}),
	}

	registerer.MustRegister(m.conversions, m.rateLookups)

	return m
}

func (m *ConverterMetrics) ConversionDone(direction, status string) {
	m.conversions.WithLabelValues(direction, status).Inc()
}

func (m *ConverterMetrics) RateLookupDone(source, status string) {
	m.rateLookups.WithLabelValues(source, status).Inc()
}

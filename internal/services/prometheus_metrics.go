package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsTotal         *prometheus.CounterVec
	transactionAmount         *prometheus.HistogramVec
	authenticationEventsTotal *prometheus.CounterVec
	sessionEventsTotal        *prometheus.CounterVec
	sessionDuration           prometheus.Histogram
	accountBalance            prometheus.Gauge
	circuitBreakerState       *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the ATM collectors with reg;
// a nil reg uses the default registry
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transactionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "atm_transactions_total",
				Help: "Total number of ATM transactions by type and outcome",
			},
			[]string{"operation", "status"},
		),
		transactionAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "atm_transaction_amount",
				Help:    "Completed transaction amount in major currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 7),
			},
			[]string{"operation"},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "atm_authentication_events_total",
				Help: "Total number of PIN authentication events",
			},
			[]string{"event_type"},
		),
		sessionEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "atm_session_events_total",
				Help: "Total number of session lifecycle events",
			},
			[]string{"event_type"},
		),
		sessionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "atm_session_duration_seconds",
				Help:    "Duration of ended ATM sessions in seconds",
				Buckets: []float64{10, 30, 60, 120, 300, 600},
			},
		),
		accountBalance: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "atm_account_balance",
				Help: "Balance of the session account after the last completed transaction",
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricTransaction:
		if status := tags["status"]; status != "" {
			m.transactionsTotal.WithLabelValues(tags["operation"], status).Inc()
		}
	case MetricAuthentication:
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	case MetricSessionEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.sessionEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricSessionDuration:
		m.sessionDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricTransactionAmount:
		m.transactionAmount.WithLabelValues(tags["operation"]).Observe(value)
	case MetricAccountBalance:
		m.accountBalance.Set(value)
	case MetricCircuitBreakerState:
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	}
}

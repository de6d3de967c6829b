package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	statusRequests   *prometheus.CounterVec
	statusDuration   prometheus.Histogram
	upstreamFetches  *prometheus.CounterVec
	upstreamDuration prometheus.Histogram
	upstreamRows     prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		statusRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "invoice_status_requests_total",
				Help: "Total number of invoice status queries by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),
		statusDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "invoice_status_request_duration_milliseconds",
				Help:    "Invoice status query duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		upstreamFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_fetch_total",
				Help: "Total number of upstream ledger fetches by outcome",
			},
			[]string{"outcome"},
		),
		upstreamDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_fetch_duration_milliseconds",
				Help:    "Upstream ledger fetch duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		upstreamRows: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_fetch_rows",
				Help:    "Number of ledger rows returned per upstream fetch",
				Buckets: prometheus.ExponentialBuckets(1, 10, 7),
			},
		),
	}
}

func (m *PrometheusMetrics) RecordStatusRequest(mode, outcome string, duration time.Duration) {
	m.statusRequests.WithLabelValues(mode, outcome).Inc()
	m.statusDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordUpstreamFetch(outcome string, duration time.Duration, rows int) {
	m.upstreamFetches.WithLabelValues(outcome).Inc()
	m.upstreamDuration.Observe(float64(duration.Milliseconds()))
	if outcome == "ok" {
		m.upstreamRows.Observe(float64(rows))
	}
}

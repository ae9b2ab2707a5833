package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Lifecycle metrics
	TradesSubmitted prometheus.Counter
	Transitions     *prometheus.CounterVec
	HistoryRecords  prometheus.Gauge

	// Directory metrics
	DirectoryOperations *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		TradesSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tradedesk_trades_submitted_total",
			Help: "Total number of trades submitted",
		}),
		Transitions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradedesk_transitions_total",
				Help: "Total lifecycle transitions by action and outcome",
			},
			[]string{"action", "status"},
		),
		HistoryRecords: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "tradedesk_history_records",
			Help: "Current number of history ledger entries",
		}),
		DirectoryOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradedesk_directory_operations_total",
				Help: "Total trade directory operations by type",
			},
			[]string{"operation"},
		),
	}
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mineTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ff_ledger",
		Subsystem: "miner",
		Name:      "blocks_total",
		Help:      "Count of mining attempts.",
	}, []string{"status"})

	mineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ff_ledger",
		Subsystem: "miner",
		Name:      "block_duration_seconds",
		Help:      "Duration of mining a block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	mineBlockSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ff_ledger",
		Subsystem: "miner",
		Name:      "block_transactions",
		Help:      "Number of transactions selected into a mined block.",
		Buckets:   prometheus.LinearBuckets(0, 1, 11),
	})

	executeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ff_ledger",
		Subsystem: "executor",
		Name:      "transactions_total",
		Help:      "Count of executed transactions by type and outcome.",
	}, []string{"type", "status"})

	submitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ff_ledger",
		Subsystem: "intake",
		Name:      "transactions_total",
		Help:      "Count of submitted transactions by type and outcome.",
	}, []string{"type", "status"})
)

// Ledger tracks metrics for transaction intake, execution and mining.
type Ledger struct{}

// NewLedger constructs a Ledger recorder.
func NewLedger() *Ledger {
	return &Ledger{}
}

// ObserveMine records a mining attempt, its duration and the number of selected transactions.
func (m *Ledger) ObserveMine(err error, transactions int, started time.Time) {
	status := statusOf(err)
	mineTotal.WithLabelValues(status).Inc()
	mineDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if err == nil {
		mineBlockSize.Observe(float64(transactions))
	}
}

// ObserveExecute records the terminal status of an executed transaction.
func (m *Ledger) ObserveExecute(txType, status string) {
	executeTotal.WithLabelValues(labelOrUnknown(txType), status).Inc()
}

// ObserveSubmit records whether a submitted transaction was accepted.
func (m *Ledger) ObserveSubmit(txType string, err error) {
	status := "accepted"
	if err != nil {
		status = "rejected"
	}
	submitTotal.WithLabelValues(labelOrUnknown(txType), status).Inc()
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func labelOrUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/tfexplorer-parser/internal/explorer/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	parserOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tfexplorer",
		Subsystem: "parser",
		Name:      "operations_total",
		Help:      "Count of decoded explorer responses.",
	}, []string{"operation", "network", "status"})
	parserOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tfexplorer",
		Subsystem: "parser",
		Name:      "operation_duration_seconds",
		Help:      "Duration of decoding an explorer response.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"operation", "network", "status"})
	parserSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tfexplorer",
		Subsystem: "parser",
		Name:      "skipped_total",
		Help:      "Count of transactions or conditions the parser skipped or degraded.",
	}, []string{"reason", "network"})
)

// Parser tracks metrics for the explorer response parser.
type Parser struct {
	network model.Network
}

// NewParser constructs a Parser collector for network.
func NewParser(network model.Network) *Parser {
	if network == "" {
		network = "unknown"
	}
	return &Parser{network: network}
}

// Observe records duration and status of a parse operation.
func (m Parser) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	parserOperationsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	parserOperationDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
}

// ObserveSkipped counts a skipped or degraded element.
func (m Parser) ObserveSkipped(reason string) {
	parserSkippedTotal.WithLabelValues(reason, string(m.network)).Inc()
}

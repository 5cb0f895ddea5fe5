package metrics

import (
	"time"

	"github.com/goodnatureofminers/tfexplorer-parser/internal/explorer/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decoderFilesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tfexplorer",
		Subsystem: "decoder",
		Name:      "files_total",
		Help:      "Count of response files processed by the decoder.",
	}, []string{"network", "status"})

	decoderFileDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tfexplorer",
		Subsystem: "decoder",
		Name:      "file_duration_seconds",
		Help:      "Duration of reading and decoding one response file.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	decoderBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tfexplorer",
		Subsystem: "decoder",
		Name:      "batch_size",
		Help:      "Number of files decoded per run.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	}, []string{"network"})
)

// Decoder tracks metrics for the batch decoder command.
type Decoder struct {
	network model.Network
}

// NewDecoder constructs a Decoder collector for network.
func NewDecoder(network model.Network) *Decoder {
	if network == "" {
		network = "unknown"
	}
	return &Decoder{network: network}
}

// ObserveFile records the outcome of decoding one file.
func (m Decoder) ObserveFile(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	decoderFilesTotal.WithLabelValues(string(m.network), status).Inc()
	decoderFileDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}

// ObserveBatch records how many files one run decoded.
func (m Decoder) ObserveBatch(files int) {
	decoderBatchSize.WithLabelValues(string(m.network)).Observe(float64(files))
}

// Package stats provides a unified interface for collecting metrics,
// shared by every codec's facade so a caller can swap in Prometheus, a
// log-based collector, or nothing at all without touching compression
// code.
package stats

// Metric names pushed by internal/facade for each compression or
// decompression run.
const (
	MetricOperationsTotal     = "gocompress_operations_total"
	MetricFailuresTotal       = "gocompress_failures_total"
	MetricOriginalBytes       = "gocompress_original_bytes"
	MetricCompressedBytes     = "gocompress_compressed_bytes"
	MetricCompressionRatio   = "gocompress_compression_ratio_percent"
	MetricOperationSeconds    = "gocompress_operation_seconds"
	MetricThroughputMBPerSec = "gocompress_throughput_mbps"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}

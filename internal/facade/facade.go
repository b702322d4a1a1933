// Package facade is the Go-idiomatic replacement for the original C ABI's
// compress_file/decompress_file entry points: it wraps a gocompress.Codec
// with timing, size accounting, and metrics collection, returning a single
// Metrics record instead of a fixed-layout struct an FFI caller would have
// to fill in by hand.
package facade

import (
	"time"

	"go.uber.org/zap"

	"github.com/robertkibet/gocompress"
	"github.com/robertkibet/gocompress/internal/stats"
)

// Metrics reports the outcome of one compress or decompress run. Its
// fields mirror the original CompressionMetrics C struct: sizes, ratio,
// timing, throughput, and a success/error pair in place of the struct's
// fixed-width error_message buffer.
type Metrics struct {
	Algorithm        gocompress.Algorithm
	OriginalBytes    int64
	CompressedBytes  int64
	CompressionRatio float64 // compressed/original * 100, matching the original's percentage convention
	Duration         time.Duration
	ThroughputMBPS   float64
	Success          bool
	Err              error
}

// Facade wraps a Codec with metrics collection and structured logging.
// Build one with New, which defaults Stats to a no-op collector and
// Logger to a no-op logger; Codec, Stats and Logger must all be non-nil
// when Compress or Decompress runs.
type Facade struct {
	Codec  gocompress.Codec
	Stats  stats.Collector
	Logger *zap.Logger
	Algo   gocompress.Algorithm
}

// New builds a Facade around codec, defaulting Stats and Logger to
// no-ops.
func New(algo gocompress.Algorithm, codec gocompress.Codec, collector stats.Collector, logger *zap.Logger) *Facade {
	if collector == nil {
		collector = stats.NewNoop()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Facade{Codec: codec, Stats: collector, Logger: logger, Algo: algo}
}

// Compress runs Codec.Compress, timing it and recording a Metrics record
// the same way compress_file filled in a CompressionMetrics on the way
// out.
func (f *Facade) Compress(inputPath, outputPath string) Metrics {
	return f.run("compress", inputPath, outputPath, f.Codec.Compress)
}

// Decompress runs Codec.Decompress, timing it and recording a Metrics
// record the same way decompress_file did.
func (f *Facade) Decompress(inputPath, outputPath string) Metrics {
	return f.run("decompress", inputPath, outputPath, f.Codec.Decompress)
}

func (f *Facade) run(op, inputPath, outputPath string, fn func(string, string) error) Metrics {
	m := Metrics{Algorithm: f.Algo, OriginalBytes: gocompress.FileSize(inputPath)}

	start := time.Now()
	err := fn(inputPath, outputPath)
	m.Duration = time.Since(start)

	f.Stats.IncCounter(stats.MetricOperationsTotal, 1)
	f.Stats.ObserveHistogram(stats.MetricOperationSeconds, m.Duration.Seconds())

	if err != nil {
		m.Success = false
		m.Err = err
		f.Stats.IncCounter(stats.MetricFailuresTotal, 1)
		f.Logger.Error("compression operation failed",
			zap.String("algorithm", f.Algo.String()),
			zap.String("op", op),
			zap.String("input", inputPath),
			zap.Error(err),
		)
		return m
	}

	m.CompressedBytes = gocompress.FileSize(outputPath)
	if op == "decompress" {
		// The roles invert on decompress: "original" is the compressed
		// input and the decoded output is what the original facade
		// called original_size_bytes on the way out.
		m.OriginalBytes, m.CompressedBytes = m.CompressedBytes, m.OriginalBytes
	}

	if m.OriginalBytes > 0 {
		m.CompressionRatio = float64(m.CompressedBytes) / float64(m.OriginalBytes) * 100
	}
	m.ThroughputMBPS = throughputMBPS(m.OriginalBytes, m.Duration)
	m.Success = true

	f.Stats.SetGauge(stats.MetricOriginalBytes, m.OriginalBytes)
	f.Stats.SetGauge(stats.MetricCompressedBytes, m.CompressedBytes)
	f.Stats.SetGauge(stats.MetricCompressionRatio, int64(m.CompressionRatio))
	f.Stats.ObserveHistogram(stats.MetricThroughputMBPerSec, m.ThroughputMBPS)

	f.Logger.Info("compression operation complete",
		zap.String("algorithm", f.Algo.String()),
		zap.String("op", op),
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Int64("original_bytes", m.OriginalBytes),
		zap.Int64("compressed_bytes", m.CompressedBytes),
		zap.Float64("compression_ratio_percent", m.CompressionRatio),
		zap.Duration("duration", m.Duration),
	)
	return m
}

func throughputMBPS(bytes int64, d time.Duration) float64 {
	seconds := d.Seconds()
	if seconds <= 0 {
		return 0
	}
	megabytes := float64(bytes) / (1024 * 1024)
	return megabytes / seconds
}

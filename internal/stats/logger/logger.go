// Package logger provides a zap-based stats collector that logs metrics
// instead of exporting them, useful for local runs of the CLI where
// spinning up a Prometheus registry is overkill.
package logger

import (
	"go.uber.org/zap"

	"github.com/robertkibet/gocompress/internal/stats"
)

// Collector implements stats.Collector by logging metrics via zap.
type Collector struct {
	logger *zap.Logger
}

var _ stats.Collector = (*Collector)(nil)

// New creates a new logger-based collector. If logger is nil, a no-op
// logger is used.
func New(logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{logger: logger}
}

func (c *Collector) IncCounter(name string, delta int64) {
	c.logger.Debug("counter", zap.String("metric", name), zap.Int64("delta", delta))
}

func (c *Collector) SetGauge(name string, value int64) {
	c.logger.Debug("gauge", zap.String("metric", name), zap.Int64("value", value))
}

func (c *Collector) ObserveHistogram(name string, value float64) {
	c.logger.Debug("histogram", zap.String("metric", name), zap.Float64("value", value))
}

package main

import (
	"fmt"

	"github.com/robertkibet/gocompress/internal/stats"
	statslogger "github.com/robertkibet/gocompress/internal/stats/logger"
	statsprometheus "github.com/robertkibet/gocompress/internal/stats/prometheus"
)

// metricsBackend selects where compress/decompress/verify push their
// operation metrics. "none" is the default so a plain CLI invocation never
// pays for a collector it didn't ask for.
var metricsBackend string

func init() {
	rootCmd.PersistentFlags().StringVar(&metricsBackend, "metrics", "none", "metrics backend: 'none', 'log', or 'prometheus'")
}

// newStatsCollector builds the stats.Collector named by --metrics. A nil,
// nil return means "let the facade default to its no-op collector".
func newStatsCollector() (stats.Collector, error) {
	switch metricsBackend {
	case "", "none":
		return nil, nil
	case "log":
		return statslogger.New(logger), nil
	case "prometheus":
		return statsprometheus.New(nil), nil
	default:
		return nil, &ArgumentError{Flag: "metrics", Reason: fmt.Sprintf("unsupported backend %q", metricsBackend)}
	}
}

package search

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level meter. Instruments are no-ops until the host application
// installs a MeterProvider.
var meter = otel.Meter("statespace.search")

var (
	searchTotal    metric.Int64Counter
	expandedTotal  metric.Int64Counter
	metricsOnce    sync.Once
	metricsInitErr error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		searchTotal, err = meter.Int64Counter(
			"statespace_search_total",
			metric.WithDescription("Total number of completed search calls"),
		)
		if err != nil {
			metricsInitErr = err
			return
		}

		expandedTotal, err = meter.Int64Counter(
			"statespace_search_expanded_total",
			metric.WithDescription("Total number of states expanded by search calls"),
		)
		if err != nil {
			metricsInitErr = err
			return
		}
	})

	return metricsInitErr
}

// recordSearch records one finished search call.
func recordSearch(ctx context.Context, strategy Strategy, found bool, expanded int) {
	if err := initMetrics(); err != nil {
		return
	}
	// a cancelled ctx must not drop the measurement
	ctx = context.WithoutCancel(ctx)

	strategyAttr := attribute.String("strategy", string(strategy))
	searchTotal.Add(ctx, 1, metric.WithAttributes(strategyAttr, attribute.Bool("found", found)))
	expandedTotal.Add(ctx, int64(expanded), metric.WithAttributes(strategyAttr))
}

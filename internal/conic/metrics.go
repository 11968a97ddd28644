package conic

import (
	"fmt"

	"conic-visualizer/internal/session"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	solveCounter      metric.Int64Counter
	solveHistogram    metric.Float64Histogram
	errorCounter      metric.Int64Counter
	eccentricityGauge metric.Float64Gauge
)

// InitMetrics registers the OTel instruments for conic calculations.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("conic")

	var err error

	solveCounter, err = meter.Int64Counter("conic.solves.total",
		metric.WithDescription("Total number of conics solved"),
		metric.WithUnit("{solve}"),
	)
	if err != nil {
		return fmt.Errorf("creating solve counter: %w", err)
	}

	solveHistogram, err = meter.Float64Histogram("conic.solve.duration",
		metric.WithDescription("Duration of conic solves in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1),
	)
	if err != nil {
		return fmt.Errorf("creating solve histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("conic.errors.total",
		metric.WithDescription("Total number of failed conic requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	eccentricityGauge, err = meter.Float64Gauge("conic.last_eccentricity",
		metric.WithDescription("Eccentricity of the last solved conic"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating eccentricity gauge: %w", err)
	}

	return nil
}

// RegisterSessionGauge exposes the number of live sessions in store on the
// Prometheus registry as conic_sessions_active.
func RegisterSessionGauge(reg prometheus.Registerer, store *session.Store) error {
	gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "conic",
		Name:      "sessions_active",
		Help:      "Number of live visualizer sessions.",
	}, func() float64 {
		return float64(store.Len())
	})
	if err := reg.Register(gauge); err != nil {
		return fmt.Errorf("registering session gauge: %w", err)
	}
	return nil
}

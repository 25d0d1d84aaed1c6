package workers

import (
	"call-lab/observability"
	"context"
	"time"
)

// MetricsReporterWorker logs the call counters at a fixed interval.
type MetricsReporterWorker struct {
	metrics  *observability.CallMetrics
	interval time.Duration
}

func NewMetricsReporterWorker(metrics *observability.CallMetrics, interval time.Duration) *MetricsReporterWorker {
	return &MetricsReporterWorker{metrics: metrics, interval: interval}
}

func (w *MetricsReporterWorker) Run(ctx context.Context) error {
	w.metrics.Listen(ctx, w.interval)
	return ctx.Err()
}

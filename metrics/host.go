package metrics

import (
	"context"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/metric"
)

type InflightFunc func() int

// HostMetrics tracks process wide state shared by all destination sessions.
type HostMetrics struct {
	startTimeGauge metric.Int64ObservableGauge
	inflightGauge  metric.Int64ObservableGauge
	inflight       atomic.Pointer[InflightFunc]
}

func NewHostMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption) (*HostMetrics, error) {
	m := &HostMetrics{}

	startTime := time.Now().Unix()
	var err error
	m.startTimeGauge, err = meter.Int64ObservableGauge(
		"relayer.StartTimeSeconds",
		metric.WithDescription("Start time of the relayer"),
		metric.WithInt64Callback(func(ctx context.Context, result metric.Int64Observer) error {
			result.Observe(startTime, opts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	m.inflightGauge, err = meter.Int64ObservableGauge(
		"relayer.InflightUnits",
		metric.WithDescription("Relay units currently being submitted"),
		metric.WithInt64Callback(func(ctx context.Context, result metric.Int64Observer) error {
			f := m.inflight.Load()
			if f == nil {
				return nil
			}
			result.Observe(int64((*f)()), opts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// RegisterInflight sets the source of the in-flight unit count.
func (m *HostMetrics) RegisterInflight(f InflightFunc) {
	m.inflight.Store(&f)
}

package metrics

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type QueueDepthFunc func() int

type RelayMetrics struct {
	*HostMetrics

	opts             metric.MeasurementOption
	discoveredCount  metric.Int64Counter
	relayedCount     metric.Int64Counter
	failureCount     metric.Int64Counter
	droppedCount     metric.Int64Counter
	relayTime        metric.Float64Histogram
	queueDepthGauge  metric.Int64ObservableGauge
	queueDepthFuncs  map[uint32]QueueDepthFunc
	queueDepthFuncsL sync.RWMutex
}

// NewRelayMetrics initializes metrics tracking relay unit processing per domain
func NewRelayMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption) (*RelayMetrics, error) {
	hostMetrics, err := NewHostMetrics(ctx, meter, opts)
	if err != nil {
		return nil, err
	}

	discoveredCount, err := meter.Int64Counter(
		"relayer.UnitsDiscovered",
		metric.WithDescription("Relay units found pending on the index"),
	)
	if err != nil {
		return nil, err
	}
	relayedCount, err := meter.Int64Counter(
		"relayer.UnitsRelayed",
		metric.WithDescription("Relay units completed on the destination chain"),
	)
	if err != nil {
		return nil, err
	}
	failureCount, err := meter.Int64Counter(
		"relayer.RelayFailures",
		metric.WithDescription("Failed relay attempts by error kind"),
	)
	if err != nil {
		return nil, err
	}
	droppedCount, err := meter.Int64Counter(
		"relayer.UnitsDropped",
		metric.WithDescription("Relay units dropped from an overflowing queue"),
	)
	if err != nil {
		return nil, err
	}
	relayTime, err := meter.Float64Histogram(
		"relayer.RelayTime",
		metric.WithDescription("Seconds between discovery and completion of a relay unit"),
	)
	if err != nil {
		return nil, err
	}

	m := &RelayMetrics{
		HostMetrics:     hostMetrics,
		opts:            opts,
		discoveredCount: discoveredCount,
		relayedCount:    relayedCount,
		failureCount:    failureCount,
		droppedCount:    droppedCount,
		relayTime:       relayTime,
		queueDepthFuncs: make(map[uint32]QueueDepthFunc),
	}
	m.queueDepthGauge, err = meter.Int64ObservableGauge(
		"relayer.QueueDepth",
		metric.WithDescription("Ready relay units waiting per destination domain"),
		metric.WithInt64Callback(func(ctx context.Context, result metric.Int64Observer) error {
			m.queueDepthFuncsL.RLock()
			defer m.queueDepthFuncsL.RUnlock()

			for domain, depth := range m.queueDepthFuncs {
				result.Observe(int64(depth()), opts, metric.WithAttributes(attribute.Int64("destination", int64(domain))))
			}
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *RelayMetrics) RegisterQueue(domain uint32, depth QueueDepthFunc) {
	m.queueDepthFuncsL.Lock()
	defer m.queueDepthFuncsL.Unlock()
	m.queueDepthFuncs[domain] = depth
}

func (m *RelayMetrics) TrackDiscovered(sourceDomain uint32, destinationDomain uint32) {
	m.discoveredCount.Add(context.Background(), 1, m.opts, metric.WithAttributes(
		attribute.Int64("source", int64(sourceDomain)),
		attribute.Int64("destination", int64(destinationDomain)),
	))
}

func (m *RelayMetrics) TrackDropped(destinationDomain uint32, count int) {
	m.droppedCount.Add(context.Background(), int64(count), m.opts, metric.WithAttributes(
		attribute.Int64("destination", int64(destinationDomain)),
	))
}

func (m *RelayMetrics) TrackRelayed(sourceDomain uint32, destinationDomain uint32, latency time.Duration) {
	attrs := metric.WithAttributes(
		attribute.Int64("source", int64(sourceDomain)),
		attribute.Int64("destination", int64(destinationDomain)),
	)
	m.relayedCount.Add(context.Background(), 1, m.opts, attrs)
	m.relayTime.Record(context.Background(), latency.Seconds(), m.opts, attrs)
}

func (m *RelayMetrics) TrackFailure(destinationDomain uint32, kind string) {
	m.failureCount.Add(context.Background(), 1, m.opts, metric.WithAttributes(
		attribute.Int64("destination", int64(destinationDomain)),
		attribute.String("kind", kind),
	))
}

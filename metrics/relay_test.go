package metrics_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/sprintertech/cctp-relayer/metrics"
)

type RelayMetricsTestSuite struct {
	suite.Suite

	registry *prometheus.Registry
	metrics  *metrics.RelayMetrics
}

func TestRunRelayMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(RelayMetricsTestSuite))
}

func (s *RelayMetricsTestSuite) SetupTest() {
	s.registry = prometheus.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(s.registry))
	s.Require().Nil(err)
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))

	s.metrics, err = metrics.NewRelayMetrics(
		context.Background(),
		provider.Meter("cctp-relayer"),
		metric.WithAttributes(attribute.String("env", "test")),
	)
	s.Require().Nil(err)
}

func (s *RelayMetricsTestSuite) gathered() []string {
	families, err := s.registry.Gather()
	s.Require().Nil(err)

	names := make([]string, 0)
	for _, f := range families {
		names = append(names, f.GetName())
	}
	return names
}

func (s *RelayMetricsTestSuite) contains(names []string, name string) bool {
	for _, n := range names {
		if strings.Contains(n, name) {
			return true
		}
	}
	return false
}

func (s *RelayMetricsTestSuite) Test_TrackRelayed_ExportsCounterAndHistogram() {
	s.metrics.TrackRelayed(3, 6, time.Second)

	names := s.gathered()

	s.True(s.contains(names, "UnitsRelayed"))
	s.True(s.contains(names, "RelayTime"))
}

func (s *RelayMetricsTestSuite) Test_RegisterQueue_ExportsDepth() {
	s.metrics.RegisterQueue(6, func() int { return 4 })
	s.metrics.TrackFailure(6, "retryable")

	names := s.gathered()

	s.True(s.contains(names, "QueueDepth"))
	s.True(s.contains(names, "RelayFailures"))
}

func (s *RelayMetricsTestSuite) Test_RegisterInflight_ExportsHostGauges() {
	s.metrics.RegisterInflight(func() int { return 2 })

	names := s.gathered()

	s.True(s.contains(names, "InflightUnits"))
	s.True(s.contains(names, "StartTimeSeconds"))
}

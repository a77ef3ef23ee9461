package app

import (
	"context"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/sprintertech/cctp-relayer/logger"
	"github.com/sprintertech/cctp-relayer/metrics"
	"github.com/sprintertech/cctp-relayer/relay"
)

// Compensate completes the token message of the source transaction through the
// owner path regardless of its fee or age.
func Compensate(sourceDomain uint32, txHash common.Hash) error {
	configuration, err := loadConfig()
	if err != nil {
		return err
	}
	relayerConfig := configuration.RelayerConfig
	logger.ConfigureLogger(relayerConfig.LogLevel, relayerConfig.LogFormat, os.Stdout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, err := newComponents(ctx, configuration)
	defer c.Close()
	if err != nil {
		return err
	}

	unit, err := c.decoder.DecodeUnit(ctx, sourceDomain, txHash)
	if err != nil {
		return fmt.Errorf("failed decoding %s: %w", txHash, err)
	}
	ready, err := relay.Attest(ctx, c.attester, unit)
	if err != nil {
		return err
	}
	if !ready {
		return fmt.Errorf("transfer %s is not attested yet", unit.Key())
	}

	mp := sdkmetric.NewMeterProvider()
	defer func() {
		_ = mp.Shutdown(context.Background())
	}()
	relayMetrics, err := metrics.NewRelayMetrics(ctx, mp.Meter("relayer-compensate"), metric.WithAttributes())
	if err != nil {
		return err
	}

	worker, err := c.newWorker(unit.DestinationDomain(), relay.NewQueue(1, 1), relayMetrics)
	if err != nil {
		return err
	}

	log.Info().Str("unit", unit.Key().String()).Msgf("Compensating transfer to domain %d", unit.DestinationDomain())
	return worker.Compensate(ctx, unit)
}

// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/sygmaprotocol/sygma-core/store/lvldb"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"golang.org/x/sync/errgroup"

	"github.com/sprintertech/cctp-relayer/api"
	"github.com/sprintertech/cctp-relayer/api/handlers"
	"github.com/sprintertech/cctp-relayer/cache"
	"github.com/sprintertech/cctp-relayer/chains/evm"
	"github.com/sprintertech/cctp-relayer/chains/evm/calls/contracts"
	evmClient "github.com/sprintertech/cctp-relayer/chains/evm/client"
	evmMessage "github.com/sprintertech/cctp-relayer/chains/evm/message"
	"github.com/sprintertech/cctp-relayer/config"
	"github.com/sprintertech/cctp-relayer/health"
	"github.com/sprintertech/cctp-relayer/ledger"
	"github.com/sprintertech/cctp-relayer/logger"
	"github.com/sprintertech/cctp-relayer/metrics"
	"github.com/sprintertech/cctp-relayer/price"
	"github.com/sprintertech/cctp-relayer/protocol/circle"
	"github.com/sprintertech/cctp-relayer/protocol/index"
	"github.com/sprintertech/cctp-relayer/relay"
	"github.com/sprintertech/cctp-relayer/telemetry"
)

const MEMORY_STORE = ":memory:"

var Version string

type chain struct {
	config *evm.EVMConfig
	client *evmClient.EVMClient
}

// components are the shared dependencies of every destination session.
type components struct {
	config    *config.Config
	chains    map[uint32]chain
	symbols   map[uint32]string
	decoder   *evmMessage.UnitDecoder
	attester  *circle.AttestationAPI
	converter *price.Converter
	ledger    *ledger.Ledger
	inflight  *cache.InflightCache
	recorder  *telemetry.GasRecorder

	closers []func() error
}

func loadConfig() (*config.Config, error) {
	configFlag := viper.GetString(config.ConfigFlagName)
	if strings.ToLower(configFlag) == config.ENV_CONFIG {
		return config.GetConfigFromENV()
	}
	return config.GetConfigFromFile(configFlag)
}

func newComponents(ctx context.Context, configuration *config.Config) (*components, error) {
	c := &components{
		config:  configuration,
		chains:  make(map[uint32]chain),
		symbols: make(map[uint32]string),
	}
	relayerConfig := configuration.RelayerConfig

	sources := make(map[uint32]evmMessage.SourceChain)
	for _, chainConfig := range configuration.ChainConfigs {
		switch chainConfig["type"] {
		case "evm", nil:
			{
				config, err := evm.NewEVMConfig(chainConfig, relayerConfig.Env)
				if err != nil {
					return c, err
				}
				domain := *config.GeneralChainConfig.Id

				client, err := evmClient.NewEVMClient(ctx, config.GeneralChainConfig.RPCEndpoints(), config.GeneralChainConfig.Key, config.CallTimeout)
				if err != nil {
					return c, fmt.Errorf("failed connecting to domain %d: %w", domain, err)
				}
				c.closers = append(c.closers, func() error {
					client.Close()
					return nil
				})

				log.Info().Uint32("domain", domain).Str("chain", config.GeneralChainConfig.Name).Msgf("Registering EVM domain")
				c.chains[domain] = chain{config: config, client: client}
				c.symbols[domain] = config.NativeSymbol
				sources[domain] = evmMessage.SourceChain{
					Client:             client,
					MessageTransmitter: config.MessageTransmitter,
					Contract:           config.Contract,
				}
			}
		default:
			return c, fmt.Errorf("type '%s' not recognized", chainConfig["type"])
		}
	}
	c.decoder = evmMessage.NewUnitDecoder(sources, !relayerConfig.AllowTokenOnly)
	c.attester = circle.NewAttestationAPI(relayerConfig.AttestationURL, relayerConfig.AttestationRPS, circle.ATTESTATION_RETRY_WAIT)

	priceAPI := price.NewCoinmarketcapAPI(
		relayerConfig.CoinmarketcapConfig.Url,
		relayerConfig.CoinmarketcapConfig.ApiKey)
	c.converter = price.NewConverter(priceAPI, relayerConfig.PriceRefreshInterval, relayerConfig.PriceStaleTolerance, relayerConfig.MaxGasLimit)
	c.inflight = cache.NewInflightCache(ctx, cache.INFLIGHT_TTL)

	if relayerConfig.LedgerPath == MEMORY_STORE {
		log.Warn().Msgf("Using in-memory ledger, relayed transfers are forgotten on restart")
		c.ledger = ledger.NewLedger(ledger.NewMemoryStore())
	} else {
		db, err := lvldb.NewLvlDB(relayerConfig.LedgerPath)
		if err != nil {
			return c, fmt.Errorf("failed opening ledger %s: %w", relayerConfig.LedgerPath, err)
		}
		c.closers = append(c.closers, db.Close)
		c.ledger = ledger.NewLedger(db)
	}

	recorder, err := telemetry.OpenGasRecorder(relayerConfig.TelemetryPath, telemetry.DEFAULT_WINDOW)
	if err != nil {
		return c, fmt.Errorf("failed opening gas telemetry %s: %w", relayerConfig.TelemetryPath, err)
	}
	c.closers = append(c.closers, recorder.Close)
	c.recorder = recorder

	return c, nil
}

func (c *components) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			log.Warn().Err(err).Msgf("Failed closing resource")
		}
	}
}

func (c *components) newWorker(domain uint32, queue *relay.Queue, relayMetrics relay.RelayMetrics) (*relay.Worker, error) {
	chain, ok := c.chains[domain]
	if !ok {
		return nil, fmt.Errorf("domain %d not configured", domain)
	}

	workerConfig := relay.WorkerConfig{
		Domain:         domain,
		Contract:       chain.config.Contract,
		NativeSymbols:  c.symbols,
		MaxTransferAge: c.config.RelayerConfig.MaxTransferAge,
		SubmitTimeout:  c.config.RelayerConfig.SubmitTimeout,
	}
	if chain.config.FixedGas != nil {
		workerConfig.FixedGas = &relay.FixedGasPolicy{
			BaseGas:        chain.config.FixedGas.BaseGas,
			GasPrice:       chain.config.FixedGas.GasPrice,
			AllowDeviation: chain.config.FixedGas.AllowDeviation,
		}
	}

	return relay.NewWorker(
		workerConfig,
		queue,
		contracts.NewCCTPContract(chain.client, chain.config.Contract, chain.config.MessageTransmitter),
		chain.client,
		c.converter,
		c.ledger,
		c.inflight,
		c.recorder,
		relayMetrics,
	), nil
}

func Run() error {
	configuration, err := loadConfig()
	panicOnError(err)
	relayerConfig := configuration.RelayerConfig

	logger.ConfigureLogger(relayerConfig.LogLevel, relayerConfig.LogFormat, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	panicOnError(err)
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()
	go health.StartHealthEndpoint(ctx, relayerConfig.HealthPort, registry)

	relayerName := viper.GetString(config.NameFlagName)
	relayMetrics, err := metrics.NewRelayMetrics(
		ctx,
		mp.Meter("relayer-metric-provider"),
		metric.WithAttributes(
			attribute.String("env", relayerConfig.Env),
			attribute.String("relayer", relayerName),
			attribute.String("version", Version),
		))
	panicOnError(err)

	c, err := newComponents(ctx, configuration)
	defer c.Close()
	panicOnError(err)
	relayMetrics.RegisterInflight(c.inflight.Len)

	idx := index.NewPendingIndex(relayerConfig.IndexURL)
	sessions := make([]*relay.Session, 0)
	destinations := make(map[uint32]handlers.DestinationStatus)
	for domain, chain := range c.chains {
		if chain.config.GeneralChainConfig.Key == "" {
			log.Info().Uint32("domain", domain).Msgf("No key configured, domain is used as source only")
			sessions = append(sessions, relay.NewSession(domain, chain.client, map[string]relay.Task{}, relayerConfig.SupervisorInterval))
			continue
		}

		queue := relay.NewQueue(relayerConfig.QueueCapacity, relayerConfig.QueueDrainThreshold)
		relayMetrics.RegisterQueue(domain, queue.Len)

		poller := relay.NewPoller(
			domain,
			idx,
			c.decoder,
			c.attester,
			c.ledger,
			queue,
			relayMetrics,
			relayerConfig.PollInterval,
			relayerConfig.RecheckInterval)
		worker, err := c.newWorker(domain, queue, relayMetrics)
		panicOnError(err)

		destinations[domain] = handlers.DestinationStatus{Queue: queue, Poller: poller}
		sessions = append(sessions, relay.NewSession(domain, chain.client, map[string]relay.Task{
			"poller": poller,
			"worker": worker,
		}, relayerConfig.SupervisorInterval))
	}
	if len(destinations) == 0 {
		panic(fmt.Errorf("no destination domain has a key configured"))
	}

	go api.Serve(ctx, relayerConfig.ApiAddr, handlers.NewTransfersHandler(c.ledger), handlers.NewQueueHandler(destinations))

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range sessions {
		s := s
		g.Go(func() error {
			return s.Start(gctx)
		})
	}

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	log.Info().Msgf("Started relayer: %s with %d destinations. Version: v%s", relayerName, len(destinations), Version)

	select {
	case sig := <-sysErr:
		log.Info().Msgf("terminating got ` [%v] signal", sig)
	case <-gctx.Done():
		log.Error().Msgf("Session stopped unexpectedly")
	}
	cancel()

	err = g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}

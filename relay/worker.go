package relay

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/sprintertech/cctp-relayer/chains/evm/message"
	"github.com/sprintertech/cctp-relayer/telemetry"
)

type Completer interface {
	EstimateReceive(ctx context.Context, unit *message.RelayUnit) (uint64, error)
	Receive(ctx context.Context, unit *message.RelayUnit, gasLimit uint64) (*types.Transaction, *types.Receipt, error)
	ReceiveByOwner(ctx context.Context, unit *message.RelayUnit) (*types.Transaction, *types.Receipt, error)
}

type GasPricer interface {
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
}

type FeeConverter interface {
	RefreshQuotes(ctx context.Context, symbols []string)
	Convert(amount *big.Int, from string, to string) (*big.Int, bool)
	EstimateGasLimit(fee *big.Int, from string, to string, gasPrice *big.Int) (uint64, bool)
	ValueUSD(amount *big.Int, symbol string) (decimal.Decimal, bool)
}

type GasRecorder interface {
	Record(ctx context.Context, rec telemetry.GasRecord) error
}

type RelayLedger interface {
	MarkRelayed(key message.Key, sourceTx common.Hash, destinationTx common.Hash) error
	MarkFailed(key message.Key, sourceTx common.Hash, reason string) error
}

type InflightGuard interface {
	TryAcquire(key string) bool
	Release(key string)
}

type RelayMetrics interface {
	TrackRelayed(sourceDomain uint32, destinationDomain uint32, latency time.Duration)
	TrackFailure(destinationDomain uint32, kind string)
}

// FixedGasPolicy replaces the fee derived gas limit on chains where gas
// estimation is unreliable. The fee must cover BaseGas at GasPrice scaled by
// AllowDeviation and the node picks the gas limit.
type FixedGasPolicy struct {
	BaseGas        uint64
	GasPrice       *big.Int
	AllowDeviation float64
}

type WorkerConfig struct {
	Domain         uint32
	Contract       common.Address
	NativeSymbols  map[uint32]string
	MaxTransferAge time.Duration
	SubmitTimeout  time.Duration
	FixedGas       *FixedGasPolicy
}

type submission struct {
	gasLimit uint64
}

// Worker consumes the destination queue and submits ready relay units one at a time.
type Worker struct {
	cfg       WorkerConfig
	queue     *Queue
	completer Completer
	gasPricer GasPricer
	converter FeeConverter
	ledger    RelayLedger
	inflight  InflightGuard
	recorder  GasRecorder
	metrics   RelayMetrics

	log zerolog.Logger
	now func() time.Time
}

func NewWorker(
	cfg WorkerConfig,
	queue *Queue,
	completer Completer,
	gasPricer GasPricer,
	converter FeeConverter,
	ledger RelayLedger,
	inflight InflightGuard,
	recorder GasRecorder,
	metrics RelayMetrics,
) *Worker {
	return &Worker{
		cfg:       cfg,
		queue:     queue,
		completer: completer,
		gasPricer: gasPricer,
		converter: converter,
		ledger:    ledger,
		inflight:  inflight,
		recorder:  recorder,
		metrics:   metrics,
		log:       log.With().Uint32("domain", cfg.Domain).Str("task", "worker").Logger(),
		now:       time.Now,
	}
}

// Run relays queued units until the context is cancelled. A submission in
// progress is finished before returning.
func (w *Worker) Run(ctx context.Context) error {
	for {
		unit, err := w.queue.Pop(ctx)
		if err != nil {
			return ctx.Err()
		}

		_ = w.Relay(ctx, unit)
	}
}

// Relay completes the unit on the destination chain if its fee covers the
// expected gas. Units older than the maximum transfer age skip the fee check.
func (w *Worker) Relay(ctx context.Context, unit *message.RelayUnit) error {
	return w.relay(ctx, unit, false)
}

// Compensate completes only the token message of the unit through the owner
// path. The recipient of the unit is not validated.
func (w *Worker) Compensate(ctx context.Context, unit *message.RelayUnit) error {
	return w.relay(ctx, unit, true)
}

func (w *Worker) relay(ctx context.Context, unit *message.RelayUnit, compensate bool) error {
	key := unit.Key()
	l := w.log.With().Str("unit", key.String()).Str("sourceTx", unit.SourceTxHash.Hex()).Logger()

	if !compensate && unit.Recipient() != w.cfg.Contract {
		l.Warn().Msgf("Skipping unit addressed to %s", message.NormalizeAddress(unit.Recipient()))
		return ErrRecipientMismatch
	}
	if !unit.Ready() {
		l.Warn().Msgf("Skipping unit with missing attestations")
		return fmt.Errorf("%w: %s", ErrUnitNotReady, key)
	}
	if !w.inflight.TryAcquire(key.String()) {
		l.Debug().Msgf("Unit already in flight")
		return ErrAlreadyInflight
	}
	defer w.inflight.Release(key.String())

	var plan submission
	if !compensate {
		var err error
		plan, err = w.plan(ctx, unit, l)
		if err != nil {
			return w.fail(l, unit, err)
		}
	}

	submitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.cfg.SubmitTimeout)
	defer cancel()

	var tx *types.Transaction
	var receipt *types.Receipt
	var err error
	if compensate {
		l.Info().Msgf("Compensating unit through owner path")
		tx, receipt, err = w.completer.ReceiveByOwner(submitCtx, unit)
	} else {
		l.Info().Msgf("Relaying unit with gas limit %d", plan.gasLimit)
		tx, receipt, err = w.completer.Receive(submitCtx, unit, plan.gasLimit)
	}
	if err != nil {
		return w.fail(l, unit, err)
	}

	w.succeed(submitCtx, l, unit, tx, receipt)
	return nil
}

// plan picks the gas limit of the submission. A zero gas limit leaves the
// estimation to the node.
func (w *Worker) plan(ctx context.Context, unit *message.RelayUnit, l zerolog.Logger) (submission, error) {
	estimate, err := w.completer.EstimateReceive(ctx, unit)
	if err != nil {
		return submission{}, err
	}

	if w.expired(unit) {
		l.Info().Msgf("Transfer from %s exceeded maximum age, relaying without fee check", unit.SourceTimestamp)
		return submission{}, nil
	}

	sourceSymbol, ok := w.cfg.NativeSymbols[unit.SourceDomain()]
	if !ok {
		return submission{}, &RelayError{Kind: Unknown, Err: fmt.Errorf("%w: %d", ErrMissingSourceSymbol, unit.SourceDomain())}
	}
	destinationSymbol := w.cfg.NativeSymbols[w.cfg.Domain]
	w.converter.RefreshQuotes(ctx, []string{sourceSymbol, destinationSymbol})

	if w.cfg.FixedGas != nil {
		return w.fixedGasPlan(unit, sourceSymbol, destinationSymbol)
	}

	gasPrice, err := w.gasPricer.SuggestGasPrice(ctx)
	if err != nil {
		return submission{}, &RelayError{Kind: Retryable, Err: err}
	}
	gasLimit, ok := w.converter.EstimateGasLimit(unit.OriginFee, sourceSymbol, destinationSymbol, gasPrice)
	if !ok {
		l.Warn().Msgf("No gas budget for fee %s, relaying with node estimation", unit.Fee())
		return submission{}, nil
	}
	if estimate > gasLimit {
		return submission{}, &RelayError{Kind: Retryable, Err: fmt.Errorf("%w: %d > %d", ErrGasBudgetExceeded, estimate, gasLimit)}
	}
	return submission{gasLimit: gasLimit}, nil
}

func (w *Worker) fixedGasPlan(unit *message.RelayUnit, sourceSymbol string, destinationSymbol string) (submission, error) {
	fee, ok := w.converter.Convert(unit.Fee(), sourceSymbol, destinationSymbol)
	if !ok {
		return submission{}, &RelayError{Kind: Retryable, Err: fmt.Errorf("no %s/%s quotes", sourceSymbol, destinationSymbol)}
	}

	minCost := decimal.NewFromBigInt(w.cfg.FixedGas.GasPrice, 0).
		Mul(decimal.NewFromInt(int64(w.cfg.FixedGas.BaseGas))).
		Mul(decimal.NewFromFloat(w.cfg.FixedGas.AllowDeviation))
	if decimal.NewFromBigInt(fee, 0).LessThan(minCost) {
		return submission{}, &RelayError{Kind: Retryable, Err: fmt.Errorf("%w: %s < %s", ErrInsufficientFee, fee, minCost.BigInt())}
	}
	return submission{}, nil
}

func (w *Worker) expired(unit *message.RelayUnit) bool {
	if unit.SourceTimestamp.IsZero() || w.cfg.MaxTransferAge <= 0 {
		return false
	}
	return w.now().Sub(unit.SourceTimestamp) > w.cfg.MaxTransferAge
}

func (w *Worker) fail(l zerolog.Logger, unit *message.RelayUnit, err error) error {
	relayErr := ClassifyError(err)
	w.metrics.TrackFailure(w.cfg.Domain, relayErr.Kind.String())

	switch relayErr.Kind {
	case Terminal:
		l.Error().Err(err).Msgf("Relay failed permanently, dropping unit")
		if err := w.ledger.MarkFailed(unit.Key(), unit.SourceTxHash, err.Error()); err != nil {
			l.Err(err).Msgf("Failed recording relay failure")
		}
	case Retryable:
		l.Warn().Err(err).Msgf("Relay deferred")
	default:
		l.Error().Err(err).Msgf("Relay failed with unclassified error")
	}
	return relayErr
}

func (w *Worker) succeed(ctx context.Context, l zerolog.Logger, unit *message.RelayUnit, tx *types.Transaction, receipt *types.Receipt) {
	l.Info().Str("destinationTx", tx.Hash().Hex()).Msgf("Relayed unit, used %d gas", receipt.GasUsed)
	w.metrics.TrackRelayed(unit.SourceDomain(), w.cfg.Domain, time.Since(unit.DiscoveredAt))

	if err := w.ledger.MarkRelayed(unit.Key(), unit.SourceTxHash, tx.Hash()); err != nil {
		l.Err(err).Msgf("Failed recording relay")
	}

	gasPrice := receipt.EffectiveGasPrice
	if gasPrice == nil {
		gasPrice = tx.GasPrice()
	}
	spent := new(big.Int).Mul(new(big.Int).SetUint64(receipt.GasUsed), gasPrice)
	sent, _ := w.converter.ValueUSD(unit.Fee(), w.cfg.NativeSymbols[unit.SourceDomain()])
	actual, _ := w.converter.ValueUSD(spent, w.cfg.NativeSymbols[w.cfg.Domain])
	err := w.recorder.Record(ctx, telemetry.GasRecord{
		RecordTime:        w.now(),
		SourceDomain:      unit.SourceDomain(),
		DestinationDomain: w.cfg.Domain,
		GasUsed:           receipt.GasUsed,
		GasPrice:          gasPrice,
		SentValue:         sent,
		ActualValue:       actual,
		SourceTxHash:      unit.SourceTxHash.Hex(),
		DestinationTxHash: tx.Hash().Hex(),
	})
	if err != nil {
		l.Warn().Err(err).Msgf("Failed recording gas usage")
	}
}

package relay_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/sprintertech/cctp-relayer/cache"
	"github.com/sprintertech/cctp-relayer/ledger"
	"github.com/sprintertech/cctp-relayer/relay"
	mock_relay "github.com/sprintertech/cctp-relayer/relay/mock"
	"github.com/sprintertech/cctp-relayer/telemetry"
)

type WorkerTestSuite struct {
	suite.Suite

	worker        *relay.Worker
	cfg           relay.WorkerConfig
	queue         *relay.Queue
	ledger        *ledger.Ledger
	inflight      *cache.InflightCache
	cancel        context.CancelFunc
	mockCompleter *mock_relay.MockCompleter
	mockGasPricer *mock_relay.MockGasPricer
	mockConverter *mock_relay.MockFeeConverter
	mockRecorder  *mock_relay.MockGasRecorder
	mockMetrics   *mock_relay.MockRelayMetrics

	tx      *types.Transaction
	receipt *types.Receipt
}

func TestRunWorkerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerTestSuite))
}

func (s *WorkerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockCompleter = mock_relay.NewMockCompleter(ctrl)
	s.mockGasPricer = mock_relay.NewMockGasPricer(ctrl)
	s.mockConverter = mock_relay.NewMockFeeConverter(ctrl)
	s.mockRecorder = mock_relay.NewMockGasRecorder(ctrl)
	s.mockMetrics = mock_relay.NewMockRelayMetrics(ctrl)
	s.mockMetrics.EXPECT().TrackRelayed(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().TrackFailure(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockConverter.EXPECT().RefreshQuotes(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockConverter.EXPECT().ValueUSD(gomock.Any(), gomock.Any()).Return(decimal.NewFromInt(1), true).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.inflight = cache.NewInflightCache(ctx, time.Minute)
	s.queue = relay.NewQueue(10, 10)
	s.ledger = ledger.NewLedger(ledger.NewMemoryStore())
	s.cfg = relay.WorkerConfig{
		Domain:   6,
		Contract: relayContract,
		NativeSymbols: map[uint32]string{
			1: "AVAX",
			3: "ETH",
			6: "ETH",
		},
		MaxTransferAge: 7 * 24 * time.Hour,
		SubmitTimeout:  time.Second,
	}
	s.worker = s.newWorker()

	s.tx = types.NewTx(&types.LegacyTx{Nonce: 1, GasPrice: big.NewInt(1e9)})
	s.receipt = &types.Receipt{
		Status:            types.ReceiptStatusSuccessful,
		GasUsed:           180000,
		EffectiveGasPrice: big.NewInt(1e9),
	}
}

func (s *WorkerTestSuite) TearDownTest() {
	s.cancel()
}

func (s *WorkerTestSuite) newWorker() *relay.Worker {
	return relay.NewWorker(
		s.cfg,
		s.queue,
		s.mockCompleter,
		s.mockGasPricer,
		s.mockConverter,
		s.ledger,
		s.inflight,
		s.mockRecorder,
		s.mockMetrics,
	)
}

func (s *WorkerTestSuite) Test_Relay_RecipientMismatch() {
	unit := readyUnit(3, 6, 10)
	unit.PayloadMessage.Recipient = unit.TokenMessage.Recipient

	err := s.worker.Relay(context.Background(), unit)

	s.True(errors.Is(err, relay.ErrRecipientMismatch))
}

func (s *WorkerTestSuite) Test_Relay_MissingAttestations() {
	unit := testUnit(3, 6, 10)
	unit.TokenMessage.Attestation = []byte{1}

	err := s.worker.Relay(context.Background(), unit)

	s.True(errors.Is(err, relay.ErrUnitNotReady))
	s.Equal(0, s.inflight.Len())
}

func (s *WorkerTestSuite) Test_Relay_AlreadyInflight() {
	unit := readyUnit(3, 6, 10)
	s.True(s.inflight.TryAcquire(unit.Key().String()))

	err := s.worker.Relay(context.Background(), unit)

	s.True(errors.Is(err, relay.ErrAlreadyInflight))
}

func (s *WorkerTestSuite) Test_Relay_Successful() {
	unit := readyUnit(3, 6, 10)
	s.mockCompleter.EXPECT().EstimateReceive(gomock.Any(), unit).Return(uint64(200000), nil)
	s.mockGasPricer.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1e9), nil)
	s.mockConverter.EXPECT().EstimateGasLimit(unit.OriginFee, "ETH", "ETH", big.NewInt(1e9)).Return(uint64(1000000), true)
	s.mockCompleter.EXPECT().Receive(gomock.Any(), unit, uint64(1000000)).Return(s.tx, s.receipt, nil)
	s.mockRecorder.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, rec telemetry.GasRecord) error {
		s.Equal(uint32(3), rec.SourceDomain)
		s.Equal(uint32(6), rec.DestinationDomain)
		s.Equal(s.tx.Hash().Hex(), rec.DestinationTxHash)
		s.Equal(uint64(180000), rec.GasUsed)
		s.Equal(big.NewInt(1e9), rec.GasPrice)
		return nil
	})

	err := s.worker.Relay(context.Background(), unit)

	s.Nil(err)
	entry, _ := s.ledger.Entry(unit.Key())
	s.Equal(ledger.StatusRelayed, entry.Status)
	s.Equal(s.tx.Hash().Hex(), entry.DestinationTxHash)
	s.Equal(0, s.inflight.Len())
}

func (s *WorkerTestSuite) Test_Relay_GasBudgetExceeded() {
	unit := readyUnit(3, 6, 10)
	s.mockCompleter.EXPECT().EstimateReceive(gomock.Any(), unit).Return(uint64(600000), nil)
	s.mockGasPricer.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1e9), nil)
	s.mockConverter.EXPECT().EstimateGasLimit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(uint64(500000), true)

	err := s.worker.Relay(context.Background(), unit)

	var relayErr *relay.RelayError
	s.True(errors.As(err, &relayErr))
	s.Equal(relay.Retryable, relayErr.Kind)
	s.True(errors.Is(err, relay.ErrGasBudgetExceeded))
	entry, _ := s.ledger.Entry(unit.Key())
	s.Nil(entry)
}

func (s *WorkerTestSuite) Test_Relay_NoGasBudget() {
	unit := readyUnit(3, 6, 10)
	unit.OriginFee = nil
	s.mockCompleter.EXPECT().EstimateReceive(gomock.Any(), unit).Return(uint64(200000), nil)
	s.mockGasPricer.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1e9), nil)
	s.mockConverter.EXPECT().EstimateGasLimit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(uint64(0), false)
	s.mockCompleter.EXPECT().Receive(gomock.Any(), unit, uint64(0)).Return(s.tx, s.receipt, nil)
	s.mockRecorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	err := s.worker.Relay(context.Background(), unit)

	s.Nil(err)
	entry, _ := s.ledger.Entry(unit.Key())
	s.Equal(ledger.StatusRelayed, entry.Status)
}

func (s *WorkerTestSuite) Test_Relay_TerminalRevertMarksFailed() {
	unit := readyUnit(3, 6, 10)
	s.mockCompleter.EXPECT().EstimateReceive(gomock.Any(), unit).Return(uint64(0), errors.New("gas estimation failed: execution reverted: Nonce already used"))

	err := s.worker.Relay(context.Background(), unit)

	var relayErr *relay.RelayError
	s.True(errors.As(err, &relayErr))
	s.Equal(relay.Terminal, relayErr.Kind)
	entry, _ := s.ledger.Entry(unit.Key())
	s.Equal(ledger.StatusFailed, entry.Status)
}

func (s *WorkerTestSuite) Test_Relay_UnknownSubmissionErrorKeepsLedger() {
	unit := readyUnit(3, 6, 10)
	s.mockCompleter.EXPECT().EstimateReceive(gomock.Any(), unit).Return(uint64(200000), nil)
	s.mockGasPricer.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1e9), nil)
	s.mockConverter.EXPECT().EstimateGasLimit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(uint64(1000000), true)
	s.mockCompleter.EXPECT().Receive(gomock.Any(), unit, uint64(1000000)).Return(s.tx, s.receipt, errors.New("transaction reverted: 0x01"))

	err := s.worker.Relay(context.Background(), unit)

	var relayErr *relay.RelayError
	s.True(errors.As(err, &relayErr))
	s.Equal(relay.Unknown, relayErr.Kind)
	entry, _ := s.ledger.Entry(unit.Key())
	s.Nil(entry)
}

func (s *WorkerTestSuite) Test_Relay_ExpiredTransferSkipsFeeCheck() {
	unit := readyUnit(3, 6, 10)
	unit.SourceTimestamp = time.Now().Add(-8 * 24 * time.Hour)
	s.mockCompleter.EXPECT().EstimateReceive(gomock.Any(), unit).Return(uint64(200000), nil)
	s.mockCompleter.EXPECT().Receive(gomock.Any(), unit, uint64(0)).Return(s.tx, s.receipt, nil)
	s.mockRecorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	err := s.worker.Relay(context.Background(), unit)

	s.Nil(err)
	entry, _ := s.ledger.Entry(unit.Key())
	s.Equal(ledger.StatusRelayed, entry.Status)
}

func (s *WorkerTestSuite) Test_Relay_UnknownSourceSymbol() {
	unit := readyUnit(4, 6, 10)
	s.mockCompleter.EXPECT().EstimateReceive(gomock.Any(), unit).Return(uint64(200000), nil)

	err := s.worker.Relay(context.Background(), unit)

	s.True(errors.Is(err, relay.ErrMissingSourceSymbol))
	entry, _ := s.ledger.Entry(unit.Key())
	s.Nil(entry)
}

func (s *WorkerTestSuite) Test_Relay_FixedGasInsufficientFee() {
	s.cfg.FixedGas = &relay.FixedGasPolicy{
		BaseGas:        1880000,
		GasPrice:       big.NewInt(150000000),
		AllowDeviation: 0.97,
	}
	s.worker = s.newWorker()
	unit := readyUnit(3, 6, 10)
	s.mockCompleter.EXPECT().EstimateReceive(gomock.Any(), unit).Return(uint64(200000), nil)
	s.mockConverter.EXPECT().Convert(unit.OriginFee, "ETH", "ETH").Return(big.NewInt(1e11), true)

	err := s.worker.Relay(context.Background(), unit)

	s.True(errors.Is(err, relay.ErrInsufficientFee))
}

func (s *WorkerTestSuite) Test_Relay_FixedGasSubmitsWithoutLimit() {
	s.cfg.FixedGas = &relay.FixedGasPolicy{
		BaseGas:        1880000,
		GasPrice:       big.NewInt(150000000),
		AllowDeviation: 0.97,
	}
	s.worker = s.newWorker()
	unit := readyUnit(3, 6, 10)
	s.mockCompleter.EXPECT().EstimateReceive(gomock.Any(), unit).Return(uint64(200000), nil)
	s.mockConverter.EXPECT().Convert(unit.OriginFee, "ETH", "ETH").Return(big.NewInt(1e15), true)
	s.mockCompleter.EXPECT().Receive(gomock.Any(), unit, uint64(0)).Return(s.tx, s.receipt, nil)
	s.mockRecorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	err := s.worker.Relay(context.Background(), unit)

	s.Nil(err)
}

func (s *WorkerTestSuite) Test_Compensate_UsesOwnerPath() {
	unit := readyUnit(3, 6, 10)
	unit.PayloadMessage.Recipient = unit.TokenMessage.Recipient
	s.mockCompleter.EXPECT().ReceiveByOwner(gomock.Any(), unit).Return(s.tx, s.receipt, nil)
	s.mockRecorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("error"))

	err := s.worker.Compensate(context.Background(), unit)

	s.Nil(err)
}

func (s *WorkerTestSuite) Test_Run_RelaysQueuedUnits() {
	unit := readyUnit(3, 6, 10)
	relayed := make(chan struct{})
	s.mockCompleter.EXPECT().EstimateReceive(gomock.Any(), unit).Return(uint64(200000), nil)
	s.mockGasPricer.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1e9), nil)
	s.mockConverter.EXPECT().EstimateGasLimit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(uint64(1000000), true)
	s.mockCompleter.EXPECT().Receive(gomock.Any(), unit, uint64(1000000)).Return(s.tx, s.receipt, nil)
	s.mockRecorder.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, rec telemetry.GasRecord) error {
		close(relayed)
		return nil
	})
	s.queue.Push(unit)

	ctx, cancel := context.WithCancel(context.Background())
	errChn := make(chan error)
	go func() {
		errChn <- s.worker.Run(ctx)
	}()

	select {
	case <-relayed:
	case <-time.After(time.Second):
		s.Fail("unit not relayed")
	}
	cancel()
	s.True(errors.Is(<-errChn, context.Canceled))
}

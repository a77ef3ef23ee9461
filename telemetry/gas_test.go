package telemetry_test

import (
	"context"
	"math/big"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/sprintertech/cctp-relayer/telemetry"
)

type GasRecorderTestSuite struct {
	suite.Suite

	recorder *telemetry.GasRecorder
}

func TestRunGasRecorderTestSuite(t *testing.T) {
	suite.Run(t, new(GasRecorderTestSuite))
}

func (s *GasRecorderTestSuite) SetupTest() {
	recorder, err := telemetry.OpenGasRecorder(filepath.Join(s.T().TempDir(), "gas.db"), telemetry.DEFAULT_WINDOW)
	s.Require().Nil(err)
	s.recorder = recorder
}

func (s *GasRecorderTestSuite) TearDownTest() {
	_ = s.recorder.Close()
}

func (s *GasRecorderTestSuite) Test_Window_Empty() {
	records, err := s.recorder.Window(context.Background(), time.Now())

	s.Nil(err)
	s.Len(records, 0)
}

func (s *GasRecorderTestSuite) Test_Record_GroupsByWindow() {
	now := time.Unix(1700000000, 0)
	first := telemetry.GasRecord{
		RecordTime:        now,
		SourceDomain:      3,
		DestinationDomain: 6,
		GasUsed:           180000,
		GasPrice:          big.NewInt(1e9),
		SentValue:         decimal.RequireFromString("1.25"),
		ActualValue:       decimal.RequireFromString("0.75"),
		SourceTxHash:      "0x01",
		DestinationTxHash: "0x02",
	}
	later := first
	later.RecordTime = now.Add(2 * telemetry.DEFAULT_WINDOW)
	later.SourceTxHash = "0x03"

	s.Nil(s.recorder.Record(context.Background(), first))
	s.Nil(s.recorder.Record(context.Background(), later))

	records, err := s.recorder.Window(context.Background(), now)
	s.Nil(err)
	s.Len(records, 1)
	s.Equal("0x01", records[0].SourceTxHash)
	s.Equal(uint32(6), records[0].DestinationDomain)
	s.True(decimal.RequireFromString("0.5").Equal(records[0].Diff()))
	s.Equal(now.Unix(), records[0].RecordTime.Unix())
	s.Equal(uint64(180000), records[0].GasUsed)
	s.Equal(big.NewInt(1e9), records[0].GasPrice)
}

func (s *GasRecorderTestSuite) Test_Record_MissingGasPrice() {
	now := time.Unix(1700000000, 0)

	s.Nil(s.recorder.Record(context.Background(), telemetry.GasRecord{RecordTime: now}))

	records, err := s.recorder.Window(context.Background(), now)
	s.Nil(err)
	s.Len(records, 1)
	s.Equal(0, records[0].GasPrice.Sign())
}

package index_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/sprintertech/cctp-relayer/protocol/index"
)

type PendingIndexTestSuite struct {
	suite.Suite

	response   string
	status     int
	query      string
	testServer *httptest.Server
	index      *index.PendingIndex
}

func TestRunPendingIndexTestSuite(t *testing.T) {
	suite.Run(t, new(PendingIndexTestSuite))
}

func (s *PendingIndexTestSuite) SetupTest() {
	s.status = http.StatusOK
	s.testServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != index.PENDING_TRANSFERS_PATH {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		s.query = r.URL.Query().Get("dstDomain")
		w.WriteHeader(s.status)
		_, _ = w.Write([]byte(s.response))
	}))
	s.index = index.NewPendingIndex(s.testServer.URL)
}

func (s *PendingIndexTestSuite) TearDownTest() {
	s.testServer.Close()
}

func (s *PendingIndexTestSuite) Test_PendingTransfers_InvalidStatusCode() {
	s.status = http.StatusBadGateway

	_, err := s.index.PendingTransfers(context.Background(), 6)

	s.NotNil(err)
}

func (s *PendingIndexTestSuite) Test_PendingTransfers_InvalidJSON() {
	s.response = `{"record":[`

	_, err := s.index.PendingTransfers(context.Background(), 6)

	s.NotNil(err)
}

func (s *PendingIndexTestSuite) Test_PendingTransfers_EmptyResponse() {
	s.response = `{}`

	transfers, err := s.index.PendingTransfers(context.Background(), 6)

	s.Nil(err)
	s.Len(transfers, 0)
	s.Equal("6", s.query)
}

func (s *PendingIndexTestSuite) Test_PendingTransfers_SortedAndFiltered() {
	s.response = `{"record":[
		{"chainName":"arbitrum","extrinsicHash":"0x0000000000000000000000000000000000000000000000000000000000000002","srcChainId":3,"dstDomain":6,"sequence":12,"blockTimestamp":200},
		{"chainName":"avax","extrinsicHash":"0x0000000000000000000000000000000000000000000000000000000000000001","srcDomain":1,"sequence":7,"blockTimestamp":100},
		{"chainName":"base","extrinsicHash":"0x0000000000000000000000000000000000000000000000000000000000000003","srcDomain":0,"dstDomain":2,"blockTimestamp":50},
		{"chainName":"broken","extrinsicHash":"0x12","srcDomain":0,"blockTimestamp":10}
	]}`

	transfers, err := s.index.PendingTransfers(context.Background(), 6)

	s.Nil(err)
	s.Len(transfers, 2)
	s.Equal(common.HexToHash("0x1"), transfers[0].SourceTxHash)
	s.Equal(uint32(1), transfers[0].SourceDomain)
	s.Equal(uint64(7), transfers[0].Sequence)
	s.Nil(transfers[0].DestinationDomain)
	s.Equal(time.Unix(100, 0), transfers[0].BlockTimestamp)
	s.Equal(uint32(3), transfers[1].SourceDomain)
	s.Equal(uint32(6), *transfers[1].DestinationDomain)
	s.Equal("arbitrum", transfers[1].ChainName)
}

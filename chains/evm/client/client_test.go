package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sprintertech/cctp-relayer/chains/evm/client"
)

type rpcRequest struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
}

type EVMClientTestSuite struct {
	suite.Suite

	testServer *httptest.Server
	chainID    atomic.Value
}

func TestRunEVMClientTestSuite(t *testing.T) {
	suite.Run(t, new(EVMClientTestSuite))
}

func (s *EVMClientTestSuite) SetupTest() {
	s.chainID.Store("0xa")
	s.testServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := new(rpcRequest)
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if req.Method != "eth_chainId" {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"jsonrpc": "2.0",
				"id":      req.ID,
				"error":   map[string]interface{}{"code": -32601, "message": "method not found"},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  s.chainID.Load(),
		})
	}))
}

func (s *EVMClientTestSuite) TearDownTest() {
	s.testServer.Close()
}

func (s *EVMClientTestSuite) Test_NewEVMClient_NoEndpoints() {
	_, err := client.NewEVMClient(context.Background(), []string{}, "", time.Second)

	s.NotNil(err)
}

func (s *EVMClientTestSuite) Test_NewEVMClient_InvalidKey() {
	_, err := client.NewEVMClient(context.Background(), []string{s.testServer.URL}, "invalid", time.Second)

	s.NotNil(err)
}

func (s *EVMClientTestSuite) Test_NewEVMClient_ConnectsReadOnly() {
	c, err := client.NewEVMClient(context.Background(), []string{s.testServer.URL}, "", time.Second)
	s.Require().Nil(err)
	defer c.Close()

	s.Equal(int64(10), c.ChainID().Int64())
	s.Equal(s.testServer.URL, c.Endpoint())
	s.NotNil(c.Core())
	s.Nil(c.Healthy(context.Background()))

	_, err = c.Transactor(context.Background())
	s.NotNil(err)
}

func (s *EVMClientTestSuite) Test_Healthy_ChainIDChanged() {
	c, err := client.NewEVMClient(context.Background(), []string{s.testServer.URL}, "", time.Second)
	s.Require().Nil(err)
	defer c.Close()

	s.chainID.Store("0xb")
	err = c.Healthy(context.Background())

	s.True(errors.Is(err, client.ErrChainIDMismatch))
}

func (s *EVMClientTestSuite) Test_Reconnect_SwapsCoreClient() {
	c, err := client.NewEVMClient(context.Background(), []string{s.testServer.URL}, "", time.Second)
	s.Require().Nil(err)
	defer c.Close()
	previous := c.Core()

	err = c.Reconnect(context.Background())

	s.Nil(err)
	s.NotSame(previous, c.Core())
}

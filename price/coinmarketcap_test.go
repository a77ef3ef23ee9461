package price_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/sprintertech/cctp-relayer/price"
)

type CoinmarketcapAPITestSuite struct {
	suite.Suite
	api        *price.CoinmarketcapAPI
	testServer *httptest.Server
}

func TestRunCoinmarketcapAPITestSuite(t *testing.T) {
	suite.Run(t, new(CoinmarketcapAPITestSuite))
}

func (s *CoinmarketcapAPITestSuite) SetupTest() {
	s.testServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-CMC_PRO_API_KEY") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if r.URL.Path == "/v1/cryptocurrency/quotes/latest" {
			switch r.URL.Query().Get("symbol") {
			case "ETH":
				w.WriteHeader(http.StatusOK)
				_, _ = io.WriteString(w, `{"status":{"error_code":0},"data":{"ETH":{"quote":{"USD":{"price":3012.55}}}}}`)
				return
			case "AVAX":
				w.WriteHeader(http.StatusOK)
				_, _ = io.WriteString(w, `{"status":{"error_code":0},"data":{}}`)
				return
			}
		}

		w.WriteHeader(http.StatusBadRequest)
	}))

	s.api = price.NewCoinmarketcapAPI(s.testServer.URL, "test-api-key")
}

func (s *CoinmarketcapAPITestSuite) TearDownTest() {
	s.testServer.Close()
}

func (s *CoinmarketcapAPITestSuite) TestTokenPrice_Success() {
	p, err := s.api.TokenPrice(context.Background(), "ETH")

	s.Nil(err)
	s.True(decimal.RequireFromString("3012.55").Equal(p))
}

func (s *CoinmarketcapAPITestSuite) TestTokenPrice_MissingQuote() {
	p, err := s.api.TokenPrice(context.Background(), "AVAX")

	s.NotNil(err)
	s.True(p.IsZero())
}

func (s *CoinmarketcapAPITestSuite) TestTokenPrice_InvalidSymbol() {
	p, err := s.api.TokenPrice(context.Background(), "INVALID")

	s.NotNil(err)
	s.True(p.IsZero())
}

func (s *CoinmarketcapAPITestSuite) TestTokenPrice_APIError() {
	s.testServer.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"status": {"error_code": 500, "error_message": "Internal Server Error"}}`)
	})

	p, err := s.api.TokenPrice(context.Background(), "ETH")

	s.NotNil(err)
	s.Contains(err.Error(), "HTTP request failed with status code 500")
	s.True(p.IsZero())
}

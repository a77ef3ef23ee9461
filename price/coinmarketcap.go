package price

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	COINMARKETCAP_URL     = "https://pro-api.coinmarketcap.com"
	COINMARKETCAP_TIMEOUT = 10 * time.Second
)

type CoinmarketcapResponse struct {
	Status struct {
		ErrorCode    int    `json:"error_code"`
		ErrorMessage string `json:"error_message"`
	} `json:"status"`
	Data map[string]struct {
		Quote struct {
			USD struct {
				Price decimal.Decimal `json:"price"`
			} `json:"USD"`
		} `json:"quote"`
	} `json:"data"`
}

// CoinmarketcapAPI quotes native assets in USD.
type CoinmarketcapAPI struct {
	HTTPClient *http.Client

	url    string
	apiKey string
}

func NewCoinmarketcapAPI(url string, apiKey string) *CoinmarketcapAPI {
	return &CoinmarketcapAPI{
		HTTPClient: &http.Client{
			Timeout: COINMARKETCAP_TIMEOUT,
		},
		url:    strings.TrimSuffix(url, "/"),
		apiKey: apiKey,
	}
}

func (c *CoinmarketcapAPI) TokenPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/v1/cryptocurrency/quotes/latest?symbol=%s", c.url, symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, err
	}
	req.Header.Set("Accepts", "application/json")
	req.Header.Set("X-CMC_PRO_API_KEY", c.apiKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("HTTP request failed with status code %d", resp.StatusCode)
	}

	response, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, err
	}
	var cmcResponse CoinmarketcapResponse
	err = json.Unmarshal(response, &cmcResponse)
	if err != nil {
		return decimal.Zero, err
	}

	if cmcResponse.Status.ErrorCode != 0 {
		return decimal.Zero, fmt.Errorf("API Error: %d - %s", cmcResponse.Status.ErrorCode, cmcResponse.Status.ErrorMessage)
	}

	quote, ok := cmcResponse.Data[symbol]
	if !ok || !quote.Quote.USD.Price.IsPositive() {
		return decimal.Zero, fmt.Errorf("no USD quote for %s", symbol)
	}
	return quote.Quote.USD.Price, nil
}

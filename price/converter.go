package price

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var weiPerEther = decimal.New(1, 18)

type TokenPricer interface {
	TokenPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
}

type Quote struct {
	Symbol    string
	USD       decimal.Decimal
	FetchedAt time.Time
}

// Converter values native asset amounts across chains using cached USD quotes.
// Quotes older than the stale tolerance are never used.
type Converter struct {
	pricer          TokenPricer
	quotes          *ttlcache.Cache[string, Quote]
	refreshInterval time.Duration
	staleTolerance  time.Duration
	maxGasLimit     uint64

	lock sync.Mutex
	now  func() time.Time
}

func NewConverter(
	pricer TokenPricer,
	refreshInterval time.Duration,
	staleTolerance time.Duration,
	maxGasLimit uint64,
) *Converter {
	return &Converter{
		pricer:          pricer,
		quotes:          ttlcache.New(ttlcache.WithTTL[string, Quote](staleTolerance)),
		refreshInterval: refreshInterval,
		staleTolerance:  staleTolerance,
		maxGasLimit:     maxGasLimit,
		now:             time.Now,
	}
}

// RefreshQuotes fetches quotes for symbols whose cached quote is older than the
// refresh interval. Failed fetches keep the previous quote.
func (c *Converter) RefreshQuotes(ctx context.Context, symbols []string) {
	c.lock.Lock()
	defer c.lock.Unlock()

	for _, symbol := range symbols {
		item := c.quotes.Get(symbol)
		if item != nil && c.now().Sub(item.Value().FetchedAt) < c.refreshInterval {
			continue
		}

		usd, err := c.pricer.TokenPrice(ctx, symbol)
		if err != nil {
			log.Warn().Err(err).Msgf("Failed refreshing %s price", symbol)
			continue
		}

		c.quotes.Set(symbol, Quote{
			Symbol:    symbol,
			USD:       usd,
			FetchedAt: c.now(),
		}, ttlcache.DefaultTTL)
	}
}

// Quote returns the cached quote if it is within the stale tolerance.
func (c *Converter) Quote(symbol string) (Quote, bool) {
	item := c.quotes.Get(symbol)
	if item == nil {
		return Quote{}, false
	}

	q := item.Value()
	if c.now().Sub(q.FetchedAt) > c.staleTolerance {
		return Quote{}, false
	}
	return q, true
}

// Convert converts an amount of the source native asset into the destination
// native asset. Both assets are assumed to have 18 decimals.
func (c *Converter) Convert(amount *big.Int, from string, to string) (*big.Int, bool) {
	if amount == nil {
		return nil, false
	}
	if from == to {
		return new(big.Int).Set(amount), true
	}

	fromQuote, ok := c.Quote(from)
	if !ok {
		return nil, false
	}
	toQuote, ok := c.Quote(to)
	if !ok {
		return nil, false
	}

	converted := decimal.NewFromBigInt(amount, 0).Mul(fromQuote.USD).Div(toQuote.USD)
	return converted.BigInt(), true
}

// ValueUSD returns the USD value of a native asset amount in wei.
func (c *Converter) ValueUSD(amount *big.Int, symbol string) (decimal.Decimal, bool) {
	if amount == nil {
		return decimal.Zero, false
	}

	q, ok := c.Quote(symbol)
	if !ok {
		return decimal.Zero, false
	}
	return decimal.NewFromBigInt(amount, 0).Mul(q.USD).Div(weiPerEther), true
}

// EstimateGasLimit converts the origin fee into the destination native asset and
// returns how much gas it buys at the given gas price, capped at the configured
// maximum. It returns false when no usable limit can be derived.
func (c *Converter) EstimateGasLimit(fee *big.Int, from string, to string, gasPrice *big.Int) (uint64, bool) {
	if fee == nil || fee.Sign() <= 0 || gasPrice == nil || gasPrice.Sign() <= 0 {
		return 0, false
	}

	converted, ok := c.Convert(fee, from, to)
	if !ok {
		log.Warn().Msgf("No fresh %s/%s quotes to estimate gas limit", from, to)
		return 0, false
	}

	gasLimit := new(big.Int).Div(converted, gasPrice)
	if gasLimit.Sign() == 0 {
		log.Warn().Msgf("Fee %s %s buys no gas at %s", fee, from, gasPrice)
		return 0, false
	}
	if !gasLimit.IsUint64() || gasLimit.Uint64() > c.maxGasLimit {
		return c.maxGasLimit, true
	}
	return gasLimit.Uint64(), true
}

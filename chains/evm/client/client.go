package client

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"
	coreClient "github.com/sygmaprotocol/sygma-core/chains/evm/client"
)

const (
	DIAL_ATTEMPTS     = 3
	DIAL_RETRY_DELAY  = time.Second
	READ_ATTEMPTS     = 3
	READ_RETRY_DELAY  = 400 * time.Millisecond
	RECEIPT_POLL_WAIT = 2 * time.Second
)

var ErrChainIDMismatch = errors.New("endpoint chain id mismatch")

// EVMClient is a reconnectable connection to one chain. The underlying core
// client is swapped on reconnect so callers always fetch it per call.
type EVMClient struct {
	endpoints []string
	timeout   time.Duration
	key       *ecdsa.PrivateKey
	from      common.Address

	lock     sync.RWMutex
	core     *coreClient.EVMClient
	endpoint string
	chainID  *big.Int
}

// NewEVMClient connects to one of the endpoints. An empty private key yields a
// read-only client.
func NewEVMClient(ctx context.Context, endpoints []string, privateKey string, timeout time.Duration) (*EVMClient, error) {
	if len(endpoints) == 0 {
		return nil, fmt.Errorf("no endpoints configured")
	}

	c := &EVMClient{
		endpoints: endpoints,
		timeout:   timeout,
	}
	if privateKey != "" {
		key, err := crypto.HexToECDSA(privateKey)
		if err != nil {
			return nil, fmt.Errorf("invalid private key: %w", err)
		}
		c.key = key
		c.from = crypto.PubkeyToAddress(key.PublicKey)
	}

	return c, c.Reconnect(ctx)
}

// Reconnect dials a random endpoint and replaces the current connection.
func (c *EVMClient) Reconnect(ctx context.Context) error {
	return retry.Do(func() error {
		// nolint:gosec
		endpoint := c.endpoints[rand.Intn(len(c.endpoints))]
		dialCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		core, err := coreClient.NewEVMClient(endpoint, nil)
		if err != nil {
			return err
		}
		chainID, err := core.ChainID(dialCtx)
		if err != nil {
			core.Close()
			return err
		}

		c.lock.Lock()
		if c.chainID != nil && c.chainID.Cmp(chainID) != 0 {
			c.lock.Unlock()
			core.Close()
			return retry.Unrecoverable(fmt.Errorf("%w: %s != %s", ErrChainIDMismatch, chainID, c.chainID))
		}
		old := c.core
		c.core = core
		c.endpoint = endpoint
		c.chainID = chainID
		c.lock.Unlock()

		if old != nil {
			old.Close()
		}
		log.Debug().Msgf("Connected to chain %s", chainID)
		return nil
	},
		retry.Context(ctx),
		retry.Attempts(DIAL_ATTEMPTS),
		retry.Delay(DIAL_RETRY_DELAY),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).Msgf("Failed connecting to chain, attempt %d", n+1)
		}),
	)
}

// Healthy checks the current connection answers with the expected chain id.
func (c *EVMClient) Healthy(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	chainID, err := c.Backend().ChainID(ctx)
	if err != nil {
		return err
	}
	if chainID.Cmp(c.ChainID()) != 0 {
		return fmt.Errorf("%w: %s != %s", ErrChainIDMismatch, chainID, c.ChainID())
	}
	return nil
}

func (c *EVMClient) Backend() *ethclient.Client {
	return c.Core().Client
}

// Core returns the client of the current endpoint for contract reads.
func (c *EVMClient) Core() *coreClient.EVMClient {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.core
}

func (c *EVMClient) ChainID() *big.Int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.chainID
}

func (c *EVMClient) Endpoint() string {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.endpoint
}

func (c *EVMClient) From() common.Address {
	return c.from
}

// Transactor returns signing options bound to the client key.
func (c *EVMClient) Transactor(ctx context.Context) (*bind.TransactOpts, error) {
	if c.key == nil {
		return nil, fmt.Errorf("client has no signing key")
	}

	opts, err := bind.NewKeyedTransactorWithChainID(c.key, c.ChainID())
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}

func (c *EVMClient) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt
	err := retry.Do(func() error {
		var err error
		receipt, err = c.Backend().TransactionReceipt(ctx, txHash)
		return err
	},
		retry.Context(ctx),
		retry.Attempts(READ_ATTEMPTS),
		retry.Delay(READ_RETRY_DELAY),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, ethereum.NotFound)
		}),
	)
	return receipt, err
}

func (c *EVMClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return c.Backend().HeaderByNumber(ctx, number)
}

func (c *EVMClient) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return c.Backend().SuggestGasPrice(ctx)
}

func (c *EVMClient) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	return c.Backend().EstimateGas(ctx, msg)
}

// WaitReceipt blocks until the transaction is mined or the context expires.
func (c *EVMClient) WaitReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt
	err := retry.Do(func() error {
		var err error
		receipt, err = c.Backend().TransactionReceipt(ctx, txHash)
		return err
	},
		retry.Context(ctx),
		retry.Attempts(0),
		retry.Delay(RECEIPT_POLL_WAIT),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	return receipt, err
}

func (c *EVMClient) Close() {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.core != nil {
		c.core.Close()
	}
}

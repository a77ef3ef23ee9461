// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog/log"
	coreClient "github.com/sygmaprotocol/sygma-core/chains/evm/client"
	coreContracts "github.com/sygmaprotocol/sygma-core/chains/evm/contracts"

	"github.com/sprintertech/cctp-relayer/chains/evm/calls/consts"
	"github.com/sprintertech/cctp-relayer/chains/evm/message"
)

var (
	ErrReverted  = errors.New("transaction reverted")
	ErrNonceUsed = errors.New("nonce already used")
)

type TransactingClient interface {
	Core() *coreClient.EVMClient
	Backend() *ethclient.Client
	From() common.Address
	Transactor(ctx context.Context) (*bind.TransactOpts, error)
	WaitReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// CCTPContract completes relay units on the destination chain facet.
type CCTPContract struct {
	address     common.Address
	transmitter common.Address
	abi         abi.ABI
	client      TransactingClient
}

func NewCCTPContract(client TransactingClient, address common.Address, transmitter common.Address) *CCTPContract {
	return &CCTPContract{
		address:     address,
		transmitter: transmitter,
		abi:         consts.CCTPFacetABI,
		client:      client,
	}
}

func (c *CCTPContract) Address() common.Address {
	return c.address
}

// ReceiveCalldata packs the completion call for the unit. Units without a
// payload message are completed with empty payload arguments.
func (c *CCTPContract) ReceiveCalldata(unit *message.RelayUnit) ([]byte, error) {
	payload, payloadAttestation := []byte{}, []byte{}
	if unit.PayloadMessage != nil {
		payload = unit.PayloadMessage.MessageBytes
		payloadAttestation = unit.PayloadMessage.Attestation
	}

	return c.abi.Pack(
		"receiveCCTPMessage",
		unit.TokenMessage.MessageBytes,
		unit.TokenMessage.Attestation,
		payload,
		payloadAttestation,
	)
}

// NonceUsed reports whether the destination message transmitter already
// received the token message of the transfer.
func (c *CCTPContract) NonceUsed(key message.Key) (bool, error) {
	transmitter := coreContracts.NewContract(c.transmitter, consts.MessageTransmitterABI, nil, c.client.Core(), nil)
	res, err := transmitter.CallContract("usedNonces", [32]byte(SourceAndNonceHash(key)))
	if err != nil {
		return false, err
	}

	used := abi.ConvertType(res[0], new(big.Int)).(*big.Int)
	return used.Sign() != 0, nil
}

// SourceAndNonceHash is the key of the transfer in the transmitter used nonces.
func SourceAndNonceHash(key message.Key) common.Hash {
	packed := make([]byte, 12)
	binary.BigEndian.PutUint32(packed[:4], key.SourceDomain)
	binary.BigEndian.PutUint64(packed[4:], key.Nonce)
	return crypto.Keccak256Hash(packed)
}

// EstimateReceive dry runs the completion call and returns the gas it needs.
// Reverts surface as errors carrying the decoded revert reason.
func (c *CCTPContract) EstimateReceive(ctx context.Context, unit *message.RelayUnit) (uint64, error) {
	used, err := c.NonceUsed(unit.Key())
	if err != nil {
		log.Warn().Err(err).Msgf("Failed checking used nonce of %s", unit.Key())
	} else if used {
		return 0, fmt.Errorf("%w: %s", ErrNonceUsed, unit.Key())
	}

	data, err := c.ReceiveCalldata(unit)
	if err != nil {
		return 0, err
	}

	gas, err := c.client.Backend().EstimateGas(ctx, ethereum.CallMsg{
		From: c.client.From(),
		To:   &c.address,
		Data: data,
	})
	if err != nil {
		return 0, WrapRevert("gas estimation", err)
	}
	return gas, nil
}

// Receive submits the completion call. A zero gas limit lets the node estimate it.
func (c *CCTPContract) Receive(ctx context.Context, unit *message.RelayUnit, gasLimit uint64) (*types.Transaction, *types.Receipt, error) {
	payload, payloadAttestation := []byte{}, []byte{}
	if unit.PayloadMessage != nil {
		payload = unit.PayloadMessage.MessageBytes
		payloadAttestation = unit.PayloadMessage.Attestation
	}

	return c.transact(
		ctx,
		gasLimit,
		"receiveCCTPMessage",
		unit.TokenMessage.MessageBytes,
		unit.TokenMessage.Attestation,
		payload,
		payloadAttestation,
	)
}

// ReceiveByOwner completes only the token message through the owner restricted
// path, used to compensate users when the paired call cannot be executed.
func (c *CCTPContract) ReceiveByOwner(ctx context.Context, unit *message.RelayUnit) (*types.Transaction, *types.Receipt, error) {
	return c.transact(
		ctx,
		0,
		"receiveCCTPMessageByOwner",
		unit.TokenMessage.MessageBytes,
		unit.TokenMessage.Attestation,
	)
}

func (c *CCTPContract) transact(ctx context.Context, gasLimit uint64, method string, args ...interface{}) (*types.Transaction, *types.Receipt, error) {
	opts, err := c.client.Transactor(ctx)
	if err != nil {
		return nil, nil, err
	}
	opts.GasLimit = gasLimit

	backend := c.client.Backend()
	contract := bind.NewBoundContract(c.address, c.abi, backend, backend, backend)
	tx, err := contract.Transact(opts, method, args...)
	if err != nil {
		return nil, nil, WrapRevert(method, err)
	}
	log.Debug().Msgf("Submitted %s transaction %s", method, tx.Hash())

	receipt, err := c.client.WaitReceipt(ctx, tx.Hash())
	if err != nil {
		return tx, nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return tx, receipt, fmt.Errorf("%w: %s", ErrReverted, tx.Hash())
	}
	return tx, receipt, nil
}

// WrapRevert adds the decoded revert reason to a failed call while keeping the
// original error in the chain.
func WrapRevert(op string, err error) error {
	reason := RevertReason(err)
	if reason == err.Error() {
		return fmt.Errorf("%s failed: %w", op, err)
	}
	return fmt.Errorf("%s failed: %s: %w", op, reason, err)
}

// RevertReason extracts the solidity revert string from a node error when it
// carries revert data, falling back to the error message.
func RevertReason(err error) string {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if data, ok := dataErr.ErrorData().(string); ok {
			raw, decodeErr := hexutil.Decode(data)
			if decodeErr == nil {
				if reason, unpackErr := abi.UnpackRevert(raw); unpackErr == nil {
					return fmt.Sprintf("execution reverted: %s", reason)
				}
			}
		}
	}
	return err.Error()
}

package message

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"

	"github.com/sprintertech/cctp-relayer/chains/evm/calls/consts"
	"github.com/sprintertech/cctp-relayer/chains/evm/calls/events"
)

var ErrNoMessages = errors.New("no cctp messages in transaction")

type ReceiptFetcher interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}

// SourceChain describes where transfer events are read from on a source domain.
// Zero addresses match events from any emitter.
type SourceChain struct {
	Client             ReceiptFetcher
	MessageTransmitter common.Address
	Contract           common.Address
}

type UnitDecoder struct {
	chains         map[uint32]SourceChain
	requirePayload bool
}

func NewUnitDecoder(chains map[uint32]SourceChain, requirePayload bool) *UnitDecoder {
	return &UnitDecoder{
		chains:         chains,
		requirePayload: requirePayload,
	}
}

// DecodeUnit fetches the source transaction receipt and decodes the relay unit it emitted.
func (d *UnitDecoder) DecodeUnit(ctx context.Context, sourceDomain uint32, txHash common.Hash) (*RelayUnit, error) {
	chain, ok := d.chains[sourceDomain]
	if !ok {
		return nil, fmt.Errorf("source domain %d not configured", sourceDomain)
	}

	receipt, err := chain.Client.TransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("failed fetching receipt %s: %w", txHash, err)
	}

	unit, err := DecodeUnitFromReceipt(receipt, chain.MessageTransmitter, chain.Contract, d.requirePayload)
	if err != nil {
		return nil, err
	}

	header, err := chain.Client.HeaderByNumber(ctx, receipt.BlockNumber)
	if err != nil {
		log.Warn().Err(err).Msgf("Failed fetching block timestamp for %s", txHash)
	} else {
		// nolint:gosec
		unit.SourceTimestamp = time.Unix(int64(header.Time), 0)
	}
	unit.SourceTxHash = txHash
	return unit, nil
}

// DecodeUnitFromReceipt extracts the transfer messages and the relay fee from
// the receipt logs in emission order. The first message is the token transfer and
// the second, if any, is its paired payload.
func DecodeUnitFromReceipt(
	receipt *types.Receipt,
	transmitter common.Address,
	contract common.Address,
	requirePayload bool,
) (*RelayUnit, error) {
	messages := make([]*TransferMessage, 0, 2)
	unit := &RelayUnit{
		SourceTxHash: receipt.TxHash,
		DiscoveredAt: time.Now(),
	}
	for _, l := range receipt.Logs {
		if len(l.Topics) == 0 {
			continue
		}

		switch l.Topics[0] {
		case events.MessageSentSig.GetTopic():
			{
				if !matchesEmitter(l.Address, transmitter) {
					continue
				}

				var event events.MessageSent
				err := consts.MessageTransmitterABI.UnpackIntoInterface(&event, "MessageSent", l.Data)
				if err != nil {
					return nil, fmt.Errorf("%w: %s", ErrMalformedMessage, err)
				}

				msg, err := DecodeTransferMessage(event.Message)
				if err != nil {
					return nil, err
				}
				messages = append(messages, msg)
			}
		case events.RelayEventSig.GetTopic():
			{
				if !matchesEmitter(l.Address, contract) {
					continue
				}

				var event events.RelayEvent
				err := consts.CCTPFacetABI.UnpackIntoInterface(&event, "RelayEvent", l.Data)
				if err != nil {
					log.Warn().Err(err).Msgf("Failed unpacking relay event in %s", receipt.TxHash)
					continue
				}
				unit.TransactionID = common.Hash(event.TransactionId)
				unit.OriginFee = event.Fee
			}
		}
	}

	if len(messages) == 0 {
		return nil, ErrNoMessages
	}
	unit.TokenMessage = &AttestedMessage{TransferMessage: messages[0]}
	if len(messages) > 1 {
		unit.PayloadMessage = &AttestedMessage{TransferMessage: messages[1]}
	} else if requirePayload {
		return nil, fmt.Errorf("%w: %s", ErrMissingPayload, receipt.TxHash)
	}

	if unit.OriginFee == nil {
		log.Warn().Msgf("Relay fee event missing in %s", receipt.TxHash)
	}
	return unit, nil
}

func matchesEmitter(emitter common.Address, expected common.Address) bool {
	return expected == (common.Address{}) || emitter == expected
}

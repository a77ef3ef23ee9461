package relay_test

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sprintertech/cctp-relayer/chains/evm/message"
)

var (
	relayContract = common.HexToAddress("0x2967e7bb9daa5711ac332caf874bd47ef99b3820")
)

func transferMessage(sourceDomain uint32, destinationDomain uint32, nonce uint64, recipient common.Address) *message.TransferMessage {
	m, _ := message.DecodeTransferMessage(message.EncodeTransferMessage(&message.TransferMessage{
		SourceDomain:      sourceDomain,
		DestinationDomain: destinationDomain,
		Nonce:             nonce,
		Recipient:         recipient,
		Body:              []byte{byte(nonce)},
	}))
	return m
}

func testUnit(sourceDomain uint32, destinationDomain uint32, nonce uint64) *message.RelayUnit {
	return &message.RelayUnit{
		TokenMessage: &message.AttestedMessage{
			TransferMessage: transferMessage(sourceDomain, destinationDomain, nonce, common.HexToAddress("0x1")),
		},
		PayloadMessage: &message.AttestedMessage{
			TransferMessage: transferMessage(sourceDomain, destinationDomain, nonce+1, relayContract),
		},
		SourceTxHash:    common.BigToHash(new(big.Int).SetUint64(nonce)),
		SourceTimestamp: time.Now(),
		OriginFee:       big.NewInt(1e15),
		DiscoveredAt:    time.Now(),
	}
}

func readyUnit(sourceDomain uint32, destinationDomain uint32, nonce uint64) *message.RelayUnit {
	unit := testUnit(sourceDomain, destinationDomain, nonce)
	unit.TokenMessage.Attestation = []byte{1}
	unit.PayloadMessage.Attestation = []byte{2}
	return unit
}

// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type EventSig string

func (es EventSig) GetTopic() common.Hash {
	return crypto.Keccak256Hash([]byte(es))
}

const (
	MessageSentSig EventSig = "MessageSent(bytes)"
	RelayEventSig  EventSig = "RelayEvent(bytes32,uint256)"
)

// MessageSent holds the raw message emitted by the message transmitter
type MessageSent struct {
	Message []byte
}

// RelayEvent holds the relay fee the user paid on the source chain
type RelayEvent struct {
	TransactionId [32]byte
	Fee           *big.Int
}

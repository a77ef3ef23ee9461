package message

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

var ErrMissingPayload = errors.New("paired payload message missing")

// Key identifies a transfer for deduplication purposes.
type Key struct {
	SourceDomain uint32
	Nonce        uint64
}

func (k Key) String() string {
	return fmt.Sprintf("cctp:%d:%d", k.SourceDomain, k.Nonce)
}

// RelayUnit is the set of messages from one source transaction that are
// completed together on the destination chain.
type RelayUnit struct {
	TokenMessage   *AttestedMessage
	PayloadMessage *AttestedMessage

	SourceTxHash    common.Hash
	SourceTimestamp time.Time
	TransactionID   common.Hash
	// OriginFee is the relay fee paid on the source chain in source native wei.
	// Nil when the source transaction emitted no fee event.
	OriginFee    *big.Int
	DiscoveredAt time.Time
}

func (u *RelayUnit) Key() Key {
	return Key{
		SourceDomain: u.TokenMessage.SourceDomain,
		Nonce:        u.TokenMessage.Nonce,
	}
}

func (u *RelayUnit) SourceDomain() uint32 {
	return u.TokenMessage.SourceDomain
}

func (u *RelayUnit) DestinationDomain() uint32 {
	return u.TokenMessage.DestinationDomain
}

// Messages returns the unit messages in submission order.
func (u *RelayUnit) Messages() []*AttestedMessage {
	if u.PayloadMessage == nil {
		return []*AttestedMessage{u.TokenMessage}
	}
	return []*AttestedMessage{u.TokenMessage, u.PayloadMessage}
}

// Ready reports whether every message of the unit carries an attestation.
func (u *RelayUnit) Ready() bool {
	for _, m := range u.Messages() {
		if !m.Attested() {
			return false
		}
	}
	return true
}

// Recipient is the destination contract expected to receive the unit.
func (u *RelayUnit) Recipient() common.Address {
	if u.PayloadMessage != nil {
		return u.PayloadMessage.Recipient
	}
	return u.TokenMessage.Recipient
}

// Fee returns the origin fee or zero when none was paid.
func (u *RelayUnit) Fee() *big.Int {
	if u.OriginFee == nil {
		return big.NewInt(0)
	}
	return u.OriginFee
}

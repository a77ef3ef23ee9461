package message

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	VERSION_INDEX            = 0
	SOURCE_DOMAIN_INDEX      = 4
	DESTINATION_DOMAIN_INDEX = 8
	NONCE_INDEX              = 12
	SENDER_INDEX             = 20
	RECIPIENT_INDEX          = 52
	DESTINATION_CALLER_INDEX = 84
	BODY_INDEX               = 116
)

var ErrMalformedMessage = errors.New("malformed cctp message")

// TransferMessage is a decoded cross-chain message emitted by the source chain
// message transmitter.
type TransferMessage struct {
	Version           uint32
	SourceDomain      uint32
	DestinationDomain uint32
	Nonce             uint64
	Sender            common.Address
	Recipient         common.Address
	DestinationCaller common.Address
	Body              []byte

	MessageBytes []byte
	MessageHash  common.Hash
}

// DecodeTransferMessage parses the fixed layout message header. Address fields
// are 32 byte words of which the last 20 bytes are the address.
func DecodeTransferMessage(data []byte) (*TransferMessage, error) {
	if len(data) < BODY_INDEX {
		return nil, fmt.Errorf("%w: length %d shorter than header", ErrMalformedMessage, len(data))
	}

	raw := common.CopyBytes(data)
	return &TransferMessage{
		Version:           binary.BigEndian.Uint32(raw[VERSION_INDEX:SOURCE_DOMAIN_INDEX]),
		SourceDomain:      binary.BigEndian.Uint32(raw[SOURCE_DOMAIN_INDEX:DESTINATION_DOMAIN_INDEX]),
		DestinationDomain: binary.BigEndian.Uint32(raw[DESTINATION_DOMAIN_INDEX:NONCE_INDEX]),
		Nonce:             binary.BigEndian.Uint64(raw[NONCE_INDEX:SENDER_INDEX]),
		Sender:            common.BytesToAddress(raw[SENDER_INDEX:RECIPIENT_INDEX]),
		Recipient:         common.BytesToAddress(raw[RECIPIENT_INDEX:DESTINATION_CALLER_INDEX]),
		DestinationCaller: common.BytesToAddress(raw[DESTINATION_CALLER_INDEX:BODY_INDEX]),
		Body:              raw[BODY_INDEX:],
		MessageBytes:      raw,
		MessageHash:       crypto.Keccak256Hash(raw),
	}, nil
}

// EncodeTransferMessage serializes the message header and body into the
// on-chain layout.
func EncodeTransferMessage(m *TransferMessage) []byte {
	data := make([]byte, BODY_INDEX, BODY_INDEX+len(m.Body))
	binary.BigEndian.PutUint32(data[VERSION_INDEX:], m.Version)
	binary.BigEndian.PutUint32(data[SOURCE_DOMAIN_INDEX:], m.SourceDomain)
	binary.BigEndian.PutUint32(data[DESTINATION_DOMAIN_INDEX:], m.DestinationDomain)
	binary.BigEndian.PutUint64(data[NONCE_INDEX:], m.Nonce)
	copy(data[SENDER_INDEX:RECIPIENT_INDEX], common.LeftPadBytes(m.Sender.Bytes(), 32))
	copy(data[RECIPIENT_INDEX:DESTINATION_CALLER_INDEX], common.LeftPadBytes(m.Recipient.Bytes(), 32))
	copy(data[DESTINATION_CALLER_INDEX:BODY_INDEX], common.LeftPadBytes(m.DestinationCaller.Bytes(), 32))
	return append(data, m.Body...)
}

// HashHex returns the lower-case 0x prefixed message hash used to query attestations.
func (m *TransferMessage) HashHex() string {
	return strings.ToLower(m.MessageHash.Hex())
}

// AttestedMessage pairs a transfer message with its attestation once issued.
type AttestedMessage struct {
	*TransferMessage

	Attestation []byte
}

func (m *AttestedMessage) Attested() bool {
	return len(m.Attestation) > 0
}

// NormalizeAddress renders an address as lower-case 0x hex.
func NormalizeAddress(address common.Address) string {
	return strings.ToLower(address.Hex())
}

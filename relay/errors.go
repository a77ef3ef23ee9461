package relay

import (
	"context"
	"errors"
	"net"
	"strings"
)

var (
	ErrQueueClosed         = errors.New("queue closed")
	ErrRecipientMismatch   = errors.New("unit recipient is not the relay contract")
	ErrGasBudgetExceeded   = errors.New("estimated gas exceeds fee budget")
	ErrInsufficientFee     = errors.New("relay fee below fixed gas cost")
	ErrForeignDestination  = errors.New("unit targets another destination domain")
	ErrAlreadyInflight     = errors.New("unit already being relayed")
	ErrUnitNotReady        = errors.New("unit is missing attestations")
	ErrMissingSourceSymbol = errors.New("source domain native symbol not configured")
)

type ErrorKind int

const (
	Unknown ErrorKind = iota
	Retryable
	Terminal
)

func (k ErrorKind) String() string {
	switch k {
	case Retryable:
		return "retryable"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

var terminalReasons = []string{
	"nonce already used",
	"already received",
	"invalid attestation",
	"invalid message",
	"invalid signature",
	"invalid destination domain",
	"invalid message version",
}

var retryableReasons = []string{
	"timeout",
	"timed out",
	"connection refused",
	"connection reset",
	"too many requests",
	"429",
	"eof",
	"nonce too low",
	"replacement transaction underpriced",
	"already known",
	"header not found",
}

// RelayError wraps a submission failure with its classification.
type RelayError struct {
	Kind ErrorKind
	Err  error
}

func (e *RelayError) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *RelayError) Unwrap() error {
	return e.Err
}

// ClassifyError decides whether a failure should be retried on a later pass,
// dropped permanently or treated conservatively as unknown.
func ClassifyError(err error) *RelayError {
	var relayErr *RelayError
	if errors.As(err, &relayErr) {
		return relayErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &RelayError{Kind: Retryable, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return &RelayError{Kind: Retryable, Err: err}
	}

	reason := strings.ToLower(err.Error())
	for _, r := range terminalReasons {
		if strings.Contains(reason, r) {
			return &RelayError{Kind: Terminal, Err: err}
		}
	}
	for _, r := range retryableReasons {
		if strings.Contains(reason, r) {
			return &RelayError{Kind: Retryable, Err: err}
		}
	}
	return &RelayError{Kind: Unknown, Err: err}
}

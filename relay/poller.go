package relay

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sprintertech/cctp-relayer/chains/evm/message"
	"github.com/sprintertech/cctp-relayer/protocol/circle"
	"github.com/sprintertech/cctp-relayer/protocol/index"
)

type PollerState string

const (
	StateIdle            PollerState = "idle"
	StatePolling         PollerState = "polling"
	StateDecoding        PollerState = "decoding"
	StateAttestationWait PollerState = "attestation-wait"
	StateEnqueued        PollerState = "enqueued"
)

type TransferIndex interface {
	PendingTransfers(ctx context.Context, destinationDomain uint32) ([]index.PendingTransfer, error)
}

type UnitDecoder interface {
	DecodeUnit(ctx context.Context, sourceDomain uint32, txHash common.Hash) (*message.RelayUnit, error)
}

type AttestationFetcher interface {
	FetchAttestation(ctx context.Context, messageHash string) (circle.AttestationResult, error)
}

type DedupLedger interface {
	Fresh(key message.Key, recheckInterval time.Duration) (bool, error)
	MarkSeen(key message.Key, sourceTx common.Hash) error
	MarkDropped(key message.Key, sourceTx common.Hash) error
	MarkFailed(key message.Key, sourceTx common.Hash, reason string) error
}

type DiscoveryMetrics interface {
	TrackDiscovered(sourceDomain uint32, destinationDomain uint32)
	TrackDropped(destinationDomain uint32, count int)
}

// Poller discovers pending transfers towards one destination domain, attaches
// their attestations and enqueues the ready relay units.
type Poller struct {
	domain   uint32
	index    TransferIndex
	decoder  UnitDecoder
	attester AttestationFetcher
	ledger   DedupLedger
	queue    *Queue
	metrics  DiscoveryMetrics

	interval        time.Duration
	recheckInterval time.Duration
	state           atomic.Value
	log             zerolog.Logger

	// skipped holds source transactions that are not decoded again while cached.
	skipped *ttlcache.Cache[common.Hash, error]
}

func NewPoller(
	domain uint32,
	index TransferIndex,
	decoder UnitDecoder,
	attester AttestationFetcher,
	ledger DedupLedger,
	queue *Queue,
	metrics DiscoveryMetrics,
	interval time.Duration,
	recheckInterval time.Duration,
) *Poller {
	p := &Poller{
		domain:          domain,
		index:           index,
		decoder:         decoder,
		attester:        attester,
		ledger:          ledger,
		queue:           queue,
		metrics:         metrics,
		interval:        interval,
		recheckInterval: recheckInterval,
		log:             log.With().Uint32("domain", domain).Str("task", "poller").Logger(),
	}
	p.skipped = ttlcache.New(
		ttlcache.WithTTL[common.Hash, error](recheckInterval),
		ttlcache.WithDisableTouchOnHit[common.Hash, error](),
	)
	p.state.Store(StateIdle)
	return p
}

func (p *Poller) State() PollerState {
	return p.state.Load().(PollerState)
}

// Run polls the index on a fixed interval until the context is cancelled.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		enqueued, err := p.Poll(ctx)
		if err != nil {
			p.log.Warn().Err(err).Msgf("Polling pending transfers failed")
		} else if enqueued > 0 {
			p.log.Info().Msgf("Enqueued %d relay units, queue depth %d", enqueued, p.queue.Len())
		}

		select {
		case <-ticker.C:
			continue
		case <-ctx.Done():
			p.state.Store(StateIdle)
			return ctx.Err()
		}
	}
}

// Poll runs one discovery cycle and returns the number of enqueued units.
// Failures of single transfers defer them to a later cycle.
func (p *Poller) Poll(ctx context.Context) (int, error) {
	p.state.Store(StatePolling)
	defer p.state.Store(StateIdle)

	transfers, err := p.index.PendingTransfers(ctx, p.domain)
	if err != nil {
		return 0, err
	}
	p.skipped.DeleteExpired()

	enqueued := 0
	processed := make(map[common.Hash]bool)
	for _, t := range transfers {
		if ctx.Err() != nil {
			return enqueued, ctx.Err()
		}
		if processed[t.SourceTxHash] || p.skipped.Has(t.SourceTxHash) {
			continue
		}
		processed[t.SourceTxHash] = true

		ok, err := p.process(ctx, t)
		if err != nil {
			p.log.Warn().Err(err).Msgf("Deferring transfer %s from domain %d", t.SourceTxHash, t.SourceDomain)
			continue
		}
		if ok {
			enqueued++
		}
	}
	return enqueued, nil
}

func (p *Poller) process(ctx context.Context, t index.PendingTransfer) (bool, error) {
	if t.Sequence != 0 {
		fresh, err := p.ledger.Fresh(message.Key{SourceDomain: t.SourceDomain, Nonce: t.Sequence}, p.recheckInterval)
		if err != nil {
			return false, err
		}
		if fresh {
			return false, nil
		}
	}

	p.state.Store(StateDecoding)
	unit, err := p.decoder.DecodeUnit(ctx, t.SourceDomain, t.SourceTxHash)
	if err != nil {
		if errors.Is(err, message.ErrMalformedMessage) {
			var key *message.Key
			if t.Sequence != 0 {
				key = &message.Key{SourceDomain: t.SourceDomain, Nonce: t.Sequence}
			}
			p.markMalformed(key, t.SourceTxHash, err)
		}
		return false, err
	}
	if unit.DestinationDomain() != p.domain {
		p.log.Debug().Msgf("Transfer %s targets domain %d, skipping", t.SourceTxHash, unit.DestinationDomain())
		p.skipped.Set(t.SourceTxHash, fmt.Errorf("%w: %d", ErrForeignDestination, unit.DestinationDomain()), ttlcache.DefaultTTL)
		return false, nil
	}

	fresh, err := p.ledger.Fresh(unit.Key(), p.recheckInterval)
	if err != nil {
		return false, err
	}
	if fresh {
		return false, nil
	}
	p.metrics.TrackDiscovered(unit.SourceDomain(), p.domain)

	p.state.Store(StateAttestationWait)
	ready, err := Attest(ctx, p.attester, unit)
	if err != nil {
		if errors.Is(err, message.ErrMalformedMessage) {
			key := unit.Key()
			p.markMalformed(&key, unit.SourceTxHash, err)
		}
		return false, err
	}
	if !ready {
		p.log.Debug().Msgf("Attestation pending for %s", unit.Key())
		return false, nil
	}

	err = p.ledger.MarkSeen(unit.Key(), unit.SourceTxHash)
	if err != nil {
		return false, err
	}
	dropped := p.queue.Push(unit)
	p.state.Store(StateEnqueued)
	if len(dropped) > 0 {
		p.log.Warn().Msgf("Queue over threshold, dropped %d oldest units", len(dropped))
		p.metrics.TrackDropped(p.domain, len(dropped))
	}
	for _, d := range dropped {
		if err := p.ledger.MarkDropped(d.Key(), d.SourceTxHash); err != nil {
			p.log.Err(err).Msgf("Failed marking %s dropped", d.Key())
		}
	}
	return true, nil
}

// markMalformed stops discovery of a transfer whose data can never be relayed.
// Transfers without a known key are only skipped for the process lifetime.
func (p *Poller) markMalformed(key *message.Key, sourceTx common.Hash, cause error) {
	p.skipped.Set(sourceTx, cause, ttlcache.NoTTL)
	if key == nil {
		return
	}

	p.log.Error().Err(cause).Msgf("Transfer %s is malformed, marking %s failed", sourceTx, key)
	if err := p.ledger.MarkFailed(*key, sourceTx, cause.Error()); err != nil {
		p.log.Err(err).Msgf("Failed marking %s failed", key)
	}
}

// Attest fetches attestations for every message of the unit. It returns false
// if any message is not yet attested.
func Attest(ctx context.Context, attester AttestationFetcher, unit *message.RelayUnit) (bool, error) {
	for _, m := range unit.Messages() {
		result, err := attester.FetchAttestation(ctx, m.HashHex())
		if err != nil {
			if errors.Is(err, circle.ErrInvalidHash) {
				return false, fmt.Errorf("%w: %s", message.ErrMalformedMessage, err)
			}
			return false, err
		}
		if result.Status != circle.AttestationComplete {
			return false, nil
		}
		m.Attestation = result.Attestation
	}
	return true, nil
}

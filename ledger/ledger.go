package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/sprintertech/cctp-relayer/chains/evm/message"
)

type Status string

const (
	StatusAttempted Status = "attempted"
	StatusRelayed   Status = "relayed"
	StatusFailed    Status = "failed"
	StatusDropped   Status = "dropped"
)

// Entry is the persisted processing record of a relay unit.
type Entry struct {
	Key               string    `json:"key"`
	Status            Status    `json:"status"`
	SourceTxHash      string    `json:"sourceTxHash"`
	DestinationTxHash string    `json:"destinationTxHash,omitempty"`
	Reason            string    `json:"reason,omitempty"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type KeyValueStore interface {
	GetByKey(key []byte) ([]byte, error)
	SetByKey(key []byte, value []byte) error
}

// Ledger records which relay units were already processed so they are not
// re-enqueued. Entries are never deleted.
type Ledger struct {
	db  KeyValueStore
	now func() time.Time
}

func NewLedger(db KeyValueStore) *Ledger {
	return &Ledger{
		db:  db,
		now: time.Now,
	}
}

// Entry returns the stored entry for the key or nil if there is none.
func (l *Ledger) Entry(key message.Key) (*Entry, error) {
	data, err := l.db.GetByKey([]byte(key.String()))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	e := new(Entry)
	if err := json.Unmarshal(data, e); err != nil {
		return nil, fmt.Errorf("corrupt ledger entry %s: %w", key, err)
	}
	return e, nil
}

// Seen reports whether the unit was enqueued or finalized. Units dropped from
// an overflowing queue are not seen.
func (l *Ledger) Seen(key message.Key) (bool, error) {
	e, err := l.Entry(key)
	if err != nil || e == nil {
		return false, err
	}
	return e.Status != StatusDropped, nil
}

// Fresh reports whether the unit should be skipped by discovery. Relayed and
// failed units are always fresh while attempted units are fresh until the
// recheck interval passes.
func (l *Ledger) Fresh(key message.Key, recheckInterval time.Duration) (bool, error) {
	e, err := l.Entry(key)
	if err != nil || e == nil {
		return false, err
	}

	switch e.Status {
	case StatusRelayed, StatusFailed:
		return true, nil
	case StatusAttempted:
		return l.now().Sub(e.UpdatedAt) < recheckInterval, nil
	default:
		return false, nil
	}
}

func (l *Ledger) MarkSeen(key message.Key, sourceTx common.Hash) error {
	return l.store(&Entry{
		Key:          key.String(),
		Status:       StatusAttempted,
		SourceTxHash: sourceTx.Hex(),
	})
}

func (l *Ledger) MarkRelayed(key message.Key, sourceTx common.Hash, destinationTx common.Hash) error {
	return l.store(&Entry{
		Key:               key.String(),
		Status:            StatusRelayed,
		SourceTxHash:      sourceTx.Hex(),
		DestinationTxHash: destinationTx.Hex(),
	})
}

func (l *Ledger) MarkFailed(key message.Key, sourceTx common.Hash, reason string) error {
	return l.store(&Entry{
		Key:          key.String(),
		Status:       StatusFailed,
		SourceTxHash: sourceTx.Hex(),
		Reason:       reason,
	})
}

func (l *Ledger) MarkDropped(key message.Key, sourceTx common.Hash) error {
	return l.store(&Entry{
		Key:          key.String(),
		Status:       StatusDropped,
		SourceTxHash: sourceTx.Hex(),
	})
}

func (l *Ledger) store(e *Entry) error {
	e.UpdatedAt = l.now()
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return l.db.SetByKey([]byte(e.Key), data)
}

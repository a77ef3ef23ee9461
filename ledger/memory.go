package ledger

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
)

// MemoryStore is a non durable store used when no ledger path is configured.
type MemoryStore struct {
	values map[string][]byte
	lock   sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string][]byte),
	}
}

func (s *MemoryStore) GetByKey(key []byte) ([]byte, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	v, ok := s.values[string(key)]
	if !ok {
		return nil, leveldb.ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) SetByKey(key []byte, value []byte) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.values[string(key)] = value
	return nil
}

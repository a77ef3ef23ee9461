package relay

import (
	"context"
	"sync"

	"github.com/sprintertech/cctp-relayer/chains/evm/message"
)

// Queue is a bounded FIFO of ready relay units for one destination domain.
// Once it holds drainThreshold units the oldest are dropped before new units are
// accepted.
type Queue struct {
	units          chan *message.RelayUnit
	drainThreshold int
	lock           sync.Mutex
}

func NewQueue(capacity int, drainThreshold int) *Queue {
	if drainThreshold <= 0 || drainThreshold > capacity {
		drainThreshold = capacity
	}
	return &Queue{
		units:          make(chan *message.RelayUnit, capacity),
		drainThreshold: drainThreshold,
	}
}

// Push enqueues the unit and returns the units dropped to make room.
func (q *Queue) Push(unit *message.RelayUnit) []*message.RelayUnit {
	q.lock.Lock()
	defer q.lock.Unlock()

	dropped := make([]*message.RelayUnit, 0)
	for len(q.units) >= q.drainThreshold {
		select {
		case u := <-q.units:
			dropped = append(dropped, u)
		default:
		}
	}

	q.units <- unit
	return dropped
}

// Pop blocks until a unit is available or the context is cancelled.
func (q *Queue) Pop(ctx context.Context) (*message.RelayUnit, error) {
	select {
	case u := <-q.units:
		return u, nil
	case <-ctx.Done():
		return nil, ErrQueueClosed
	}
}

func (q *Queue) Len() int {
	return len(q.units)
}

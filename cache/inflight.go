package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const (
	INFLIGHT_TTL = time.Minute * 10
)

// InflightCache tracks relay units currently being submitted so a unit is never
// submitted twice concurrently. Entries expire after the TTL in case a holder
// never releases them.
type InflightCache struct {
	inflight *ttlcache.Cache[string, time.Time]
	lock     sync.Mutex
}

func NewInflightCache(ctx context.Context, ttl time.Duration) *InflightCache {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, time.Time](ttl),
	)

	go cache.Start()
	go func() {
		<-ctx.Done()
		cache.Stop()
	}()
	return &InflightCache{
		inflight: cache,
	}
}

// TryAcquire marks the key in-flight and reports whether it was free.
func (c *InflightCache) TryAcquire(key string) bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.inflight.Get(key) != nil {
		return false
	}

	c.inflight.Set(key, time.Now(), ttlcache.DefaultTTL)
	return true
}

func (c *InflightCache) Release(key string) {
	c.inflight.Delete(key)
}

func (c *InflightCache) Len() int {
	return c.inflight.Len()
}

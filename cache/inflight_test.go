package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sprintertech/cctp-relayer/cache"
)

type InflightCacheTestSuite struct {
	suite.Suite

	ic     *cache.InflightCache
	cancel context.CancelFunc
}

func TestRunInflightCacheTestSuite(t *testing.T) {
	suite.Run(t, new(InflightCacheTestSuite))
}

func (s *InflightCacheTestSuite) SetupTest() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.ic = cache.NewInflightCache(ctx, time.Millisecond*100)
}

func (s *InflightCacheTestSuite) TearDownTest() {
	s.cancel()
}

func (s *InflightCacheTestSuite) Test_TryAcquire_SecondAcquireFails() {
	s.True(s.ic.TryAcquire("cctp:3:10"))
	s.False(s.ic.TryAcquire("cctp:3:10"))
	s.True(s.ic.TryAcquire("cctp:3:11"))
	s.Equal(2, s.ic.Len())
}

func (s *InflightCacheTestSuite) Test_Release_AllowsReacquire() {
	s.True(s.ic.TryAcquire("cctp:3:10"))

	s.ic.Release("cctp:3:10")

	s.True(s.ic.TryAcquire("cctp:3:10"))
}

func (s *InflightCacheTestSuite) Test_TryAcquire_ExpiredEntry() {
	s.True(s.ic.TryAcquire("cctp:3:10"))
	time.Sleep(time.Millisecond * 300)

	s.True(s.ic.TryAcquire("cctp:3:10"))
}

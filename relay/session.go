package relay

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
)

const (
	RESTART_BASE_DELAY   = time.Second
	RESTART_MAX_DELAY    = time.Minute
	RESTART_ALERT_THRESH = 5
)

type ChainConn interface {
	Healthy(ctx context.Context) error
	Reconnect(ctx context.Context) error
}

type Task interface {
	Run(ctx context.Context) error
}

type taskExit struct {
	name      string
	err       error
	recovered *panics.Recovered
	startedAt time.Time
}

// Session supervises the tasks serving one destination domain. Tasks that exit
// or panic are restarted with capped exponential backoff after the chain
// connection is re-established if needed.
type Session struct {
	domain        uint32
	conn          ChainConn
	tasks         map[string]Task
	checkInterval time.Duration
	baseDelay     time.Duration
	maxDelay      time.Duration

	log zerolog.Logger
}

func NewSession(domain uint32, conn ChainConn, tasks map[string]Task, checkInterval time.Duration) *Session {
	return &Session{
		domain:        domain,
		conn:          conn,
		tasks:         tasks,
		checkInterval: checkInterval,
		baseDelay:     RESTART_BASE_DELAY,
		maxDelay:      RESTART_MAX_DELAY,
		log:           log.With().Uint32("domain", domain).Str("task", "session").Logger(),
	}
}

func (s *Session) Domain() uint32 {
	return s.domain
}

// Start connects to the chain and supervises the session tasks until the
// context is cancelled. It waits for running tasks before returning.
func (s *Session) Start(ctx context.Context) error {
	err := s.connect(ctx)
	if err != nil {
		return err
	}

	var wg conc.WaitGroup
	defer wg.Wait()

	exits := make(chan taskExit, len(s.tasks))
	for name, t := range s.tasks {
		s.spawn(ctx, &wg, name, t, exits)
	}
	s.log.Info().Msgf("Started session with %d tasks", len(s.tasks))

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	failures := make(map[string]int)
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msgf("Stopping session")
			return ctx.Err()
		case e := <-exits:
			if ctx.Err() != nil {
				continue
			}

			if time.Since(e.startedAt) > s.checkInterval {
				failures[e.name] = 0
			}
			failures[e.name]++
			s.logExit(e, failures[e.name])

			delay := s.backoff(failures[e.name])
			wg.Go(func() {
				select {
				case <-time.After(delay):
				case <-ctx.Done():
					return
				}

				s.ensureConnected(ctx)
				s.spawn(ctx, &wg, e.name, s.tasks[e.name], exits)
			})
		case <-ticker.C:
			s.ensureConnected(ctx)
		}
	}
}

func (s *Session) spawn(ctx context.Context, wg *conc.WaitGroup, name string, t Task, exits chan taskExit) {
	startedAt := time.Now()
	wg.Go(func() {
		var pc panics.Catcher
		var err error
		pc.Try(func() {
			err = t.Run(ctx)
		})
		exits <- taskExit{
			name:      name,
			err:       err,
			recovered: pc.Recovered(),
			startedAt: startedAt,
		}
	})
}

func (s *Session) logExit(e taskExit, failures int) {
	event := s.log.Warn()
	if failures >= RESTART_ALERT_THRESH {
		event = s.log.Error()
	}

	if e.recovered != nil {
		event.Err(e.recovered.AsError()).Str("stack", string(e.recovered.Stack)).Msgf("Task %s panicked, restart %d", e.name, failures)
		return
	}
	event.Err(e.err).Msgf("Task %s exited, restart %d", e.name, failures)
}

func (s *Session) backoff(failures int) time.Duration {
	delay := s.baseDelay
	for i := 1; i < failures && delay < s.maxDelay; i++ {
		delay *= 2
	}
	if delay > s.maxDelay {
		return s.maxDelay
	}
	return delay
}

func (s *Session) connect(ctx context.Context) error {
	return retry.Do(func() error {
		err := s.conn.Healthy(ctx)
		if err == nil {
			return nil
		}
		return s.conn.Reconnect(ctx)
	},
		retry.Context(ctx),
		retry.Attempts(0),
		retry.Delay(s.baseDelay),
		retry.MaxDelay(s.maxDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			s.log.Warn().Err(err).Msgf("Failed connecting to chain, attempt %d", n+1)
		}),
	)
}

func (s *Session) ensureConnected(ctx context.Context) {
	err := s.conn.Healthy(ctx)
	if err == nil {
		return
	}

	s.log.Warn().Err(err).Msgf("Chain connection unhealthy, reconnecting")
	if err := s.conn.Reconnect(ctx); err != nil {
		s.log.Error().Err(fmt.Errorf("reconnect failed: %w", err)).Msgf("Chain connection unavailable")
	}
}

package game

import (
	"context"
	"sync"
	"time"

	"snake-classic/game/types"

	"github.com/rs/zerolog"
)

// LoopHandle controls one ticker goroutine started by StartLoop.
type LoopHandle struct {
	period time.Duration
	stop   chan struct{}
	done   chan struct{}
	once   sync.Once
}

// StartLoop ticks g every period until StopLoop is called or a tick leaves
// the game in a status other than Running.
func StartLoop(g *Game, period time.Duration) *LoopHandle {
	h := &LoopHandle{
		period: period,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	go func() {
		defer close(h.done)

		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for {
			select {
			case <-h.stop:
				return
			case <-ticker.C:
				if g.Tick() != types.Running {
					return
				}
			}
		}
	}()

	return h
}

// StopLoop stops the loop and waits for its goroutine to exit. It is safe to
// call more than once and on a loop that already ended by itself.
func StopLoop(h *LoopHandle) {
	if h == nil {
		return
	}
	h.once.Do(func() { close(h.stop) })
	<-h.done
}

// Done is closed once the loop goroutine has exited.
func (h *LoopHandle) Done() <-chan struct{} {
	return h.done
}

func (h *LoopHandle) Period() time.Duration {
	return h.period
}

// Scheduler keeps exactly one loop running while the game is Running with a
// speed selected, and none otherwise.
type Scheduler struct {
	game   *Game
	logger zerolog.Logger
	wake   chan struct{}

	mu   sync.Mutex
	loop *LoopHandle
}

func NewScheduler(g *Game, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		game:   g,
		logger: logger.With().Str("component", "scheduler").Logger(),
		wake:   make(chan struct{}, 1),
	}
}

// Run reconciles the loop with the game on every change until ctx is done,
// then stops the loop.
func (s *Scheduler) Run(ctx context.Context) {
	unsubscribe := s.game.Subscribe(func(Snapshot) { s.notify() })
	defer unsubscribe()

	s.reconcile()
	for {
		select {
		case <-ctx.Done():
			s.mu.Lock()
			StopLoop(s.loop)
			s.loop = nil
			s.mu.Unlock()
			s.logger.Debug().Msg("Scheduler stopped")
			return
		case <-s.wake:
			s.reconcile()
		}
	}
}

// notify never blocks; pending wake-ups coalesce.
func (s *Scheduler) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Scheduler) reconcile() {
	status := s.game.Status()
	period := s.game.Speed()
	want := status == types.Running && period > 0

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loop != nil {
		select {
		case <-s.loop.Done():
			s.loop = nil
		default:
		}
	}

	if s.loop != nil && (!want || s.loop.Period() != period) {
		StopLoop(s.loop)
		s.loop = nil
		s.logger.Debug().Stringer("status", status).Msg("Loop stopped")
	}

	if want && s.loop == nil {
		s.loop = StartLoop(s.game, period)
		s.logger.Debug().Dur("period", period).Msg("Loop started")
	}
}

// Active reports whether a loop is currently running.
func (s *Scheduler) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loop == nil {
		return false
	}
	select {
	case <-s.loop.Done():
		return false
	default:
		return true
	}
}

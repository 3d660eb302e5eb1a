package scroller

import (
	"sync"
	"time"
)

// FrameScheduler is the frame-callback capability the animation loop runs
// on: schedule fn to run once before the next frame, passing a monotonic
// timestamp. Frames must be delivered in increasing timestamp order.
//
// Production hosts can use a TickerScheduler or drive frames from their own
// render loop (see examples/smoothscroll); tests use fakedom.Scheduler,
// which advances frames on demand.
type FrameScheduler interface {
	RequestFrame(fn func(now time.Duration))
}

// TickerScheduler delivers frames from a time.Ticker goroutine at a fixed
// rate. Callbacks run on that goroutine, one batch per tick; a callback that
// requests another frame is serviced on the following tick.
type TickerScheduler struct {
	mu      sync.Mutex
	pending []func(time.Duration)
	ticker  *time.Ticker
	done    chan struct{}
	start   time.Time
}

// NewTickerScheduler starts a scheduler ticking fps times per second.
// Stop it when no more animations will be started.
func NewTickerScheduler(fps int) *TickerScheduler {
	if fps <= 0 {
		fps = 60
	}
	s := &TickerScheduler{
		ticker: time.NewTicker(time.Second / time.Duration(fps)),
		done:   make(chan struct{}),
		start:  time.Now(),
	}
	go s.loop()
	return s
}

// RequestFrame schedules fn for the next tick. Safe to call from any
// goroutine, including from inside a frame callback.
func (s *TickerScheduler) RequestFrame(fn func(now time.Duration)) {
	s.mu.Lock()
	s.pending = append(s.pending, fn)
	s.mu.Unlock()
}

// Stop shuts the scheduler down. Pending callbacks are dropped; animations
// in flight never complete.
func (s *TickerScheduler) Stop() {
	close(s.done)
	s.ticker.Stop()
}

func (s *TickerScheduler) loop() {
	for {
		select {
		case <-s.done:
			return
		case <-s.ticker.C:
			now := time.Since(s.start)
			s.mu.Lock()
			batch := s.pending
			s.pending = nil
			s.mu.Unlock()
			for _, fn := range batch {
				fn(now)
			}
		}
	}
}

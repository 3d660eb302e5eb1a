package fakedom

import "time"

// Scheduler is a deterministic frame scheduler: callbacks queue up until the
// test (or host loop) advances the clock with Step. Each Step delivers
// exactly the callbacks that were pending when it began, so a callback that
// re-requests a frame runs on the next Step, mirroring requestAnimationFrame
// batching.
type Scheduler struct {
	now     time.Duration
	pending []func(time.Duration)
}

// NewScheduler returns a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// RequestFrame queues fn for the next Step.
func (s *Scheduler) RequestFrame(fn func(now time.Duration)) {
	s.pending = append(s.pending, fn)
}

// Now returns the scheduler's current timestamp.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Idle reports whether no frame callbacks are pending.
func (s *Scheduler) Idle() bool {
	return len(s.pending) == 0
}

// Step advances the clock by dt and delivers one frame to every callback
// that was pending before the call. dt may be zero to deliver a frame
// without advancing time.
func (s *Scheduler) Step(dt time.Duration) {
	s.now += dt
	batch := s.pending
	s.pending = nil
	for _, fn := range batch {
		fn(s.now)
	}
}

// Run steps the clock by dt until no callbacks remain pending and returns
// the number of frames delivered. It gives up after 1e6 frames so a loop
// that never settles fails loudly instead of hanging.
func (s *Scheduler) Run(dt time.Duration) int {
	const maxFrames = 1_000_000
	frames := 0
	for !s.Idle() && frames < maxFrames {
		s.Step(dt)
		frames++
	}
	return frames
}

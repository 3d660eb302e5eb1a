package scroller

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation is the completion handle returned by ScrollTo and
// ScrollIntoView. Done closes when the run reaches its destination, is
// superseded by a newer call on the same element, or failed validation.
// Err reports the validation error, if any, once Done has closed.
type Animation struct {
	done chan struct{}
	err  error
}

func newAnimation() *Animation {
	return &Animation{done: make(chan struct{})}
}

// failedAnimation returns an already-completed handle carrying err, so
// validation failures surface through the completion signal rather than a
// panic.
func failedAnimation(err error) *Animation {
	a := newAnimation()
	a.finish(err)
	return a
}

// Done returns a channel that closes when the animation has finished.
func (a *Animation) Done() <-chan struct{} {
	return a.done
}

// Err returns the error the animation finished with. It returns nil while
// the animation is still running; wait on Done first.
func (a *Animation) Err() error {
	select {
	case <-a.done:
		return a.err
	default:
		return nil
	}
}

// Wait blocks until the animation finishes and returns its error.
func (a *Animation) Wait() error {
	<-a.done
	return a.err
}

// err is written exactly once, before done closes; readers observe it
// through the channel's happens-before edge.
func (a *Animation) finish(err error) {
	a.err = err
	close(a.done)
}

// run is the ephemeral state of one scroll animation. It is owned by a
// single ScrollTo/ScrollIntoView invocation and is driven entirely by frame
// callbacks: each frame re-checks that it is still the element's current
// generation, writes the interpolated offsets, and either requests the next
// frame or finishes.
type run struct {
	scroller *Scroller
	el       Element
	gen      uint64
	anim     *Animation

	duration time.Duration
	easing   ease.TweenFunc

	hasTop, hasLeft   bool
	destTop, destLeft float64

	// Lazily initialized on the first delivered frame so scheduler latency
	// between the call and the first frame is not counted against duration.
	started   bool
	startTime time.Duration
	tweenTop  *gween.Tween
	tweenLeft *gween.Tween
}

func (r *run) frame(now time.Duration) {
	if r.scroller.generation(r.el) != r.gen {
		// A newer call took over this element; this run's destination no
		// longer matters. Resolve the waiter and stop writing.
		r.anim.finish(nil)
		return
	}

	if !r.started {
		r.started = true
		r.startTime = now
		dur := float32(r.duration.Seconds())
		start := currentOffset(r.el)
		if r.hasTop {
			r.tweenTop = gween.New(float32(start.top), float32(r.destTop), dur, r.easing)
		}
		if r.hasLeft {
			r.tweenLeft = gween.New(float32(start.left), float32(r.destLeft), dur, r.easing)
		}
	}

	// Progress is seeked from the absolute elapsed time rather than
	// accumulated per-frame deltas, so the final frame lands on the exact
	// destination with no float drift.
	elapsed := float32((now - r.startTime).Seconds())
	finished := true
	if r.hasTop {
		v, done := r.tweenTop.Set(elapsed)
		if done {
			// Land on the requested destination itself, not its float32
			// rounding from the tween.
			r.el.SetScrollTop(r.destTop)
		} else {
			r.el.SetScrollTop(float64(v))
			finished = false
		}
	}
	if r.hasLeft {
		v, done := r.tweenLeft.Set(elapsed)
		if done {
			r.el.SetScrollLeft(r.destLeft)
		} else {
			r.el.SetScrollLeft(float64(v))
			finished = false
		}
	}

	if finished {
		r.scroller.release(r.el, r.gen)
		r.anim.finish(nil)
		return
	}
	r.scroller.sched.RequestFrame(r.frame)
}

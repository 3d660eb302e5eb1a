package scroller

import (
	"sync"
	"time"
)

// DefaultDuration is the animation length used when Options.Duration is nil.
const DefaultDuration = 400 * time.Millisecond

// Behavior selects between an animated scroll and an immediate jump.
type Behavior string

const (
	// BehaviorSmooth animates the scroll over the configured duration.
	BehaviorSmooth Behavior = "smooth"
	// BehaviorAuto jumps straight to the destination with no interpolation
	// frames. Completion is still delivered asynchronously.
	BehaviorAuto Behavior = "auto"
)

// Options configures a single scroll animation. The zero value (or a nil
// *Options) animates nothing on either axis over DefaultDuration with linear
// easing.
type Options struct {
	// Top and Left are the destination offsets per axis, in content pixels.
	// A nil axis is left untouched by ScrollTo. ScrollIntoView computes both
	// axes itself and ignores these.
	Top, Left *float64
	// Duration is the animation length. nil selects DefaultDuration; an
	// explicit zero collapses the animation to an immediate jump.
	Duration *time.Duration
	// Easing names a curve from the registry, see EasingNames. Empty selects
	// DefaultEasing.
	Easing string
	// Behavior defaults to BehaviorSmooth.
	Behavior Behavior
}

// Px returns a pointer to v, for filling Options offset fields inline.
func Px(v float64) *float64 {
	return &v
}

// Dur returns a pointer to d, for filling Options.Duration inline.
func Dur(d time.Duration) *time.Duration {
	return &d
}

// Scroller animates scroll offsets on a host document. The document and the
// frame scheduler are injected so the engine runs against any host: a real
// rendering loop, a ticker, or a deterministic test double.
//
// All animation state mutates on the scheduler's frame callbacks; ScrollTo
// and ScrollIntoView themselves only validate, snapshot a destination, and
// schedule the first frame.
type Scroller struct {
	doc   Document
	sched FrameScheduler

	// gens tags the active run per resolved element. A new call on the same
	// element bumps the tag; frames from the older run see the mismatch and
	// stop, so overlapping animations converge to the newest destination.
	mu   sync.Mutex
	gens map[Element]uint64
}

// New returns a Scroller bound to the given document and frame scheduler.
// The document is the engine's only route to the host; swap in a different
// one (an iframe's document, a fake) to retarget the whole engine.
func New(doc Document, sched FrameScheduler) *Scroller {
	return &Scroller{
		doc:   doc,
		sched: sched,
		gens:  make(map[Element]uint64),
	}
}

// Document returns the document the scroller is bound to.
func (s *Scroller) Document() Document {
	return s.doc
}

// ScrollTo animates target's scroll offset to the destination axes given in
// opts. The target must be a Window or an Element; anything else fails, and
// the failure — like an unknown easing name — is reported through the
// returned handle, never a panic. The returned Animation is never nil.
func (s *Scroller) ScrollTo(target any, opts *Options) *Animation {
	el, err := resolveTarget(target)
	if err != nil {
		return failedAnimation(err)
	}
	var top, left *float64
	if opts != nil {
		top, left = opts.Top, opts.Left
	}
	return s.scroll(el, top, left, opts)
}

// ScrollIntoView animates a container so that el's top-left edge aligns with
// the container's content-box top-left edge. el must be a non-nil Element;
// a missing or wrongly typed value returns an InvalidIntoViewTargetError
// synchronously.
//
// The variadic tail takes an optional container (Window or Element,
// defaulting to this scroller's window) and an optional *Options, in either
// position: the argument's type decides its role.
func (s *Scroller) ScrollIntoView(el any, args ...any) (*Animation, error) {
	target, err := resolveIntoViewElement(el)
	if err != nil {
		return nil, err
	}

	var container Element
	var opts *Options
	for _, arg := range args {
		if arg == nil {
			continue
		}
		if o, ok := arg.(*Options); ok {
			opts = o
			continue
		}
		c, err := resolveTarget(arg)
		if err != nil {
			return nil, err
		}
		container = c
	}
	if container == nil {
		container = scrollRoot(s.doc)
	}

	dest := intoViewOffset(target, container)
	return s.scroll(container, &dest.top, &dest.left, opts), nil
}

// scroll starts one animation run on el. Validation of the easing happens
// here, before any frame is scheduled; the frame loop itself cannot fail.
func (s *Scroller) scroll(el Element, top, left *float64, opts *Options) *Animation {
	if opts == nil {
		opts = &Options{}
	}
	fn, err := resolveEasing(opts.Easing)
	if err != nil {
		return failedAnimation(err)
	}
	duration := DefaultDuration
	if opts.Duration != nil {
		duration = max(*opts.Duration, 0)
	}

	anim := newAnimation()
	gen := s.claim(el)

	if duration == 0 || opts.Behavior == BehaviorAuto {
		// Jump: skip the interpolation loop entirely. The write still lands
		// on a frame callback so every offset mutation happens on the
		// scheduler, and completion stays asynchronous regardless of
		// duration. A jump superseded before its frame writes nothing.
		hasTop, hasLeft := top != nil, left != nil
		var destTop, destLeft float64
		if hasTop {
			destTop = *top
		}
		if hasLeft {
			destLeft = *left
		}
		s.sched.RequestFrame(func(time.Duration) {
			if s.generation(el) == gen {
				if hasTop {
					el.SetScrollTop(destTop)
				}
				if hasLeft {
					el.SetScrollLeft(destLeft)
				}
				s.release(el, gen)
			}
			anim.finish(nil)
		})
		return anim
	}

	r := &run{
		scroller: s,
		el:       el,
		gen:      gen,
		anim:     anim,
		duration: duration,
		easing:   fn,
	}
	if top != nil {
		r.hasTop, r.destTop = true, *top
	}
	if left != nil {
		r.hasLeft, r.destLeft = true, *left
	}
	s.sched.RequestFrame(r.frame)
	return anim
}

// claim registers a new run on el and returns its generation tag.
func (s *Scroller) claim(el Element) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[el]++
	return s.gens[el]
}

// generation reports el's current run tag.
func (s *Scroller) generation(el Element) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[el]
}

// release drops el's run entry if gen is still the active run.
func (s *Scroller) release(el Element, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gens[el] == gen {
		delete(s.gens, el)
	}
}

// Package scroller is a smooth-scrolling animation engine for document-like
// hosts.
//
// Given a scroll target — a window, an element, or an element that should be
// brought into view inside an ancestor — it animates the scroll offset from
// its current value to a computed destination over a configurable duration
// and easing curve, driven by a frame-callback scheduler.
//
// The host is injected, not assumed: the engine reads and writes scroll
// state through the [Element], [Document], and [Window] interfaces and
// yields between frames through a [FrameScheduler]. Any host that can
// satisfy those four contracts can be scrolled — a real rendering loop (see
// examples/smoothscroll for an Ebitengine host), a [TickerScheduler] for
// headless use, or the in-memory document in [github.com/mkay581/scroller/fakedom]
// for deterministic tests.
//
// # Scrolling
//
//	s := scroller.New(doc, sched)
//	anim := s.ScrollTo(win, &scroller.Options{
//		Top:    scroller.Px(400),
//		Easing: "ease-in-out",
//	})
//	if err := anim.Wait(); err != nil {
//		// invalid target or unknown easing
//	}
//
// ScrollIntoView aligns an element's top-left edge with its scrollable
// ancestor's content box:
//
//	anim, err := s.ScrollIntoView(item, list, nil)
//
// Interpolation is performed by [gween] tweens; the named easing registry
// (see [EasingNames]) maps onto gween's curve library.
//
// Starting a second animation on an element a first one is still scrolling
// supersedes the first: its remaining frames stop writing and its handle
// completes, so overlapping calls always converge on the newest destination.
//
// [gween]: https://github.com/tanema/gween
package scroller

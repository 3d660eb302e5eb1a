package scroller

// Rect is an axis-aligned rectangle in viewport coordinates, matching the
// shape returned by getBoundingClientRect: Top/Left are measured from the
// viewport origin and move as ancestors scroll.
type Rect struct {
	Top, Left, Width, Height float64
}

// Bottom returns the bottom edge of the rectangle.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Right returns the right edge of the rectangle.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Element is a scrollable node in the host document. The engine only ever
// reads scroll offsets, writes scroll offsets, and reads bounding geometry;
// everything else about the host's node model is its own business.
//
// Hosts are expected to clamp out-of-range offset writes to the scrollable
// range, the way browsers clamp assignments to scrollTop. The engine writes
// unclamped destinations and trusts the host.
type Element interface {
	ScrollTop() float64
	ScrollLeft() float64
	SetScrollTop(v float64)
	SetScrollLeft(v float64)
	// BoundingRect returns the element's border box in viewport coordinates.
	BoundingRect() Rect
}

// Document exposes the two elements a browser may route window-level
// scrolling through. Which one actually moves is resolved per call, see
// scrollRoot.
type Document interface {
	DocumentElement() Element
	Body() Element
}

// Window is a scroll target standing for "the viewport". Scrolling a Window
// mutates the scrolling root of its document.
type Window interface {
	Document() Document
}

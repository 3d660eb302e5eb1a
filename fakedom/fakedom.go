// Package fakedom is an in-memory reference host for the scroll engine: a
// minimal document/element tree with layout-derived bounding rects,
// clamp-on-write scroll offsets, and a deterministic frame scheduler that
// advances on demand. It backs the engine's tests and the examples, and
// doubles as a template for wiring real hosts.
package fakedom

import (
	"github.com/mkay581/scroller"
)

// Element is a scrollable in-memory node. Layout is static: X/Y position the
// element relative to its parent's content origin (before the parent's
// scroll is applied) and W/H are its border-box size.
type Element struct {
	name     string
	parent   *Element
	children []*Element

	// X, Y, W, H define the element's layout box relative to the parent.
	X, Y, W, H float64

	// ContentWidth and ContentHeight set the scrollable content extent
	// explicitly. When zero the extent is derived from the children's
	// layout boxes.
	ContentWidth, ContentHeight float64

	scrollTop, scrollLeft float64
}

// NewElement creates an element with the given layout box.
func NewElement(name string, x, y, w, h float64) *Element {
	return &Element{name: name, X: x, Y: y, W: w, H: h}
}

// Name returns the element's debug name.
func (e *Element) Name() string {
	return e.name
}

// AppendChild adds c as the last child, detaching it from any previous
// parent first.
func (e *Element) AppendChild(c *Element) {
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = e
	e.children = append(e.children, c)
}

// RemoveChild detaches c from e. No-op if c is not a child of e.
func (e *Element) RemoveChild(c *Element) {
	for i, child := range e.children {
		if child == c {
			e.children = append(e.children[:i], e.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

// Children returns the child list. The returned slice is the live backing
// array; don't mutate it.
func (e *Element) Children() []*Element {
	return e.children
}

// ScrollTop returns the current vertical scroll offset.
func (e *Element) ScrollTop() float64 {
	return e.scrollTop
}

// ScrollLeft returns the current horizontal scroll offset.
func (e *Element) ScrollLeft() float64 {
	return e.scrollLeft
}

// SetScrollTop writes the vertical offset, clamped to the scrollable range
// the way browsers clamp scrollTop assignments.
func (e *Element) SetScrollTop(v float64) {
	e.scrollTop = clamp(v, 0, e.contentHeight()-e.H)
}

// SetScrollLeft writes the horizontal offset, clamped to the scrollable
// range.
func (e *Element) SetScrollLeft(v float64) {
	e.scrollLeft = clamp(v, 0, e.contentWidth()-e.W)
}

// BoundingRect returns the element's border box in viewport coordinates:
// each ancestor shifts the box by its own position and pulls it back by its
// scroll offset, like getBoundingClientRect.
func (e *Element) BoundingRect() scroller.Rect {
	top, left := e.Y, e.X
	for p := e.parent; p != nil; p = p.parent {
		top += p.Y - p.scrollTop
		left += p.X - p.scrollLeft
	}
	return scroller.Rect{Top: top, Left: left, Width: e.W, Height: e.H}
}

func (e *Element) contentHeight() float64 {
	if e.ContentHeight > 0 {
		return e.ContentHeight
	}
	var extent float64
	for _, c := range e.children {
		if bottom := c.Y + c.H; bottom > extent {
			extent = bottom
		}
	}
	return extent
}

func (e *Element) contentWidth() float64 {
	if e.ContentWidth > 0 {
		return e.ContentWidth
	}
	var extent float64
	for _, c := range e.children {
		if right := c.X + c.W; right > extent {
			extent = right
		}
	}
	return extent
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Document is an in-memory document with the documentElement/body pair the
// engine's window-target probe expects.
type Document struct {
	html *Element
	body *Element
}

// NewDocument creates a document whose documentElement and body both span
// the given viewport size.
func NewDocument(viewportW, viewportH float64) *Document {
	html := NewElement("html", 0, 0, viewportW, viewportH)
	body := NewElement("body", 0, 0, viewportW, viewportH)
	html.AppendChild(body)
	return &Document{html: html, body: body}
}

// DocumentElement returns the root element as a scroller.Element.
func (d *Document) DocumentElement() scroller.Element {
	return d.html
}

// Body returns the body element as a scroller.Element.
func (d *Document) Body() scroller.Element {
	return d.body
}

// HTMLNode returns the root element as its concrete type.
func (d *Document) HTMLNode() *Element {
	return d.html
}

// BodyNode returns the body element as its concrete type.
func (d *Document) BodyNode() *Element {
	return d.body
}

// Window wraps a Document as a window-kind scroll target.
type Window struct {
	doc *Document
}

// NewWindow returns a window over doc.
func NewWindow(doc *Document) *Window {
	return &Window{doc: doc}
}

// Document returns the window's document.
func (w *Window) Document() scroller.Document {
	return w.doc
}

package scroller

// offset is a scroll position pair in the owning element's own coordinate
// space.
type offset struct {
	top, left float64
}

func currentOffset(el Element) offset {
	return offset{top: el.ScrollTop(), left: el.ScrollLeft()}
}

// intoViewOffset computes the scroll destination that aligns el's top-left
// edge with container's content-box top-left edge. Both positions come from
// viewport-relative bounding rects, not accumulated offset-parent chains, so
// positioned ancestors between el and container cannot skew the result.
//
// The destination is not clamped here; the host clamps on write the way
// browsers clamp scrollTop assignments.
func intoViewOffset(el, container Element) offset {
	er := el.BoundingRect()
	cr := container.BoundingRect()
	return offset{
		top:  container.ScrollTop() + (er.Top - cr.Top),
		left: container.ScrollLeft() + (er.Left - cr.Left),
	}
}

package scroller

// resolveTarget maps a caller-supplied scroll target to the element whose
// offsets will be read and written. A Window resolves through scrollRoot;
// an Element resolves to itself; anything else is an InvalidTargetError.
func resolveTarget(target any) (Element, error) {
	switch t := target.(type) {
	case Window:
		return scrollRoot(t.Document()), nil
	case Element:
		return t, nil
	default:
		return nil, &InvalidTargetError{Value: target}
	}
}

// scrollRoot picks the element window-level scrolling actually mutates.
// Browsers route it through either documentElement or body depending on
// engine and rendering mode: if documentElement already carries a scroll
// offset it is the live scrolling root, otherwise body is. The probe runs
// on every call rather than being cached, since the answer can differ
// between documents and can change once the page has been scrolled.
func scrollRoot(doc Document) Element {
	root := doc.DocumentElement()
	if root.ScrollTop() != 0 || root.ScrollLeft() != 0 {
		return root
	}
	return doc.Body()
}

// resolveIntoViewElement validates the element ScrollIntoView should bring
// into view. nil and non-Element values fail with distinct messages.
func resolveIntoViewElement(el any) (Element, error) {
	if el == nil {
		return nil, &InvalidIntoViewTargetError{}
	}
	e, ok := el.(Element)
	if !ok {
		return nil, &InvalidIntoViewTargetError{Value: el}
	}
	return e, nil
}

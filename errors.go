package scroller

import (
	"fmt"
	"strings"
)

// InvalidTargetError reports a ScrollTo target that is neither a Window nor
// an Element.
type InvalidTargetError struct {
	// Value is the offending target as passed by the caller.
	Value any
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("element passed to scrollTo() must be either the window or a DOM element, you passed %v!", e.Value)
}

// InvalidIntoViewTargetError reports a ScrollIntoView element that is nil or
// not an Element. The two cases produce distinct messages so a caller can
// tell a missing argument from a wrongly typed one.
type InvalidIntoViewTargetError struct {
	// Value is the offending element as passed by the caller, nil when the
	// argument was missing.
	Value any
}

func (e *InvalidIntoViewTargetError) Error() string {
	if e.Value == nil {
		return "The element passed to scrollIntoView() was undefined."
	}
	return fmt.Sprintf("The element passed to scrollIntoView() must be a valid element. You passed %v.", e.Value)
}

// UnsupportedEasingError reports an easing name missing from the registry.
// The message enumerates the registered names; that enumeration is part of
// the contract, not incidental.
type UnsupportedEasingError struct {
	Name string
}

func (e *UnsupportedEasingError) Error() string {
	return fmt.Sprintf("Scroll error: scroller does not support an easing option of %q. Supported options are %s",
		e.Name, strings.Join(EasingNames(), ", "))
}

package scroller

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// DefaultEasing is the easing applied when Options.Easing is empty.
const DefaultEasing = "linear"

// easingMap is the fixed registry of supported easing names. The curves come
// from gween's easing library; the cubic family backs the standard
// ease-in/ease-out/ease-in-out names.
var easingMap = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"ease-in":     ease.InCubic,
	"ease-out":    ease.OutCubic,
	"ease-in-out": ease.InOutCubic,
}

// EasingNames returns the sorted names of all registered easing curves.
// These are the only values accepted by Options.Easing.
func EasingNames() []string {
	names := make([]string, 0, len(easingMap))
	for name := range easingMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolveEasing maps a requested easing name to its curve. An empty name
// selects DefaultEasing; an unregistered name is an UnsupportedEasingError.
func resolveEasing(name string) (ease.TweenFunc, error) {
	if name == "" {
		name = DefaultEasing
	}
	fn, ok := easingMap[name]
	if !ok {
		return nil, &UnsupportedEasingError{Name: name}
	}
	return fn, nil
}

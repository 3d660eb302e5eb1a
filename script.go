package scroller

import (
	"encoding/json"
	"fmt"
	"time"
)

// scriptStep represents a single action in a scroll script.
type scriptStep struct {
	Action    string   `json:"action"`
	Target    string   `json:"target,omitempty"`
	Container string   `json:"container,omitempty"`
	Top       *float64 `json:"top,omitempty"`
	Left      *float64 `json:"left,omitempty"`
	Duration  int      `json:"duration,omitempty"` // milliseconds
	Easing    string   `json:"easing,omitempty"`
	Behavior  string   `json:"behavior,omitempty"`
	Frames    int      `json:"frames,omitempty"` // for "wait"
}

// scrollScript is the top-level JSON structure for a scroll script.
type scrollScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner plays a JSON-scripted sequence of scroll operations against a
// Scroller, one step at a time: each scrollTo/scrollIntoView step runs to
// completion before the next step starts, and "wait" steps idle for a number
// of frames. Call Update once per frame from whatever drives the scheduler.
//
// Element names used in steps are bound with Bind; the name "window" is
// bound with BindWindow.
type ScriptRunner struct {
	scroller *Scroller
	window   Window
	targets  map[string]Element

	steps     []scriptStep
	cursor    int
	waitCount int
	current   *Animation
	err       error
	done      bool
}

// LoadScript parses a JSON scroll script and returns a runner bound to s.
func LoadScript(jsonData []byte, s *Scroller) (*ScriptRunner, error) {
	var script scrollScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse scroll script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse scroll script: no steps")
	}
	return &ScriptRunner{
		scroller: s,
		targets:  make(map[string]Element),
		steps:    script.Steps,
	}, nil
}

// Bind associates a step target name with an element.
func (r *ScriptRunner) Bind(name string, el Element) {
	r.targets[name] = el
}

// BindWindow associates the step target name "window" with w.
func (r *ScriptRunner) BindWindow(w Window) {
	r.window = w
}

// Done reports whether the script has finished or failed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Err returns the first error a step produced, if any.
func (r *ScriptRunner) Err() error {
	return r.err
}

// Update advances the runner by one frame: it waits for the in-flight
// animation or wait step, then starts the next step.
func (r *ScriptRunner) Update() {
	if r.done {
		return
	}
	// Let the in-flight animation drain before advancing.
	if r.current != nil {
		select {
		case <-r.current.Done():
			if err := r.current.Err(); err != nil {
				r.fail(err)
				return
			}
			r.current = nil
		default:
			return
		}
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "scrollTo":
		target, err := r.lookup(st.Target)
		if err != nil {
			r.fail(err)
			return
		}
		r.current = r.scroller.ScrollTo(target, stepOptions(st))
	case "scrollIntoView":
		el, err := r.lookup(st.Target)
		if err != nil {
			r.fail(err)
			return
		}
		args := []any{stepOptions(st)}
		if st.Container != "" {
			container, err := r.lookup(st.Container)
			if err != nil {
				r.fail(err)
				return
			}
			args = append(args, container)
		}
		anim, err := r.scroller.ScrollIntoView(el, args...)
		if err != nil {
			r.fail(err)
			return
		}
		r.current = anim
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	default:
		r.fail(fmt.Errorf("scroll script: unknown action %q", st.Action))
	}
}

func (r *ScriptRunner) fail(err error) {
	r.err = err
	r.done = true
}

// lookup resolves a step target name to a bound element or window.
func (r *ScriptRunner) lookup(name string) (any, error) {
	if name == "window" {
		if r.window == nil {
			return nil, fmt.Errorf("scroll script: no window bound")
		}
		return r.window, nil
	}
	el, ok := r.targets[name]
	if !ok {
		return nil, fmt.Errorf("scroll script: no element bound to %q", name)
	}
	return el, nil
}

func stepOptions(st scriptStep) *Options {
	opts := &Options{
		Top:      st.Top,
		Left:     st.Left,
		Easing:   st.Easing,
		Behavior: Behavior(st.Behavior),
	}
	if st.Duration > 0 {
		opts.Duration = Dur(time.Duration(st.Duration) * time.Millisecond)
	}
	return opts
}

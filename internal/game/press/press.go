// Package press turns pointer edges into button touch signals and applies the
// host's toggle policy on release.
package press

import "github.com/iburimskiy/favebutton/internal/button"

// Next decides the signal an ongoing press reports this frame. ok is false
// when nothing changed, or when the pointer is released outside the button.
func Next(wasInside, isInside, released, focused bool) (sig button.Signal, ok bool) {
	switch {
	case !focused:
		return button.Cancel, true
	case released && wasInside:
		return button.ReleaseInside, true
	case released:
		return 0, false
	case wasInside && !isInside:
		return button.DragExit, true
	case !wasInside && isInside:
		return button.DragEnter, true
	}
	return 0, false
}

// Tracker follows one press at a time across frames.
type Tracker struct {
	target int
	inside bool
}

func NewTracker() Tracker {
	return Tracker{target: -1}
}

// Target is the index of the pressed button, or -1 when idle.
func (t *Tracker) Target() int { return t.target }

// Start begins a press on target. The caller reports button.Press.
func (t *Tracker) Start(target int) {
	t.target, t.inside = target, true
}

// Step advances the press by one frame. A release or a focus loss ends it.
func (t *Tracker) Step(isInside, released, focused bool) (button.Signal, bool) {
	if t.target < 0 {
		return 0, false
	}
	sig, ok := Next(t.inside, isInside, released, focused)
	if released || !focused {
		t.target = -1
		return sig, ok
	}
	t.inside = isInside
	return sig, ok
}

// Toggle flips b: a selected button is deselected, anything else plays the
// select animation. It reports whether b ended up selected.
func Toggle(b *button.Button) bool {
	if b.IsSelected() {
		b.Deselect()
		return false
	}
	b.Select()
	return true
}

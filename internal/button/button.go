// Package button implements the favorite button: selection state, the
// conditional repaint rules for its colors, the select burst and the
// press-feedback opacity.
//
// A Button is owned by the host's UI loop and is not safe for concurrent use.
package button

import (
	"image"
	"image/color"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/iburimskiy/favebutton/internal/anim"
	"github.com/iburimskiy/favebutton/internal/config"
	"github.com/iburimskiy/favebutton/internal/geom"
	"github.com/iburimskiy/favebutton/internal/layer"
)

// Signal is a touch edge reported by the host's input system.
type Signal int

const (
	Press Signal = iota
	ReleaseInside
	DragExit
	DragEnter
	Cancel
)

type Option func(*Button)

// WithClock sets the clock animations are scheduled against. The default is
// a wall clock started at construction.
func WithClock(c anim.Clock) Option {
	return func(b *Button) { b.clock = c }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(b *Button) { b.log = l }
}

type Button struct {
	frame geom.Rect
	icon  image.Image

	selected bool

	selectedColor   color.Color
	unselectedColor color.Color
	circleColor     color.Color
	lineColor       color.Color
	multiplier      float64

	opacity float64

	layers       *layer.Set
	choreography *anim.Choreography

	clock anim.Clock
	log   logrus.FieldLogger
}

// New builds a button occupying frame. icon may be nil, which yields an empty
// icon mask; a zero frame yields zero-area layers.
func New(frame geom.Rect, icon image.Image, opts ...Option) *Button {
	b := &Button{
		frame:           frame,
		icon:            icon,
		selectedColor:   config.DefaultSelectedColor,
		unselectedColor: config.DefaultUnselectedColor,
		circleColor:     config.DefaultCircleColor,
		lineColor:       config.DefaultLineColor,
		multiplier:      config.DefaultDuration,
		opacity:         config.ReleasedAlpha,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.clock == nil {
		b.clock = anim.NewWallClock()
	}
	if b.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		b.log = l
	}

	b.createLayers()
	return b
}

// ApplyTheme sets every color and the duration multiplier through their
// setters, so the usual repaint rules apply.
func (b *Button) ApplyTheme(t config.Theme) error {
	if err := b.SetDurationMultiplier(t.Duration); err != nil {
		return err
	}
	b.SetSelectedColor(t.SelectedColor)
	b.SetUnselectedColor(t.UnselectedColor)
	b.SetCircleColor(t.CircleColor)
	b.SetLineColor(t.LineColor)
	return nil
}

// createLayers discards the current layer tree, and any animation in flight
// with it, and derives a new one from the frame and icon.
func (b *Button) createLayers() {
	b.layers = layer.Build(b.frame.Size(), b.icon, layer.Palette{
		Fill:   b.fillColor(),
		Circle: b.circleColor,
		Line:   b.lineColor,
	})
	b.choreography = anim.NewChoreography(b.layers.IconBox, b.multiplier)

	b.log.WithFields(logrus.Fields{
		"width":  b.frame.W,
		"height": b.frame.H,
		"icon":   b.icon != nil,
	}).Debug("button layers rebuilt")
}

func (b *Button) fillColor() color.Color {
	if b.selected {
		return b.selectedColor
	}
	return b.unselectedColor
}

func (b *Button) Frame() geom.Rect { return b.frame }

// SetFrame moves or resizes the button. A size change rebuilds every layer.
func (b *Button) SetFrame(r geom.Rect) {
	old := b.frame
	b.frame = r
	if old.Size() != r.Size() {
		b.createLayers()
	}
}

// Contains reports whether p, in the host's coordinates, is inside the frame.
func (b *Button) Contains(p geom.Point) bool {
	return b.frame.Contains(p)
}

func (b *Button) Icon() image.Image { return b.icon }

// SetIcon replaces the icon and rebuilds every layer from scratch.
func (b *Button) SetIcon(img image.Image) {
	b.icon = img
	b.createLayers()
}

func (b *Button) SelectedColor() color.Color { return b.selectedColor }

// SetSelectedColor repaints the icon only while selected.
func (b *Button) SetSelectedColor(c color.Color) {
	b.selectedColor = c
	if b.selected {
		b.layers.SetFillColor(c)
	}
}

func (b *Button) UnselectedColor() color.Color { return b.unselectedColor }

// SetUnselectedColor repaints the icon only while not selected.
func (b *Button) SetUnselectedColor(c color.Color) {
	b.unselectedColor = c
	if !b.selected {
		b.layers.SetFillColor(c)
	}
}

func (b *Button) CircleColor() color.Color { return b.circleColor }

func (b *Button) SetCircleColor(c color.Color) {
	b.circleColor = c
	b.layers.SetCircleColor(c)
}

func (b *Button) LineColor() color.Color { return b.lineColor }

func (b *Button) SetLineColor(c color.Color) {
	b.lineColor = c
	b.layers.SetLineColor(c)
}

func (b *Button) DurationMultiplier() float64 { return b.multiplier }

// SetDurationMultiplier stretches every track's duration by m. Animations
// already in flight keep the duration they were scheduled with.
func (b *Button) SetDurationMultiplier(m float64) error {
	if m <= 0 {
		return errors.Wrapf(config.ErrInvalidDuration, "multiplier %v", m)
	}
	if err := b.choreography.SetMultiplier(m); err != nil {
		return err
	}
	b.multiplier = m
	return nil
}

func (b *Button) IsSelected() bool { return b.selected }

// SetSelected writes the selection state directly. Selecting this way only
// re-tints the icon; deselecting behaves like AnimateToDeselectedState.
// Writing the current value does nothing.
func (b *Button) SetSelected(v bool) {
	if v == b.selected {
		return
	}
	if v {
		b.selected = true
		b.layers.SetFillColor(b.selectedColor)
		return
	}
	b.AnimateToDeselectedState()
}

// Select selects the button and plays the burst.
func (b *Button) Select() {
	b.SelectAnimated(true)
}

// SelectAnimated selects the button. Without animation only the state and
// the icon color change. Selecting an already selected button replays the
// burst from the start.
func (b *Button) SelectAnimated(animated bool) {
	b.selected = true
	b.layers.SetFillColor(b.selectedColor)
	if !animated {
		return
	}
	b.play()
}

// AnimateToSelectedState is Select under its other name.
func (b *Button) AnimateToSelectedState() {
	b.SelectAnimated(true)
}

// Deselect is AnimateToDeselectedState under its other name.
func (b *Button) Deselect() {
	b.AnimateToDeselectedState()
}

// AnimateToDeselectedState deselects without a transition: every handle is
// dropped and the layers snap back to their resting values.
func (b *Button) AnimateToDeselectedState() {
	b.selected = false
	b.layers.SetFillColor(b.unselectedColor)
	b.layers.RemoveAllAnimations()
	b.log.Debug("button deselected")
}

func (b *Button) play() {
	now := b.clock.Now()
	b.layers.Play(b.choreography, now)
	b.log.WithFields(logrus.Fields{
		"multiplier": b.multiplier,
		"at":         now,
	}).Debug("select animation scheduled")
}

// Handle applies the press feedback for a touch edge. It never changes the
// selection; toggling is left to the caller.
func (b *Button) Handle(sig Signal) {
	switch sig {
	case Press, DragEnter:
		b.opacity = config.PressedAlpha
	case ReleaseInside, DragExit, Cancel:
		b.opacity = config.ReleasedAlpha
	}
}

// Opacity is the whole-widget alpha set by press feedback.
func (b *Button) Opacity() float64 { return b.opacity }

// Layers exposes the current layer tree for rendering and inspection.
func (b *Button) Layers() *layer.Set { return b.layers }

func (b *Button) Choreography() *anim.Choreography { return b.choreography }

// Now reads the clock the button schedules against.
func (b *Button) Now() time.Duration { return b.clock.Now() }

package layer

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/iburimskiy/favebutton/internal/anim"
	"github.com/iburimskiy/favebutton/internal/geom"
)

const (
	LineCount      = 5
	lineWidth      = 1.25
	maskHoleRadius = 0.1
)

// Palette carries the colors the layers are painted with. Fill is the icon
// color for the current selection state.
type Palette struct {
	Fill   color.Color
	Circle color.Color
	Line   color.Color
}

// Set is the layer tree of one button, back to front: the burst circle with
// its reveal mask, the radiating lines, then the icon fill with its bitmap mask.
type Set struct {
	Size    geom.Size
	IconBox geom.Rect
	LineBox geom.Rect

	Circle     *Shape
	CircleMask *Shape
	Lines      [LineCount]*Shape
	Icon       *Shape
	IconMask   *Shape
}

// IconBox is the centered rectangle at half the button's width and height.
func IconBox(size geom.Size) geom.Rect {
	return geom.Rect{X: size.W / 4, Y: size.H / 4, W: size.W / 2, H: size.H / 2}
}

// LineBox grows the icon box by half of each dimension around the same center.
func LineBox(iconBox geom.Rect) geom.Rect {
	return iconBox.Inset(-iconBox.W/4, -iconBox.H/4)
}

// LineRotation is the angle of line i about the icon center, (2i+1)·36°.
func LineRotation(i int) float64 {
	return math.Pi / 5 * float64(2*i+1)
}

// Build derives every layer from the button size and icon. A nil icon
// produces an empty icon mask.
func Build(size geom.Size, icon image.Image, p Palette) *Set {
	iconBox := IconBox(size)
	lineBox := LineBox(iconBox)
	center := iconBox.Center()

	s := &Set{Size: size, IconBox: iconBox, LineBox: lineBox}

	s.Circle = NewOval("circle", p.Circle)
	s.Circle.SetBounds(iconBox)
	s.Circle.Position = center
	s.Circle.Scale = anim.Scale{X: 0, Y: 0, Z: 1}

	s.CircleMask = NewShape("circleMask")
	s.CircleMask.SetBounds(iconBox)
	s.CircleMask.Position = center
	s.CircleMask.FillRule = EvenOdd
	s.CircleMask.Path.AddRect(iconBox)
	s.CircleMask.Path.AddCircle(center, maskHoleRadius)
	s.Circle.Mask = s.CircleMask

	for i := range s.Lines {
		l := NewShape("line")
		l.SetBounds(lineBox)
		l.Position = center
		l.MasksToBounds = true
		l.FillColor = nil
		l.StrokeColor = p.Line
		l.LineWidth = lineWidth
		l.MiterLimit = lineWidth
		l.LineCap = CapRound
		l.LineJoin = JoinRound
		l.Path.MoveTo(lineBox.MidX(), lineBox.MidY())
		l.Path.LineTo(lineBox.MidX(), lineBox.MinY())
		l.StrokeStart = 0
		l.StrokeEnd = 0
		l.Opacity = 0
		l.Rotation = LineRotation(i)
		s.Lines[i] = l
	}

	s.Icon = NewShape("icon")
	s.Icon.SetBounds(iconBox)
	s.Icon.Position = center
	s.Icon.Path.AddRect(iconBox)
	s.Icon.FillColor = p.Fill

	s.IconMask = NewShape("iconMask")
	s.IconMask.SetBounds(iconBox)
	s.IconMask.Position = center
	s.IconMask.FillColor = nil
	s.IconMask.Contents = icon
	s.Icon.Mask = s.IconMask

	return s
}

// Animatable lists the layers animation handles are attached to.
func (s *Set) Animatable() []*Shape {
	out := []*Shape{s.Circle, s.CircleMask, s.Icon}
	return append(out, s.Lines[:]...)
}

// RemoveAllAnimations detaches every handle, snapping layers to their model values.
func (s *Set) RemoveAllAnimations() {
	for _, l := range s.Animatable() {
		l.RemoveAllAnimations()
	}
}

func (s *Set) SetFillColor(c color.Color) { s.Icon.FillColor = c }

func (s *Set) SetCircleColor(c color.Color) { s.Circle.FillColor = c }

func (s *Set) SetLineColor(c color.Color) {
	for _, l := range s.Lines {
		l.StrokeColor = c
	}
}

// CircleSettled reports whether the circle burst has played out. From then on
// the mask hole covers the whole circle and there is nothing left to draw.
func (s *Set) CircleSettled(now time.Duration) bool {
	a := s.Circle.TransformAnimation()
	return a != nil && a.Done(now)
}

// Play attaches the choreography's handles, all starting at now.
func (s *Set) Play(c *anim.Choreography, now time.Duration) {
	m := c.Multiplier()
	s.Circle.AddTransform(anim.Schedule(c.CircleScale(), now, m))
	s.CircleMask.AddTransform(anim.Schedule(c.CircleMaskScale(), now, m))
	s.Icon.AddTransform(anim.Schedule(c.IconScale(), now, m))

	for _, l := range s.Lines {
		l.AddScalar(KeyStrokeStart, anim.Schedule(c.LineStrokeStart(), now, m))
		l.AddScalar(KeyStrokeEnd, anim.Schedule(c.LineStrokeEnd(), now, m))
		l.AddScalar(KeyOpacity, anim.Schedule(c.LineOpacity(), now, m))
	}
}

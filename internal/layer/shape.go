// Package layer models the shape layers a favorite button is built from:
// static model properties plus the animation handles currently attached.
package layer

import (
	"image"
	"image/color"
	"sort"
	"time"

	"github.com/iburimskiy/favebutton/internal/anim"
	"github.com/iburimskiy/favebutton/internal/geom"
)

// KeyPath identifies the property an animation handle drives.
type KeyPath string

const (
	KeyTransform   KeyPath = "transform"
	KeyStrokeStart KeyPath = "strokeStart"
	KeyStrokeEnd   KeyPath = "strokeEnd"
	KeyOpacity     KeyPath = "opacity"
)

type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

type LineCap int

const (
	CapButt LineCap = iota
	CapRound
)

type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
)

// Shape is a path-backed layer. Its local coordinate space is Bounds; the
// center of Bounds sits on Position in the parent's space, with Scale and
// Rotation applied about that center.
type Shape struct {
	Name string

	Bounds   geom.Rect
	Position geom.Point
	Scale    anim.Scale
	Rotation float64

	Path        geom.Path
	FillColor   color.Color
	FillRule    FillRule
	StrokeColor color.Color
	LineWidth   float64
	MiterLimit  float64
	LineCap     LineCap
	LineJoin    LineJoin
	StrokeStart float64
	StrokeEnd   float64
	Opacity     float64

	// MasksToBounds clips drawing to Bounds.
	MasksToBounds bool
	// Mask is drawn in this layer's local space; only its covered area
	// of this layer stays visible.
	Mask *Shape
	// Contents is a bitmap stretched over Bounds.
	Contents image.Image

	oval bool

	transform *anim.Animation[anim.Scale]
	scalars   map[KeyPath]*anim.Animation[anim.Scalar]
}

func NewShape(name string) *Shape {
	return &Shape{
		Name:       name,
		Scale:      anim.IdentityScale,
		FillColor:  color.Black,
		LineWidth:  1,
		MiterLimit: 10,
		StrokeEnd:  1,
		Opacity:    1,
	}
}

// NewOval returns a shape whose path follows its bounds as an inscribed ellipse.
func NewOval(name string, fill color.Color) *Shape {
	s := NewShape(name)
	s.oval = true
	s.FillColor = fill
	return s
}

// SetBounds updates the local space and, for ovals, regenerates the path.
func (s *Shape) SetBounds(r geom.Rect) {
	s.Bounds = r
	if s.oval {
		s.Path = geom.OvalPath(r)
	}
}

func (s *Shape) AddTransform(a *anim.Animation[anim.Scale]) {
	s.transform = a
}

// AddScalar attaches a handle for a scalar key path, replacing any handle
// already present under that key.
func (s *Shape) AddScalar(key KeyPath, a *anim.Animation[anim.Scalar]) {
	if s.scalars == nil {
		s.scalars = make(map[KeyPath]*anim.Animation[anim.Scalar])
	}
	s.scalars[key] = a
}

func (s *Shape) RemoveAllAnimations() {
	s.transform = nil
	s.scalars = nil
}

func (s *Shape) HasAnimations() bool {
	return s.transform != nil || len(s.scalars) > 0
}

// AnimationKeys lists the key paths with an attached handle, sorted.
func (s *Shape) AnimationKeys() []KeyPath {
	var keys []KeyPath
	if s.transform != nil {
		keys = append(keys, KeyTransform)
	}
	for k := range s.scalars {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// TransformAnimation returns the attached transform handle, or nil.
func (s *Shape) TransformAnimation() *anim.Animation[anim.Scale] {
	return s.transform
}

// ScalarAnimation returns the handle attached under key, or nil.
func (s *Shape) ScalarAnimation(key KeyPath) *anim.Animation[anim.Scalar] {
	return s.scalars[key]
}

// PresentationScale is the scale shown at now: the animated value if a
// transform handle is attached, the model value otherwise.
func (s *Shape) PresentationScale(now time.Duration) anim.Scale {
	if s.transform != nil {
		return s.transform.At(now)
	}
	return s.Scale
}

func (s *Shape) PresentationScalar(key KeyPath, now time.Duration) float64 {
	if a, ok := s.scalars[key]; ok {
		return float64(a.At(now))
	}
	switch key {
	case KeyStrokeStart:
		return s.StrokeStart
	case KeyStrokeEnd:
		return s.StrokeEnd
	case KeyOpacity:
		return s.Opacity
	}
	return 0
}

// Transform maps this layer's local space into its parent's at now.
func (s *Shape) Transform(now time.Duration) geom.Affine {
	sc := s.PresentationScale(now)
	c := s.Bounds.Center()
	return geom.Translate(-c.X, -c.Y).
		Then(geom.Scale(sc.X, sc.Y)).
		Then(geom.Rotate(s.Rotation)).
		Then(geom.Translate(s.Position.X, s.Position.Y))
}

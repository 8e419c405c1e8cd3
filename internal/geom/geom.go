// Package geom holds the small amount of 2D geometry the button layers need:
// rectangles, points, paths and affine transforms.
package geom

import (
	"math"

	"golang.org/x/image/math/f64"
)

type Point struct {
	X, Y float64
}

type Size struct {
	W, H float64
}

// Rect is an origin + size rectangle. Negative sizes are not normalized.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }
func (r Rect) MidX() float64 { return r.X + r.W/2 }
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

func (r Rect) Center() Point { return Point{X: r.MidX(), Y: r.MidY()} }

func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() && p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// Inset shrinks the rectangle by dx, dy on every side. Negative values grow it.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// Affine is a 2x3 row-major matrix: x' = a*x + b*y + c, y' = d*x + e*y + f.
type Affine f64.Aff3

func Identity() Affine {
	return Affine{1, 0, 0, 0, 1, 0}
}

func Translate(tx, ty float64) Affine {
	return Affine{1, 0, tx, 0, 1, ty}
}

func Scale(sx, sy float64) Affine {
	return Affine{sx, 0, 0, 0, sy, 0}
}

// Rotate returns a rotation by theta radians, clockwise on a y-down screen.
func Rotate(theta float64) Affine {
	s, c := math.Sincos(theta)
	return Affine{c, -s, 0, s, c, 0}
}

// Then returns the transform that applies m first and n second.
func (m Affine) Then(n Affine) Affine {
	return Affine{
		n[0]*m[0] + n[1]*m[3],
		n[0]*m[1] + n[1]*m[4],
		n[0]*m[2] + n[1]*m[5] + n[2],
		n[3]*m[0] + n[4]*m[3],
		n[3]*m[1] + n[4]*m[4],
		n[3]*m[2] + n[4]*m[5] + n[5],
	}
}

func (m Affine) Apply(p Point) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

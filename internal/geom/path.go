package geom

import "math"

// kappa places cubic control points so four arcs approximate a quarter ellipse each.
const kappa = 0.5522847498307936

type Op int

const (
	MoveTo Op = iota
	LineTo
	CubicTo
	Close
)

// Segment is one path command. MoveTo and LineTo use Pts[0]; CubicTo uses
// Pts[0] and Pts[1] as control points and Pts[2] as the end point.
type Segment struct {
	Op  Op
	Pts [3]Point
}

type Path struct {
	Segments []Segment
}

func (p *Path) MoveTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{Op: MoveTo, Pts: [3]Point{{x, y}}})
}

func (p *Path) LineTo(x, y float64) {
	p.Segments = append(p.Segments, Segment{Op: LineTo, Pts: [3]Point{{x, y}}})
}

func (p *Path) CubicTo(x1, y1, x2, y2, x, y float64) {
	p.Segments = append(p.Segments, Segment{Op: CubicTo, Pts: [3]Point{{x1, y1}, {x2, y2}, {x, y}}})
}

func (p *Path) Close() {
	p.Segments = append(p.Segments, Segment{Op: Close})
}

// AddRect appends a closed clockwise rectangle subpath.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.MinX(), r.MinY())
	p.LineTo(r.MaxX(), r.MinY())
	p.LineTo(r.MaxX(), r.MaxY())
	p.LineTo(r.MinX(), r.MaxY())
	p.Close()
}

// AddOval appends a closed ellipse subpath inscribed in r, starting at the
// rightmost point.
func (p *Path) AddOval(r Rect) {
	cx, cy := r.MidX(), r.MidY()
	rx, ry := r.W/2, r.H/2
	ox, oy := rx*kappa, ry*kappa

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// AddCircle appends a closed circle subpath.
func (p *Path) AddCircle(c Point, radius float64) {
	p.AddOval(Rect{X: c.X - radius, Y: c.Y - radius, W: 2 * radius, H: 2 * radius})
}

// OvalPath returns a closed path tracing the ellipse inscribed in r.
func OvalPath(r Rect) Path {
	var p Path
	p.AddOval(r)
	return p
}

// Transform returns a copy of the path with every point mapped through m.
func (p Path) Transform(m Affine) Path {
	out := Path{Segments: make([]Segment, len(p.Segments))}
	for i, s := range p.Segments {
		out.Segments[i].Op = s.Op
		for j := range s.Pts {
			out.Segments[i].Pts[j] = m.Apply(s.Pts[j])
		}
	}
	return out
}

func (p Path) Empty() bool { return len(p.Segments) == 0 }

// Endpoints returns the end point of each MoveTo, LineTo and CubicTo segment.
func (p Path) Endpoints() []Point {
	var pts []Point
	for _, s := range p.Segments {
		switch s.Op {
		case MoveTo, LineTo:
			pts = append(pts, s.Pts[0])
		case CubicTo:
			pts = append(pts, s.Pts[2])
		}
	}
	return pts
}

// Trim returns the part of segment a→b between the fractions start and end
// of its length, as a stroke's strokeStart/strokeEnd would draw it. ok is
// false when nothing is left to draw.
func Trim(a, b Point, start, end float64) (from, to Point, ok bool) {
	start, end = clamp01(start), clamp01(end)
	if end <= start {
		return Point{}, Point{}, false
	}
	lerp := func(f float64) Point {
		return Point{X: a.X + (b.X-a.X)*f, Y: a.Y + (b.Y-a.Y)*f}
	}
	return lerp(start), lerp(end), true
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Package render draws favorite buttons with ebiten. Each frame it samples the
// button's layers at the host clock's time and composites them back to front.
package render

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/draw"

	"github.com/iburimskiy/favebutton/internal/button"
	"github.com/iburimskiy/favebutton/internal/geom"
	"github.com/iburimskiy/favebutton/internal/layer"
)

var whiteSubImage *ebiten.Image

func white() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Renderer owns the offscreen images for one button.
type Renderer struct {
	w, h int

	widget *ebiten.Image
	work   *ebiten.Image
	mask   *ebiten.Image

	iconSrc  image.Image
	iconBox  geom.Rect
	iconMask *ebiten.Image

	vs []ebiten.Vertex
	is []uint16
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw composites b onto dst at its frame, sampling animations at now.
func (r *Renderer) Draw(dst *ebiten.Image, b *button.Button, now time.Duration) {
	frame := b.Frame()
	if !r.ensure(frame.Size()) {
		return
	}
	set := b.Layers()

	r.widget.Clear()
	r.drawCircle(set, now)
	for _, l := range set.Lines {
		r.drawLine(l, now)
	}
	r.drawIcon(set, now)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(frame.X, frame.Y)
	op.ColorScale.ScaleAlpha(float32(b.Opacity()))
	dst.DrawImage(r.widget, op)
}

func (r *Renderer) ensure(size geom.Size) bool {
	w, h := int(math.Ceil(size.W)), int(math.Ceil(size.H))
	if w < 1 || h < 1 {
		return false
	}
	if w == r.w && h == r.h {
		return true
	}
	for _, img := range []*ebiten.Image{r.widget, r.work, r.mask} {
		if img != nil {
			img.Deallocate()
		}
	}
	r.w, r.h = w, h
	r.widget = ebiten.NewImage(w, h)
	r.work = ebiten.NewImage(w, h)
	r.mask = ebiten.NewImage(w, h)
	return true
}

func (r *Renderer) drawCircle(set *layer.Set, now time.Duration) {
	// The hole's antialiased edge lands on the circle's once the burst ends.
	if set.CircleSettled(now) {
		return
	}
	circle, mask := set.Circle, set.CircleMask
	toButton := circle.Transform(now)

	r.work.Clear()
	r.fill(r.work, circle.Path, toButton, circle.FillColor, circle.FillRule, 1)

	r.mask.Clear()
	r.fill(r.mask, mask.Path, mask.Transform(now).Then(toButton), mask.FillColor, mask.FillRule, 1)
	r.applyMask()

	r.composite(circle.PresentationScalar(layer.KeyOpacity, now))
}

func (r *Renderer) drawLine(l *layer.Shape, now time.Duration) {
	opacity := l.PresentationScalar(layer.KeyOpacity, now)
	if opacity <= 0 || l.StrokeColor == nil {
		return
	}
	pts := l.Path.Endpoints()
	if len(pts) < 2 {
		return
	}
	from, to, ok := geom.Trim(pts[0], pts[1],
		l.PresentationScalar(layer.KeyStrokeStart, now),
		l.PresentationScalar(layer.KeyStrokeEnd, now))
	if !ok {
		return
	}

	toButton := l.Transform(now)
	var seg geom.Path
	seg.MoveTo(from.X, from.Y)
	seg.LineTo(to.X, to.Y)

	r.work.Clear()
	r.stroke(r.work, seg, toButton, l)

	if l.MasksToBounds {
		var bounds geom.Path
		bounds.AddRect(l.Bounds)
		r.mask.Clear()
		r.fill(r.mask, bounds, toButton, color.Black, layer.NonZero, 1)
		r.applyMask()
	}
	r.composite(opacity)
}

func (r *Renderer) drawIcon(set *layer.Set, now time.Duration) {
	icon, mask := set.Icon, set.IconMask
	toButton := icon.Transform(now)

	r.work.Clear()
	r.fill(r.work, icon.Path, toButton, icon.FillColor, icon.FillRule, 1)

	r.mask.Clear()
	if src := r.iconImage(mask.Contents, mask.Bounds); src != nil {
		b := src.Bounds()
		m := geom.Scale(mask.Bounds.W/float64(b.Dx()), mask.Bounds.H/float64(b.Dy())).
			Then(geom.Translate(mask.Bounds.X, mask.Bounds.Y)).
			Then(mask.Transform(now)).
			Then(toButton)
		op := &ebiten.DrawImageOptions{}
		op.GeoM = toGeoM(m)
		op.Filter = ebiten.FilterLinear
		r.mask.DrawImage(src, op)
	}
	r.applyMask()

	r.composite(icon.PresentationScalar(layer.KeyOpacity, now))
}

// iconImage resamples the icon bitmap to the pixel size of box, caching the
// result until the icon or box changes.
func (r *Renderer) iconImage(src image.Image, box geom.Rect) *ebiten.Image {
	if src == nil || box.Empty() {
		return nil
	}
	if src == r.iconSrc && box == r.iconBox && r.iconMask != nil {
		return r.iconMask
	}

	w, h := int(math.Ceil(box.W)), int(math.Ceil(box.H))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(rgba, rgba.Bounds(), src, src.Bounds(), draw.Src, nil)

	if r.iconMask != nil {
		r.iconMask.Deallocate()
	}
	r.iconSrc, r.iconBox = src, box
	r.iconMask = ebiten.NewImageFromImage(rgba)
	return r.iconMask
}

// applyMask keeps the work image only where the mask image is opaque.
func (r *Renderer) applyMask() {
	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.BlendDestinationIn
	r.work.DrawImage(r.mask, op)
}

func (r *Renderer) composite(opacity float64) {
	if opacity <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(opacity))
	r.widget.DrawImage(r.work, op)
}

func (r *Renderer) fill(dst *ebiten.Image, p geom.Path, m geom.Affine, c color.Color, rule layer.FillRule, alpha float64) {
	if c == nil || p.Empty() {
		return
	}
	vp := toVectorPath(p.Transform(m))
	r.vs, r.is = vp.AppendVerticesAndIndicesForFilling(r.vs[:0], r.is[:0])

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.FillRule = ebiten.NonZero
	if rule == layer.EvenOdd {
		op.FillRule = ebiten.EvenOdd
	}
	r.drawTriangles(dst, c, alpha, op)
}

func (r *Renderer) stroke(dst *ebiten.Image, p geom.Path, m geom.Affine, l *layer.Shape) {
	vp := toVectorPath(p.Transform(m))

	so := &vector.StrokeOptions{
		Width:      float32(l.LineWidth),
		MiterLimit: float32(l.MiterLimit),
		LineCap:    vector.LineCapButt,
		LineJoin:   vector.LineJoinMiter,
	}
	if l.LineCap == layer.CapRound {
		so.LineCap = vector.LineCapRound
	}
	if l.LineJoin == layer.JoinRound {
		so.LineJoin = vector.LineJoinRound
	}
	r.vs, r.is = vp.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], so)

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.FillRule = ebiten.FillAll
	r.drawTriangles(dst, l.StrokeColor, 1, op)
}

func (r *Renderer) drawTriangles(dst *ebiten.Image, c color.Color, alpha float64, op *ebiten.DrawTrianglesOptions) {
	if len(r.is) == 0 {
		return
	}
	cr, cg, cb, ca := c.RGBA()
	a := float32(alpha)
	for i := range r.vs {
		r.vs[i].SrcX = 1
		r.vs[i].SrcY = 1
		r.vs[i].ColorR = float32(cr) / 0xffff * a
		r.vs[i].ColorG = float32(cg) / 0xffff * a
		r.vs[i].ColorB = float32(cb) / 0xffff * a
		r.vs[i].ColorA = float32(ca) / 0xffff * a
	}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	dst.DrawTriangles(r.vs, r.is, white(), op)
}

func toVectorPath(p geom.Path) *vector.Path {
	var vp vector.Path
	for _, s := range p.Segments {
		switch s.Op {
		case geom.MoveTo:
			vp.MoveTo(float32(s.Pts[0].X), float32(s.Pts[0].Y))
		case geom.LineTo:
			vp.LineTo(float32(s.Pts[0].X), float32(s.Pts[0].Y))
		case geom.CubicTo:
			vp.CubicTo(
				float32(s.Pts[0].X), float32(s.Pts[0].Y),
				float32(s.Pts[1].X), float32(s.Pts[1].Y),
				float32(s.Pts[2].X), float32(s.Pts[2].Y))
		case geom.Close:
			vp.Close()
		}
	}
	return &vp
}

func toGeoM(m geom.Affine) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[1])
	g.SetElement(0, 2, m[2])
	g.SetElement(1, 0, m[3])
	g.SetElement(1, 1, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

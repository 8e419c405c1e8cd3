// Package icon provides the bitmaps used as button icon masks: a few shapes
// rasterized on the fly, and decoding of image files picked by the user.
package icon

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Shape reports whether the normalized point (x, y), both in [-1,1] with y
// pointing down, is inside the icon.
type Shape func(x, y float64) bool

// Rasterize renders shape into a size×size alpha mask with 4x4 supersampling.
func Rasterize(shape Shape, size int) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, size, size))
	if size <= 0 {
		return img
	}
	const ss = 4
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			hits := 0
			for sy := 0; sy < ss; sy++ {
				for sx := 0; sx < ss; sx++ {
					x := (float64(px)+(float64(sx)+0.5)/ss)/float64(size)*2 - 1
					y := (float64(py)+(float64(sy)+0.5)/ss)/float64(size)*2 - 1
					if shape(x, y) {
						hits++
					}
				}
			}
			img.SetAlpha(px, py, color.Alpha{A: uint8(hits * 255 / (ss * ss))})
		}
	}
	return img
}

// Heart is the classic implicit heart curve, flipped for y-down.
func Heart(x, y float64) bool {
	x, y = x*1.25, -y*1.25+0.2
	a := x*x + y*y - 1
	return a*a*a-x*x*y*y*y <= 0
}

// Star is a five-pointed star with its top point up.
func Star(x, y float64) bool {
	const points = 5
	const inner = 0.42
	var poly [2 * points][2]float64
	for i := range poly {
		r := 0.95
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/points
		poly[i] = [2]float64{r * math.Cos(a), r * math.Sin(a) + 0.08}
	}
	return insidePolygon(poly[:], x, y)
}

// Thumb is a rounded square with a notch, a stand-in for a "like" glyph.
func Thumb(x, y float64) bool {
	body := math.Abs(x+0.1) < 0.55 && y > -0.15 && y < 0.8
	cuff := x > -0.95 && x < -0.7 && y > 0 && y < 0.8
	tip := (x-0.05)*(x-0.05)+(y+0.45)*(y+0.45) < 0.16 && x > -0.35
	return body || cuff || tip
}

// Bookmark is a ribbon with a V cut at the bottom.
func Bookmark(x, y float64) bool {
	if math.Abs(x) > 0.55 || y < -0.85 || y > 0.85 {
		return false
	}
	return y < 0.85-0.6*(0.55-math.Abs(x))/0.55
}

func insidePolygon(poly [][2]float64, x, y float64) bool {
	in := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		xi, yi := poly[i][0], poly[i][1]
		xj, yj := poly[j][0], poly[j][1]
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			in = !in
		}
	}
	return in
}

// Load decodes an image file (png, jpeg, gif, bmp or webp) for use as a mask.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open icon %s", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode icon %s", path)
	}
	return img, nil
}

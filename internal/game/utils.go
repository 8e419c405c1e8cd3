package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// tint returns an HSV color as opaque RGBA (hue: 0-360, saturation: 0-1, value: 0-1).
func tint(h, s, v float64) color.RGBA {
	r, g, b := colorful.Hsv(h, s, v).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// formatDuration formats a duration as SS.mmm
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%02d.%03d", int(d.Seconds()), d.Milliseconds()%1000)
}

var durationSteps = []float64{1, 2, 4, 0.5}

// nextDuration returns the step after cur, or the first step when cur came
// from a theme or flag and is not one of them.
func nextDuration(cur float64) float64 {
	for i, d := range durationSteps {
		if d == cur {
			return durationSteps[(i+1)%len(durationSteps)]
		}
	}
	return durationSteps[0]
}

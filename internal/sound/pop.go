// Package sound synthesizes the short click played when a button bursts.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Pop returns a decaying sine blip of the given frequency and length. The
// streamer drains after one play.
func Pop(sr beep.SampleRate, freq float64, length time.Duration) beep.Streamer {
	n := sr.N(length)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		i := 0
		for ; i < len(samples) && pos < n; i, pos = i+1, pos+1 {
			t := float64(pos) / float64(sr)
			env := math.Exp(-6 * float64(pos) / float64(n))
			v := 0.3 * env * math.Sin(2*math.Pi*freq*t)
			samples[i][0], samples[i][1] = v, v
		}
		return i, true
	})
}

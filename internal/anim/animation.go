package anim

import "time"

// Clock is the host's frame clock. Layers are sampled against it once per
// display refresh.
type Clock interface {
	Now() time.Duration
}

// FrameClock advances only when told to, one frame at a time.
type FrameClock struct {
	now time.Duration
}

func (c *FrameClock) Now() time.Duration { return c.now }

func (c *FrameClock) Advance(d time.Duration) { c.now += d }

// WallClock measures time since it was created.
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Now() time.Duration { return time.Since(c.start) }

// Animation is a track scheduled onto a layer: it starts at Begin on the
// layer's clock and runs for Duration. After that it holds its final value
// until removed.
type Animation[V Value[V]] struct {
	Track    *Track[V]
	Begin    time.Duration
	Duration time.Duration
}

// Schedule starts track at now, stretched by multiplier.
func Schedule[V Value[V]](track *Track[V], now time.Duration, multiplier float64) *Animation[V] {
	return &Animation[V]{
		Track:    track,
		Begin:    now,
		Duration: track.Duration(multiplier),
	}
}

// Progress is the normalized time of the animation at now, clamped to [0,1].
func (a *Animation[V]) Progress(now time.Duration) float64 {
	if a.Duration <= 0 {
		return 1
	}
	return clamp01(float64(now-a.Begin) / float64(a.Duration))
}

func (a *Animation[V]) At(now time.Duration) V {
	return a.Track.Sample(a.Progress(now))
}

func (a *Animation[V]) Done(now time.Duration) bool {
	return now-a.Begin >= a.Duration
}

// Package anim implements keyframe tracks, the animation handles layers carry
// while a track plays, and the fixed favorite-button choreography.
package anim

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// ErrMalformedTrack reports a key time table that cannot be sampled.
var ErrMalformedTrack = errors.New("malformed keyframe track")

// ErrInvalidMultiplier reports a duration multiplier that is not positive.
var ErrInvalidMultiplier = errors.New("duration multiplier must be positive")

// Property names the animatable property a track drives.
type Property int

const (
	CircleScale Property = iota
	CircleMaskScale
	LineStrokeStart
	LineStrokeEnd
	LineOpacity
	IconScale
)

var propertyNames = [...]string{
	CircleScale:     "CircleScale",
	CircleMaskScale: "CircleMaskScale",
	LineStrokeStart: "LineStrokeStart",
	LineStrokeEnd:   "LineStrokeEnd",
	LineOpacity:     "LineOpacity",
	IconScale:       "IconScale",
}

func (p Property) String() string {
	if p < 0 || int(p) >= len(propertyNames) {
		return fmt.Sprintf("Property(%d)", int(p))
	}
	return propertyNames[p]
}

// Value is anything a track can interpolate between two samples.
type Value[V any] interface {
	Lerp(to V, t float64) V
}

type Scalar float64

func (a Scalar) Lerp(b Scalar, t float64) Scalar {
	return a + (b-a)*Scalar(t)
}

// Scale is a 3D scale factor; layers only ever use Z = 1.
type Scale struct {
	X, Y, Z float64
}

var IdentityScale = Scale{X: 1, Y: 1, Z: 1}

// Uniform returns an X/Y scale with Z = 1.
func Uniform(s float64) Scale {
	return Scale{X: s, Y: s, Z: 1}
}

func (a Scale) Lerp(b Scale, t float64) Scale {
	return Scale{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// Track is an immutable keyframe table for one property. Key times are
// fractions of the track's own duration.
type Track[V Value[V]] struct {
	property Property
	base     time.Duration
	keyTimes []float64
	values   []V
}

// NewTrack validates and copies the tables. Key times must start at 0, never
// decrease and stay within [0,1]; the last key time may be below 1, in which
// case the final value holds for the rest of the duration.
func NewTrack[V Value[V]](p Property, base time.Duration, keyTimes []float64, values []V) (*Track[V], error) {
	if base <= 0 {
		return nil, errors.Wrapf(ErrMalformedTrack, "%v: base duration %v", p, base)
	}
	if len(keyTimes) == 0 || len(keyTimes) != len(values) {
		return nil, errors.Wrapf(ErrMalformedTrack, "%v: %d key times for %d values", p, len(keyTimes), len(values))
	}
	if keyTimes[0] != 0 {
		return nil, errors.Wrapf(ErrMalformedTrack, "%v: first key time %v", p, keyTimes[0])
	}
	for i := 1; i < len(keyTimes); i++ {
		if keyTimes[i] < keyTimes[i-1] || keyTimes[i] > 1 {
			return nil, errors.Wrapf(ErrMalformedTrack, "%v: key time %d is %v after %v", p, i, keyTimes[i], keyTimes[i-1])
		}
	}

	return &Track[V]{
		property: p,
		base:     base,
		keyTimes: append([]float64(nil), keyTimes...),
		values:   append([]V(nil), values...),
	}, nil
}

func mustTrack[V Value[V]](p Property, base time.Duration, keyTimes []float64, values []V) *Track[V] {
	t, err := NewTrack(p, base, keyTimes, values)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Track[V]) Property() Property { return t.property }

func (t *Track[V]) BaseDuration() time.Duration { return t.base }

// Duration is the base duration stretched by the multiplier.
func (t *Track[V]) Duration(multiplier float64) time.Duration {
	return time.Duration(float64(t.base) * multiplier)
}

func (t *Track[V]) Len() int { return len(t.values) }

func (t *Track[V]) KeyTimes() []float64 { return append([]float64(nil), t.keyTimes...) }

func (t *Track[V]) Values() []V { return append([]V(nil), t.values...) }

// Sample interpolates linearly between the two key times bracketing f.
// f is clamped to [0,1].
func (t *Track[V]) Sample(f float64) V {
	f = clamp01(f)
	last := len(t.keyTimes) - 1

	if f <= t.keyTimes[0] {
		return t.values[0]
	}
	if f >= t.keyTimes[last] {
		return t.values[last]
	}

	for i := 0; i < last; i++ {
		t0, t1 := t.keyTimes[i], t.keyTimes[i+1]
		if f >= t0 && f < t1 {
			return t.values[i].Lerp(t.values[i+1], (f-t0)/(t1-t0))
		}
	}
	return t.values[last]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

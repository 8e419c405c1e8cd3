package anim

import (
	"time"

	"github.com/pkg/errors"

	"github.com/iburimskiy/favebutton/internal/geom"
)

const (
	circleDuration = 333 * time.Millisecond
	lineDuration   = 600 * time.Millisecond
	iconDuration   = time.Second
)

var circleScaleTrack = mustTrack(CircleScale, circleDuration,
	[]float64{
		0.0, //  0/10
		0.1, //  1/10
		0.2, //  2/10
		0.3, //  3/10
		0.4, //  4/10
		0.5, //  5/10
		0.6, //  6/10
		1.0, // 10/10
	},
	[]Scale{
		Uniform(0.0),
		Uniform(0.5),
		Uniform(1.0),
		Uniform(1.2),
		Uniform(1.3),
		Uniform(1.37),
		Uniform(1.4),
		Uniform(1.4),
	})

var circleMaskKeyTimes = []float64{
	0.0, //  0/10
	0.2, //  2/10
	0.3, //  3/10
	0.4, //  4/10
	0.5, //  5/10
	0.6, //  6/10
	0.7, //  7/10
	0.9, //  9/10
	1.0, // 10/10
}

// circleMaskFactors are multiples of the icon box size; zero marks an
// identity keyframe.
var circleMaskFactors = []float64{0, 0, 1.25, 2.688, 3.923, 4.375, 4.731, 5.0, 5.0}

var lineStrokeStartTrack = mustTrack(LineStrokeStart, lineDuration,
	[]float64{
		0.0,   //  0/18
		0.056, //  1/18
		0.111, //  2/18
		0.167, //  3/18
		0.222, //  4/18
		0.278, //  5/18
		0.333, //  6/18
		0.389, //  7/18
		0.444, //  8/18
		0.944, // 17/18
		1.0,   // 18/18
	},
	[]Scalar{0.0, 0.0, 0.18, 0.2, 0.26, 0.32, 0.4, 0.6, 0.71, 0.89, 0.92})

var lineStrokeEndTrack = mustTrack(LineStrokeEnd, lineDuration,
	[]float64{
		0.0,   //  0/18
		0.056, //  1/18
		0.111, //  2/18
		0.167, //  3/18
		0.222, //  4/18
		0.278, //  5/18
		0.944, // 17/18
		1.0,   // 18/18
	},
	[]Scalar{0.0, 0.0, 0.32, 0.48, 0.64, 0.68, 0.92, 0.92})

// The fade finishes at 17/30 and holds at zero for the rest of the second.
var lineOpacityTrack = mustTrack(LineOpacity, iconDuration,
	[]float64{
		0.0,   //  0/30
		0.4,   // 12/30
		0.567, // 17/30
	},
	[]Scalar{1.0, 1.0, 0.0})

var iconScaleTrack = mustTrack(IconScale, iconDuration,
	[]float64{
		0.0,   //  0/30
		0.1,   //  3/30
		0.3,   //  9/30
		0.333, // 10/30
		0.367, // 11/30
		0.467, // 14/30
		0.5,   // 15/30
		0.533, // 16/30
		0.567, // 17/30
		0.667, // 20/30
		0.7,   // 21/30
		0.733, // 22/30
		0.833, // 25/30
		0.867, // 26/30
		0.9,   // 27/30
		0.967, // 29/30
		1.0,   // 30/30
	},
	[]Scale{
		Uniform(0.0),
		Uniform(0.0),
		Uniform(1.2),
		Uniform(1.25),
		Uniform(1.2),
		Uniform(0.9),
		Uniform(0.875),
		Uniform(0.875),
		Uniform(0.9),
		Uniform(1.013),
		Uniform(1.025),
		Uniform(1.013),
		Uniform(0.96),
		Uniform(0.95),
		Uniform(0.96),
		Uniform(0.99),
		IdentityScale,
	})

// circleMaskTrack resolves the box-relative mask factors against the icon box.
func circleMaskTrack(iconBox geom.Rect) *Track[Scale] {
	values := make([]Scale, len(circleMaskFactors))
	for i, f := range circleMaskFactors {
		if f == 0 {
			values[i] = IdentityScale
			continue
		}
		values[i] = Scale{X: iconBox.W * f, Y: iconBox.H * f, Z: 1}
	}
	return mustTrack(CircleMaskScale, circleDuration, circleMaskKeyTimes, values)
}

// Choreography is the select animation: six tracks started together on the
// button's layers. The multiplier stretches every track alike; key times stay
// fractions of each track's own duration, so the stagger between tracks is
// preserved.
type Choreography struct {
	multiplier float64

	circle      *Track[Scale]
	circleMask  *Track[Scale]
	strokeStart *Track[Scalar]
	strokeEnd   *Track[Scalar]
	opacity     *Track[Scalar]
	icon        *Track[Scale]
}

// NewChoreography builds the tracks for a button whose icon occupies iconBox.
// Callers guarantee multiplier > 0.
func NewChoreography(iconBox geom.Rect, multiplier float64) *Choreography {
	return &Choreography{
		multiplier:  multiplier,
		circle:      circleScaleTrack,
		circleMask:  circleMaskTrack(iconBox),
		strokeStart: lineStrokeStartTrack,
		strokeEnd:   lineStrokeEndTrack,
		opacity:     lineOpacityTrack,
		icon:        iconScaleTrack,
	}
}

func (c *Choreography) Multiplier() float64 { return c.multiplier }

// SetMultiplier changes the stretch applied to tracks scheduled from now on.
// A non-positive m is rejected and the multiplier is left unchanged.
func (c *Choreography) SetMultiplier(m float64) error {
	if m <= 0 {
		return errors.Wrapf(ErrInvalidMultiplier, "multiplier %v", m)
	}
	c.multiplier = m
	return nil
}

func (c *Choreography) CircleScale() *Track[Scale] { return c.circle }
func (c *Choreography) CircleMaskScale() *Track[Scale] { return c.circleMask }
func (c *Choreography) LineStrokeStart() *Track[Scalar] { return c.strokeStart }
func (c *Choreography) LineStrokeEnd() *Track[Scalar] { return c.strokeEnd }
func (c *Choreography) LineOpacity() *Track[Scalar] { return c.opacity }
func (c *Choreography) IconScale() *Track[Scale] { return c.icon }

// BaseDuration returns the unscaled duration of the track driving p.
func (c *Choreography) BaseDuration(p Property) time.Duration {
	switch p {
	case CircleScale:
		return c.circle.BaseDuration()
	case CircleMaskScale:
		return c.circleMask.BaseDuration()
	case LineStrokeStart:
		return c.strokeStart.BaseDuration()
	case LineStrokeEnd:
		return c.strokeEnd.BaseDuration()
	case LineOpacity:
		return c.opacity.BaseDuration()
	case IconScale:
		return c.icon.BaseDuration()
	}
	return 0
}

// Duration returns the actual duration of the track driving p.
func (c *Choreography) Duration(p Property) time.Duration {
	return time.Duration(float64(c.BaseDuration(p)) * c.multiplier)
}

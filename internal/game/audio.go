package game

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"

	"github.com/iburimskiy/favebutton/internal/config"
	"github.com/iburimskiy/favebutton/internal/sound"
)

// clicker plays the select pop through the speaker. The speaker is opened on
// the first unmuted start; until it opens the clicker stays silent.
type clicker struct {
	sr    beep.SampleRate
	ready bool
	muted bool

	initSpeaker func(sr beep.SampleRate, bufferSize int) error
	playSpeaker func(s ...beep.Streamer)
}

func newClicker(muted bool) *clicker {
	return &clicker{
		sr:          beep.SampleRate(config.SampleRate),
		muted:       muted,
		initSpeaker: speaker.Init,
		playSpeaker: speaker.Play,
	}
}

// start opens the speaker unless the clicker is muted or already open.
func (c *clicker) start() error {
	if c.muted || c.ready {
		return nil
	}
	if err := c.initSpeaker(c.sr, c.sr.N(time.Second/20)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	c.ready = true
	return nil
}

// toggleMute flips the mute state, opening the speaker on unmute if needed.
func (c *clicker) toggleMute() error {
	c.muted = !c.muted
	return c.start()
}

func (c *clicker) play() {
	if !c.ready || c.muted {
		return
	}
	length := time.Duration(config.PopLength * float64(time.Second))
	c.playSpeaker(sound.Pop(c.sr, config.PopFrequency, length))
}

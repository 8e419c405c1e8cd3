package game

import (
	"testing"

	"github.com/faiface/beep"
	"github.com/pkg/errors"
)

type fakeSpeaker struct {
	inits, plays int
	err          error
}

func (f *fakeSpeaker) install(c *clicker) *clicker {
	c.initSpeaker = func(beep.SampleRate, int) error {
		f.inits++
		return f.err
	}
	c.playSpeaker = func(...beep.Streamer) { f.plays++ }
	return c
}

func TestClickerOpensSpeakerOnFirstUnmute(t *testing.T) {
	var f fakeSpeaker
	c := f.install(newClicker(true))

	if err := c.start(); err != nil {
		t.Fatal(err)
	}
	c.play()
	if f.inits != 0 || f.plays != 0 {
		t.Fatalf("muted clicker touched the speaker: %+v", f)
	}

	if err := c.toggleMute(); err != nil {
		t.Fatal(err)
	}
	c.play()
	if f.inits != 1 || f.plays != 1 {
		t.Errorf("after unmute: %+v, want one init and one play", f)
	}

	if err := c.toggleMute(); err != nil {
		t.Fatal(err)
	}
	c.play()
	if err := c.toggleMute(); err != nil {
		t.Fatal(err)
	}
	c.play()
	if f.inits != 1 || f.plays != 2 {
		t.Errorf("after mute round trip: %+v, want one init and two plays", f)
	}
}

func TestClickerReportsSpeakerFailure(t *testing.T) {
	f := fakeSpeaker{err: errors.New("no device")}
	c := f.install(newClicker(true))

	err := c.toggleMute()
	if err == nil || errors.Cause(err) != f.err {
		t.Fatalf("toggleMute() = %v, want wrapped device error", err)
	}
	c.play()
	if f.plays != 0 {
		t.Error("failed clicker should stay silent")
	}
}

package config

import "image/color"

const (
	WindowWidth  = 640
	WindowHeight = 360

	FrameRate = 60

	// Button grid
	ButtonSize    = 88
	GridColumns   = 4
	GridRows      = 2
	GridSpacing   = 40
	GridX         = 60
	GridY         = 70
	PressedAlpha  = 0.4
	ReleasedAlpha = 1.0

	DefaultDuration = 1.0

	// Click sound
	SampleRate   = 44100
	PopFrequency = 880
	PopLength    = 0.08
)

var (
	DefaultSelectedColor   = color.RGBA{R: 255, G: 172, B: 51, A: 255}
	DefaultUnselectedColor = color.RGBA{R: 136, G: 153, B: 166, A: 255}
	DefaultCircleColor     = DefaultSelectedColor
	DefaultLineColor       = color.RGBA{R: 250, G: 120, B: 68, A: 255}

	BackgroundColor = color.RGBA{R: 20, G: 25, B: 35, A: 255}
)

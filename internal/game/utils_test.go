package game

import (
	"image/color"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00.000"},
		{1500 * time.Millisecond, "01.500"},
		{12*time.Second + 34*time.Millisecond, "12.034"},
		{59*time.Second + 999*time.Millisecond, "59.999"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestTint(t *testing.T) {
	tests := []struct {
		h, s, v float64
		want    color.RGBA
	}{
		{0, 1, 1, color.RGBA{R: 255, A: 255}},
		{120, 1, 1, color.RGBA{G: 255, A: 255}},
		{240, 1, 1, color.RGBA{B: 255, A: 255}},
		{0, 0, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{200, 0.5, 0, color.RGBA{A: 255}},
	}
	for _, tt := range tests {
		if got := tint(tt.h, tt.s, tt.v); got != tt.want {
			t.Errorf("tint(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.v, got, tt.want)
		}
	}
}

func TestNextDuration(t *testing.T) {
	tests := []struct {
		cur, want float64
	}{
		{1, 2},
		{2, 4},
		{4, 0.5},
		{0.5, 1},
		{2.5, 1},
		{3, 1},
	}
	for _, tt := range tests {
		if got := nextDuration(tt.cur); got != tt.want {
			t.Errorf("nextDuration(%v) = %v, want %v", tt.cur, got, tt.want)
		}
	}
}

package button

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/iburimskiy/favebutton/internal/anim"
	"github.com/iburimskiy/favebutton/internal/config"
	"github.com/iburimskiy/favebutton/internal/geom"
	"github.com/iburimskiy/favebutton/internal/layer"
)

var (
	selectedRGB   = color.RGBA{R: 255, G: 172, B: 51, A: 255}
	unselectedRGB = color.RGBA{R: 136, G: 153, B: 166, A: 255}
)

func testIcon() image.Image {
	img := image.NewAlpha(image.Rect(0, 0, 16, 16))
	for y := 4; y < 12; y++ {
		for x := 4; x < 12; x++ {
			img.SetAlpha(x, y, color.Alpha{A: 255})
		}
	}
	return img
}

func newTestButton(t *testing.T) (*Button, *anim.FrameClock) {
	t.Helper()
	clock := &anim.FrameClock{}
	b := New(geom.Rect{W: 44, H: 44}, testIcon(), WithClock(clock))
	return b, clock
}

func assertAtRest(t *testing.T, b *Button) {
	t.Helper()
	set := b.Layers()
	for _, l := range set.Animatable() {
		if l.HasAnimations() {
			t.Errorf("%s still has handles %v", l.Name, l.AnimationKeys())
		}
	}
	for i, l := range set.Lines {
		now := b.Now()
		if l.PresentationScalar(layer.KeyStrokeStart, now) != 0 ||
			l.PresentationScalar(layer.KeyStrokeEnd, now) != 0 ||
			l.PresentationScalar(layer.KeyOpacity, now) != 0 {
			t.Errorf("line %d not at rest", i)
		}
	}
}

func TestSelectAttachesHandles(t *testing.T) {
	b, _ := newTestButton(t)
	b.Select()

	if !b.IsSelected() {
		t.Fatal("button should be selected right after Select")
	}
	if got := b.Layers().Icon.FillColor; got != color.Color(selectedRGB) {
		t.Errorf("icon fill = %v, want %v", got, selectedRGB)
	}

	set := b.Layers()
	for _, l := range []*layer.Shape{set.Circle, set.CircleMask, set.Icon} {
		if l.TransformAnimation() == nil {
			t.Errorf("%s has no transform handle", l.Name)
		}
	}
	for i, l := range set.Lines {
		want := []layer.KeyPath{layer.KeyOpacity, layer.KeyStrokeEnd, layer.KeyStrokeStart}
		if diff := cmp.Diff(want, l.AnimationKeys()); diff != "" {
			t.Errorf("line %d handles mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestDeselectAfterSelect(t *testing.T) {
	b, clock := newTestButton(t)
	b.Select()
	clock.Advance(100 * time.Millisecond)
	b.Deselect()

	if b.IsSelected() {
		t.Fatal("button should not be selected")
	}
	if got := b.Layers().Icon.FillColor; got != color.Color(unselectedRGB) {
		t.Errorf("icon fill = %v, want %v", got, unselectedRGB)
	}
	assertAtRest(t, b)
}

func TestDeselectIsIdempotent(t *testing.T) {
	b, _ := newTestButton(t)
	b.Select()
	b.Deselect()
	once := *b.Layers().Icon

	b.Deselect()
	if b.Layers().Icon.FillColor != once.FillColor {
		t.Errorf("second deselect changed the icon fill")
	}
	assertAtRest(t, b)

	fresh, _ := newTestButton(t)
	fresh.AnimateToDeselectedState()
	assertAtRest(t, fresh)
	if fresh.IsSelected() {
		t.Error("deselecting an unselected button selected it")
	}
}

func TestUnselectedColorWhileSelected(t *testing.T) {
	b, _ := newTestButton(t)
	b.Select()

	blue := color.RGBA{B: 255, A: 255}
	b.SetUnselectedColor(blue)
	if got := b.Layers().Icon.FillColor; got != color.Color(selectedRGB) {
		t.Errorf("icon fill changed to %v while selected", got)
	}

	b.Deselect()
	if got := b.Layers().Icon.FillColor; got != color.Color(blue) {
		t.Errorf("icon fill = %v after deselect, want %v", got, blue)
	}
}

func TestSelectedColorWhileUnselected(t *testing.T) {
	b, _ := newTestButton(t)
	red := color.RGBA{R: 255, A: 255}
	b.SetSelectedColor(red)
	if got := b.Layers().Icon.FillColor; got != color.Color(unselectedRGB) {
		t.Errorf("icon fill changed to %v while unselected", got)
	}
	b.SelectAnimated(false)
	if got := b.Layers().Icon.FillColor; got != color.Color(red) {
		t.Errorf("icon fill = %v, want %v", got, red)
	}

	green := color.RGBA{G: 255, A: 255}
	b.SetSelectedColor(green)
	if got := b.Layers().Icon.FillColor; got != color.Color(green) {
		t.Errorf("selected color should repaint while selected, got %v", got)
	}
}

func TestCircleAndLineColorsAlwaysRepaint(t *testing.T) {
	b, _ := newTestButton(t)
	for _, selected := range []bool{false, true} {
		b.SetSelected(selected)
		c := color.RGBA{R: 10, G: 20, B: 30, A: 255}
		if selected {
			c = color.RGBA{R: 40, G: 50, B: 60, A: 255}
		}
		b.SetCircleColor(c)
		b.SetLineColor(c)
		if b.Layers().Circle.FillColor != color.Color(c) {
			t.Errorf("selected=%v: circle not repainted", selected)
		}
		for i, l := range b.Layers().Lines {
			if l.StrokeColor != color.Color(c) {
				t.Errorf("selected=%v: line %d not repainted", selected, i)
			}
		}
	}
}

func TestDoubledDuration(t *testing.T) {
	b, clock := newTestButton(t)
	if err := b.SetDurationMultiplier(2); err != nil {
		t.Fatal(err)
	}
	clock.Advance(time.Second)
	b.SelectAnimated(true)

	set := b.Layers()
	if got := set.Circle.TransformAnimation().Duration; got != 666*time.Millisecond {
		t.Errorf("circle duration = %v, want 666ms", got)
	}
	if got := set.Icon.TransformAnimation().Duration; got != 2*time.Second {
		t.Errorf("icon duration = %v, want 2s", got)
	}
	if got := set.Lines[3].ScalarAnimation(layer.KeyStrokeEnd).Duration; got != 1200*time.Millisecond {
		t.Errorf("stroke end duration = %v, want 1.2s", got)
	}
	if got := set.Icon.TransformAnimation().Begin; got != time.Second {
		t.Errorf("icon begins at %v, want 1s", got)
	}
}

func TestInvalidDurationRejected(t *testing.T) {
	b, _ := newTestButton(t)
	for _, m := range []float64{0, -1} {
		if err := b.SetDurationMultiplier(m); errors.Cause(err) != config.ErrInvalidDuration {
			t.Errorf("SetDurationMultiplier(%v) = %v", m, err)
		}
	}
	if b.DurationMultiplier() != 1 {
		t.Errorf("multiplier changed to %v", b.DurationMultiplier())
	}
}

func TestSelectWithoutAnimation(t *testing.T) {
	b, _ := newTestButton(t)
	b.SelectAnimated(false)
	if !b.IsSelected() {
		t.Fatal("expected selected")
	}
	for _, l := range b.Layers().Animatable() {
		if l.HasAnimations() {
			t.Errorf("%s animating after a non-animated select", l.Name)
		}
	}
}

func TestSelectReplaysWhenAlreadySelected(t *testing.T) {
	b, clock := newTestButton(t)
	b.Select()
	clock.Advance(2 * time.Second)
	b.AnimateToSelectedState()

	icon := b.Layers().Icon.TransformAnimation()
	if icon.Begin != 2*time.Second {
		t.Errorf("replayed burst begins at %v, want 2s", icon.Begin)
	}
	if got := b.Layers().Icon.PresentationScale(clock.Now()); got != anim.Uniform(0) {
		t.Errorf("replayed icon should restart hidden, got %v", got)
	}
}

func TestSetSelectedProperty(t *testing.T) {
	b, _ := newTestButton(t)

	b.SetSelected(true)
	if !b.IsSelected() || b.Layers().Icon.FillColor != color.Color(selectedRGB) {
		t.Error("SetSelected(true) should select and re-tint")
	}
	for _, l := range b.Layers().Animatable() {
		if l.HasAnimations() {
			t.Errorf("SetSelected(true) should not animate, %s has handles", l.Name)
		}
	}

	b.Select()
	b.SetSelected(true)
	if !b.Layers().Icon.HasAnimations() {
		t.Error("writing the same value should leave running animations alone")
	}

	b.SetSelected(false)
	if b.IsSelected() {
		t.Error("SetSelected(false) should deselect")
	}
	assertAtRest(t, b)
}

func TestIconChangeRebuildsLayers(t *testing.T) {
	b, _ := newTestButton(t)
	b.Select()
	before := b.Layers()

	b.SetIcon(nil)
	after := b.Layers()
	if before == after {
		t.Fatal("layers were not rebuilt")
	}
	assertAtRest(t, b)
	if after.IconMask.Contents != nil {
		t.Error("expected an empty icon mask")
	}
	if after.Icon.FillColor != color.Color(selectedRGB) {
		t.Errorf("rebuilt icon should keep the selected fill, got %v", after.Icon.FillColor)
	}
	if !b.IsSelected() {
		t.Error("rebuild must not change the selection")
	}
}

func TestFrameChange(t *testing.T) {
	b, _ := newTestButton(t)
	before := b.Layers()

	b.SetFrame(geom.Rect{X: 100, Y: 100, W: 44, H: 44})
	if b.Layers() != before {
		t.Error("moving without resizing should keep the layers")
	}

	b.SetFrame(geom.Rect{X: 100, Y: 100, W: 88, H: 60})
	if b.Layers() == before {
		t.Fatal("resizing should rebuild the layers")
	}
	want := geom.Rect{X: 22, Y: 15, W: 44, H: 30}
	if got := b.Layers().IconBox; got != want {
		t.Errorf("icon box = %v, want %v", got, want)
	}
	if !b.Contains(geom.Point{X: 150, Y: 130}) || b.Contains(geom.Point{X: 50, Y: 50}) {
		t.Error("Contains does not follow the frame")
	}
}

func TestTouchFeedback(t *testing.T) {
	b, _ := newTestButton(t)
	tests := []struct {
		sig  Signal
		want float64
	}{
		{Press, 0.4},
		{DragExit, 1.0},
		{DragEnter, 0.4},
		{ReleaseInside, 1.0},
		{Press, 0.4},
		{Cancel, 1.0},
	}
	for _, tt := range tests {
		b.Handle(tt.sig)
		if got := b.Opacity(); got != tt.want {
			t.Errorf("after signal %d opacity = %v, want %v", tt.sig, got, tt.want)
		}
		if b.IsSelected() {
			t.Fatalf("signal %d changed the selection", tt.sig)
		}
	}
}

func TestDegenerateConstruction(t *testing.T) {
	b := New(geom.Rect{}, nil)
	b.Select()
	b.Deselect()
	if !b.Layers().IconBox.Empty() {
		t.Errorf("expected zero-area icon box, got %v", b.Layers().IconBox)
	}
}

func TestApplyTheme(t *testing.T) {
	b, _ := newTestButton(t)
	theme := config.DefaultTheme()
	theme.UnselectedColor = color.RGBA{R: 1, G: 2, B: 3, A: 255}
	theme.LineColor = color.RGBA{R: 4, G: 5, B: 6, A: 255}
	theme.Duration = 0.5

	if err := b.ApplyTheme(theme); err != nil {
		t.Fatal(err)
	}
	if b.Layers().Icon.FillColor != color.Color(theme.UnselectedColor) {
		t.Errorf("unselected color not applied")
	}
	if b.Layers().Lines[0].StrokeColor != color.Color(theme.LineColor) {
		t.Errorf("line color not applied")
	}
	if got := b.Choreography().Duration(anim.IconScale); got != 500*time.Millisecond {
		t.Errorf("icon duration = %v", got)
	}

	theme.Duration = 0
	if err := b.ApplyTheme(theme); errors.Cause(err) != config.ErrInvalidDuration {
		t.Errorf("expected ErrInvalidDuration, got %v", err)
	}
}

func TestLogsRebuildAndSelect(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	b := New(geom.Rect{W: 44, H: 44}, nil, WithLogger(logger), WithClock(&anim.FrameClock{}))
	b.Select()

	var msgs []string
	for _, e := range hook.AllEntries() {
		msgs = append(msgs, e.Message)
	}
	want := []string{"button layers rebuilt", "select animation scheduled"}
	if diff := cmp.Diff(want, msgs); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

// Package game is the ebiten host for a grid of favorite buttons: it drives
// the frame clock, turns mouse input into button signals and toggles buttons
// on release.
package game

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/iburimskiy/favebutton/internal/anim"
	"github.com/iburimskiy/favebutton/internal/button"
	"github.com/iburimskiy/favebutton/internal/config"
	"github.com/iburimskiy/favebutton/internal/game/press"
	"github.com/iburimskiy/favebutton/internal/geom"
	"github.com/iburimskiy/favebutton/internal/icon"
	"github.com/iburimskiy/favebutton/internal/render"
)

// Options configures the demo host.
type Options struct {
	Theme   config.Theme
	Widgets []*config.Widget
	Mute    bool
	Logger  *logrus.Logger
}

type entry struct {
	btn      *button.Button
	renderer *render.Renderer
}

type game struct {
	clock *anim.FrameClock
	log   *logrus.Logger
	sound *clicker

	entries []*entry

	press   press.Tracker
	focused int

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

// New builds the host. Persisted widgets are placed as given; without any a
// default grid of buttons is laid out.
func New(opts Options) (ebiten.Game, error) {
	g := &game{
		clock:   &anim.FrameClock{},
		log:     opts.Logger,
		press:   press.NewTracker(),
		prevKey: map[ebiten.Key]bool{},
	}
	if g.log == nil {
		g.log = logrus.StandardLogger()
	}

	g.sound = newClicker(opts.Mute)
	if err := g.sound.start(); err != nil {
		g.log.WithError(err).Warn("sound disabled")
	}

	if len(opts.Widgets) > 0 {
		for _, w := range opts.Widgets {
			if err := g.addWidget(w); err != nil {
				return nil, err
			}
		}
	} else if err := g.addGrid(opts.Theme); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *game) newButton(frame geom.Rect, img image.Image) *button.Button {
	b := button.New(frame, img, button.WithClock(g.clock), button.WithLogger(g.log))
	g.entries = append(g.entries, &entry{btn: b, renderer: render.NewRenderer()})
	return b
}

func (g *game) addGrid(theme config.Theme) error {
	shapes := []icon.Shape{icon.Heart, icon.Star, icon.Thumb, icon.Bookmark}
	for row := 0; row < config.GridRows; row++ {
		for col := 0; col < config.GridColumns; col++ {
			frame := geom.Rect{
				X: float64(config.GridX + col*(config.ButtonSize+config.GridSpacing)),
				Y: float64(config.GridY + row*(config.ButtonSize+config.GridSpacing)),
				W: config.ButtonSize,
				H: config.ButtonSize,
			}
			shape := shapes[col%len(shapes)]
			b := g.newButton(frame, icon.Rasterize(shape, config.ButtonSize/2))
			if err := b.ApplyTheme(theme); err != nil {
				return err
			}
			// The second row gets its own burst colors.
			if row > 0 {
				hue := float64(col) * 360 / config.GridColumns
				b.SetCircleColor(tint(hue, 0.7, 0.95))
				b.SetLineColor(tint(hue+30, 0.8, 0.95))
			}
		}
	}
	return nil
}

func (g *game) addWidget(w *config.Widget) error {
	var img image.Image
	if w.Icon != "" {
		var err error
		if img, err = icon.Load(w.Icon); err != nil {
			return err
		}
	}
	b := g.newButton(geom.Rect{X: w.Frame.X, Y: w.Frame.Y, W: w.Frame.W, H: w.Frame.H}, img)
	if err := b.ApplyTheme(w.Theme); err != nil {
		return err
	}
	b.SetSelected(w.Selected)
	return nil
}

func (g *game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	g.clock.Advance(time.Second / config.FrameRate)

	mx, my := ebiten.CursorPosition()
	cursor := geom.Point{X: float64(mx), Y: float64(my)}
	hovered := g.hit(cursor)
	if hovered >= 0 {
		g.focused = hovered
	}

	g.updatePress(cursor, hovered)

	if justPressed(ebiten.KeySpace) {
		g.toggle(g.entries[g.focused].btn)
	}
	if justPressed(ebiten.KeyO) {
		if err := g.openIconDialog(g.entries[g.focused].btn); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyD) {
		g.cycleDuration()
	}
	if justPressed(ebiten.KeyR) {
		for _, e := range g.entries {
			e.btn.Deselect()
		}
	}
	if justPressed(ebiten.KeyM) {
		if err := g.sound.toggleMute(); err != nil {
			g.lastErr = err
			g.log.WithError(err).Warn("sound disabled")
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

// updatePress maps mouse edges onto touch signals for the pressed button.
func (g *game) updatePress(cursor geom.Point, hovered int) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && hovered >= 0 {
		g.press.Start(hovered)
		g.entries[hovered].btn.Handle(button.Press)
	}
	i := g.press.Target()
	if i < 0 {
		return
	}
	b := g.entries[i].btn

	sig, ok := g.press.Step(b.Contains(cursor),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		ebiten.IsFocused())
	if !ok {
		return
	}
	b.Handle(sig)
	if sig == button.ReleaseInside {
		g.toggle(b)
	}
}

// toggle applies the caller-side selection policy; the button never flips itself.
func (g *game) toggle(b *button.Button) {
	if press.Toggle(b) {
		g.sound.play()
	}
}

func (g *game) hit(p geom.Point) int {
	for i, e := range g.entries {
		if e.btn.Contains(p) {
			return i
		}
	}
	return -1
}

func (g *game) cycleDuration() {
	m := nextDuration(g.entries[g.focused].btn.DurationMultiplier())
	for _, e := range g.entries {
		if err := e.btn.SetDurationMultiplier(m); err != nil {
			g.lastErr = err
			return
		}
	}
	g.log.WithField("multiplier", m).Info("duration changed")
}

func (g *game) openIconDialog(b *button.Button) error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Icon"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.webp"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	img, err := icon.Load(filename)
	if err != nil {
		g.log.WithError(err).Warn("icon not loaded")
		return err
	}
	b.SetIcon(img)
	g.log.WithField("file", filename).Info("icon replaced")
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	now := g.clock.Now()
	for _, e := range g.entries {
		e.renderer.Draw(screen, e.btn, now)
	}

	status := fmt.Sprintf("t=%s  x%.2g  Click or Space: toggle, O: icon, D: duration, R: reset, M: mute, Esc/Q: quit",
		formatDuration(now), g.entries[g.focused].btn.DurationMultiplier())
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

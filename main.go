package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/iburimskiy/favebutton/internal/config"
	"github.com/iburimskiy/favebutton/internal/game"
)

func main() {
	themePath := flag.String("theme", "", "YAML theme file")
	widgetPath := flag.String("widget", "", "persisted widget YAML file; replaces the default grid")
	duration := flag.Float64("duration", 0, "animation duration multiplier (overrides the theme)")
	mute := flag.Bool("mute", false, "disable the click sound")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	theme := config.DefaultTheme()
	if *themePath != "" {
		t, err := config.LoadTheme(*themePath)
		if err != nil {
			log.WithError(err).Fatal("load theme")
		}
		theme = t
		log.WithField("path", *themePath).Info("theme loaded")
	}
	if *duration != 0 {
		if *duration < 0 {
			log.WithField("duration", *duration).Fatal(config.ErrInvalidDuration)
		}
		theme.Duration = *duration
	}

	opts := game.Options{Theme: theme, Mute: *mute, Logger: log}
	if *widgetPath != "" {
		w, err := config.LoadWidget(*widgetPath)
		if err != nil {
			log.WithError(err).Fatal("load widget")
		}
		opts.Widgets = append(opts.Widgets, w)
	}

	g, err := game.New(opts)
	if err != nil {
		log.WithError(err).Fatal("build buttons")
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Favorite Button - Click to toggle, O: icon, D: duration, Esc/Q: Quit")
	ebiten.SetTPS(config.FrameRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("run")
	}
}

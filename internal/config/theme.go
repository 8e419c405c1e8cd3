package config

import (
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// WidgetSchema is the only persisted widget format this build understands.
const WidgetSchema = "favebutton/v1"

var (
	ErrInvalidColor       = errors.New("invalid color")
	ErrInvalidDuration    = errors.New("duration multiplier must be positive")
	ErrIncompatibleSchema = errors.New("incompatible widget schema")
)

// Theme is the color and timing configuration of a button.
type Theme struct {
	SelectedColor   color.RGBA
	UnselectedColor color.RGBA
	CircleColor     color.RGBA
	LineColor       color.RGBA
	Duration        float64
}

func DefaultTheme() Theme {
	return Theme{
		SelectedColor:   DefaultSelectedColor,
		UnselectedColor: DefaultUnselectedColor,
		CircleColor:     DefaultCircleColor,
		LineColor:       DefaultLineColor,
		Duration:        DefaultDuration,
	}
}

type themeDoc struct {
	SelectedColor   string   `yaml:"selected_color,omitempty"`
	UnselectedColor string   `yaml:"unselected_color,omitempty"`
	CircleColor     string   `yaml:"circle_color,omitempty"`
	LineColor       string   `yaml:"line_color,omitempty"`
	Duration        *float64 `yaml:"duration,omitempty"`
}

// Frame is a button rectangle in window coordinates.
type Frame struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Widget is a persisted button: where it sits, how it looks and whether it
// is selected.
type Widget struct {
	Frame    Frame
	Selected bool
	Theme    Theme
	Icon     string
}

type widgetDoc struct {
	Schema   string   `yaml:"schema"`
	Frame    Frame    `yaml:"frame"`
	Selected bool     `yaml:"selected"`
	Theme    themeDoc `yaml:"theme,omitempty"`
	Icon     string   `yaml:"icon,omitempty"`
}

// ParseTheme decodes a YAML theme. Keys left out keep their defaults.
func ParseTheme(data []byte) (Theme, error) {
	var doc themeDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Theme{}, errors.Wrap(err, "decode theme")
	}
	return doc.apply(DefaultTheme())
}

// LoadTheme reads and decodes a YAML theme file.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, errors.Wrapf(err, "read theme %s", path)
	}
	return ParseTheme(data)
}

// DecodeWidget decodes a persisted widget. A document written for another
// schema is rejected with ErrIncompatibleSchema.
func DecodeWidget(data []byte) (*Widget, error) {
	var doc widgetDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode widget")
	}
	if doc.Schema != WidgetSchema {
		return nil, errors.Wrapf(ErrIncompatibleSchema, "got %q, want %q", doc.Schema, WidgetSchema)
	}

	theme, err := doc.Theme.apply(DefaultTheme())
	if err != nil {
		return nil, err
	}
	return &Widget{
		Frame:    doc.Frame,
		Selected: doc.Selected,
		Theme:    theme,
		Icon:     doc.Icon,
	}, nil
}

func LoadWidget(path string) (*Widget, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read widget %s", path)
	}
	return DecodeWidget(data)
}

// EncodeWidget writes w in the current schema.
func EncodeWidget(w *Widget) ([]byte, error) {
	d := w.Theme.Duration
	doc := widgetDoc{
		Schema:   WidgetSchema,
		Frame:    w.Frame,
		Selected: w.Selected,
		Theme: themeDoc{
			SelectedColor:   hex(w.Theme.SelectedColor),
			UnselectedColor: hex(w.Theme.UnselectedColor),
			CircleColor:     hex(w.Theme.CircleColor),
			LineColor:       hex(w.Theme.LineColor),
			Duration:        &d,
		},
		Icon: w.Icon,
	}
	data, err := yaml.Marshal(&doc)
	return data, errors.Wrap(err, "encode widget")
}

func (d themeDoc) apply(t Theme) (Theme, error) {
	fields := []struct {
		name string
		src  string
		dst  *color.RGBA
	}{
		{"selected_color", d.SelectedColor, &t.SelectedColor},
		{"unselected_color", d.UnselectedColor, &t.UnselectedColor},
		{"circle_color", d.CircleColor, &t.CircleColor},
		{"line_color", d.LineColor, &t.LineColor},
	}
	for _, f := range fields {
		if f.src == "" {
			continue
		}
		c, err := ParseColor(f.src)
		if err != nil {
			return Theme{}, errors.Wrap(err, f.name)
		}
		*f.dst = c
	}

	if d.Duration != nil {
		if *d.Duration <= 0 {
			return Theme{}, errors.Wrapf(ErrInvalidDuration, "duration %v", *d.Duration)
		}
		t.Duration = *d.Duration
	}
	return t, nil
}

// ParseColor parses a "#rrggbb" or "#rgb" string into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(ErrInvalidColor, "%q", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

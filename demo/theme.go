package demo

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/rhythmix/docanim/config"
)

// Named colours used by the demos regardless of theme.
var (
	Blue           = mustHex("#58C4DD")
	Red            = mustHex("#FC6255")
	Green          = mustHex("#83C167")
	White          = mustHex("#FFFFFF")
	Black          = mustHex("#000000")
	Grey           = mustHex("#888888")
	HighlightRed   = mustHex("#FF0000")
	HighlightGreen = mustHex("#00FF00")
)

var named = map[string]colorful.Color{
	"blue":  Blue,
	"red":   Red,
	"green": Green,
	"white": White,
	"black": Black,
	"grey":  Grey,
	"gray":  Grey,
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Theme is the parsed documentation colour scheme.
type Theme struct {
	Primary    colorful.Color
	Secondary  colorful.Color
	Accent     colorful.Color
	Text       colorful.Color
	Subtext    colorful.Color
	Background colorful.Color
}

// NewTheme parses the configured hex colours.
func NewTheme(c config.Colors) (Theme, error) {
	var t Theme
	fields := []struct {
		name string
		hex  string
		dst  *colorful.Color
	}{
		{"primary", c.Primary, &t.Primary},
		{"secondary", c.Secondary, &t.Secondary},
		{"accent", c.Accent, &t.Accent},
		{"text", c.Text, &t.Text},
		{"subtext", c.Subtext, &t.Subtext},
		{"background", c.Background, &t.Background},
	}
	for _, f := range fields {
		col, err := colorful.Hex(f.hex)
		if err != nil {
			return Theme{}, fmt.Errorf("color %s: %w", f.name, err)
		}
		*f.dst = col
	}
	return t, nil
}

// Lookup resolves a theme key, a named colour or a hex string.
func (t Theme) Lookup(name string) (colorful.Color, error) {
	switch strings.ToLower(name) {
	case "primary":
		return t.Primary, nil
	case "secondary":
		return t.Secondary, nil
	case "accent":
		return t.Accent, nil
	case "text":
		return t.Text, nil
	case "subtext":
		return t.Subtext, nil
	case "background":
		return t.Background, nil
	}
	if c, ok := named[strings.ToLower(name)]; ok {
		return c, nil
	}
	return colorful.Hex(name)
}

// Status returns the recording colour for a step outcome.
func (t Theme) Status(satisfied bool) colorful.Color {
	if satisfied {
		return t.Secondary
	}
	return t.Accent
}

// Colors lists every colour a demo can draw with, for the GIF palette.
func (t Theme) Colors() []colorful.Color {
	return []colorful.Color{
		White, t.Primary, t.Secondary, t.Accent, t.Subtext, t.Text,
		Grey, Blue, Red, Green, HighlightRed, HighlightGreen, Black,
	}
}

package demo

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rhythmix/docanim/config"
	"github.com/rhythmix/docanim/scene"
)

// Stats describes a finished render.
type Stats struct {
	// Frames is the number of rendered frames, GIFFrames the number left
	// after identical frames were merged.
	Frames    int           `json:"frames"`
	GIFFrames int           `json:"gif_frames"`
	Duration  time.Duration `json:"duration"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	FPS       int           `json:"fps"`
}

// Canvas returns the canvas def is rendered on.
func Canvas(def Definition, canvas config.Canvas) config.Canvas {
	return canvas.WithSize(def.Width, def.Height)
}

// Render plays def and writes the animated GIF to w.
func Render(def Definition, canvas config.Canvas, colors config.Colors, w io.Writer) (Stats, error) {
	def = def.WithDefaults()
	if err := def.Validate(); err != nil {
		return Stats{}, err
	}

	canvas = Canvas(def, canvas)
	theme, err := NewTheme(colors)
	if err != nil {
		return Stats{}, err
	}
	vp, err := scene.NewViewport(canvas)
	if err != nil {
		return Stats{}, err
	}
	for _, text := range def.Texts() {
		if missing := vp.Missing(text); len(missing) > 0 {
			slog.Warn("Font has no glyph", "demo", def.Name, "text", text, "runes", string(missing))
		}
	}

	fps := canvas.FPS()
	palette := scene.NewPalette(theme.Background, theme.Colors()...)
	sink := scene.NewGIFSink(fps)
	s := scene.NewScene(vp, fps, theme.Background, palette, sink)
	d := newDocScene(s, theme, def.Speed)

	switch def.Kind {
	case StringMovement:
		err = playStringMovement(d, def)
	case StateTransition:
		err = playStateTransition(d, def)
	}
	if err != nil {
		return Stats{}, fmt.Errorf("play %s: %w", def.Name, err)
	}

	if err := sink.Encode(w); err != nil {
		return Stats{}, fmt.Errorf("encode %s: %w", def.Name, err)
	}

	stats := Stats{
		Frames:    s.Frames(),
		GIFFrames: sink.Len(),
		Duration:  sink.Duration(),
		Width:     canvas.Width,
		Height:    canvas.Height,
		FPS:       fps,
	}
	return stats, nil
}

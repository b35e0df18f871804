package demo

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/rhythmix/docanim/layout"
	"github.com/rhythmix/docanim/scene"
)

const (
	// expressionY is the height of the center text or expression.
	expressionY = 1.2
	// columnMargin is kept free on both sides of the recording columns.
	columnMargin = 0.5
	// referenceHeight is the canvas height stroke widths are designed for.
	referenceHeight = 480.0
	// bottomMargin is kept free below the recording.
	bottomMargin = 0.2
	// minRecordingHeight is the least room a recording column gets.
	minRecordingHeight = 0.5
)

// docScene wraps a Scene with the helpers every demo uses.
type docScene struct {
	*scene.Scene
	theme Theme
	speed float64
}

func newDocScene(s *scene.Scene, theme Theme, speed float64) *docScene {
	d := new(docScene)
	d.Scene = s
	d.theme = theme
	d.speed = speed
	if d.speed <= 0 {
		d.speed = 1
	}
	return d
}

// runtime applies the speed multiplier to a base duration.
func (d *docScene) runtime(base float64) float64 { return base / d.speed }

func (d *docScene) play(base float64, anims ...scene.Animation) error {
	return d.Play(d.runtime(base), anims...)
}

func (d *docScene) wait(base float64) error {
	return d.Wait(d.runtime(base))
}

// title creates a heading in the primary colour.
func (d *docScene) title(s string, scale float64) *scene.Text {
	return scene.NewText(d.Viewport(), s, scale, d.theme.Primary)
}

// subtitle creates body text in the theme text colour.
func (d *docScene) subtitle(s string, scale float64) *scene.Text {
	return scene.NewText(d.Viewport(), s, scale, d.theme.Text)
}

// strokeWidth converts a design stroke width into pixels for this canvas.
func (d *docScene) strokeWidth(w float64) float64 {
	_, h := d.Viewport().Size()
	px := w * float64(h) / referenceHeight
	if px < 1 {
		px = 1
	}
	return px
}

// color resolves a colour name against the theme, falling back to def when
// the name is empty.
func (d *docScene) color(name string, def colorful.Color) colorful.Color {
	if name == "" {
		return def
	}
	c, err := d.theme.Lookup(name)
	if err != nil {
		return def
	}
	return c
}

// highlightBox creates an outline around m.
func (d *docScene) highlightBox(m scene.Movable, c colorful.Color) *scene.Rect {
	return scene.Surround(m, 0.1, c, d.strokeWidth(4))
}

// inputAndResult creates the labels for one step beside target: the input
// far to the left, the result just right of it.
func (d *docScene) inputAndResult(step Step, target scene.Box) (input, result *scene.Text) {
	input = d.subtitle(step.Input, 0.6)
	input.SetColor(d.color(step.InputColorName, step.InputColor()))
	scene.NextTo(input, target, scene.Left.Scale(20), scene.DefaultBuff)

	result = d.subtitle(step.Result, 0.7)
	result.SetColor(d.color(step.ResultColorName, step.ResultColor()))
	scene.NextTo(result, target, scene.Right, 1)
	return input, result
}

// recording is the list of evaluated steps under the expression. Entries
// fill columns that stay centred and end above the bottom of the frame.
// Once the canvas is full the oldest columns scroll away.
type recording struct {
	d           *docScene
	title       *scene.Text
	columns     layout.Columns
	scale       float64
	lineSpacing float64
	wrap        bool
	entries     []*scene.Text
	first       int
}

func newRecording(d *docScene, heading string, above scene.Box, columns layout.Columns, scale, lineSpacing float64, wrap bool) *recording {
	r := new(recording)
	r.d = d
	r.title = d.subtitle(heading, 0.6)
	r.title.SetColor(Grey)
	scene.NextTo(r.title, above, scene.Down.Scale(0.5), 0.8)
	r.columns = columns
	r.columns.MaxColumns = layout.FitColumns(d.Viewport().FrameWidth(), columns.Width, columnMargin)
	floor := -scene.FrameHeight/2 + bottomMargin
	r.columns.MaxHeight = math.Max(r.title.Bounds().Min.Y-columns.TopGap-floor, minRecordingHeight)
	r.scale = scale
	r.lineSpacing = lineSpacing
	r.wrap = wrap
	return r
}

// lines splits an entry into display lines.
func (r *recording) lines(text string) []string {
	if !r.wrap {
		return []string{text}
	}
	vp := r.d.Viewport()
	measure := func(s string) float64 { return vp.MeasureWidth(s, r.scale) }
	return layout.Wrap(text, r.columns.Width-columnMargin, measure)
}

// add appends an entry, scrolling and re-centring the columns as needed.
func (r *recording) add(text string, c colorful.Color) error {
	entry := scene.NewText(r.d.Viewport(), strings.Join(r.lines(text), "\n"), r.scale, c)
	entry.SetLineSpacing(r.lineSpacing)
	if k := r.columns.Fit(entry.Bounds().Height()); k < 1 {
		entry.SetScale(r.scale * k)
		entry.SetLineSpacing(r.lineSpacing * k)
	}
	r.entries = append(r.entries, entry)

	if len(r.entries) == 1 {
		if err := r.d.play(0.2, scene.FadeIn(r.title)); err != nil {
			return err
		}
	}

	if first := r.first + r.columns.Visible(r.heights(r.entries[r.first:])); first > r.first {
		var anims []scene.Animation
		for _, old := range r.entries[r.first:first] {
			anims = append(anims, scene.FadeOut(old))
		}
		r.first = first
		if err := r.d.play(0.2, anims...); err != nil {
			return err
		}
	}

	r.arrange()
	return r.d.play(0.2, scene.FadeIn(entry))
}

func (r *recording) heights(entries []*scene.Text) []float64 {
	heights := make([]float64, len(entries))
	for i, e := range entries {
		heights[i] = e.Bounds().Height()
	}
	return heights
}

// arrange moves every visible entry to its place.
func (r *recording) arrange() {
	visible := r.entries[r.first:]
	bottom := r.title.Bounds().Bottom()
	points := r.columns.Place(layout.Point{X: bottom.X, Y: bottom.Y}, r.heights(visible))
	for i, e := range visible {
		scene.MoveTo(e, scene.Vec{X: points[i].X, Y: points[i].Y})
	}
}

// Visible returns the entries still on screen.
func (r *recording) Visible() []*scene.Text { return r.entries[r.first:] }

// highlighter marks one part of an expression with a filled box.
type highlighter struct {
	d     *docScene
	parts []*scene.Text
	box   *scene.Rect
	index int
}

func newHighlighter(d *docScene, parts []*scene.Text) *highlighter {
	return &highlighter{d: d, parts: parts, index: -1}
}

// set moves the highlight to part idx in colour c. Any previous highlight
// is removed and every part is reset to white.
func (h *highlighter) set(idx int, c colorful.Color) {
	if h.box != nil {
		h.d.Remove(h.box)
		h.box = nil
	}
	for _, p := range h.parts {
		p.SetColor(White)
	}
	h.index = -1
	if idx < 0 || idx >= len(h.parts) {
		return
	}

	text := h.parts[idx]
	box := scene.Surround(text, 0.15, c, h.d.strokeWidth(3))
	box.SetFill(c, 0.7)
	text.SetDepth(1)
	h.d.Add(box)
	h.box = box
	h.index = idx
}

// update highlights the part for state: green when the input satisfied it,
// red otherwise.
func (h *highlighter) update(state int, satisfied bool) {
	c := HighlightRed
	if satisfied {
		c = HighlightGreen
	}
	h.set(layout.PartIndex(state, len(h.parts)), c)
}

package scene

import (
	"strings"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// An Element is something the Scene draws on every frame.
type Element interface {
	Movable
	Draw(dc *gg.Context, v *Viewport)
	Depth() int
	Opacity() float64
	SetOpacity(o float64)
}

// Text is a block of one or more centred lines.
type Text struct {
	lines       []string
	widths      []float64
	center      Vec
	scale       float64
	lineSpacing float64
	color       colorful.Color
	opacity     float64
	z           int
	vp          *Viewport
}

// NewText creates a Text at the origin. Newlines start a new line.
func NewText(v *Viewport, s string, scale float64, color colorful.Color) *Text {
	t := new(Text)
	t.vp = v
	t.scale = scale
	t.color = color
	t.opacity = 1
	t.SetLines(strings.Split(s, "\n"))
	return t
}

// SetLines replaces the content, keeping the centre.
func (t *Text) SetLines(lines []string) {
	t.lines = lines
	t.widths = make([]float64, len(lines))
	for i, l := range lines {
		t.widths[i] = t.vp.MeasureWidth(l, t.scale)
	}
}

// Lines returns the content, one entry per line.
func (t *Text) Lines() []string { return t.lines }

// String joins the lines with newlines.
func (t *Text) String() string { return strings.Join(t.lines, "\n") }

// Scale returns the text scale.
func (t *Text) Scale() float64 { return t.scale }

// SetScale resizes the text, keeping its centre.
func (t *Text) SetScale(scale float64) {
	t.scale = scale
	t.SetLines(t.lines)
}

// LineSpacing returns the gap between lines in units.
func (t *Text) LineSpacing() float64 { return t.lineSpacing }

// SetLineSpacing sets the gap between lines in units.
func (t *Text) SetLineSpacing(spacing float64) { t.lineSpacing = spacing }

// Color returns the fill colour.
func (t *Text) Color() colorful.Color { return t.color }

// SetColor sets the fill colour.
func (t *Text) SetColor(c colorful.Color) { t.color = c }

// SetDepth sets the draw order; higher is drawn later.
func (t *Text) SetDepth(z int) { t.z = z }

func (t *Text) Depth() int { return t.z }
func (t *Text) Opacity() float64 { return t.opacity }
func (t *Text) SetOpacity(o float64) { t.opacity = clamp01(o) }
func (t *Text) Shift(d Vec) { t.center = t.center.Add(d) }

// Bounds returns the box around every line.
func (t *Text) Bounds() Box {
	width := 0.0
	for _, w := range t.widths {
		if w > width {
			width = w
		}
	}
	n := float64(len(t.lines))
	height := n*t.vp.LineHeight(t.scale) + (n-1)*t.lineSpacing
	return BoxAround(t.center, width, height)
}

// Draw renders every line centred on its own row.
func (t *Text) Draw(dc *gg.Context, v *Viewport) {
	if t.opacity <= 0 {
		return
	}
	lh := v.LineHeight(t.scale)
	top := t.Bounds().Max.Y
	c := t.color.Clamped()
	dc.SetFontFace(v.Face(t.scale))
	dc.SetRGBA(c.R, c.G, c.B, t.opacity)
	for i, line := range t.lines {
		y := top - lh/2 - float64(i)*(lh+t.lineSpacing)
		px, py := v.ToPixel(Vec{t.center.X, y})
		dc.DrawStringAnchored(line, px, py, 0.5, 0.5)
	}
}

// Rect is a rectangle with an outline that can be drawn progressively.
type Rect struct {
	box         Box
	stroke      colorful.Color
	strokeWidth float64
	fill        colorful.Color
	fillOpacity float64
	opacity     float64
	progress    float64
	z           int
}

// NewRect creates a fully drawn, unfilled Rect.
func NewRect(box Box, stroke colorful.Color, strokeWidth float64) *Rect {
	r := new(Rect)
	r.box = box
	r.stroke = stroke
	r.strokeWidth = strokeWidth
	r.opacity = 1
	r.progress = 1
	return r
}

// Surround creates a Rect around m, buff away from its bounds.
func Surround(m Movable, buff float64, stroke colorful.Color, strokeWidth float64) *Rect {
	return NewRect(m.Bounds().Expand(buff), stroke, strokeWidth)
}

// SetFill sets the fill colour and its opacity.
func (r *Rect) SetFill(c colorful.Color, opacity float64) {
	r.fill = c
	r.fillOpacity = clamp01(opacity)
}

// Fill returns the fill colour and opacity.
func (r *Rect) Fill() (colorful.Color, float64) { return r.fill, r.fillOpacity }

// Stroke returns the outline colour.
func (r *Rect) Stroke() colorful.Color { return r.stroke }

// Progress is the fraction of the outline drawn so far.
func (r *Rect) Progress() float64 { return r.progress }

// SetProgress sets the fraction of the outline to draw.
func (r *Rect) SetProgress(p float64) { r.progress = clamp01(p) }

// SetDepth sets the draw order; higher is drawn later.
func (r *Rect) SetDepth(z int) { r.z = z }

func (r *Rect) Depth() int { return r.z }
func (r *Rect) Opacity() float64 { return r.opacity }
func (r *Rect) SetOpacity(o float64) { r.opacity = clamp01(o) }
func (r *Rect) Bounds() Box { return r.box }
func (r *Rect) Shift(d Vec) {
	r.box.Min = r.box.Min.Add(d)
	r.box.Max = r.box.Max.Add(d)
}

// Draw fills the rectangle once the outline is complete and strokes the
// outline clockwise from the top-left corner up to the current progress.
func (r *Rect) Draw(dc *gg.Context, v *Viewport) {
	if r.opacity <= 0 || r.progress <= 0 {
		return
	}
	x0, y0 := v.ToPixel(Vec{r.box.Min.X, r.box.Max.Y})
	x1, y1 := v.ToPixel(Vec{r.box.Max.X, r.box.Min.Y})

	if r.fillOpacity > 0 && r.progress >= 1 {
		f := r.fill.Clamped()
		dc.SetRGBA(f.R, f.G, f.B, r.fillOpacity*r.opacity)
		dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
		dc.Fill()
	}
	if r.strokeWidth <= 0 {
		return
	}

	corners := [][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}
	remaining := r.progress * 2 * ((x1 - x0) + (y1 - y0))
	dc.MoveTo(x0, y0)
	for i := 1; i < len(corners) && remaining > 0; i++ {
		px, py := corners[i-1][0], corners[i-1][1]
		nx, ny := corners[i][0], corners[i][1]
		length := (nx - px) + (ny - py)
		if length < 0 {
			length = -length
		}
		if remaining >= length {
			dc.LineTo(nx, ny)
			remaining -= length
			continue
		}
		t := remaining / length
		dc.LineTo(px+(nx-px)*t, py+(ny-py)*t)
		remaining = 0
	}
	s := r.stroke.Clamped()
	dc.SetRGBA(s.R, s.G, s.B, r.opacity)
	dc.SetLineWidth(r.strokeWidth)
	dc.Stroke()
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

package scene

import (
	"bytes"
	"image"
	"image/gif"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhythmix/docanim/config"
)

type recordingSink struct {
	frames []int
	images []*image.Paletted
}

func (r *recordingSink) WriteFrame(img *image.Paletted, frames int) error {
	r.frames = append(r.frames, frames)
	r.images = append(r.images, img)
	return nil
}

func newTestScene(t *testing.T, sink Sink) *Scene {
	t.Helper()
	canvas := config.DefaultConfig().Canvas
	canvas.Width, canvas.Height = 160, 60
	vp, err := NewViewport(canvas)
	require.NoError(t, err)
	white := colorful.Color{R: 1, G: 1, B: 1}
	return NewScene(vp, 20, colorful.Color{}, NewPalette(colorful.Color{}, white), sink)
}

func TestViewportToPixel(t *testing.T) {
	vp, err := NewViewport(config.DefaultConfig().Canvas)
	require.NoError(t, err)

	assert.InDelta(t, 800/37.5, vp.FrameWidth(), 1e-9)

	x, y := vp.ToPixel(Origin)
	assert.InDelta(t, 400, x, 1e-9)
	assert.InDelta(t, 150, y, 1e-9)

	x, y = vp.ToPixel(Vec{-vp.FrameWidth() / 2, FrameHeight / 2})
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
}

func TestViewportMeasure(t *testing.T) {
	vp, err := NewViewport(config.DefaultConfig().Canvas)
	require.NoError(t, err)

	short := vp.MeasureWidth("ab", 0.8)
	long := vp.MeasureWidth("abcdef", 0.8)
	assert.Greater(t, short, 0.0)
	assert.Greater(t, long, short)
	assert.Greater(t, vp.MeasureWidth("abcdef", 1.6), long)
}

func TestViewportDefaultFontCoversSymbols(t *testing.T) {
	vp, err := NewViewport(config.DefaultConfig().Canvas)
	require.NoError(t, err)

	assert.Empty(t, vp.Missing("3>1∈(-5,5) ∉ ✓ ✗ √ × ≠ ≤ ≥"))
	assert.Equal(t, []rune{'\uE000'}, vp.Missing("a\uE000b"))
}

func TestNewViewportRejectsBadCanvas(t *testing.T) {
	_, err := NewViewport(config.Canvas{})
	assert.Error(t, err)
}

func TestTextBounds(t *testing.T) {
	vp, err := NewViewport(config.DefaultConfig().Canvas)
	require.NoError(t, err)

	one := NewText(vp, "line", 1, colorful.Color{})
	two := NewText(vp, "line\nlonger line", 1, colorful.Color{})
	two.SetLineSpacing(0.1)

	assert.InDelta(t, config.DefaultFontUnits, one.Bounds().Height(), 1e-9)
	assert.InDelta(t, 2*config.DefaultFontUnits+0.1, two.Bounds().Height(), 1e-9)
	assert.Greater(t, two.Bounds().Width(), one.Bounds().Width())
	assertVec(t, Origin, two.Bounds().Center())
}

func TestTextSetScaleKeepsCentre(t *testing.T) {
	vp, err := NewViewport(config.DefaultConfig().Canvas)
	require.NoError(t, err)

	text := NewText(vp, "one\ntwo", 1, colorful.Color{})
	MoveTo(text, Vec{1, -2})
	width := text.Bounds().Width()

	text.SetScale(0.5)
	assert.Equal(t, 0.5, text.Scale())
	assert.InDelta(t, 2*config.DefaultFontUnits*0.5, text.Bounds().Height(), 1e-9)
	assert.Less(t, text.Bounds().Width(), width)
	assertVec(t, Vec{1, -2}, text.Bounds().Center())
}

func TestPlayFrameCount(t *testing.T) {
	sink := new(recordingSink)
	s := newTestScene(t, sink)
	text := NewText(s.Viewport(), "x", 1, colorful.Color{R: 1, G: 1, B: 1})

	require.NoError(t, s.Play(0.5, FadeIn(text)))
	assert.Len(t, sink.frames, 10)
	assert.Equal(t, 10, s.Frames())

	// Very short animations still get one frame.
	require.NoError(t, s.Play(0.001, FadeOut(text)))
	assert.Equal(t, 11, s.Frames())
}

func TestFadeLifecycle(t *testing.T) {
	s := newTestScene(t, nil)
	text := NewText(s.Viewport(), "x", 1, colorful.Color{R: 1, G: 1, B: 1})

	require.NoError(t, s.Play(0.2, FadeIn(text)))
	assert.True(t, s.Contains(text))
	assert.Equal(t, 1.0, text.Opacity())

	require.NoError(t, s.Play(0.2, FadeOut(text)))
	assert.False(t, s.Contains(text))
	assert.Equal(t, 0.0, text.Opacity())
}

func TestMoveLandsOnTarget(t *testing.T) {
	s := newTestScene(t, nil)
	text := NewText(s.Viewport(), "x", 1, colorful.Color{R: 1, G: 1, B: 1})
	s.Add(text)

	require.NoError(t, s.Play(0.3, Move(text, Vec{-2, 1})))
	assertVec(t, Vec{-2, 1}, text.Bounds().Center())
}

func TestCreateDrawsOutline(t *testing.T) {
	s := newTestScene(t, nil)
	r := NewRect(BoxAround(Origin, 2, 1), colorful.Color{R: 1, G: 1, B: 1}, 2)

	require.NoError(t, s.Play(0.2, Create(r)))
	assert.True(t, s.Contains(r))
	assert.Equal(t, 1.0, r.Progress())
}

func TestWaitEmitsOnce(t *testing.T) {
	sink := new(recordingSink)
	s := newTestScene(t, sink)

	require.NoError(t, s.Wait(1))
	assert.Equal(t, []int{20}, sink.frames)
	assert.InDelta(t, 1.0, s.Duration(), 1e-9)
}

func TestAddRemove(t *testing.T) {
	s := newTestScene(t, nil)
	a := NewText(s.Viewport(), "a", 1, colorful.Color{})
	b := NewText(s.Viewport(), "b", 1, colorful.Color{})

	s.Add(a, b, a)
	assert.Len(t, s.Elements(), 2)
	s.Remove(a)
	assert.Equal(t, []Element{b}, s.Elements())
}

func TestRenderDrawsText(t *testing.T) {
	s := newTestScene(t, nil)
	blank := s.Render()

	text := NewText(s.Viewport(), "HELLO", 4, colorful.Color{R: 1, G: 1, B: 1})
	s.Add(text)
	drawn := s.Render()

	assert.False(t, bytes.Equal(blank.Pix, drawn.Pix))
	for _, idx := range blank.Pix {
		require.Equal(t, uint8(0), idx)
	}
}

func TestPaletteBlends(t *testing.T) {
	bg := colorful.Color{}
	red := colorful.Color{R: 1}
	green := colorful.Color{G: 1}
	p := NewPalette(bg, red, green, red)

	assert.LessOrEqual(t, p.Len(), 256)
	assert.Equal(t, 3+2*(backgroundSteps-1)+crossSteps, p.Len())
	r, g, b, _ := p.Colors()[0].RGBA()
	assert.Zero(t, r+g+b)
}

func TestPaletteCapped(t *testing.T) {
	colors := make([]colorful.Color, 40)
	for i := range colors {
		colors[i] = colorful.Hsv(float64(i)*9, 1, 1)
	}
	p := NewPalette(colorful.Color{}, colors...)
	assert.Equal(t, 256, p.Len())
}

func TestGIFSinkDelaysAndMerging(t *testing.T) {
	sink := NewGIFSink(30)
	pal := NewPalette(colorful.Color{}, colorful.Color{R: 1})

	a := image.NewPaletted(image.Rect(0, 0, 4, 4), pal.Colors())
	b := image.NewPaletted(image.Rect(0, 0, 4, 4), pal.Colors())
	b.SetColorIndex(2, 1, 1)

	require.NoError(t, sink.WriteFrame(a, 1))
	require.NoError(t, sink.WriteFrame(a, 2))
	require.NoError(t, sink.WriteFrame(b, 1))
	require.NoError(t, sink.WriteFrame(b, 0))

	assert.Equal(t, 2, sink.Len())
	// 1/30 s rounds to 3 cs, 3/30 s to 10 cs, 4/30 s to 13 cs.
	assert.Equal(t, []int{10, 3}, sink.anim.Delay)
	assert.Equal(t, image.Rect(2, 1, 3, 2), sink.anim.Image[1].Rect)

	var buf bytes.Buffer
	require.NoError(t, sink.Encode(&buf))
	decoded, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, decoded.Image, 2)
	assert.Equal(t, 4, decoded.Config.Width)
	assert.Equal(t, 130*1e6, float64(sink.Duration()))
}

func TestGIFSinkEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, NewGIFSink(10).Encode(&buf), ErrNoFrames)
}

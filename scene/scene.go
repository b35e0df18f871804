package scene

import (
	"image"
	"math"
	"sort"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/rhythmix/docanim/util"
)

// Scene holds the elements currently on screen and turns Play and Wait
// calls into frames for a Sink.
type Scene struct {
	vp         *Viewport
	fps        int
	background colorful.Color
	palette    *Palette
	sink       Sink
	lut        *util.Memoizer
	dc         *gg.Context

	elements []Element
	periods  int
}

// NewScene creates an instance of a Scene.
func NewScene(vp *Viewport, fps int, background colorful.Color, palette *Palette, sink Sink) *Scene {
	s := new(Scene)
	s.vp = vp
	s.fps = fps
	if s.fps < 1 {
		s.fps = 1
	}
	s.background = background
	s.palette = palette
	s.sink = sink
	s.lut = util.NewMemoizer(util.Smooth)
	w, h := vp.Size()
	s.dc = gg.NewContext(w, h)
	return s
}

// Viewport returns the viewport the scene draws through.
func (s *Scene) Viewport() *Viewport { return s.vp }

// Add puts els on screen. Elements already present are ignored.
func (s *Scene) Add(els ...Element) {
	for _, el := range els {
		if !s.Contains(el) {
			s.elements = append(s.elements, el)
		}
	}
}

// Remove takes els off screen.
func (s *Scene) Remove(els ...Element) {
	for _, el := range els {
		for i, e := range s.elements {
			if e == el {
				s.elements = append(s.elements[:i], s.elements[i+1:]...)
				break
			}
		}
	}
}

// Contains reports whether el is on screen.
func (s *Scene) Contains(el Element) bool {
	for _, e := range s.elements {
		if e == el {
			return true
		}
	}
	return false
}

// Elements returns the elements on screen in insertion order.
func (s *Scene) Elements() []Element {
	out := make([]Element, len(s.elements))
	copy(out, s.elements)
	return out
}

// Frames returns the number of frame periods rendered so far.
func (s *Scene) Frames() int { return s.periods }

// Duration returns the rendered play time in seconds.
func (s *Scene) Duration() float64 { return float64(s.periods) / float64(s.fps) }

func (s *Scene) frameCount(seconds float64) int {
	n := int(math.Round(seconds * float64(s.fps)))
	if n < 1 {
		n = 1
	}
	return n
}

// Play runs anims together for runTime seconds.
func (s *Scene) Play(runTime float64, anims ...Animation) error {
	n := s.frameCount(runTime)
	lut := s.lut.Lut(n)

	for _, a := range anims {
		a.Begin(s)
	}
	for k := 1; k <= n; k++ {
		for _, a := range anims {
			a.Interpolate(lut[k])
		}
		if k == n {
			for _, a := range anims {
				a.Finish(s)
			}
		}
		if err := s.emit(1); err != nil {
			return err
		}
	}
	return nil
}

// Wait holds the current picture for seconds.
func (s *Scene) Wait(seconds float64) error {
	return s.emit(s.frameCount(seconds))
}

func (s *Scene) emit(frames int) error {
	s.periods += frames
	if s.sink == nil {
		return nil
	}
	return s.sink.WriteFrame(s.Render(), frames)
}

// Render draws the current elements, lowest depth first, and quantizes the
// result onto the scene palette.
func (s *Scene) Render() *image.Paletted {
	dc := s.dc
	bg := s.background.Clamped()
	dc.SetRGB(bg.R, bg.G, bg.B)
	dc.Clear()

	ordered := s.Elements()
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Depth() < ordered[j].Depth()
	})
	for _, el := range ordered {
		el.Draw(dc, s.vp)
	}

	return s.palette.Quantize(dc.Image().(*image.RGBA))
}

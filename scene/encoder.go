package scene

import (
	"bytes"
	"errors"
	"image"
	"image/gif"
	"io"
	"math"
	"time"
)

// A Sink receives rendered frames. frames is the number of frame periods
// the image stays on screen.
type Sink interface {
	WriteFrame(img *image.Paletted, frames int) error
}

// ErrNoFrames is returned when encoding a GIF that never received a frame.
var ErrNoFrames = errors.New("no frames rendered")

// GIFSink collects frames into an animated GIF. Consecutive identical
// frames are merged, and every later frame only stores the rectangle that
// changed since the previous one.
type GIFSink struct {
	fps     int
	anim    *gif.GIF
	last    *image.Paletted
	periods int
	elapsed int
}

// NewGIFSink creates an instance of a GIFSink for the frame rate.
func NewGIFSink(fps int) *GIFSink {
	s := new(GIFSink)
	s.fps = fps
	s.anim = new(gif.GIF)
	return s
}

// WriteFrame appends img to the animation.
func (s *GIFSink) WriteFrame(img *image.Paletted, frames int) error {
	if frames < 1 {
		return nil
	}
	s.periods += frames

	// Delays are derived from the cumulative time so rounding to
	// centiseconds never drifts.
	target := int(math.Round(float64(s.periods) * 100 / float64(s.fps)))
	delay := target - s.elapsed
	s.elapsed = target

	if s.last == nil {
		s.anim.Config = image.Config{
			ColorModel: img.Palette,
			Width:      img.Rect.Dx(),
			Height:     img.Rect.Dy(),
		}
		s.append(copyPaletted(img, img.Rect), delay)
		s.last = img
		return nil
	}

	changed := diffRect(s.last, img)
	if changed.Empty() {
		s.anim.Delay[len(s.anim.Delay)-1] += delay
		return nil
	}
	s.append(copyPaletted(img, changed), delay)
	s.last = img
	return nil
}

func (s *GIFSink) append(img *image.Paletted, delay int) {
	s.anim.Image = append(s.anim.Image, img)
	s.anim.Delay = append(s.anim.Delay, delay)
	s.anim.Disposal = append(s.anim.Disposal, gif.DisposalNone)
}

// Len returns the number of stored GIF frames.
func (s *GIFSink) Len() int { return len(s.anim.Image) }

// Duration returns the total play time.
func (s *GIFSink) Duration() time.Duration {
	return time.Duration(s.elapsed) * 10 * time.Millisecond
}

// Encode writes the looping GIF to w.
func (s *GIFSink) Encode(w io.Writer) error {
	if len(s.anim.Image) == 0 {
		return ErrNoFrames
	}
	s.anim.LoopCount = 0
	return gif.EncodeAll(w, s.anim)
}

// diffRect returns the smallest rectangle holding every pixel that differs
// between a and b, which share bounds.
func diffRect(a, b *image.Paletted) image.Rectangle {
	r := b.Rect
	if bytes.Equal(a.Pix, b.Pix) {
		return image.Rectangle{}
	}
	minX, minY, maxX, maxY := r.Max.X, r.Max.Y, r.Min.X-1, r.Min.Y-1
	for y := r.Min.Y; y < r.Max.Y; y++ {
		ra := a.Pix[a.PixOffset(r.Min.X, y) : a.PixOffset(r.Min.X, y)+r.Dx()]
		rb := b.Pix[b.PixOffset(r.Min.X, y) : b.PixOffset(r.Min.X, y)+r.Dx()]
		if bytes.Equal(ra, rb) {
			continue
		}
		if y < minY {
			minY = y
		}
		maxY = y
		for x := range ra {
			if ra[x] != rb[x] {
				if r.Min.X+x < minX {
					minX = r.Min.X + x
				}
				if r.Min.X+x > maxX {
					maxX = r.Min.X + x
				}
			}
		}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

func copyPaletted(src *image.Paletted, r image.Rectangle) *image.Paletted {
	dst := image.NewPaletted(r, src.Palette)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		copy(dst.Pix[dst.PixOffset(r.Min.X, y):dst.PixOffset(r.Max.X-1, y)+1],
			src.Pix[src.PixOffset(r.Min.X, y):src.PixOffset(r.Max.X-1, y)+1])
	}
	return dst
}

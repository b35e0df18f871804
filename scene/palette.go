package scene

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	paletteSize = 256

	// backgroundSteps is the number of fade levels between the background
	// and every registered colour.
	backgroundSteps = 12

	// crossSteps is the number of levels between each pair of registered
	// colours, for anti-aliased text drawn over filled boxes.
	crossSteps = 3
)

// Palette is the fixed GIF colour table for a scene. Because every element
// fades against the background, it is built from blends of the background
// towards each colour the scene uses.
type Palette struct {
	colors color.Palette
	cache  map[uint32]uint8
}

// NewPalette creates a Palette for a scene drawn with colors over background.
func NewPalette(background colorful.Color, colors ...colorful.Color) *Palette {
	p := new(Palette)
	p.cache = make(map[uint32]uint8)

	seen := make(map[color.RGBA]bool)
	add := func(c colorful.Color) {
		if len(p.colors) >= paletteSize {
			return
		}
		r, g, b := c.Clamped().RGB255()
		rgba := color.RGBA{R: r, G: g, B: b, A: 0xff}
		if seen[rgba] {
			return
		}
		seen[rgba] = true
		p.colors = append(p.colors, rgba)
	}

	add(background)
	unique := make([]colorful.Color, 0, len(colors))
	for _, c := range colors {
		r, g, b := c.Clamped().RGB255()
		if seen[color.RGBA{R: r, G: g, B: b, A: 0xff}] {
			continue
		}
		add(c)
		unique = append(unique, c)
	}
	for _, c := range unique {
		for i := 1; i < backgroundSteps; i++ {
			add(background.BlendRgb(c, float64(i)/backgroundSteps))
		}
	}
	for i := 0; i < len(unique); i++ {
		for j := i + 1; j < len(unique); j++ {
			for k := 1; k <= crossSteps; k++ {
				add(unique[i].BlendRgb(unique[j], float64(k)/(crossSteps+1)))
			}
		}
	}
	return p
}

// Colors returns the colour table. The background is always entry 0.
func (p *Palette) Colors() color.Palette { return p.colors }

// Len returns the number of entries.
func (p *Palette) Len() int { return len(p.colors) }

// Quantize maps every pixel of src onto the nearest palette entry.
func (p *Palette) Quantize(src *image.RGBA) *image.Paletted {
	b := src.Bounds()
	dst := image.NewPaletted(b, p.colors)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		si := src.PixOffset(b.Min.X, y)
		di := dst.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			px := src.Pix[si : si+4 : si+4]
			key := uint32(px[0])<<16 | uint32(px[1])<<8 | uint32(px[2])
			idx, ok := p.cache[key]
			if !ok {
				idx = uint8(p.colors.Index(color.RGBA{R: px[0], G: px[1], B: px[2], A: 0xff}))
				p.cache[key] = idx
			}
			dst.Pix[di] = idx
			si += 4
			di++
		}
	}
	return dst
}

package scene

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/go-fonts/dejavu/dejavusans"
	"golang.org/x/image/font"

	"github.com/rhythmix/docanim/config"
)

// Viewport maps scene units onto the pixel canvas and measures text.
type Viewport struct {
	width      int
	height     int
	frameWidth float64
	pxPerUnit  float64
	fontUnits  float64
	font       *truetype.Font
	faces      map[float64]font.Face
}

// NewViewport creates a Viewport for the canvas, loading the configured
// TrueType font or the bundled DejaVu Sans.
func NewViewport(canvas config.Canvas) (*Viewport, error) {
	if canvas.Width <= 0 || canvas.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas %dx%d", canvas.Width, canvas.Height)
	}

	data := dejavusans.TTF
	if canvas.Font != "" {
		b, err := os.ReadFile(canvas.Font)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		data = b
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	v := new(Viewport)
	v.width = canvas.Width
	v.height = canvas.Height
	v.pxPerUnit = float64(canvas.Height) / FrameHeight
	v.frameWidth = float64(canvas.Width) / v.pxPerUnit
	v.fontUnits = canvas.FontUnits
	if v.fontUnits <= 0 {
		v.fontUnits = config.DefaultFontUnits
	}
	v.font = f
	v.faces = make(map[float64]font.Face)
	return v, nil
}

// Size returns the canvas size in pixels.
func (v *Viewport) Size() (width, height int) { return v.width, v.height }

// FrameWidth is the visible width in scene units.
func (v *Viewport) FrameWidth() float64 { return v.frameWidth }

// ToPixel converts a scene point into canvas pixel coordinates.
func (v *Viewport) ToPixel(p Vec) (x, y float64) {
	x = (p.X + v.frameWidth/2) * v.pxPerUnit
	y = (FrameHeight/2 - p.Y) * v.pxPerUnit
	return x, y
}

// LineHeight is the height of one line of text at scale, in units.
func (v *Viewport) LineHeight(scale float64) float64 {
	return v.fontUnits * scale
}

// Face returns the font face for text at scale.
func (v *Viewport) Face(scale float64) font.Face {
	if face, ok := v.faces[scale]; ok {
		return face
	}
	face := truetype.NewFace(v.font, &truetype.Options{
		Size:    v.LineHeight(scale) * v.pxPerUnit,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	v.faces[scale] = face
	return face
}

// MeasureWidth returns the advance width of s at scale, in units.
func (v *Viewport) MeasureWidth(s string, scale float64) float64 {
	adv := font.MeasureString(v.Face(scale), s)
	return float64(adv) / 64 / v.pxPerUnit
}

// Missing returns the runes of s the font has no glyph for.
func (v *Viewport) Missing(s string) []rune {
	var missing []rune
	for _, r := range s {
		if r == '\n' || r == ' ' {
			continue
		}
		if v.font.Index(r) == 0 {
			missing = append(missing, r)
		}
	}
	return missing
}

package scene

import "math"

// FrameHeight is the height of the visible frame in scene units. The width
// follows from the canvas aspect ratio.
const FrameHeight = 8.0

// DefaultBuff is the gap NextTo leaves when no buffer is given.
const DefaultBuff = 0.25

// Vec is a point or direction in scene units, +Y up, origin at the centre.
type Vec struct {
	X, Y float64
}

// Unit directions.
var (
	Origin = Vec{0, 0}
	Up     = Vec{0, 1}
	Down   = Vec{0, -1}
	Left   = Vec{-1, 0}
	Right  = Vec{1, 0}
)

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Lerp(o Vec, t float64) Vec {
	return Vec{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Box is an axis-aligned bounding box in scene units.
type Box struct {
	Min, Max Vec
}

// BoxAround returns a box of the given size centred on c.
func BoxAround(c Vec, width, height float64) Box {
	return Box{
		Min: Vec{c.X - width/2, c.Y - height/2},
		Max: Vec{c.X + width/2, c.Y + height/2},
	}
}

func (b Box) Width() float64 { return b.Max.X - b.Min.X }
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }
func (b Box) Center() Vec { return Vec{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2} }
func (b Box) Left() Vec { return Vec{b.Min.X, b.Center().Y} }
func (b Box) Right() Vec { return Vec{b.Max.X, b.Center().Y} }
func (b Box) Top() Vec { return Vec{b.Center().X, b.Max.Y} }
func (b Box) Bottom() Vec { return Vec{b.Center().X, b.Min.Y} }

// Expand grows the box by buff on every side.
func (b Box) Expand(buff float64) Box {
	return Box{
		Min: Vec{b.Min.X - buff, b.Min.Y - buff},
		Max: Vec{b.Max.X + buff, b.Max.Y + buff},
	}
}

// Union returns the smallest box holding both.
func (b Box) Union(o Box) Box {
	return Box{
		Min: Vec{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y)},
		Max: Vec{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y)},
	}
}

// CriticalPoint returns the point of the box in direction dir: the edge for
// each non-zero component and the centre for each zero component.
func (b Box) CriticalPoint(dir Vec) Vec {
	c := b.Center()
	p := c
	switch {
	case dir.X > 0:
		p.X = b.Max.X
	case dir.X < 0:
		p.X = b.Min.X
	}
	switch {
	case dir.Y > 0:
		p.Y = b.Max.Y
	case dir.Y < 0:
		p.Y = b.Min.Y
	}
	return p
}

// Movable is anything with bounds that can be shifted around the frame.
type Movable interface {
	Bounds() Box
	Shift(d Vec)
}

// MoveTo centres m on p.
func MoveTo(m Movable, p Vec) {
	m.Shift(p.Sub(m.Bounds().Center()))
}

// NextTo places m beside target in direction dir, buff*dir away from its
// edge. dir need not be a unit vector: its length scales the buffer.
func NextTo(m Movable, target Box, dir Vec, buff float64) {
	targetPoint := target.CriticalPoint(dir)
	alignPoint := m.Bounds().CriticalPoint(dir.Scale(-1))
	m.Shift(targetPoint.Sub(alignPoint).Add(dir.Scale(buff)))
}

// Bounds returns the union of the bounds of ms.
func Bounds[M Movable](ms ...M) Box {
	if len(ms) == 0 {
		return Box{}
	}
	b := ms[0].Bounds()
	for _, m := range ms[1:] {
		b = b.Union(m.Bounds())
	}
	return b
}

// Arrange lays ms out left to right, buff apart, with the row centred on
// the origin.
func Arrange[M Movable](ms []M, buff float64) {
	if len(ms) == 0 {
		return
	}
	x := 0.0
	for _, m := range ms {
		b := m.Bounds()
		MoveTo(m, Vec{x + b.Width()/2, 0})
		x += b.Width() + buff
	}
	ShiftAll(ms, Origin.Sub(Bounds(ms...).Center()))
}

// ShiftAll shifts every element of ms by d.
func ShiftAll[M Movable](ms []M, d Vec) {
	for _, m := range ms {
		m.Shift(d)
	}
}

package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type block struct {
	box Box
}

func newBlock(c Vec, w, h float64) *block { return &block{box: BoxAround(c, w, h)} }

func (b *block) Bounds() Box { return b.box }

func (b *block) Shift(d Vec) {
	b.box.Min = b.box.Min.Add(d)
	b.box.Max = b.box.Max.Add(d)
}

func assertVec(t *testing.T, expected, actual Vec) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, 1e-9, "x")
	assert.InDelta(t, expected.Y, actual.Y, 1e-9, "y")
}

func TestCriticalPoint(t *testing.T) {
	b := BoxAround(Vec{1, 2}, 4, 2)
	assertVec(t, Vec{3, 2}, b.CriticalPoint(Right))
	assertVec(t, Vec{-1, 2}, b.CriticalPoint(Left.Scale(20)))
	assertVec(t, Vec{1, 1}, b.CriticalPoint(Down))
	assertVec(t, Vec{3, 3}, b.CriticalPoint(Vec{1, 1}))
	assertVec(t, Vec{1, 2}, b.CriticalPoint(Origin))
}

func TestNextToDown(t *testing.T) {
	target := BoxAround(Vec{0, 1.2}, 4, 0.5)
	m := newBlock(Origin, 2, 0.4)

	// A scaled direction scales the buffer: 0.8 * 0.5 leaves a 0.4 gap.
	NextTo(m, target, Down.Scale(0.5), 0.8)

	assert.InDelta(t, target.Min.Y-0.4, m.Bounds().Max.Y, 1e-9)
	assert.InDelta(t, 0.0, m.Bounds().Center().X, 1e-9)
}

func TestNextToFarLeft(t *testing.T) {
	target := BoxAround(Origin, 2, 1)
	m := newBlock(Vec{3, 3}, 1, 1)

	NextTo(m, target, Left.Scale(20), DefaultBuff)

	assert.InDelta(t, -1-5, m.Bounds().Max.X, 1e-9)
	assert.InDelta(t, 0.0, m.Bounds().Center().Y, 1e-9)
}

func TestMoveTo(t *testing.T) {
	m := newBlock(Vec{5, 5}, 1, 1)
	MoveTo(m, Vec{-1, 2})
	assertVec(t, Vec{-1, 2}, m.Bounds().Center())
}

func TestArrangeCentresRow(t *testing.T) {
	parts := []*block{
		newBlock(Vec{9, 9}, 2, 1),
		newBlock(Origin, 1, 1),
		newBlock(Vec{-3, 0}, 3, 1),
	}

	Arrange(parts, 0.2)

	row := Bounds(parts...)
	assertVec(t, Origin, row.Center())
	assert.InDelta(t, 6.4, row.Width(), 1e-9)
	assert.InDelta(t, parts[0].Bounds().Max.X+0.2, parts[1].Bounds().Min.X, 1e-9)
	assert.InDelta(t, parts[1].Bounds().Max.X+0.2, parts[2].Bounds().Min.X, 1e-9)
}

func TestBoxHelpers(t *testing.T) {
	b := BoxAround(Origin, 2, 2)
	assert.Equal(t, BoxAround(Origin, 3, 3), b.Expand(0.5))
	assert.Equal(t, Box{Min: Vec{-1, -1}, Max: Vec{4, 1}}, b.Union(BoxAround(Vec{3, 0}, 2, 1)))
	assertVec(t, Vec{-1, 0}, b.Left())
	assertVec(t, Vec{0, 1}, b.Top())
	assertVec(t, Vec{0.5, 0.5}, Origin.Lerp(Vec{1, 1}, 0.5))
}

// Package layout holds the presentation arithmetic behind the recording
// area: wrapping annotations, placing entries in centred columns, scrolling
// old columns away and picking the expression part to highlight.
package layout

import (
	"math"
	"strings"
)

// LineSeparator splits an annotation into forced lines.
const LineSeparator = "|"

// Point is a position in scene units.
type Point struct {
	X, Y float64
}

// MeasureFunc returns the rendered width of s.
type MeasureFunc func(s string) float64

// Wrap splits text on LineSeparator and word-wraps every segment so no line
// is wider than maxWidth. A single word wider than maxWidth is broken
// between runes. A non-positive maxWidth only splits on the separator.
func Wrap(text string, maxWidth float64, measure MeasureFunc) []string {
	var lines []string
	for _, segment := range strings.Split(text, LineSeparator) {
		segment = strings.TrimSpace(segment)
		if maxWidth <= 0 || measure(segment) <= maxWidth {
			lines = append(lines, segment)
			continue
		}
		lines = append(lines, wrapSegment(segment, maxWidth, measure)...)
	}
	return lines
}

func wrapSegment(segment string, maxWidth float64, measure MeasureFunc) []string {
	var lines []string
	current := ""
	for _, word := range strings.Fields(segment) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if measure(word) <= maxWidth {
			current = word
			continue
		}
		pieces := breakWord(word, maxWidth, measure)
		lines = append(lines, pieces[:len(pieces)-1]...)
		current = pieces[len(pieces)-1]
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func breakWord(word string, maxWidth float64, measure MeasureFunc) []string {
	var pieces []string
	var current []rune
	for _, r := range word {
		next := append(current, r)
		if len(current) > 0 && measure(string(next)) > maxWidth {
			pieces = append(pieces, string(current))
			current = []rune{r}
			continue
		}
		current = next
	}
	return append(pieces, string(current))
}

// Columns places recording entries in columns of at most MaxRows entries.
// The group of columns is centred horizontally on the anchor.
type Columns struct {
	MaxRows int
	// Width is the horizontal distance between column centres.
	Width float64
	// TopGap is the distance from the anchor down to the first entry.
	TopGap float64
	// The gap below an entry is max(MinGap, height*GapFactor).
	MinGap    float64
	GapFactor float64
	// MaxColumns limits the visible columns; zero means no limit.
	MaxColumns int
	// MaxHeight is the room below TopGap a column may fill; zero means no
	// limit.
	MaxHeight float64
}

func (c Columns) rows() int {
	if c.MaxRows < 1 {
		return 1
	}
	return c.MaxRows
}

// Gap returns the space left below an entry of the given height.
func (c Columns) Gap(height float64) float64 {
	return math.Max(c.MinGap, height*c.GapFactor)
}

// Assign returns the column of every entry. A new column starts when the
// current one holds MaxRows entries or the next entry would reach past
// MaxHeight. Every column holds at least one entry.
func (c Columns) Assign(heights []float64) []int {
	columns := make([]int, len(heights))
	col, rows, used := 0, 0, 0.0
	for i, h := range heights {
		full := rows == c.rows() || (c.MaxHeight > 0 && used+h > c.MaxHeight)
		if rows > 0 && full {
			col++
			rows, used = 0, 0
		}
		columns[i] = col
		rows++
		used += h + c.Gap(h)
	}
	return columns
}

// Count returns the number of columns the entries occupy.
func (c Columns) Count(heights []float64) int {
	if len(heights) == 0 {
		return 0
	}
	columns := c.Assign(heights)
	return columns[len(columns)-1] + 1
}

// Fit returns the factor an entry of the given height must be scaled by to
// fit in one column. It is 1 when the entry already fits.
func (c Columns) Fit(height float64) float64 {
	if c.MaxHeight <= 0 || height <= c.MaxHeight {
		return 1
	}
	return c.MaxHeight / height
}

// Place returns the centre of every entry. anchor is the bottom centre of
// the title the entries hang from; heights are the entry heights in order.
func (c Columns) Place(anchor Point, heights []float64) []Point {
	points := make([]Point, len(heights))
	if len(heights) == 0 {
		return points
	}

	columns := c.Assign(heights)
	count := columns[len(columns)-1] + 1
	startX := anchor.X - float64(count)*c.Width/2 + c.Width/2

	top := anchor.Y - c.TopGap
	for i, h := range heights {
		if i == 0 || columns[i] != columns[i-1] {
			top = anchor.Y - c.TopGap
		} else {
			top -= heights[i-1] + c.Gap(heights[i-1])
		}
		points[i] = Point{
			X: startX + float64(columns[i])*c.Width,
			Y: top - h/2,
		}
	}
	return points
}

// Visible returns the index of the first entry that stays on screen.
// Whole columns scroll off once MaxColumns is exceeded.
func (c Columns) Visible(heights []float64) int {
	if c.MaxColumns <= 0 || len(heights) == 0 {
		return 0
	}
	columns := c.Assign(heights)
	extra := columns[len(columns)-1] + 1 - c.MaxColumns
	if extra <= 0 {
		return 0
	}
	for i, col := range columns {
		if col == extra {
			return i
		}
	}
	return 0
}

// FitColumns returns how many columns of columnWidth fit in frameWidth
// after leaving margin on both sides. It is never less than one.
func FitColumns(frameWidth, columnWidth, margin float64) int {
	if columnWidth <= 0 {
		return 1
	}
	n := int(math.Floor((frameWidth - 2*margin) / columnWidth))
	if n < 1 {
		return 1
	}
	return n
}

// PartIndex returns the index of the expression part describing state.
// States sit at even indexes, between separators such as "->" or ".".
// States past the end highlight the last part; -1 means there are no parts.
func PartIndex(state, parts int) int {
	if parts <= 0 {
		return -1
	}
	if state < 0 {
		state = 0
	}
	idx := state * 2
	if idx > parts-1 {
		idx = parts - 1
	}
	return idx
}

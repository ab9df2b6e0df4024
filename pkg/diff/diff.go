package diff

import (
	"errors"
	"image"

	"LSBSteg/pkg/grid"
)

/*
Summary of this file:
- IsEqual, FindDifferences and BoundingBoxOf compare two grids pixel by pixel.
- Compare is the strict variant: incongruent grids are an error instead of an empty result.
- Highlight draws a bounding box onto a copy of a grid.
Coordinates are (row, col) throughout. When a box is drawn or exported as an
image.Rectangle, x is the column and y is the row.
*/

// ErrDimensionMismatch is returned by Compare when the grids differ in size
var ErrDimensionMismatch = errors.New("grids have different dimensions")

// Point is a position where two grids differ
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// BoundingBox is the smallest rectangle covering a set of points, bounds inclusive
type BoundingBox struct {
	MinRow int `json:"minRow"`
	MinCol int `json:"minCol"`
	MaxRow int `json:"maxRow"`
	MaxCol int `json:"maxCol"`
}

// Width is the number of columns the box spans
func (b BoundingBox) Width() int {
	return b.MaxCol - b.MinCol + 1
}

// Height is the number of rows the box spans
func (b BoundingBox) Height() int {
	return b.MaxRow - b.MinRow + 1
}

// Contains reports whether p lies inside the box
func (b BoundingBox) Contains(p Point) bool {
	return p.Row >= b.MinRow && p.Row <= b.MaxRow && p.Col >= b.MinCol && p.Col <= b.MaxCol
}

// Rect converts the box to an image rectangle (x = col, y = row, Max exclusive)
func (b BoundingBox) Rect() image.Rectangle {
	return image.Rect(b.MinCol, b.MinRow, b.MaxCol+1, b.MaxRow+1)
}

// Result is the outcome of comparing two congruent grids
type Result struct {
	Points    []Point
	Box       BoundingBox
	Identical bool
}

// IsEqual reports whether both grids have the same size and the same pixels
func IsEqual(a, b *grid.Grid) bool {
	if !a.Congruent(b) {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.Index(i) != b.Index(i) {
			return false
		}
	}
	return true
}

// FindDifferences returns every position, in row-major order, where the grids
// differ. Incongruent grids give an empty result; use Compare to tell that
// apart from "no differences".
func FindDifferences(a, b *grid.Grid) []Point {
	if !a.Congruent(b) {
		return nil
	}

	var points []Point
	for row := 0; row < a.Height(); row++ {
		for col := 0; col < a.Width(); col++ {
			if a.At(row, col) != b.At(row, col) {
				points = append(points, Point{Row: row, Col: col})
			}
		}
	}
	return points
}

// BoundingBoxOf returns the smallest box covering points. ok is false when points is empty.
func BoundingBoxOf(points []Point) (box BoundingBox, ok bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}

	box = BoundingBox{
		MinRow: points[0].Row,
		MinCol: points[0].Col,
		MaxRow: points[0].Row,
		MaxCol: points[0].Col,
	}
	for _, p := range points[1:] {
		box.MinRow = min(box.MinRow, p.Row)
		box.MaxRow = max(box.MaxRow, p.Row)
		box.MinCol = min(box.MinCol, p.Col)
		box.MaxCol = max(box.MaxCol, p.Col)
	}
	return box, true
}

// Compare diffs two grids, failing with ErrDimensionMismatch when they are not congruent
func Compare(a, b *grid.Grid) (Result, error) {
	if !a.Congruent(b) {
		return Result{}, ErrDimensionMismatch
	}

	points := FindDifferences(a, b)
	box, found := BoundingBoxOf(points)
	return Result{
		Points:    points,
		Box:       box,
		Identical: !found,
	}, nil
}

// Highlight returns a copy of g with the one-pixel outline of box drawn in c.
// Parts of the outline outside g are clipped.
func Highlight(g *grid.Grid, box BoundingBox, c grid.Pixel) *grid.Grid {
	out := g.Clone()

	plot := func(row, col int) {
		if out.InBounds(row, col) {
			out.Set(row, col, c)
		}
	}

	for col := box.MinCol; col <= box.MaxCol; col++ {
		plot(box.MinRow, col)
		plot(box.MaxRow, col)
	}
	for row := box.MinRow; row <= box.MaxRow; row++ {
		plot(row, box.MinCol)
		plot(row, box.MaxCol)
	}

	return out
}

package layout

import (
	"fmt"

	"github.com/matzehuels/gridcal/pkg/errors"
)

// Layout is the computed geometry of a grid. It is a value type; all
// accessors are pure.
type Layout struct {
	Params Params
	Mode   Mode

	BoxAreaWidth  float64
	BoxAreaHeight float64
	CellWidth     float64
	CellHeight    float64
}

// Compute validates p and partitions its box area according to mode.
//
// It fails with INVALID_INPUT for out-of-range parameters and with
// DEGENERATE_GEOMETRY when the resulting cell width or height is not
// positive (for example when LeftMargin >= TotalWidth, or when the gaps
// alone consume the box area).
func Compute(p Params, mode Mode) (Layout, error) {
	if err := p.Validate(); err != nil {
		return Layout{}, err
	}
	if mode != ModeGapped && mode != ModeRowBox {
		return Layout{}, errors.New(errors.ErrCodeInvalidMode, "unknown mode %d", int(mode))
	}

	l := Layout{
		Params:        p,
		Mode:          mode,
		BoxAreaWidth:  p.TotalWidth - p.LeftMargin,
		BoxAreaHeight: p.TotalHeight - p.HeaderHeight,
	}

	rows, cols := float64(p.NumRows), float64(p.NumCols)
	l.CellHeight = (l.BoxAreaHeight - (rows-1)*p.Gap) / rows
	switch mode {
	case ModeGapped:
		l.CellWidth = (l.BoxAreaWidth - (cols-1)*p.Gap) / cols
	case ModeRowBox:
		l.CellWidth = l.BoxAreaWidth / cols
	}

	if l.CellWidth <= 0 || l.CellHeight <= 0 {
		return Layout{}, errors.New(errors.ErrCodeDegenerateGeometry,
			"cell size %.4g x %.4g is not positive (box area %.4g x %.4g, %d x %d cells, gap %.4g)",
			l.CellWidth, l.CellHeight, l.BoxAreaWidth, l.BoxAreaHeight, p.NumCols, p.NumRows, p.Gap)
	}
	return l, nil
}

// NumRows returns the number of grid rows.
func (l Layout) NumRows() int { return l.Params.NumRows }

// NumCols returns the number of grid columns.
func (l Layout) NumCols() int { return l.Params.NumCols }

// ColumnX returns the x coordinate of the left edge of column col.
func (l Layout) ColumnX(col int) float64 {
	l.checkCol(col)
	if l.Mode == ModeRowBox {
		return l.Params.LeftMargin + float64(col-1)*l.CellWidth
	}
	return l.Params.LeftMargin + float64(col-1)*(l.CellWidth+l.Params.Gap)
}

// RowY returns the y coordinate of the bottom edge of row row.
func (l Layout) RowY(row int) float64 {
	l.checkRow(row)
	return l.BoxAreaHeight - float64(row-1)*(l.CellHeight+l.Params.Gap) - l.CellHeight
}

// CellOrigin returns the bottom-left corner of the cell at (row, col).
// It panics if either index is out of range.
func (l Layout) CellOrigin(row, col int) (x, y float64) {
	return l.ColumnX(col), l.RowY(row)
}

// Cell returns the geometry of the cell at (row, col).
// It panics if either index is out of range.
func (l Layout) Cell(row, col int) Cell {
	x, y := l.CellOrigin(row, col)
	return Cell{Row: row, Col: col, X: x, Y: y, Width: l.CellWidth, Height: l.CellHeight}
}

// Cells returns every cell in row-major order.
func (l Layout) Cells() []Cell {
	cells := make([]Cell, 0, l.NumRows()*l.NumCols())
	for r := 1; r <= l.NumRows(); r++ {
		for c := 1; c <= l.NumCols(); c++ {
			cells = append(cells, l.Cell(r, c))
		}
	}
	return cells
}

// RowBox returns the undivided rectangle of row row, spanning the whole
// box area width. Col is 0 in the returned cell.
func (l Layout) RowBox(row int) Cell {
	return Cell{
		Row:    row,
		X:      l.Params.LeftMargin,
		Y:      l.RowY(row),
		Width:  l.BoxAreaWidth,
		Height: l.CellHeight,
	}
}

// DividerXs returns the x coordinates of the internal column boundaries
// of a row box, for columns 2..NumCols.
func (l Layout) DividerXs() []float64 {
	xs := make([]float64, 0, l.NumCols()-1)
	for c := 2; c <= l.NumCols(); c++ {
		xs = append(xs, l.Params.LeftMargin+float64(c-1)*l.CellWidth)
	}
	return xs
}

// ColumnLabelAnchor returns the center of the header slot above col.
func (l Layout) ColumnLabelAnchor(col int) Point {
	y := l.Params.TotalHeight - l.Params.HeaderHeight/2
	if l.Mode == ModeRowBox {
		l.checkCol(col)
		return Point{X: l.Params.LeftMargin + (float64(col)-0.5)*l.CellWidth, Y: y}
	}
	return Point{X: l.ColumnX(col) + l.CellWidth/2, Y: y}
}

// RowLabelAnchor returns the center of the label slot left of row.
func (l Layout) RowLabelAnchor(row int) Point {
	return Point{X: l.Params.LeftMargin / 2, Y: l.RowY(row) + l.CellHeight/2}
}

// SeparatorY returns the y coordinate of a separator drawn after row, in
// the middle of the gap below it.
func (l Layout) SeparatorY(row int) float64 {
	l.checkRow(row)
	return l.BoxAreaHeight - float64(row)*(l.CellHeight+l.Params.Gap) + l.Params.Gap/2
}

func (l Layout) checkRow(row int) {
	if row < 1 || row > l.NumRows() {
		panic(fmt.Sprintf("layout: row %d out of range [1, %d]", row, l.NumRows()))
	}
}

func (l Layout) checkCol(col int) {
	if col < 1 || col > l.NumCols() {
		panic(fmt.Sprintf("layout: column %d out of range [1, %d]", col, l.NumCols()))
	}
}

// Package layout computes the geometry of a uniform calendar grid.
//
// # Overview
//
// A grid occupies a canvas of TotalWidth × TotalHeight units. A label
// column of width LeftMargin runs down the left edge and a header band of
// height HeaderHeight runs along the top; the remaining "box area" is
// partitioned into NumRows × NumCols cells separated by a uniform Gap.
//
// Coordinates have their origin at the bottom-left of the canvas with y
// growing upwards. Rows and columns are 1-based and row 1 is the topmost
// row.
//
// # Modes
//
// Two partition modes are supported:
//
//   - [ModeGapped]: every cell is an independent rectangle and cells are
//     separated by Gap in both directions.
//   - [ModeRowBox]: each row is one rectangle spanning the whole box area,
//     subdivided by internal divider lines; Gap only separates rows.
//
// # Usage
//
//	l, err := layout.Compute(layout.Params{
//	    TotalWidth: 36, TotalHeight: 24,
//	    LeftMargin: 1, HeaderHeight: 0.5,
//	    Gap: 0.05, LineWidth: 0.01,
//	    NumRows: 3, NumCols: 53,
//	}, layout.ModeGapped)
//	if err != nil {
//	    return err // DEGENERATE_GEOMETRY or INVALID_INPUT
//	}
//	c := l.Cell(2, 10)
//
// [Compute] validates its input once; every accessor on the returned
// [Layout] is a pure function of that validated state.
package layout

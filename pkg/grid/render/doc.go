// Package render turns a computed grid layout into an ordered stream of
// drawing primitives.
//
// # Emission Order
//
// [Render] emits, in order:
//
//  1. one Text per column label
//  2. one Text per row label
//  3. row by row, the cell outlines followed by the cell content: in
//     gapped mode one Rect per cell; in row-box mode one Rect per row
//     and NumCols-1 divider Lines, then the content Texts of that row
//  4. the separator Lines
//
// Consumers may rely on this order for z-ordering: a cell's content is
// always drawn after the outline it belongs to.
//
// # Content
//
// A [ContentFunc] supplies the text printed inside each cell. It is called
// exactly once per cell, in row-major order, with 1-based indices. An
// empty return value produces no primitive for that cell.
//
//	prims, err := render.Render(l, weeks, years,
//	    render.WithContent(func(row, col int) string {
//	        s, _ := isoweek.Resolve(years[row-1], col)
//	        return s
//	    }),
//	    render.WithSeparators(layout.SeparatorSpec{Interval: 4, StartRow: 1, Width: 0.03}),
//	)
//
// Render performs no I/O and makes no layout decisions of its own; the
// same arguments always yield the same sequence.
package render

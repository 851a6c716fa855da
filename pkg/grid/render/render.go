package render

import (
	"github.com/matzehuels/gridcal/pkg/errors"
	"github.com/matzehuels/gridcal/pkg/grid/layout"
	"github.com/matzehuels/gridcal/pkg/grid/primitive"
)

// Default fonts, sized in layout units (inches on a print canvas).
var (
	DefaultLabelFont   = primitive.Font{Family: "Helvetica", Size: 0.16, Bold: true}
	DefaultContentFont = primitive.Font{Family: "Helvetica", Size: 0.09}
)

// ContentFunc returns the text printed inside the cell at (row, col), or
// the empty string for none.
type ContentFunc func(row, col int) string

// Option configures a call to Render.
type Option func(*renderer)

type renderer struct {
	separators   layout.SeparatorSpec
	content      ContentFunc
	labelFont    primitive.Font
	contentFont  primitive.Font
	dividerStyle primitive.LineStyle
}

// WithSeparators draws heavy lines between row groups as described by s.
func WithSeparators(s layout.SeparatorSpec) Option {
	return func(r *renderer) { r.separators = s }
}

// WithContent sets the per-cell content callback.
func WithContent(fn ContentFunc) Option { return func(r *renderer) { r.content = fn } }

// WithLabelFont sets the font of row and column labels.
func WithLabelFont(f primitive.Font) Option { return func(r *renderer) { r.labelFont = f } }

// WithContentFont sets the font of cell content.
func WithContentFont(f primitive.Font) Option { return func(r *renderer) { r.contentFont = f } }

// WithDividerStyle sets the dash pattern of row-box dividers.
func WithDividerStyle(s primitive.LineStyle) Option {
	return func(r *renderer) { r.dividerStyle = s }
}

// Render maps l and its labels to a primitive sequence.
//
// A nil label slice draws no labels on that axis; a non-nil slice must
// have exactly one entry per column (top) or row (left), otherwise Render
// fails with LABEL_COUNT_MISMATCH. Invalid separator specs fail with
// INVALID_INPUT. On failure no primitives are returned.
func Render(l layout.Layout, top, left []string, opts ...Option) ([]primitive.Primitive, error) {
	r := newRenderer(opts...)
	if err := r.validate(l, top, left); err != nil {
		return nil, err
	}

	out := make([]primitive.Primitive, 0, r.capacity(l, top, left))
	out = r.columnLabels(out, l, top)
	out = r.rowLabels(out, l, left)
	for row := 1; row <= l.NumRows(); row++ {
		if l.Mode == layout.ModeRowBox {
			out = r.rowBox(out, l, row)
		} else {
			out = r.gappedRow(out, l, row)
		}
	}
	out = r.separatorLines(out, l)
	return out, nil
}

func newRenderer(opts ...Option) renderer {
	r := renderer{
		labelFont:    DefaultLabelFont,
		contentFont:  DefaultContentFont,
		dividerStyle: primitive.StyleSolid,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *renderer) validate(l layout.Layout, top, left []string) error {
	if top != nil && len(top) != l.NumCols() {
		return errors.New(errors.ErrCodeLabelCountMismatch,
			"got %d column labels for %d columns", len(top), l.NumCols())
	}
	if left != nil && len(left) != l.NumRows() {
		return errors.New(errors.ErrCodeLabelCountMismatch,
			"got %d row labels for %d rows", len(left), l.NumRows())
	}
	return r.separators.Validate()
}

func (r *renderer) capacity(l layout.Layout, top, left []string) int {
	// Both modes emit NumCols outline primitives per row.
	n := len(top) + len(left) + len(r.separators.Rows(l.NumRows())) + l.NumRows()*l.NumCols()
	if r.content != nil {
		n += l.NumRows() * l.NumCols()
	}
	return n
}

func (r *renderer) columnLabels(out []primitive.Primitive, l layout.Layout, top []string) []primitive.Primitive {
	for i, label := range top {
		a := l.ColumnLabelAnchor(i + 1)
		out = append(out, r.text(a.X, a.Y, r.labelFont, label))
	}
	return out
}

func (r *renderer) rowLabels(out []primitive.Primitive, l layout.Layout, left []string) []primitive.Primitive {
	for i, label := range left {
		a := l.RowLabelAnchor(i + 1)
		out = append(out, r.text(a.X, a.Y, r.labelFont, label))
	}
	return out
}

func (r *renderer) gappedRow(out []primitive.Primitive, l layout.Layout, row int) []primitive.Primitive {
	lw := l.Params.LineWidth
	for col := 1; col <= l.NumCols(); col++ {
		c := l.Cell(row, col)
		out = append(out, primitive.Rect{X: c.X, Y: c.Y, W: c.Width, H: c.Height, LineWidth: lw})
		out = r.cellContent(out, c)
	}
	return out
}

func (r *renderer) rowBox(out []primitive.Primitive, l layout.Layout, row int) []primitive.Primitive {
	lw := l.Params.LineWidth
	box := l.RowBox(row)
	out = append(out, primitive.Rect{X: box.X, Y: box.Y, W: box.Width, H: box.Height, LineWidth: lw})
	for _, x := range l.DividerXs() {
		out = append(out, primitive.Line{
			X1: x, Y1: box.Y,
			X2: x, Y2: box.Top(),
			LineWidth: lw,
			Style:     r.dividerStyle,
		})
	}
	for col := 1; col <= l.NumCols(); col++ {
		out = r.cellContent(out, l.Cell(row, col))
	}
	return out
}

func (r *renderer) cellContent(out []primitive.Primitive, c layout.Cell) []primitive.Primitive {
	if r.content == nil {
		return out
	}
	s := r.content(c.Row, c.Col)
	if s == "" {
		return out
	}
	return append(out, r.text(c.CenterX(), c.CenterY(), r.contentFont, s))
}

func (r *renderer) separatorLines(out []primitive.Primitive, l layout.Layout) []primitive.Primitive {
	for _, row := range r.separators.Rows(l.NumRows()) {
		y := l.SeparatorY(row)
		out = append(out, primitive.Line{
			X1: 0, Y1: y,
			X2: l.Params.TotalWidth, Y2: y,
			LineWidth: r.separators.Width,
			Style:     primitive.StyleSolid,
		})
	}
	return out
}

func (r *renderer) text(x, y float64, f primitive.Font, s string) primitive.Text {
	return primitive.Text{X: x, Y: y, Anchor: primitive.AnchorMiddle, Font: f, Content: s}
}

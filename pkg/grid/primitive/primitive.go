// Package primitive defines the abstract drawing instructions produced by
// the grid renderer.
//
// A [Primitive] is one of [Rect], [Line] or [Text]. Coordinates use the
// layout's bottom-left origin with y growing upwards; sinks translate them
// into their own coordinate systems. Sequence order is significant only
// for z-ordering: later primitives are drawn on top of earlier ones.
package primitive

// Kind identifies the variant of a Primitive.
type Kind string

const (
	KindRect Kind = "rect"
	KindLine Kind = "line"
	KindText Kind = "text"
)

// Primitive is a single drawing instruction. The set of implementations
// is closed: Rect, Line and Text.
type Primitive interface {
	Kind() Kind
	primitive()
}

// LineStyle is the dash pattern of a stroked line.
type LineStyle string

const (
	StyleSolid  LineStyle = "solid"
	StyleDashed LineStyle = "dashed"
	StyleDotted LineStyle = "dotted"
)

// Anchor is the horizontal alignment of text relative to its position.
// Text is always vertically centered on its y coordinate.
type Anchor string

const (
	AnchorMiddle Anchor = "middle"
	AnchorStart  Anchor = "start"
	AnchorEnd    Anchor = "end"
)

// Font selects the typeface of a Text primitive. Size is in layout units.
type Font struct {
	Family string
	Size   float64
	Bold   bool
}

// Rect is an outlined rectangle with its bottom-left corner at (X, Y).
type Rect struct {
	X, Y, W, H float64
	LineWidth  float64
}

// Line is a straight stroked segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	LineWidth      float64
	Style          LineStyle
}

// Text is a single line of text positioned at (X, Y).
type Text struct {
	X, Y    float64
	Anchor  Anchor
	Font    Font
	Content string
}

func (Rect) Kind() Kind { return KindRect }
func (Line) Kind() Kind { return KindLine }
func (Text) Kind() Kind { return KindText }

func (Rect) primitive() {}
func (Line) primitive() {}
func (Text) primitive() {}

// Count returns how many primitives of each kind prims contains.
func Count(prims []Primitive) map[Kind]int {
	counts := make(map[Kind]int, 3)
	for _, p := range prims {
		counts[p.Kind()]++
	}
	return counts
}

package render

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/matzehuels/gridcal/pkg/errors"
	"github.com/matzehuels/gridcal/pkg/grid/layout"
	"github.com/matzehuels/gridcal/pkg/grid/primitive"
)

func mustCompute(t *testing.T, rows, cols int, mode layout.Mode) layout.Layout {
	t.Helper()
	l, err := layout.Compute(layout.Params{
		TotalWidth: 20, TotalHeight: 12,
		LeftMargin: 1, HeaderHeight: 0.5,
		Gap: 0.1, LineWidth: 0.01,
		NumRows: rows, NumCols: cols,
	}, mode)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	return l
}

func labels(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return out
}

func kinds(prims []primitive.Primitive) string {
	var s []byte
	for _, p := range prims {
		switch p.Kind() {
		case primitive.KindRect:
			s = append(s, 'R')
		case primitive.KindLine:
			s = append(s, 'L')
		case primitive.KindText:
			s = append(s, 'T')
		}
	}
	return string(s)
}

func TestRenderGappedOrder(t *testing.T) {
	l := mustCompute(t, 2, 3, layout.ModeGapped)
	prims, err := Render(l, labels("c", 3), labels("r", 2),
		WithContent(func(row, col int) string {
			if col == 2 {
				return ""
			}
			return fmt.Sprintf("%d/%d", row, col)
		}),
		WithSeparators(layout.SeparatorSpec{Interval: 1, StartRow: 1, Width: 0.05}),
	)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	// 3 column labels, 2 row labels, two rows of R T R R T, one separator.
	want := "TTT" + "TT" + "RTRRT" + "RTRRT" + "L"
	if got := kinds(prims); got != want {
		t.Errorf("kinds = %s, want %s", got, want)
	}

	first := prims[0].(primitive.Text)
	if first.Content != "c1" || first.Font != DefaultLabelFont || first.Anchor != primitive.AnchorMiddle {
		t.Errorf("first label = %+v", first)
	}
	if row := prims[3].(primitive.Text); row.Content != "r1" {
		t.Errorf("first row label = %q, want r1", row.Content)
	}

	content := prims[6].(primitive.Text)
	cell := l.Cell(1, 1)
	if content.Content != "1/1" || content.X != cell.CenterX() || content.Y != cell.CenterY() {
		t.Errorf("content = %+v, want 1/1 at cell center of %+v", content, cell)
	}
	if content.Font != DefaultContentFont {
		t.Errorf("content font = %+v, want %+v", content.Font, DefaultContentFont)
	}
}

func TestRenderRowBoxOrder(t *testing.T) {
	l := mustCompute(t, 2, 4, layout.ModeRowBox)
	prims, err := Render(l, labels("m", 4), labels("y", 2),
		WithContent(func(row, col int) string { return "x" }),
		WithDividerStyle(primitive.StyleDotted),
	)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	want := "TTTT" + "TT" + "RLLLTTTT" + "RLLLTTTT"
	if got := kinds(prims); got != want {
		t.Errorf("kinds = %s, want %s", got, want)
	}

	box := prims[6].(primitive.Rect)
	if box.X != 1 || math.Abs(box.W-l.BoxAreaWidth) > 1e-9 {
		t.Errorf("row box = %+v, want x 1 width %v", box, l.BoxAreaWidth)
	}
	div := prims[7].(primitive.Line)
	if div.Style != primitive.StyleDotted || div.X1 != div.X2 || div.Y1 != box.Y || div.Y2 != box.Y+box.H {
		t.Errorf("divider = %+v, want vertical dotted line spanning %+v", div, box)
	}
}

func TestRenderContentCalledOncePerCellRowMajor(t *testing.T) {
	for _, mode := range []layout.Mode{layout.ModeGapped, layout.ModeRowBox} {
		t.Run(mode.String(), func(t *testing.T) {
			l := mustCompute(t, 3, 4, mode)
			var calls [][2]int
			_, err := Render(l, nil, nil, WithContent(func(row, col int) string {
				calls = append(calls, [2]int{row, col})
				return ""
			}))
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}

			var want [][2]int
			for r := 1; r <= 3; r++ {
				for c := 1; c <= 4; c++ {
					want = append(want, [2]int{r, c})
				}
			}
			if !reflect.DeepEqual(calls, want) {
				t.Errorf("calls = %v, want %v", calls, want)
			}
		})
	}
}

func TestRenderEmptyContentKeepsOutlines(t *testing.T) {
	l := mustCompute(t, 4, 5, layout.ModeGapped)
	prims, err := Render(l, labels("c", 5), labels("r", 4),
		WithContent(func(row, col int) string { return "" }))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	counts := primitive.Count(prims)
	if counts[primitive.KindRect] != 20 {
		t.Errorf("rects = %d, want 20", counts[primitive.KindRect])
	}
	if counts[primitive.KindText] != 9 {
		t.Errorf("texts = %d, want 9 labels only", counts[primitive.KindText])
	}
}

func TestRenderSeparators(t *testing.T) {
	l := mustCompute(t, 10, 2, layout.ModeGapped)
	prims, err := Render(l, nil, nil,
		WithSeparators(layout.SeparatorSpec{Interval: 4, StartRow: 1, Width: 0.03}))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var lines []primitive.Line
	for _, p := range prims {
		if ln, ok := p.(primitive.Line); ok {
			lines = append(lines, ln)
		}
	}
	if len(lines) != 3 {
		t.Fatalf("separators = %d, want 3", len(lines))
	}
	for i, row := range []int{1, 5, 9} {
		ln := lines[i]
		if y := l.SeparatorY(row); ln.Y1 != y || ln.Y2 != y {
			t.Errorf("separator %d at y=%v, want %v (after row %d)", i, ln.Y1, y, row)
		}
		if ln.X1 != 0 || ln.X2 != l.Params.TotalWidth || ln.LineWidth != 0.03 {
			t.Errorf("separator %d = %+v", i, ln)
		}
	}
	if _, ok := prims[len(prims)-1].(primitive.Line); !ok {
		t.Error("separators should be emitted last")
	}
}

func TestRenderSeparatorsHugeInterval(t *testing.T) {
	l := mustCompute(t, 10, 3, layout.ModeGapped)
	prims, err := Render(l, nil, nil,
		WithSeparators(layout.SeparatorSpec{Interval: math.MaxInt, StartRow: 2, Width: 0.03}))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	var lines []primitive.Line
	for _, p := range prims {
		if ln, ok := p.(primitive.Line); ok {
			lines = append(lines, ln)
		}
	}
	if len(lines) != 1 || lines[0].Y1 != l.SeparatorY(2) {
		t.Errorf("separators = %+v, want one after row 2", lines)
	}
}

func TestRenderErrors(t *testing.T) {
	l := mustCompute(t, 2, 3, layout.ModeGapped)
	called := false
	content := WithContent(func(row, col int) string { called = true; return "x" })

	tests := []struct {
		name      string
		top, left []string
		opts      []Option
		code      errors.Code
	}{
		{"too few columns", labels("c", 2), labels("r", 2), nil, errors.ErrCodeLabelCountMismatch},
		{"too many rows", labels("c", 3), labels("r", 3), nil, errors.ErrCodeLabelCountMismatch},
		{"empty non-nil", []string{}, nil, nil, errors.ErrCodeLabelCountMismatch},
		{
			"bad separator", labels("c", 3), labels("r", 2),
			[]Option{WithSeparators(layout.SeparatorSpec{Interval: 2, StartRow: 0, Width: 1})},
			errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = false
			prims, err := Render(l, tt.top, tt.left, append(tt.opts, content)...)
			if !errors.Is(err, tt.code) {
				t.Fatalf("Render() error = %v, want %s", err, tt.code)
			}
			if prims != nil {
				t.Errorf("Render() returned %d primitives on failure", len(prims))
			}
			if called {
				t.Error("content callback invoked before validation failed")
			}
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	l := mustCompute(t, 5, 12, layout.ModeRowBox)
	opts := []Option{
		WithContent(func(row, col int) string { return fmt.Sprint(row * col) }),
		WithSeparators(layout.SeparatorSpec{Interval: 2, StartRow: 1, Width: 0.02}),
		WithLabelFont(primitive.Font{Family: "Courier", Size: 0.2}),
	}
	a, err := Render(l, labels("m", 12), labels("y", 5), opts...)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	b, err := Render(l, labels("m", 12), labels("y", 5), opts...)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two identical Render calls produced different sequences")
	}
}

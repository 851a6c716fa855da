package render_test

import (
	"fmt"

	"github.com/matzehuels/gridcal/pkg/grid/layout"
	"github.com/matzehuels/gridcal/pkg/grid/primitive"
	"github.com/matzehuels/gridcal/pkg/grid/render"
)

func ExampleRender() {
	l, err := layout.Compute(layout.Params{
		TotalWidth: 10, TotalHeight: 5,
		LeftMargin: 1, HeaderHeight: 0.5,
		LineWidth: 0.01,
		NumRows: 1, NumCols: 9,
	}, layout.ModeGapped)
	if err != nil {
		fmt.Println(err)
		return
	}

	prims, err := render.Render(l, nil, []string{"2025"},
		render.WithContent(func(row, col int) string {
			if col%2 == 0 {
				return ""
			}
			return "odd"
		}))
	if err != nil {
		fmt.Println(err)
		return
	}

	counts := primitive.Count(prims)
	fmt.Println("rects:", counts[primitive.KindRect])
	fmt.Println("texts:", counts[primitive.KindText])
	// Output:
	// rects: 9
	// texts: 6
}

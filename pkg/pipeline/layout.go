package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/gridcal/pkg/calendar"
	"github.com/matzehuels/gridcal/pkg/grid/layout"
	"github.com/matzehuels/gridcal/pkg/grid/primitive"
	"github.com/matzehuels/gridcal/pkg/grid/render"
	"github.com/matzehuels/gridcal/pkg/observability"
)

// Assemble builds the calendar grid described by opts.
func Assemble(ctx context.Context, opts Options) (calendar.Grid, error) {
	kind, err := calendar.ParseKind(opts.Kind)
	if err != nil {
		return calendar.Grid{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnAssembleStart(ctx, string(kind), opts.From, opts.To)
	start := time.Now()

	g, err := calendar.Build(kind, opts.From, opts.To, opts.CalendarOptions()...)

	hooks.OnAssembleComplete(ctx, string(kind), g.NumRows(), g.NumCols(), time.Since(start), err)
	return g, err
}

// ComputeLayout computes the geometry of g on the canvas described by opts.
func ComputeLayout(ctx context.Context, g calendar.Grid, opts Options) (layout.Layout, error) {
	mode, err := layout.ParseMode(opts.Mode)
	if err != nil {
		return layout.Layout{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, mode.String(), g.NumRows(), g.NumCols())
	start := time.Now()

	l, err := layout.Compute(opts.LayoutParams(g.NumRows(), g.NumCols()), mode)

	hooks.OnLayoutComplete(ctx, mode.String(), time.Since(start), err)
	return l, err
}

// Primitives maps l and the labels and content of g to a primitive stream.
func Primitives(l layout.Layout, g calendar.Grid, opts Options) ([]primitive.Primitive, error) {
	style, err := ParseDividerStyle(opts.DividerStyle)
	if err != nil {
		return nil, err
	}
	return render.Render(l, g.Columns, g.Rows,
		render.WithContent(g.Content),
		render.WithSeparators(opts.separatorSpec()),
		render.WithLabelFont(primitive.Font{Family: opts.FontFamily, Size: opts.LabelFontSize, Bold: true}),
		render.WithContentFont(primitive.Font{Family: opts.FontFamily, Size: opts.ContentFontSize}),
		render.WithDividerStyle(style),
	)
}

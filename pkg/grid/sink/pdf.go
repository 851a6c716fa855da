package sink

import (
	"context"

	"github.com/matzehuels/gridcal/pkg/grid/primitive"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	svgOpts []SVGOption
}

// WithPDFSVGOptions passes options through to the underlying SVG renderer.
func WithPDFSVGOptions(opts ...SVGOption) PDFOption {
	return func(r *pdfRenderer) { r.svgOpts = opts }
}

// RenderPDF renders prims as PDF via SVG conversion. At the default SVG
// scale one layout unit is one inch of paper.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, prims []primitive.Primitive, width, height float64, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	svg := RenderSVG(prims, width, height, r.svgOpts...)
	return rsvgConvert(ctx, svg, "pdf")
}

// Package sink serializes a primitive stream into output formats.
//
// # Overview
//
// A "sink" transforms the ordered [primitive.Primitive] sequence produced
// by the grid renderer into bytes for one backend. This package provides:
//
//   - SVG: vector output, the basis for PDF
//   - JSON: the primitive stream itself, for external typesetters
//   - PNG: raster output drawn natively with fogleman/gg
//   - PDF: print output (requires rsvg-convert)
//
// Sinks take the canvas size alongside the primitives because the
// primitive coordinates have a bottom-left origin; every sink flips the y
// axis into its own top-left coordinate system. Primitives are drawn in
// sequence order.
//
// # Usage
//
//	svg := sink.RenderSVG(prims, 36, 24, sink.WithScale(72))
//	png, err := sink.RenderPNG(prims, 36, 24, sink.WithPNGScale(50))
//	pdf, err := sink.RenderPDF(ctx, prims, 36, 24)
//
// RenderPDF requires librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [primitive.Primitive]: github.com/matzehuels/gridcal/pkg/grid/primitive.Primitive
package sink

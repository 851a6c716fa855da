package pipeline

import (
	"context"

	"github.com/matzehuels/gridcal/pkg/errors"
	"github.com/matzehuels/gridcal/pkg/grid/primitive"
	"github.com/matzehuels/gridcal/pkg/grid/sink"
)

// RenderFormat serializes prims to a single output format.
func RenderFormat(ctx context.Context, format string, prims []primitive.Primitive, opts Options) ([]byte, error) {
	w, h := opts.Width, opts.Height

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatSVG:
		data = sink.RenderSVG(prims, w, h, svgOptions(opts)...)
	case FormatJSON:
		data, err = sink.RenderJSON(prims, w, h)
	case FormatPNG:
		var pngOpts []sink.PNGOption
		if opts.PNGScale > 0 {
			pngOpts = append(pngOpts, sink.WithPNGScale(opts.PNGScale))
		}
		data, err = sink.RenderPNG(prims, w, h, pngOpts...)
	case FormatPDF:
		data, err = sink.RenderPDF(ctx, prims, w, h, sink.WithPDFSVGOptions(svgOptions(opts)...))
	default:
		return nil, ValidateFormat(format)
	}
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	return data, nil
}

func svgOptions(opts Options) []sink.SVGOption {
	var out []sink.SVGOption
	if opts.Scale > 0 {
		out = append(out, sink.WithScale(opts.Scale))
	}
	if opts.Background != "" {
		out = append(out, sink.WithBackground(opts.Background))
	}
	return out
}

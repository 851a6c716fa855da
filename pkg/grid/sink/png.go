package sink

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/gridcal/pkg/errors"
	"github.com/matzehuels/gridcal/pkg/fonts"
	"github.com/matzehuels/gridcal/pkg/grid/primitive"
)

const (
	// DefaultPNGScale is the number of pixels per layout unit.
	DefaultPNGScale = 100.0

	// maxPNGPixels bounds the raster size (about 40 megapixels).
	maxPNGPixels = 40_000_000
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
	faces map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

// WithPNGScale sets the number of pixels per layout unit.
func WithPNGScale(s float64) PNGOption { return func(r *pngRenderer) { r.scale = s } }

// RenderPNG rasterizes prims on a white width × height canvas. Text is
// drawn with the Go fonts regardless of the requested family.
func RenderPNG(prims []primitive.Primitive, width, height float64, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: DefaultPNGScale, faces: make(map[faceKey]font.Face)}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = DefaultPNGScale
	}

	fw, fh := math.Ceil(width*r.scale), math.Ceil(height*r.scale)
	if !(fw >= 1 && fh >= 1 && fw <= maxPNGPixels && fh <= maxPNGPixels && fw*fh <= maxPNGPixels) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"png canvas %gx%g px out of range (max %d pixels); lower the scale", fw, fh, maxPNGPixels)
	}
	pw, ph := int(fw), int(fh)

	dc := gg.NewContext(pw, ph)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)

	for _, p := range prims {
		var err error
		switch p := p.(type) {
		case primitive.Rect:
			r.rect(dc, p, height)
		case primitive.Line:
			r.line(dc, p, height)
		case primitive.Text:
			err = r.text(dc, p, height)
		}
		if err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode png")
	}
	return buf.Bytes(), nil
}

func (r *pngRenderer) rect(dc *gg.Context, p primitive.Rect, height float64) {
	s := r.scale
	dc.SetLineWidth(p.LineWidth * s)
	dc.DrawRectangle(p.X*s, (height-p.Y-p.H)*s, p.W*s, p.H*s)
	dc.Stroke()
}

func (r *pngRenderer) line(dc *gg.Context, p primitive.Line, height float64) {
	s := r.scale
	dc.SetLineWidth(p.LineWidth * s)
	dc.SetDash(dashPattern(p.Style, p.LineWidth*s)...)
	dc.DrawLine(p.X1*s, (height-p.Y1)*s, p.X2*s, (height-p.Y2)*s)
	dc.Stroke()
	dc.SetDash()
}

func (r *pngRenderer) text(dc *gg.Context, p primitive.Text, height float64) error {
	if p.Content == "" {
		return nil
	}
	key := faceKey{size: p.Font.Size * r.scale, bold: p.Font.Bold}
	face, ok := r.faces[key]
	if !ok {
		var err error
		if face, err = fonts.Face(key.size, key.bold); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "load font")
		}
		r.faces[key] = face
	}
	dc.SetFontFace(face)
	dc.DrawStringAnchored(p.Content, p.X*r.scale, (height-p.Y)*r.scale, anchorFraction(p.Anchor), 0.5)
	return nil
}


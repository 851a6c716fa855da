package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/gridcal/pkg/fonts"
	"github.com/matzehuels/gridcal/pkg/grid/primitive"
)

// DefaultScale is the number of SVG user units per layout unit. With
// layout units in inches this matches PostScript points.
const DefaultScale = 72.0

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale      float64
	background string
	stroke     string
}

// WithScale sets the number of SVG user units per layout unit.
func WithScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// WithBackground fills the canvas with color before drawing. The default
// is a transparent background.
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }

// WithStroke sets the stroke and text color (default black).
func WithStroke(color string) SVGOption { return func(r *svgRenderer) { r.stroke = color } }

// RenderSVG renders prims on a width × height canvas.
func RenderSVG(prims []primitive.Primitive, width, height float64, opts ...SVGOption) []byte {
	r := svgRenderer{scale: DefaultScale, stroke: "#000"}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = DefaultScale
	}

	w, h := width*r.scale, height*r.scale

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(w), num(h), num(w), num(h))
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%s" height="%s" fill="%s"/>`+"\n", num(w), num(h), escapeXML(r.background))
	}

	for _, p := range prims {
		switch p := p.(type) {
		case primitive.Rect:
			r.rect(&buf, p, height)
		case primitive.Line:
			r.line(&buf, p, height)
		case primitive.Text:
			r.text(&buf, p, height)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) rect(buf *bytes.Buffer, p primitive.Rect, height float64) {
	s := r.scale
	fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
		num(p.X*s), num((height-p.Y-p.H)*s), num(p.W*s), num(p.H*s), r.stroke, num(p.LineWidth*s))
}

func (r *svgRenderer) line(buf *bytes.Buffer, p primitive.Line, height float64) {
	s := r.scale
	fmt.Fprintf(buf, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"`,
		num(p.X1*s), num((height-p.Y1)*s), num(p.X2*s), num((height-p.Y2)*s), r.stroke, num(p.LineWidth*s))
	if dash := dashPattern(p.Style, p.LineWidth*s); dash != nil {
		parts := make([]string, len(dash))
		for i, d := range dash {
			parts[i] = num(d)
		}
		fmt.Fprintf(buf, ` stroke-dasharray="%s"`, strings.Join(parts, " "))
	}
	buf.WriteString("/>\n")
}

func (r *svgRenderer) text(buf *bytes.Buffer, p primitive.Text, height float64) {
	s := r.scale
	anchor := p.Anchor
	if anchor == "" {
		anchor = primitive.AnchorMiddle
	}
	weight := "normal"
	if p.Font.Bold {
		weight = "bold"
	}
	fmt.Fprintf(buf, `  <text x="%s" y="%s" text-anchor="%s" dominant-baseline="central" font-family="%s" font-size="%s" font-weight="%s" fill="%s">%s</text>`+"\n",
		num(p.X*s), num((height-p.Y)*s), anchor, escapeXML(fonts.CSSFamily(p.Font.Family)),
		num(p.Font.Size*s), weight, r.stroke, escapeXML(p.Content))
}

// num formats v with at most three decimals and no trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

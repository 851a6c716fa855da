package sink

import (
	"bytes"
	"encoding/xml"

	"github.com/matzehuels/gridcal/pkg/grid/primitive"
)

// dashPattern returns the on/off lengths for style, in the same units as
// lineWidth. Solid lines return nil.
func dashPattern(style primitive.LineStyle, lineWidth float64) []float64 {
	switch style {
	case primitive.StyleDashed:
		return []float64{6 * lineWidth, 3 * lineWidth}
	case primitive.StyleDotted:
		return []float64{lineWidth, 2 * lineWidth}
	default:
		return nil
	}
}

// anchorFraction maps a text anchor to the horizontal fraction of the
// text width that sits left of the anchor point.
func anchorFraction(a primitive.Anchor) float64 {
	switch a {
	case primitive.AnchorStart:
		return 0
	case primitive.AnchorEnd:
		return 1
	default:
		return 0.5
	}
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

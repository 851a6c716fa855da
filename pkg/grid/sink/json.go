package sink

import (
	"encoding/json"

	"github.com/matzehuels/gridcal/pkg/grid/primitive"
)

type jsonOutput struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Origin     string  `json:"origin"`
	Primitives []any   `json:"primitives"`
}

type jsonRect struct {
	Kind      primitive.Kind `json:"kind"`
	X         float64        `json:"x"`
	Y         float64        `json:"y"`
	W         float64        `json:"w"`
	H         float64        `json:"h"`
	LineWidth float64        `json:"line_width"`
}

type jsonLine struct {
	Kind      primitive.Kind      `json:"kind"`
	X1        float64             `json:"x1"`
	Y1        float64             `json:"y1"`
	X2        float64             `json:"x2"`
	Y2        float64             `json:"y2"`
	LineWidth float64             `json:"line_width"`
	Style     primitive.LineStyle `json:"style"`
}

type jsonText struct {
	Kind    primitive.Kind   `json:"kind"`
	X       float64          `json:"x"`
	Y       float64          `json:"y"`
	Anchor  primitive.Anchor `json:"anchor"`
	Font    jsonFont         `json:"font"`
	Content string           `json:"content"`
}

type jsonFont struct {
	Family string  `json:"family,omitempty"`
	Size   float64 `json:"size"`
	Bold   bool    `json:"bold,omitempty"`
}

// RenderJSON exports the primitive stream as a pretty-printed JSON
// document, in emission order, with each element tagged by "kind".
// Coordinates are left in layout units with a bottom-left origin.
func RenderJSON(prims []primitive.Primitive, width, height float64) ([]byte, error) {
	out := jsonOutput{
		Width:      width,
		Height:     height,
		Origin:     "bottom-left",
		Primitives: make([]any, 0, len(prims)),
	}
	for _, p := range prims {
		switch p := p.(type) {
		case primitive.Rect:
			out.Primitives = append(out.Primitives, jsonRect{
				Kind: p.Kind(), X: p.X, Y: p.Y, W: p.W, H: p.H, LineWidth: p.LineWidth,
			})
		case primitive.Line:
			out.Primitives = append(out.Primitives, jsonLine{
				Kind: p.Kind(), X1: p.X1, Y1: p.Y1, X2: p.X2, Y2: p.Y2, LineWidth: p.LineWidth, Style: p.Style,
			})
		case primitive.Text:
			out.Primitives = append(out.Primitives, jsonText{
				Kind: p.Kind(), X: p.X, Y: p.Y, Anchor: p.Anchor,
				Font:    jsonFont{Family: p.Font.Family, Size: p.Font.Size, Bold: p.Font.Bold},
				Content: p.Content,
			})
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

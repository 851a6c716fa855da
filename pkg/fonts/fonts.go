// Package fonts provides the typefaces used by the raster sink and the
// font-family strings written into SVG output.
//
// The raster sink cannot rely on system fonts, so it draws every label
// with the Go font family shipped in golang.org/x/image/font/gofont. The
// parsed fonts are cached after first use.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the default CSS font-family for calendar text.
const FontFamily = "Helvetica"

// FallbackFontFamily lists the fonts tried after FontFamily in SVG output.
const FallbackFontFamily = `'Helvetica Neue', Arial, 'Go', sans-serif`

// CSSFamily returns the font-family value for family with fallbacks.
// An empty family selects FontFamily.
func CSSFamily(family string) string {
	if family == "" {
		family = FontFamily
	}
	return "'" + family + "', " + FallbackFontFamily
}

var (
	regular, bold *truetype.Font
	parseOnce     sync.Once
	parseErr      error
)

func parse() {
	regular, parseErr = truetype.Parse(goregular.TTF)
	if parseErr != nil {
		return
	}
	bold, parseErr = truetype.Parse(gobold.TTF)
}

// Face returns a Go font face of the given pixel size.
// The returned face is not safe for concurrent use; create one per
// drawing context.
func Face(size float64, isBold bool) (font.Face, error) {
	parseOnce.Do(parse)
	if parseErr != nil {
		return nil, parseErr
	}
	f := regular
	if isBold {
		f = bold
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingFull}), nil
}

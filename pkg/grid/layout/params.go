package layout

import (
	"strings"

	"github.com/matzehuels/gridcal/pkg/errors"
)

// Mode selects how the box area is partitioned.
type Mode int

const (
	// ModeGapped draws every cell as its own rectangle.
	ModeGapped Mode = iota
	// ModeRowBox draws one rectangle per row, subdivided by dividers.
	ModeRowBox
)

// String returns the configuration name of m.
func (m Mode) String() string {
	switch m {
	case ModeGapped:
		return "gapped"
	case ModeRowBox:
		return "rowbox"
	default:
		return "unknown"
	}
}

// ParseMode converts a configuration name into a Mode. Matching is case
// insensitive; "row-box" is accepted as an alias of "rowbox".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gapped", "":
		return ModeGapped, nil
	case "rowbox", "row-box":
		return ModeRowBox, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidMode, "invalid mode: %q (must be 'gapped' or 'rowbox')", s)
	}
}

// Params holds the scalar inputs of a grid layout.
// Lengths are in abstract units (inches for print output).
type Params struct {
	TotalWidth   float64 // Canvas width
	TotalHeight  float64 // Canvas height
	LeftMargin   float64 // Width of the row label column
	HeaderHeight float64 // Height of the column label band
	Gap          float64 // Space between neighbouring cells or rows
	LineWidth    float64 // Stroke thickness of cell outlines
	NumRows      int
	NumCols      int
}

// Validate checks field ranges. It does not check whether the derived cell
// size is positive; [Compute] reports that as DEGENERATE_GEOMETRY.
func (p Params) Validate() error {
	if err := errors.ValidatePositive("total width", p.TotalWidth); err != nil {
		return err
	}
	if err := errors.ValidatePositive("total height", p.TotalHeight); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("left margin", p.LeftMargin); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("header height", p.HeaderHeight); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("gap", p.Gap); err != nil {
		return err
	}
	if err := errors.ValidatePositive("line width", p.LineWidth); err != nil {
		return err
	}
	if p.NumRows < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "number of rows must be at least 1, got %d", p.NumRows)
	}
	if p.NumCols < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "number of columns must be at least 1, got %d", p.NumCols)
	}
	return nil
}

package layout

import "github.com/matzehuels/gridcal/pkg/errors"

// SeparatorSpec configures the heavy lines drawn between groups of rows.
//
// A separator is drawn in the gap after every row StartRow + k*Interval,
// k = 0, 1, 2, …, as long as a following row exists. Interval 0 disables
// separators.
type SeparatorSpec struct {
	Interval int
	StartRow int
	Width    float64
}

// Enabled reports whether s produces any separators at all.
func (s SeparatorSpec) Enabled() bool { return s.Interval > 0 }

// Validate checks the separator settings. Width is only checked when s is enabled.
func (s SeparatorSpec) Validate() error {
	if s.Interval < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "separator interval must not be negative, got %d", s.Interval)
	}
	if !s.Enabled() {
		return nil
	}
	if s.StartRow < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "separator start row must be at least 1, got %d", s.StartRow)
	}
	return errors.ValidatePositive("separator width", s.Width)
}

// Rows returns the rows after which a separator is drawn in a grid of
// numRows rows, in increasing order.
func (s SeparatorSpec) Rows(numRows int) []int {
	if !s.Enabled() || s.StartRow < 1 {
		return nil
	}
	var rows []int
	for r := s.StartRow; r < numRows; r += s.Interval {
		rows = append(rows, r)
		if s.Interval >= numRows-r {
			break
		}
	}
	return rows
}

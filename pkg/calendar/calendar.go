// Package calendar assembles year-by-week and year-by-month grids.
//
// The assembler decides what goes into a calendar grid: one row per year,
// one column per ISO week or per month, and the text printed in each
// cell. It produces label slices and a cell content table that plug
// straight into [render.Render]:
//
//	g, err := calendar.Build(calendar.KindWeek, 2024, 2027)
//	prims, err := render.Render(l, g.Columns, g.Rows, render.WithContent(g.Content))
//
// [render.Render]: github.com/matzehuels/gridcal/pkg/grid/render.Render
package calendar

import (
	"fmt"
	"strconv"
	"time"

	"github.com/matzehuels/gridcal/pkg/errors"
	"github.com/matzehuels/gridcal/pkg/isoweek"
)

// Kind selects the calendar's column axis.
type Kind string

const (
	KindWeek  Kind = "week"
	KindMonth Kind = "month"
)

// ParseKind parses a calendar kind. The empty string selects KindWeek.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "", KindWeek:
		return KindWeek, nil
	case KindMonth:
		return KindMonth, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidKind, "unknown calendar kind %q (want week or month)", s)
	}
}

// Grid is an assembled calendar: axis labels plus per-cell text.
type Grid struct {
	Kind Kind
	From int
	To   int

	// Columns are the column labels, left to right.
	Columns []string
	// Rows are the row labels, top to bottom (one per year).
	Rows []string
	// Cells holds the content text, indexed [row][col]. Blank cells hold "".
	Cells [][]string
}

// NumRows returns the number of years in the grid.
func (g Grid) NumRows() int { return len(g.Rows) }

// NumCols returns the number of week or month columns.
func (g Grid) NumCols() int { return len(g.Columns) }

// Content returns the text of the cell at the 1-based (row, col), matching
// the indexing of render.ContentFunc.
func (g Grid) Content(row, col int) string { return g.Cells[row-1][col-1] }

// Option configures Build.
type Option func(*builder)

type builder struct {
	dates      bool
	monthWeeks bool
}

// WithoutDates leaves every cell of a week calendar blank.
func WithoutDates() Option { return func(b *builder) { b.dates = false } }

// WithMonthWeeks fills month cells with the span of ISO weeks the month
// touches, such as "W1-W5".
func WithMonthWeeks() Option { return func(b *builder) { b.monthWeeks = true } }

// Build assembles a calendar of the given kind covering years from..to
// inclusive.
func Build(kind Kind, from, to int, opts ...Option) (Grid, error) {
	if err := errors.ValidateYearRange(from, to); err != nil {
		return Grid{}, err
	}
	b := builder{dates: true}
	for _, opt := range opts {
		opt(&b)
	}

	g := Grid{Kind: kind, From: from, To: to}
	for y := from; y <= to; y++ {
		g.Rows = append(g.Rows, strconv.Itoa(y))
	}

	switch kind {
	case KindWeek:
		if err := b.weeks(&g); err != nil {
			return Grid{}, err
		}
	case KindMonth:
		b.months(&g)
	default:
		return Grid{}, errors.New(errors.ErrCodeInvalidKind, "unknown calendar kind %q", kind)
	}
	return g, nil
}

func (b builder) weeks(g *Grid) error {
	cols := isoweek.MaxWeek - 1
	for y := g.From; y <= g.To; y++ {
		if isoweek.HasWeek53(y) {
			cols = isoweek.MaxWeek
			break
		}
	}
	for w := 1; w <= cols; w++ {
		g.Columns = append(g.Columns, strconv.Itoa(w))
	}

	g.Cells = make([][]string, 0, len(g.Rows))
	for y := g.From; y <= g.To; y++ {
		row := make([]string, cols)
		if b.dates {
			n := isoweek.WeeksInYear(y)
			for w := 1; w <= n; w++ {
				label, err := isoweek.Resolve(y, w)
				if err != nil {
					return err
				}
				row[w-1] = label
			}
		}
		g.Cells = append(g.Cells, row)
	}
	return nil
}

func (b builder) months(g *Grid) {
	for m := time.January; m <= time.December; m++ {
		g.Columns = append(g.Columns, m.String()[:3])
	}

	g.Cells = make([][]string, 0, len(g.Rows))
	for y := g.From; y <= g.To; y++ {
		row := make([]string, 12)
		if b.monthWeeks {
			for m := time.January; m <= time.December; m++ {
				first, last := MonthWeeks(y, m)
				row[m-1] = fmt.Sprintf("W%d-W%d", first, last)
			}
		}
		g.Cells = append(g.Cells, row)
	}
}

// MonthWeeks returns the first and last ISO week of year that contain a
// day of month m. Days that belong to the neighbouring ISO year are not
// counted, so January may start at week 1 even when the 1st falls in the
// previous year's last week.
func MonthWeeks(year int, m time.Month) (first, last int) {
	start := isoweek.Date{Year: year, Month: m, Day: 1}
	end := start.AddDays(daysIn(year, m) - 1)

	isoYear, w := isoweek.Week(start)
	if isoYear != year {
		w = 1
	}
	first = w

	isoYear, w = isoweek.Week(end)
	if isoYear != year {
		w = isoweek.WeeksInYear(year)
	}
	last = w
	return first, last
}

func daysIn(year int, m time.Month) int {
	next := isoweek.Date{Year: year, Month: m, Day: 1}.AddDays(31)
	return 31 - (next.Day - 1)
}

package calendar

import (
	"testing"
	"time"

	"github.com/matzehuels/gridcal/pkg/errors"
	"github.com/matzehuels/gridcal/pkg/isoweek"
)

func TestBuildWeek(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		wantCols int
	}{
		{"short years only", 2021, 2025, 52},
		{"includes 2026", 2024, 2027, 53},
		{"single long year", 2020, 2020, 53},
		{"single short year", 2023, 2023, 52},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Build(KindWeek, tt.from, tt.to)
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if g.NumCols() != tt.wantCols {
				t.Errorf("NumCols() = %d, want %d", g.NumCols(), tt.wantCols)
			}
			if g.NumRows() != tt.to-tt.from+1 {
				t.Errorf("NumRows() = %d, want %d", g.NumRows(), tt.to-tt.from+1)
			}
			if g.Columns[0] != "1" || g.Columns[51] != "52" {
				t.Errorf("Columns = %v", g.Columns)
			}
			if g.Rows[0] != time.Date(tt.from, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006") {
				t.Errorf("Rows[0] = %q, want %d", g.Rows[0], tt.from)
			}
		})
	}
}

func TestBuildWeekContent(t *testing.T) {
	g, err := Build(KindWeek, 2025, 2026)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	tests := []struct {
		row, col int
		want     string
	}{
		{1, 1, "Dec 30-Jan 5"},
		{1, 2, "Jan 6-12"},
		{1, 53, ""},
		{2, 1, "Dec 29-Jan 4"},
		{2, 53, "Dec 28-Jan 3"},
	}
	for _, tt := range tests {
		if got := g.Content(tt.row, tt.col); got != tt.want {
			t.Errorf("Content(%d, %d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestBuildWeekContentMatchesResolver(t *testing.T) {
	g, err := Build(KindWeek, 2015, 2026)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	for row := 1; row <= g.NumRows(); row++ {
		year := 2015 + row - 1
		for week := 1; week <= g.NumCols(); week++ {
			want := ""
			if week <= isoweek.WeeksInYear(year) {
				if want, err = isoweek.Resolve(year, week); err != nil {
					t.Fatal(err)
				}
			}
			if got := g.Content(row, week); got != want {
				t.Errorf("%d-W%02d = %q, want %q", year, week, got, want)
			}
		}
	}
}

func TestBuildWithoutDates(t *testing.T) {
	g, err := Build(KindWeek, 2024, 2024, WithoutDates())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	for c := 1; c <= g.NumCols(); c++ {
		if s := g.Content(1, c); s != "" {
			t.Fatalf("Content(1, %d) = %q, want blank", c, s)
		}
	}
}

func TestBuildMonth(t *testing.T) {
	g, err := Build(KindMonth, 2024, 2025)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if g.NumCols() != 12 {
		t.Fatalf("NumCols() = %d, want 12", g.NumCols())
	}
	if g.Columns[0] != "Jan" || g.Columns[11] != "Dec" {
		t.Errorf("Columns = %v", g.Columns)
	}
	if g.Content(1, 1) != "" {
		t.Errorf("month cells should be blank by default, got %q", g.Content(1, 1))
	}

	g, err = Build(KindMonth, 2024, 2024, WithMonthWeeks())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if got := g.Content(1, 1); got != "W1-W5" {
		t.Errorf("January 2024 = %q, want W1-W5", got)
	}
}

func TestMonthWeeks(t *testing.T) {
	tests := []struct {
		year        int
		month       time.Month
		first, last int
	}{
		{2024, time.January, 1, 5},
		{2024, time.December, 48, 52},
		{2021, time.January, 1, 4},
		{2020, time.December, 49, 53},
		{2026, time.February, 5, 9},
	}
	for _, tt := range tests {
		first, last := MonthWeeks(tt.year, tt.month)
		if first != tt.first || last != tt.last {
			t.Errorf("MonthWeeks(%d, %s) = %d-%d, want %d-%d",
				tt.year, tt.month, first, last, tt.first, tt.last)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		from, to int
		code     errors.Code
	}{
		{"reversed", KindWeek, 2026, 2024, errors.ErrCodeInvalidYear},
		{"year zero", KindWeek, 0, 2024, errors.ErrCodeInvalidYear},
		{"too large", KindMonth, 2024, 10000, errors.ErrCodeInvalidYear},
		{"bad kind", Kind("day"), 2024, 2024, errors.ErrCodeInvalidKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.kind, tt.from, tt.to)
			if !errors.Is(err, tt.code) {
				t.Errorf("Build() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"": KindWeek, "week": KindWeek, "month": KindMonth} {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseKind("year"); !errors.Is(err, errors.ErrCodeInvalidKind) {
		t.Errorf("ParseKind(year) error = %v, want INVALID_KIND", err)
	}
}

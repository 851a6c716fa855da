package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/gridcal/pkg/errors"
	"github.com/matzehuels/gridcal/pkg/pipeline"
)

func TestParse(t *testing.T) {
	data := []byte(`
kind = "month"
from = 2024
to = 2027
mode = "rowbox"
width = 17.0
height = 11.0
month_weeks = true
formats = ["svg", "png"]
divider_style = "dotted"

[separators]
interval = 2
width = 0.02
`)

	opts, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if opts.Kind != "month" || opts.From != 2024 || opts.To != 2027 {
		t.Errorf("calendar = %q %d-%d", opts.Kind, opts.From, opts.To)
	}
	if opts.Mode != "rowbox" || opts.Width != 17 || opts.Height != 11 {
		t.Errorf("layout = %q %vx%v", opts.Mode, opts.Width, opts.Height)
	}
	if !opts.MonthWeeks || opts.DividerStyle != "dotted" {
		t.Errorf("MonthWeeks = %v, DividerStyle = %q", opts.MonthWeeks, opts.DividerStyle)
	}
	if !slices.Equal(opts.Formats, []string{"svg", "png"}) {
		t.Errorf("Formats = %v", opts.Formats)
	}
	if opts.Separators == nil || opts.Separators.Interval != 2 || opts.Separators.Width != 0.02 {
		t.Errorf("Separators = %+v", opts.Separators)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("parsed options should validate: %v", err)
	}
}

func TestParseZeroLengths(t *testing.T) {
	opts, err := Parse([]byte("from = 2025\ngap = 0.0\nleft_margin = 0.0\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	p := opts.LayoutParams(1, 53)
	if p.Gap != 0 || p.LeftMargin != 0 {
		t.Errorf("gap/left_margin = %v/%v, want 0/0", p.Gap, p.LeftMargin)
	}
	if p.HeaderHeight != pipeline.DefaultHeaderHeight {
		t.Errorf("header_height = %v, want default %v", p.HeaderHeight, pipeline.DefaultHeaderHeight)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax", `from = `, "parse config"},
		{"unknown key", "from = 2024\ncolour = \"red\"", "colour"},
		{"unknown nested key", "[separators]\nevery = 4", "separators.every"},
		{"wrong type", `from = "2024"`, "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Fatalf("Parse() error = %v, want INVALID_CONFIG", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridcal.toml")
	if err := os.WriteFile(path, []byte("from = 2026\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if opts.From != 2026 {
		t.Errorf("From = %d, want 2026", opts.From)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load(missing) error = %v, want INVALID_CONFIG", err)
	}
	if _, err := Load("../etc/gridcal.toml"); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("Load(traversal) error = %v, want INVALID_PATH", err)
	}
}

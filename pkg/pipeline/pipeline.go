// Package pipeline provides the calendar rendering pipeline for gridcal.
//
// This package implements the complete assemble → layout → render
// pipeline used by both the CLI and the HTTP server, so both entry points
// apply the same defaults, validation and caching.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Assemble: Build the calendar grid (labels and cell text) for a year range
//  2. Layout: Compute the grid geometry for the canvas
//  3. Primitives: Map the geometry to an ordered primitive stream
//  4. Render: Serialize the stream to each requested format (SVG, PNG, PDF, JSON)
//
// The first three stages are pure and cheap. Sinks run concurrently, one
// goroutine per format, and their output is cached by a hash of the
// primitive stream.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Kind:    "week",
//	    From:    2024,
//	    To:      2027,
//	    Formats: []string{"svg", "pdf"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridcal/pkg/calendar"
	"github.com/matzehuels/gridcal/pkg/errors"
	"github.com/matzehuels/gridcal/pkg/grid/layout"
	"github.com/matzehuels/gridcal/pkg/grid/primitive"
	"github.com/matzehuels/gridcal/pkg/grid/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the canvas width in layout units (inches).
	DefaultWidth = 36.0

	// DefaultHeight is the canvas height in layout units (inches).
	DefaultHeight = 24.0

	// DefaultLeftMargin is the width of the year label column.
	DefaultLeftMargin = 1.0

	// DefaultHeaderHeight is the height of the week/month label band.
	DefaultHeaderHeight = 0.5

	// DefaultGap is the space between neighbouring cells or row boxes.
	DefaultGap = 0.05

	// DefaultLineWidth is the stroke thickness of cell outlines.
	DefaultLineWidth = 0.01

	// DefaultSeparatorInterval groups week calendar rows in fours.
	DefaultSeparatorInterval = 4

	// DefaultSeparatorWidth is the stroke thickness of row group separators.
	DefaultSeparatorWidth = 0.03
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ContentTypes maps each format to its MIME type.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Separators configures the heavy lines between row groups.
type Separators struct {
	Interval int     `json:"interval" toml:"interval"`
	StartRow int     `json:"start_row,omitempty" toml:"start_row"`
	Width    float64 `json:"width,omitempty" toml:"width"`
}

// Options contains all configuration for the calendar pipeline.
// It is decoded from TOML config files and JSON API requests.
//
// Zero values select defaults. LeftMargin, HeaderHeight and Gap may
// legitimately be 0, so they are pointers and only nil selects the default.
// Week calendars get separators every four rows unless Separators is set;
// an explicit interval of 0 disables them.
type Options struct {
	// Calendar options
	Kind       string `json:"kind,omitempty" toml:"kind"`
	From       int    `json:"from" toml:"from"`
	To         int    `json:"to" toml:"to"`
	NoDates    bool   `json:"no_dates,omitempty" toml:"no_dates"`
	MonthWeeks bool   `json:"month_weeks,omitempty" toml:"month_weeks"`

	// Layout options
	Mode         string   `json:"mode,omitempty" toml:"mode"`
	Width        float64  `json:"width,omitempty" toml:"width"`
	Height       float64  `json:"height,omitempty" toml:"height"`
	LeftMargin   *float64 `json:"left_margin,omitempty" toml:"left_margin"`
	HeaderHeight *float64 `json:"header_height,omitempty" toml:"header_height"`
	Gap          *float64 `json:"gap,omitempty" toml:"gap"`
	LineWidth    float64  `json:"line_width,omitempty" toml:"line_width"`

	// Render options
	Separators      *Separators `json:"separators,omitempty" toml:"separators"`
	FontFamily      string      `json:"font_family,omitempty" toml:"font_family"`
	LabelFontSize   float64     `json:"label_font_size,omitempty" toml:"label_font_size"`
	ContentFontSize float64     `json:"content_font_size,omitempty" toml:"content_font_size"`
	DividerStyle    string      `json:"divider_style,omitempty" toml:"divider_style"`

	// Output options
	Formats    []string `json:"formats,omitempty" toml:"formats"`
	Scale      float64  `json:"scale,omitempty" toml:"scale"`
	PNGScale   float64  `json:"png_scale,omitempty" toml:"png_scale"`
	Background string   `json:"background,omitempty" toml:"background"`

	// Runtime options (not serialized)
	Refresh bool        `json:"-" toml:"-"`
	Logger  *log.Logger `json:"-" toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this execution in logs.
	RunID string

	// Grid is the assembled calendar.
	Grid calendar.Grid

	// Layout is the computed geometry.
	Layout layout.Layout

	// Primitives is the ordered drawing stream.
	Primitives []primitive.Primitive

	// InputHash fingerprints the primitive stream; artifacts are cached
	// under it.
	InputHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows         int
	Cols         int
	Primitives   int
	AssembleTime time.Duration
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	Hits      []string // Formats served from cache
	RenderHit bool     // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseDividerStyle converts a configuration name into a line style.
// The empty string selects solid.
func ParseDividerStyle(s string) (primitive.LineStyle, error) {
	switch primitive.LineStyle(s) {
	case "", primitive.StyleSolid:
		return primitive.StyleSolid, nil
	case primitive.StyleDashed, primitive.StyleDotted:
		return primitive.LineStyle(s), nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "invalid divider style: %q (must be one of: solid, dashed, dotted)", s)
	}
}

// ParseFormats splits a comma-separated format list, trimming spaces and
// dropping duplicates and empty entries.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and validates every field.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := o.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults fills zero-valued fields with their defaults.
func (o *Options) SetDefaults() {
	if o.Kind == "" {
		o.Kind = string(calendar.KindWeek)
	}
	if o.To == 0 {
		o.To = o.From
	}
	if o.Mode == "" {
		o.Mode = layout.ModeGapped.String()
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.LeftMargin == nil {
		o.LeftMargin = Float(DefaultLeftMargin)
	}
	if o.HeaderHeight == nil {
		o.HeaderHeight = Float(DefaultHeaderHeight)
	}
	if o.Gap == nil {
		o.Gap = Float(DefaultGap)
	}
	if o.LineWidth == 0 {
		o.LineWidth = DefaultLineWidth
	}
	if o.Separators == nil && o.Kind == string(calendar.KindWeek) {
		o.Separators = &Separators{Interval: DefaultSeparatorInterval}
	}
	if o.Separators != nil && o.Separators.Interval > 0 {
		if o.Separators.StartRow == 0 {
			o.Separators.StartRow = 1
		}
		if o.Separators.Width == 0 {
			o.Separators.Width = DefaultSeparatorWidth
		}
	}
	if o.FontFamily == "" {
		o.FontFamily = render.DefaultLabelFont.Family
	}
	if o.LabelFontSize == 0 {
		o.LabelFontSize = render.DefaultLabelFont.Size
	}
	if o.ContentFontSize == 0 {
		o.ContentFontSize = render.DefaultContentFont.Size
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the option values that later stages cannot check on
// their own. Geometry is validated by the layout stage.
func (o *Options) Validate() error {
	if _, err := calendar.ParseKind(o.Kind); err != nil {
		return err
	}
	if err := errors.ValidateYearRange(o.From, o.To); err != nil {
		return err
	}
	if _, err := layout.ParseMode(o.Mode); err != nil {
		return err
	}
	if _, err := ParseDividerStyle(o.DividerStyle); err != nil {
		return err
	}
	if err := o.separatorSpec().Validate(); err != nil {
		return err
	}
	if err := errors.ValidatePositive("label font size", o.LabelFontSize); err != nil {
		return err
	}
	if err := errors.ValidatePositive("content font size", o.ContentFontSize); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("scale", o.Scale); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("png scale", o.PNGScale); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// CalendarOptions returns the assembler options selected by o.
func (o *Options) CalendarOptions() []calendar.Option {
	var opts []calendar.Option
	if o.NoDates {
		opts = append(opts, calendar.WithoutDates())
	}
	if o.MonthWeeks {
		opts = append(opts, calendar.WithMonthWeeks())
	}
	return opts
}

// LayoutParams returns the geometry inputs for a grid of rows × cols.
func (o *Options) LayoutParams(rows, cols int) layout.Params {
	return layout.Params{
		TotalWidth:   o.Width,
		TotalHeight:  o.Height,
		LeftMargin:   deref(o.LeftMargin),
		HeaderHeight: deref(o.HeaderHeight),
		Gap:          deref(o.Gap),
		LineWidth:    o.LineWidth,
		NumRows:      rows,
		NumCols:      cols,
	}
}

// Float returns a pointer to v, for the optional length fields of Options.
func Float(v float64) *float64 { return &v }

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func (o *Options) separatorSpec() layout.SeparatorSpec {
	if o.Separators == nil {
		return layout.SeparatorSpec{}
	}
	return layout.SeparatorSpec{
		Interval: o.Separators.Interval,
		StartRow: o.Separators.StartRow,
		Width:    o.Separators.Width,
	}
}

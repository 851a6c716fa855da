package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/gridcal/pkg/config"
	"github.com/matzehuels/gridcal/pkg/errors"
	"github.com/matzehuels/gridcal/pkg/pipeline"
)

// renderFlags holds the command-line flags for the render command. Flags
// that the user did not set leave the config file values untouched.
type renderFlags struct {
	configPath   string
	output       string
	formats      string
	kind         string
	from, to     int
	mode         string
	width        float64
	height       float64
	gap          float64
	leftMargin   float64
	headerHeight float64
	noDates      bool
	monthWeeks   bool
	separators   int
	dividerStyle string
	scale        float64
	pngScale     float64
	background   string
	noCache      bool
	refresh      bool
	redisAddr    string
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a year-by-week calendar to SVG, PDF, PNG or JSON",
		Long: `Render a calendar grid covering the years --from..--to.

Options can be given in a TOML file (-c) and overridden with flags.`,
		Example: `  gridcal render --from 2024 --to 2027
  gridcal render --from 2026 --kind month --month-weeks -f svg,png
  gridcal render -c wall.toml -f pdf -o wall.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd.Flags())
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, &flags)
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

// register defines the render flags on fs.
func (f *renderFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.configPath, "config", "c", "", "TOML config file")
	fs.StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple formats)")
	fs.StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), pdf, png, json (comma-separated)")
	fs.StringVar(&f.kind, "kind", "", "calendar kind: week (default), month")
	fs.IntVar(&f.from, "from", 0, "first year")
	fs.IntVar(&f.to, "to", 0, "last year (default: --from)")
	fs.StringVar(&f.mode, "mode", "", "cell mode: gapped (default), rowbox")
	fs.Float64Var(&f.width, "width", 0, "canvas width in inches (default 36)")
	fs.Float64Var(&f.height, "height", 0, "canvas height in inches (default 24)")
	fs.Float64Var(&f.gap, "gap", pipeline.DefaultGap, "space between cells in inches (0 for touching cells)")
	fs.Float64Var(&f.leftMargin, "left-margin", pipeline.DefaultLeftMargin, "width of the year label column in inches")
	fs.Float64Var(&f.headerHeight, "header-height", pipeline.DefaultHeaderHeight, "height of the week label band in inches")
	fs.BoolVar(&f.noDates, "no-dates", false, "leave week cells blank")
	fs.BoolVar(&f.monthWeeks, "month-weeks", false, "print ISO week spans in month cells")
	fs.IntVar(&f.separators, "separators", 0, "draw a separator every N rows (0 disables)")
	fs.StringVar(&f.dividerStyle, "divider-style", "", "row-box divider style: solid (default), dashed, dotted")
	fs.Float64Var(&f.scale, "scale", 0, "SVG/PDF units per inch (default 72)")
	fs.Float64Var(&f.pngScale, "png-scale", 0, "PNG pixels per inch (default 100)")
	fs.StringVar(&f.background, "background", "", "SVG background color")
	fs.BoolVar(&f.noCache, "no-cache", false, "disable the artifact cache")
	fs.BoolVar(&f.refresh, "refresh", false, "re-render even if cached")
	fs.StringVar(&f.redisAddr, "redis-addr", "", "use a Redis cache at host:port")
}

// options loads the config file, if any, and applies the flags the user set.
func (f *renderFlags) options(fs *pflag.FlagSet) (pipeline.Options, error) {
	var opts pipeline.Options
	if f.configPath != "" {
		var err error
		if opts, err = config.Load(f.configPath); err != nil {
			return opts, err
		}
	}

	changed := fs.Changed
	if changed("kind") {
		opts.Kind = f.kind
	}
	if changed("from") {
		opts.From = f.from
	}
	if changed("to") {
		opts.To = f.to
	}
	if changed("mode") {
		opts.Mode = f.mode
	}
	if changed("width") {
		opts.Width = f.width
	}
	if changed("height") {
		opts.Height = f.height
	}
	if changed("gap") {
		opts.Gap = pipeline.Float(f.gap)
	}
	if changed("left-margin") {
		opts.LeftMargin = pipeline.Float(f.leftMargin)
	}
	if changed("header-height") {
		opts.HeaderHeight = pipeline.Float(f.headerHeight)
	}
	if changed("no-dates") {
		opts.NoDates = f.noDates
	}
	if changed("month-weeks") {
		opts.MonthWeeks = f.monthWeeks
	}
	if changed("separators") {
		opts.Separators = &pipeline.Separators{Interval: f.separators}
	}
	if changed("divider-style") {
		opts.DividerStyle = f.dividerStyle
	}
	if changed("scale") {
		opts.Scale = f.scale
	}
	if changed("png-scale") {
		opts.PNGScale = f.pngScale
	}
	if changed("background") {
		opts.Background = f.background
	}
	if changed("format") {
		opts.Formats = pipeline.ParseFormats(f.formats)
	}
	opts.Refresh = f.refresh

	if opts.From == 0 {
		return opts, errors.New(errors.ErrCodeInvalidInput, "a start year is required (--from or 'from' in the config file)")
	}
	return opts, nil
}

func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, flags *renderFlags) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	runner, err := c.newRunner(ctx, flags.noCache, flags.redisAddr)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	var spinner *Spinner
	if isatty.IsTerminal(os.Stderr.Fd()) {
		spinner = newSpinner(ctx, "Rendering calendar...")
		spinner.Start()
	}
	result, err := runner.Execute(ctx, opts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s calendar %d-%d", result.Grid.Kind, result.Grid.From, result.Grid.To))

	paths, err := outputPaths(flags.output, result.Grid.From, result.Grid.To, formatsOf(result))
	if err != nil {
		return err
	}

	printSuccess("Calendar %d-%d", result.Grid.From, result.Grid.To)
	printStats(result.Stats.Rows, result.Stats.Cols, result.Stats.Primitives, result.CacheInfo.RenderHit)
	for _, format := range formatsOf(result) {
		path := paths[format]
		if path == "-" {
			if _, err := os.Stdout.Write(result.Artifacts[format]); err != nil {
				return err
			}
			continue
		}
		if err := writeFile(path, result.Artifacts[format]); err != nil {
			return err
		}
		printFile(path)
	}
	return nil
}

// formatsOf returns the rendered formats in a stable order.
func formatsOf(r *pipeline.Result) []string {
	formats := make([]string, 0, len(r.Artifacts))
	for f := range r.Artifacts {
		formats = append(formats, f)
	}
	slices.Sort(formats)
	return formats
}

// outputPaths maps each format to a file path.
//
// A single format is written to output as given ("-" means stdout). With
// several formats, output is a base path: a known format extension is
// stripped and each format appends its own. Without output, files are
// named calendar_FROM-TO.FORMAT.
func outputPaths(output string, from, to int, formats []string) (map[string]string, error) {
	paths := make(map[string]string, len(formats))

	if output != "" && len(formats) == 1 {
		if output != "-" {
			if err := errors.ValidatePath(output); err != nil {
				return nil, err
			}
		}
		paths[formats[0]] = output
		return paths, nil
	}
	if output == "-" {
		return nil, errors.New(errors.ErrCodeInvalidPath, "cannot write %d formats to stdout", len(formats))
	}

	base := output
	if base == "" {
		base = fmt.Sprintf("calendar_%d-%d", from, to)
	} else if ext := filepath.Ext(base); pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		base = strings.TrimSuffix(base, ext)
	}
	if err := errors.ValidatePath(base); err != nil {
		return nil, err
	}
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

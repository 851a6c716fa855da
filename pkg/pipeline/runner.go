package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/gridcal/pkg/cache"
	"github.com/matzehuels/gridcal/pkg/errors"
	"github.com/matzehuels/gridcal/pkg/grid/primitive"
	"github.com/matzehuels/gridcal/pkg/grid/sink"
	"github.com/matzehuels/gridcal/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete assemble → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{RunID: uuid.NewString()}
	logger := opts.Logger.With("run", result.RunID[:8])

	// Stage 1: Assemble
	start := time.Now()
	g, err := Assemble(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Grid = g
	result.Stats.Rows, result.Stats.Cols = g.NumRows(), g.NumCols()
	result.Stats.AssembleTime = time.Since(start)

	logger.Debug("assembled calendar",
		"kind", g.Kind,
		"rows", g.NumRows(),
		"cols", g.NumCols())

	// Stage 2: Layout
	start = time.Now()
	l, err := ComputeLayout(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(start)

	logger.Debug("computed layout",
		"mode", l.Mode,
		"cell_width", l.CellWidth,
		"cell_height", l.CellHeight)

	// Stage 3: Primitives and sinks
	start = time.Now()
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)

	prims, err := Primitives(l, g, opts)
	if err == nil {
		result.Primitives = prims
		result.Stats.Primitives = len(prims)
		result.InputHash, err = inputHash(prims, opts)
	}
	if err == nil {
		result.Artifacts, result.CacheInfo, err = r.renderAll(ctx, result.InputHash, prims, opts)
	}
	result.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Formats, len(prims), result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}

	logger.Info("rendered calendar",
		"formats", opts.Formats,
		"primitives", len(prims),
		"cached", len(result.CacheInfo.Hits),
		"duration", result.Stats.AssembleTime+result.Stats.LayoutTime+result.Stats.RenderTime)

	return result, nil
}

// renderAll renders every requested format concurrently, serving each
// from the cache when possible.
func (r *Runner) renderAll(ctx context.Context, hash string, prims []primitive.Primitive, opts Options) (map[string][]byte, CacheInfo, error) {
	var (
		mu        sync.Mutex
		artifacts = make(map[string][]byte, len(opts.Formats))
		info      CacheInfo
	)

	eg, ctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		eg.Go(func() error {
			data, hit, err := r.renderCached(ctx, hash, format, prims, opts)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			artifacts[format] = data
			if hit {
				info.Hits = append(info.Hits, format)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, CacheInfo{}, err
	}
	info.RenderHit = len(info.Hits) == len(opts.Formats)
	return artifacts, info, nil
}

// renderCached returns the cached artifact for format or renders and
// stores it. Cache failures are logged and never fail the render.
func (r *Runner) renderCached(ctx context.Context, hash, format string, prims []primitive.Primitive, opts Options) ([]byte, bool, error) {
	key := r.Keyer.ArtifactKey(hash, cache.ArtifactKeyOpts{Format: format, Scale: scaleFor(format, opts)})
	hooks := observability.Cache()

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			opts.Logger.Warn("cache read failed", "format", format, "err", err)
		case hit:
			hooks.OnCacheHit(ctx, "artifact")
			return data, true, nil
		default:
			hooks.OnCacheMiss(ctx, "artifact")
		}
	}

	data, err := RenderFormat(ctx, format, prims, opts)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		opts.Logger.Warn("cache write failed", "format", format, "err", err)
	} else {
		hooks.OnCacheSet(ctx, "artifact", len(data))
	}
	return data, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// inputHash fingerprints everything that reaches a sink: the primitive
// stream, the canvas size and the background.
func inputHash(prims []primitive.Primitive, opts Options) (string, error) {
	data, err := sink.RenderJSON(prims, opts.Width, opts.Height)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash primitives")
	}
	return cache.Hash(append(data, opts.Background...)), nil
}

func scaleFor(format string, opts Options) float64 {
	switch format {
	case FormatPNG:
		return opts.PNGScale
	case FormatSVG, FormatPDF:
		return opts.Scale
	default:
		return 0
	}
}

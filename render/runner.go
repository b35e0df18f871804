// Package render turns demo definitions into GIF files on disk, skipping
// demos whose output is already up to date.
package render

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rhythmix/docanim/config"
	"github.com/rhythmix/docanim/demo"
	"github.com/rhythmix/docanim/manifest"
	"github.com/rhythmix/docanim/publish"
)

// Result is the outcome of rendering one demo.
type Result struct {
	Record  manifest.Record `json:"record"`
	Skipped bool            `json:"skipped"`
}

// Runner renders demos from a registry into the output directory.
type Runner struct {
	registry *demo.Registry
	canvas   config.Canvas
	colors   config.Colors
	outDir   string
	store    *manifest.Store
	notifier publish.Notifier
	metrics  *Metrics
	now      func() time.Time
}

// NewRunner creates an instance of a Runner. notifier may be nil.
func NewRunner(registry *demo.Registry, cfg *config.Config, store *manifest.Store, notifier publish.Notifier, metrics *Metrics) *Runner {
	r := new(Runner)
	r.registry = registry
	r.canvas = cfg.Canvas
	r.colors = cfg.Colors
	r.outDir = cfg.Output.Dir
	r.store = store
	r.notifier = notifier
	if r.notifier == nil {
		r.notifier = publish.Nop{}
	}
	r.metrics = metrics
	r.now = time.Now
	return r
}

// Registry returns the demos the runner can render.
func (r *Runner) Registry() *demo.Registry { return r.registry }

// OutDir returns the directory GIFs are written to.
func (r *Runner) OutDir() string { return r.outDir }

// Render writes the GIF for the named demo. Unless force is set, a demo
// whose definition is unchanged since its last render is skipped.
func (r *Runner) Render(ctx context.Context, name string, force bool) (Result, error) {
	def, err := r.registry.Lookup(name)
	if err != nil {
		return Result{}, err
	}
	hash := def.Hash(r.canvas, r.colors)
	path := filepath.Join(r.outDir, def.FileName())

	if !force {
		if rec, ok := r.upToDate(name, hash, path); ok {
			slog.Debug("unchanged, skipping", "demo", name, "path", path)
			r.count(name, StatusSkipped)
			return Result{Record: rec, Skipped: true}, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	start := r.now()
	stats, err := r.write(def, path)
	if err != nil {
		r.count(name, StatusFailed)
		return Result{}, fmt.Errorf("render %s: %w", name, err)
	}

	rec := manifest.Record{
		Name:       name,
		Hash:       hash,
		File:       path,
		Frames:     stats.Frames,
		GIFFrames:  stats.GIFFrames,
		Duration:   stats.Duration,
		Width:      stats.Width,
		Height:     stats.Height,
		FPS:        stats.FPS,
		Quality:    r.canvas.Quality,
		RenderedAt: r.now().UTC(),
	}
	if err := r.store.Put(rec); err != nil {
		return Result{}, fmt.Errorf("record %s: %w", name, err)
	}

	r.count(name, StatusRendered)
	if r.metrics != nil {
		r.metrics.Duration.WithLabelValues(name).Observe(r.now().Sub(start).Seconds())
		r.metrics.Frames.WithLabelValues(name).Set(float64(stats.GIFFrames))
	}
	slog.Info("GIF created", "demo", name, "path", path, "quality", r.canvas.Quality, "frames", stats.GIFFrames, "duration", stats.Duration)

	if err := r.notifier.Rendered(ctx, rec); err != nil {
		slog.Warn("notify failed", "demo", name, "err", err)
	}
	return Result{Record: rec}, nil
}

// RenderAll renders names with at most parallel renders at once. The first
// failure cancels the renders not yet started.
func (r *Runner) RenderAll(ctx context.Context, names []string, parallel int, force bool) ([]Result, error) {
	if parallel < 1 {
		parallel = 1
	}
	results := make([]Result, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			res, err := r.Render(ctx, name, force)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) upToDate(name, hash, path string) (manifest.Record, bool) {
	rec, err := r.store.Get(name)
	if err != nil {
		if !errors.Is(err, manifest.ErrNotFound) {
			slog.Warn("manifest read failed", "demo", name, "err", err)
		}
		return manifest.Record{}, false
	}
	if rec.Hash != hash || rec.File != path {
		return manifest.Record{}, false
	}
	if _, err := os.Stat(path); err != nil {
		return manifest.Record{}, false
	}
	return rec, true
}

// write renders def into a temporary file next to path and renames it into
// place, so readers never see a partial GIF.
func (r *Runner) write(def demo.Definition, path string) (demo.Stats, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return demo.Stats{}, err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return demo.Stats{}, err
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	stats, err := demo.Render(def, r.canvas, r.colors, w)
	if err == nil {
		err = w.Flush()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return demo.Stats{}, err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return demo.Stats{}, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return demo.Stats{}, err
	}
	return stats, nil
}

func (r *Runner) count(name, status string) {
	if r.metrics != nil {
		r.metrics.Renders.WithLabelValues(name, status).Inc()
	}
}

package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tunedeck/tunedeck/pkg/cache"
	"github.com/tunedeck/tunedeck/pkg/deck"
	"github.com/tunedeck/tunedeck/pkg/deck/layout"
	"github.com/tunedeck/tunedeck/pkg/deck/sink"
	"github.com/tunedeck/tunedeck/pkg/source"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache, source and logger - it
// doesn't store pipeline results. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Source source.Source
	Logger *log.Logger

	// Provider names the source in playlist cache keys, so snapshots from
	// different providers never collide.
	Provider string
}

// NewRunner creates a runner with the given cache, keyer and source.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, src source.Source, logger *log.Logger) *Runner {
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
		Cache:    c,
		Keyer:    keyer,
		Source:   src,
		Logger:   logger,
		Provider: "spotify",
	}
}

// Execute runs the complete fetch → build → plan → render pipeline with
// caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		BuildID:   uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Fetch
	fetchStart := time.Now()
	tracks, fetchHit, err := r.FetchWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	result.Tracks = tracks
	result.Stats.FetchTime = time.Since(fetchStart)
	result.Stats.TrackCount = len(tracks)
	result.CacheInfo.FetchHit = fetchHit

	r.Logger.Info("fetched playlist",
		"build", result.BuildID,
		"tracks", len(tracks),
		"cached", fetchHit,
		"duration", result.Stats.FetchTime)

	// Stage 2: Build
	cards, err := deck.Build(tracks, opts.Mapper)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Cards = cards

	// Stage 3: Plan
	planStart := time.Now()
	pairs, planHit, err := r.PlanWithCacheInfo(ctx, cards, opts)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	result.Pairs = pairs
	result.Stats.PlanTime = time.Since(planStart)
	result.Stats.SheetCount = len(pairs)
	result.CacheInfo.PlanHit = planHit

	r.Logger.Info("planned pages",
		"sheets", len(pairs),
		"grid", fmt.Sprintf("%dx%d", opts.Rows, opts.Cols),
		"duration", result.Stats.PlanTime)

	// Stage 4: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, pairs, tracks, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// FetchWithCacheInfo pulls the playlist snapshot with caching and returns
// cache hit info.
func (r *Runner) FetchWithCacheInfo(ctx context.Context, opts Options) ([]deck.Track, bool, error) {
	if opts.PlaylistID == "" {
		return nil, false, fmt.Errorf("playlist id is required")
	}
	if r.Source == nil {
		return nil, false, fmt.Errorf("no playlist source configured")
	}

	cacheKey := r.Keyer.PlaylistKey(r.Provider, opts.PlaylistID)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var tracks []deck.Track
			if err := json.Unmarshal(data, &tracks); err == nil {
				return tracks, true, nil // Cache hit
			}
			// If deserialization fails, fall through to refetch
		}
	}

	tracks, err := r.Source.Fetch(ctx, opts.PlaylistID)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(tracks); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLPlaylist)
	}

	return tracks, false, nil // Cache miss
}

// Fetch is a convenience wrapper that calls FetchWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Fetch(ctx context.Context, opts Options) ([]deck.Track, error) {
	tracks, _, err := r.FetchWithCacheInfo(ctx, opts)
	return tracks, err
}

// PlanWithCacheInfo paginates the deck with caching and returns cache hit
// info.
func (r *Runner) PlanWithCacheInfo(ctx context.Context, cards []deck.Card, opts Options) ([]layout.PagePair, bool, error) {
	if err := opts.ValidateForPlan(); err != nil {
		return nil, false, err
	}

	deckData, err := json.Marshal(cards)
	if err != nil {
		return nil, false, fmt.Errorf("serialize deck for cache key: %w", err)
	}
	cacheKey := r.Keyer.PlanKey(cache.Hash(deckData), cache.PlanKeyOpts{
		Rows:     opts.Rows,
		Cols:     opts.Cols,
		FlipAxis: string(opts.FlipAxis),
	})

	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		var cached []layout.PagePair
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, true, nil // Cache hit
		}
	}

	pairs, err := layout.Plan(cards, opts.LayoutConfig())
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(pairs); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLPlan)
	}

	return pairs, false, nil // Cache miss
}

// Plan is a convenience wrapper that calls PlanWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Plan(ctx context.Context, cards []deck.Card, opts Options) ([]layout.PagePair, error) {
	pairs, _, err := r.PlanWithCacheInfo(ctx, cards, opts)
	return pairs, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache
// hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, pairs []layout.PagePair, tracks []deck.Track, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	planData, err := json.Marshal(pairs)
	if err != nil {
		return nil, false, fmt.Errorf("serialize plan for cache key: %w", err)
	}
	planHash := cache.Hash(planData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(planHash, cache.ArtifactKeyOpts{Format: format, Title: opts.Title})
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil // All artifacts from cache
	}

	// Render all formats
	rendered := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := r.renderFormat(format, pairs, tracks, opts)
		if err != nil {
			return nil, false, fmt.Errorf("render %s: %w", format, err)
		}
		rendered[format] = data
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(planHash, cache.ArtifactKeyOpts{Format: format, Title: opts.Title})
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, pairs []layout.PagePair, tracks []deck.Track, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, pairs, tracks, opts)
	return artifacts, err
}

func (r *Runner) renderFormat(format string, pairs []layout.PagePair, tracks []deck.Track, opts Options) ([]byte, error) {
	switch format {
	case FormatHTML:
		return sink.RenderHTML(pairs, sink.WithTitle(opts.Title))
	case FormatJSON:
		return sink.RenderJSON(pairs,
			sink.WithJSONTitle(opts.Title),
			sink.WithJSONConfig(opts.LayoutConfig()))
	case FormatCSV:
		return sink.RenderCSV(tracks)
	default:
		return nil, fmt.Errorf("invalid format: %q", format)
	}
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

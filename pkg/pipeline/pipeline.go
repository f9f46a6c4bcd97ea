// Package pipeline orchestrates the complete deck build.
//
// The pipeline consists of four stages:
//
//  1. Fetch: pull the ordered track list from a playlist source
//  2. Build: derive cards (front/back faces) from tracks
//  3. Plan: paginate cards onto flip-aligned page pairs
//  4. Render: emit artifacts in the requested formats (HTML, JSON, CSV)
//
// Each stage can be run independently or as part of the complete pipeline,
// and the fetch and render stages are cached so repeated runs over an
// unchanged playlist are cheap.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, src, logger)
//	opts := pipeline.Options{
//	    PlaylistID: "0QoUa07l09WLh0ZTxBvgX4",
//	    Formats:    []string{"html"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html := result.Artifacts["html"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tunedeck/tunedeck/pkg/deck"
	"github.com/tunedeck/tunedeck/pkg/deck/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Use
// =============================================================================

const (
	// DefaultRows and DefaultCols give the 3x3 grid that fits nine
	// poker-sized cards on an A4 sheet.
	DefaultRows = 3
	DefaultCols = 3

	// DefaultTitle is the document title when the caller supplies none.
	DefaultTitle = "tunedeck"
)

// DefaultFlipAxis matches duplex printers' usual long-edge binding.
const DefaultFlipAxis = layout.AxisLongEdge

// Format constants for output formats.
const (
	FormatHTML = "html"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatHTML: true,
	FormatJSON: true,
	FormatCSV:  true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: html, json, csv)", format)
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

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one deck build.
type Options struct {
	// PlaylistID identifies the playlist at the configured source. For the
	// manifest source this is a file path.
	PlaylistID string `json:"playlist_id"`

	// Layout options
	Rows     int         `json:"rows,omitempty"`
	Cols     int         `json:"cols,omitempty"`
	FlipAxis layout.Axis `json:"flip_axis,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Title   string   `json:"title,omitempty"`

	// Refresh bypasses the playlist cache and refetches from the source.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Mapper deck.FaceMapper `json:"-"`
	Logger *log.Logger     `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.PlaylistID == "" {
		return fmt.Errorf("playlist id is required")
	}

	if o.Rows == 0 {
		o.Rows = DefaultRows
	}
	if o.Cols == 0 {
		o.Cols = DefaultCols
	}
	if o.FlipAxis == "" {
		o.FlipAxis = DefaultFlipAxis
	}
	if err := o.LayoutConfig().Validate(); err != nil {
		return err
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatHTML}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}

	if o.Mapper == nil {
		o.Mapper = deck.DefaultMapper{}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// ValidateForPlan applies layout defaults and validates only the fields the
// plan stage uses, so the stage can run standalone without a playlist id.
func (o *Options) ValidateForPlan() error {
	if o.validated {
		return nil
	}
	if o.Rows == 0 {
		o.Rows = DefaultRows
	}
	if o.Cols == 0 {
		o.Cols = DefaultCols
	}
	if o.FlipAxis == "" {
		o.FlipAxis = DefaultFlipAxis
	}
	return o.LayoutConfig().Validate()
}

// ValidateForRender applies render defaults and validates only the fields
// the render stage uses.
func (o *Options) ValidateForRender() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForPlan(); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatHTML}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	return nil
}

// LayoutConfig returns the layout configuration derived from the options.
func (o *Options) LayoutConfig() layout.Config {
	return layout.Config{Rows: o.Rows, Cols: o.Cols, FlipAxis: o.FlipAxis}
}

// =============================================================================
// Result - Pipeline Outputs
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// BuildID uniquely identifies this build for logging and artifact
	// correlation.
	BuildID string

	// Tracks is the fetched playlist snapshot.
	Tracks []deck.Track

	// Cards is the built deck.
	Cards []deck.Card

	// Pairs is the planned page layout.
	Pairs []layout.PagePair

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TrackCount int
	SheetCount int
	FetchTime  time.Duration
	PlanTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each cached pipeline stage.
type CacheInfo struct {
	FetchHit  bool // Whether the playlist snapshot came from cache
	PlanHit   bool // Whether the page plan came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// Package pipeline provides the load → place → render pipeline shared by the
// CLI and the preview server. Centralizing this logic keeps behavior
// consistent across entry points.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Input:    "events.json",
//	    Viewport: geom.Viewport{Width: 1280, Height: 800},
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/feileberlin/krwl.in-sub005/pkg/callout"
	"github.com/feileberlin/krwl.in-sub005/pkg/errors"
	"github.com/feileberlin/krwl.in-sub005/pkg/event"
	"github.com/feileberlin/krwl.in-sub005/pkg/geom"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default viewport width in pixels.
	DefaultWidth = 1280.0

	// DefaultHeight is the default viewport height in pixels.
	DefaultHeight = 800.0

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatSVG:  true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: json, svg)", format)
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

// Options contains all configuration for one placement run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Input is a path to an events JSON file. Ignored when Events is set.
	Input string `json:"input,omitempty"`

	// Events is the in-memory event list (takes precedence over Input).
	Events []event.Event `json:"events,omitempty"`

	// Viewport is the container size placements are computed against.
	Viewport geom.Viewport `json:"viewport"`

	// Seed drives the randomized strategies. Identical seeds reproduce
	// identical passes.
	Seed uint64 `json:"seed,omitempty"`

	// Randomize replaces Seed with an entropy-derived value per run, which
	// is what gives the map its per-load variety.
	Randomize bool `json:"randomize,omitempty"`

	// Formats selects the rendered artifacts (json, svg).
	Formats []string `json:"formats,omitempty"`

	// Placement tunes the engine; zero value means callout.DefaultConfig.
	Placement callout.Config `json:"placement,omitempty"`

	// Bookmarks maps event IDs to bookmark state, badge rendering only.
	Bookmarks map[string]bool `json:"-"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Input == "" && o.Events == nil {
		return errors.New(errors.ErrCodeInvalidInput, "events or input path is required")
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Viewport.Width == 0 {
		o.Viewport.Width = DefaultWidth
	}
	if o.Viewport.Height == 0 {
		o.Viewport.Height = DefaultHeight
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	// A partial config (common from API clients) is completed field by
	// field; a zero MaxCallouts would otherwise drop every event.
	o.Placement = o.Placement.FillDefaults()
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

package pipeline

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/feileberlin/krwl.in-sub005/pkg/callout"
	"github.com/feileberlin/krwl.in-sub005/pkg/errors"
	"github.com/feileberlin/krwl.in-sub005/pkg/event"
	"github.com/feileberlin/krwl.in-sub005/pkg/geom"
	"github.com/feileberlin/krwl.in-sub005/pkg/observability"
	svgsink "github.com/feileberlin/krwl.in-sub005/pkg/render/svg"
)

// Result contains the outputs of one placement run.
type Result struct {
	// PassID identifies the pass in logs and API responses.
	PassID string `json:"pass_id"`

	// Seed is the seed that actually drove the pass (useful to replay a
	// randomized run).
	Seed uint64 `json:"seed"`

	// Viewport echoes the viewport the pass was computed against.
	Viewport geom.Viewport `json:"viewport"`

	// Placements are the positioned callouts in display order.
	Placements []callout.Placement `json:"placements"`

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte `json:"-"`

	// Stats contains counts and timing information.
	Stats Stats `json:"stats"`
}

// Stats contains placement run statistics.
type Stats struct {
	EventCount   int           `json:"event_count"`
	GroupCount   int           `json:"group_count"`
	PlacedCount  int           `json:"placed_count"`
	LatticeCount int           `json:"lattice_count"`
	PassTime     time.Duration `json:"pass_time"`
}

// Runner executes placement runs.
type Runner struct {
	logger *log.Logger
}

// NewRunner creates a runner. A nil logger is replaced during option
// validation.
func NewRunner(logger *log.Logger) *Runner {
	return &Runner{logger: logger}
}

// Execute runs the full pipeline: load events, run one placement pass,
// render the requested artifacts.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if r.logger != nil {
		logger = r.logger
	}

	events := opts.Events
	if events == nil {
		loaded, err := event.ReadFile(opts.Input)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "load events")
		}
		events = loaded
	}

	for _, e := range events {
		if err := errors.ValidateAnchor(e.Anchor.X, e.Anchor.Y); err != nil {
			return nil, err
		}
	}

	// Placement priority is distance order; the cap keeps the pass within
	// the density the collision index is designed for.
	events = append([]event.Event(nil), events...)
	event.SortByDistance(events)
	if len(events) > opts.Placement.MaxCallouts {
		events = events[:opts.Placement.MaxCallouts]
	}

	seed := opts.Seed
	if opts.Randomize {
		seed = rand.Uint64()
	}

	passID := uuid.NewString()
	observability.Pass().OnPassStart(passID, len(events))
	logger.Debug("placement pass starting", "pass", passID, "events", len(events), "seed", seed)

	start := time.Now()
	pass := callout.NewPass(opts.Placement, seed)
	placements := pass.Run(events, opts.Viewport)
	elapsed := time.Since(start)

	latticed := 0
	for _, p := range placements {
		if p.Strategy == callout.StrategyLattice {
			latticed++
		}
	}
	observability.Pass().OnPassComplete(passID, len(placements), latticed, elapsed)
	if latticed > 0 {
		logger.Warn("placements degraded to lattice", "pass", passID, "count", latticed)
	}

	result := &Result{
		PassID:     passID,
		Seed:       seed,
		Viewport:   opts.Viewport,
		Placements: placements,
		Artifacts:  make(map[string][]byte, len(opts.Formats)),
		Stats: Stats{
			EventCount:   len(events),
			GroupCount:   callout.GroupByAnchor(events).Len(),
			PlacedCount:  len(placements),
			LatticeCount: latticed,
			PassTime:     elapsed,
		},
	}

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		artifact, err := r.renderArtifact(format, result, opts)
		if err != nil {
			return nil, err
		}
		result.Artifacts[format] = artifact
	}

	logger.Debug("placement pass complete", "pass", passID, "placed", len(placements), "elapsed", elapsed)
	return result, nil
}

func (r *Runner) renderArtifact(format string, result *Result, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal placements")
		}
		return data, nil
	case FormatSVG:
		var svgOpts []svgsink.Option
		if opts.Bookmarks != nil {
			svgOpts = append(svgOpts, svgsink.WithBookmarks(opts.Bookmarks))
		}
		return svgsink.Render(opts.Viewport, result.Placements, svgOpts...), nil
	default:
		return nil, ValidateFormat(format)
	}
}

// HoverResult is the placement and connector for one hover callout.
type HoverResult struct {
	Placement callout.EdgePlacement `json:"placement"`
	Box       geom.Rect             `json:"box"`
	Connector callout.Connector     `json:"connector"`
}

// Hover computes the deterministic edge-anchored callout and its connector
// for a single marker. Grouping and deduplication are bypassed: hover is
// always for one concrete marker.
func Hover(anchor geom.Point, size geom.Size, vp geom.Viewport, cfg callout.Config) HoverResult {
	cfg = cfg.FillDefaults()
	if size.W == 0 || size.H == 0 {
		size = geom.Size{W: cfg.CalloutWidth, H: cfg.CalloutHeight}
	}

	placement := callout.PlaceAtEdge(anchor, size, vp, cfg)
	box := placement.Box(size)
	return HoverResult{
		Placement: placement,
		Box:       box,
		Connector: callout.Route(anchor, box),
	}
}

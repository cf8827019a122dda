package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/feileberlin/krwl.in-sub005/pkg/pipeline"
)

// placeCommand creates the place command for running placement passes.
func (c *CLI) placeCommand() *cobra.Command {
	var (
		output    string
		formats   string
		seed      uint64
		randomize bool
		width     float64
		height    float64
		marks     bool
	)

	cmd := &cobra.Command{
		Use:   "place [events.json]",
		Short: "Run a placement pass over an event list",
		Long: `Run a placement pass over an event list.

The place command reads an events JSON file, groups markers that share a map
anchor, deduplicates identical listings, and positions a callout box for each
group without overlaps. Output is a placements JSON file and/or a standalone
SVG for visual inspection.

Identical seeds produce identical layouts; --randomize picks a fresh seed per
run, which is how the map gets its per-load variety.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlace(cmd.Context(), args[0], output, parseFormats(formats), seed, randomize, width, height, marks)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file base (default: <input>)")
	cmd.Flags().StringVarP(&formats, "format", "f", "", "comma-separated output formats: svg (default), json")
	cmd.Flags().Uint64Var(&seed, "seed", pipeline.DefaultSeed, "placement seed")
	cmd.Flags().BoolVar(&randomize, "randomize", false, "use a fresh random seed")
	cmd.Flags().Float64Var(&width, "width", pipeline.DefaultWidth, "viewport width")
	cmd.Flags().Float64Var(&height, "height", pipeline.DefaultHeight, "viewport height")
	cmd.Flags().BoolVar(&marks, "bookmarks", false, "mark bookmarked events in the SVG")

	return cmd
}

// runPlace executes the pipeline and writes the requested artifacts.
func (c *CLI) runPlace(ctx context.Context, input, output string, formats []string, seed uint64, randomize bool, width, height float64, marks bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		Input:     input,
		Seed:      seed,
		Randomize: randomize,
		Formats:   formats,
		Placement: cfg.Placement,
		Logger:    c.Logger,
	}
	opts.Viewport.Width = width
	opts.Viewport.Height = height

	if marks {
		store, err := c.newStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close()
		set, err := store.All(ctx)
		if err != nil {
			return err
		}
		opts.Bookmarks = set
	}

	spinner := newSpinner(ctx, "Placing callouts...")
	spinner.Start()

	runner := pipeline.NewRunner(c.Logger)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Placement failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}

	printSuccess("Placement complete")
	for _, format := range formats {
		path := base + ".placements." + format
		if err := os.WriteFile(path, result.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		printFile(path)
	}
	printPassStats(result.Stats.EventCount, result.Stats.PlacedCount, result.Stats.LatticeCount)
	printNewline()
	printNextStep("Inspect", "krwl preview "+input)

	return nil
}

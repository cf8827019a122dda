package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/feileberlin/krwl.in-sub005/pkg/errors"
	"github.com/feileberlin/krwl.in-sub005/pkg/geom"
	"github.com/feileberlin/krwl.in-sub005/pkg/pipeline"
)

// hoverCommand creates the hover command for computing a single hover callout.
func (c *CLI) hoverCommand() *cobra.Command {
	var (
		anchorX float64
		anchorY float64
		width   float64
		height  float64
	)

	cmd := &cobra.Command{
		Use:   "hover",
		Short: "Compute the edge-anchored hover callout for one marker",
		Long: `Compute the edge-anchored hover callout for one marker.

Unlike place, hover is deterministic: the callout snaps to the viewport edge
with the most clearance from the anchor, and the connector is routed as a
curve from the anchor to the nearest callout edge. The result is printed as
JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runHover(anchorX, anchorY, width, height)
		},
	}

	cmd.Flags().Float64VarP(&anchorX, "x", "x", 0, "anchor x coordinate")
	cmd.Flags().Float64VarP(&anchorY, "y", "y", 0, "anchor y coordinate")
	cmd.Flags().Float64Var(&width, "width", pipeline.DefaultWidth, "viewport width")
	cmd.Flags().Float64Var(&height, "height", pipeline.DefaultHeight, "viewport height")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}

func (c *CLI) runHover(anchorX, anchorY, width, height float64) error {
	if err := errors.ValidateAnchor(anchorX, anchorY); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return errors.New(errors.ErrCodeInvalidViewport, "viewport must be positive, got %gx%g", width, height)
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	result := pipeline.Hover(
		geom.Point{X: anchorX, Y: anchorY},
		geom.Size{},
		geom.Viewport{Width: width, Height: height},
		cfg.Placement,
	)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal hover result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}

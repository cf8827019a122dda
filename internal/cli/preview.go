package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/feileberlin/krwl.in-sub005/pkg/event"
	"github.com/feileberlin/krwl.in-sub005/pkg/pipeline"
)

// previewCommand creates the preview command for inspecting passes in the
// terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		seed   uint64
		width  float64
		height float64
	)

	cmd := &cobra.Command{
		Use:   "preview [events.json]",
		Short: "Inspect a placement pass in the terminal",
		Long: `Inspect a placement pass in the terminal.

The preview command runs the same placement pipeline as place, then draws the
resulting layout as a character grid scaled to the terminal. Press r to re-run
the pass with a fresh seed and watch the layout re-roll, q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(args[0], seed, width, height)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", pipeline.DefaultSeed, "initial placement seed")
	cmd.Flags().Float64Var(&width, "width", pipeline.DefaultWidth, "viewport width")
	cmd.Flags().Float64Var(&height, "height", pipeline.DefaultHeight, "viewport height")

	return cmd
}

func (c *CLI) runPreview(input string, seed uint64, width, height float64) error {
	events, err := event.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load events %s: %w", input, err)
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	model := newPreviewModel(events, cfg.Placement, width, height, seed)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

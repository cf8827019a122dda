package cli

import (
	"fmt"
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/feileberlin/krwl.in-sub005/pkg/callout"
	"github.com/feileberlin/krwl.in-sub005/pkg/event"
	"github.com/feileberlin/krwl.in-sub005/pkg/geom"
)

var (
	previewBoxStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	previewLatticeStyle = lipgloss.NewStyle().Foreground(colorYellow)
	previewAnchorStyle  = lipgloss.NewStyle().Foreground(colorCyan)
)

// previewModel is the bubbletea model for the interactive pass preview.
type previewModel struct {
	events   []event.Event
	cfg      callout.Config
	viewport geom.Viewport
	seed     uint64

	placements []callout.Placement
	cols       int
	rows       int
}

// newPreviewModel creates a preview model and runs the initial pass.
func newPreviewModel(events []event.Event, cfg callout.Config, width, height float64, seed uint64) previewModel {
	if cfg == (callout.Config{}) {
		cfg = callout.DefaultConfig()
	}

	events = append([]event.Event(nil), events...)
	event.SortByDistance(events)
	if len(events) > cfg.MaxCallouts {
		events = events[:cfg.MaxCallouts]
	}

	m := previewModel{
		events:   events,
		cfg:      cfg,
		viewport: geom.Viewport{Width: width, Height: height},
		seed:     seed,
		cols:     80,
		rows:     24,
	}
	m.rerun()
	return m
}

// rerun executes a placement pass with the current seed.
func (m *previewModel) rerun() {
	m.placements = callout.NewPass(m.cfg, m.seed).Run(m.events, m.viewport)
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.seed = rand.Uint64()
			m.rerun()
		}
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height - 5
		if m.cols < 20 {
			m.cols = 20
		}
		if m.rows < 8 {
			m.rows = 8
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Placement Preview"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("seed %d", m.seed)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("r re-roll  q quit"))
	b.WriteString("\n\n")

	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	latticed := 0
	for _, p := range m.placements {
		if p.Strategy == callout.StrategyLattice {
			latticed++
		}
	}
	summary := fmt.Sprintf("%d events · %d placed", len(m.events), len(m.placements))
	if latticed > 0 {
		summary += fmt.Sprintf(" · %d on lattice", latticed)
	}
	b.WriteString(StyleDim.Render("  " + summary))

	return b.String()
}

// renderGrid draws the pass as a character grid scaled to the terminal.
// Callout boxes are marked with their display index, anchors with dots.
func (m previewModel) renderGrid() string {
	grid := make([][]rune, m.rows)
	style := make([][]*lipgloss.Style, m.rows)
	for y := range grid {
		grid[y] = make([]rune, m.cols)
		style[y] = make([]*lipgloss.Style, m.cols)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	scaleX := float64(m.cols) / m.viewport.Width
	scaleY := float64(m.rows) / m.viewport.Height

	cell := func(p geom.Point) (int, int) {
		x := int(p.X * scaleX)
		y := int(p.Y * scaleY)
		if x < 0 {
			x = 0
		}
		if x >= m.cols {
			x = m.cols - 1
		}
		if y < 0 {
			y = 0
		}
		if y >= m.rows {
			y = m.rows - 1
		}
		return x, y
	}

	for i, p := range m.placements {
		boxStyle := &previewBoxStyle
		if p.Strategy == callout.StrategyLattice {
			boxStyle = &previewLatticeStyle
		}

		x0, y0 := cell(geom.Point{X: p.Box.X, Y: p.Box.Y})
		x1, y1 := cell(geom.Point{X: p.Box.Right(), Y: p.Box.Bottom()})
		mark := rune('0' + i%10)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				edge := y == y0 || y == y1 || x == x0 || x == x1
				if edge {
					grid[y][x] = mark
					style[y][x] = boxStyle
				}
			}
		}
	}

	for _, p := range m.placements {
		x, y := cell(p.Event.Anchor)
		grid[y][x] = '•'
		style[y][x] = &previewAnchorStyle
	}

	var b strings.Builder
	for y := range grid {
		for x := range grid[y] {
			if s := style[y][x]; s != nil {
				b.WriteString(s.Render(string(grid[y][x])))
			} else {
				b.WriteRune(grid[y][x])
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

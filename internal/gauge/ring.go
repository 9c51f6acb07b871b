package gauge

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/heartrisk/internal/ui/theme"
)

// ringRadius is the outer radius of the doughnut, in terminal rows.
const ringRadius = 5

// TerminalRenderer draws doughnut gauges with lipgloss and enforces one
// live chart per slot.
type TerminalRenderer struct {
	mu      sync.Mutex
	live    map[string]*ringChart
	created int
}

var _ Renderer = (*TerminalRenderer)(nil)

// NewTerminalRenderer creates a renderer with no live charts.
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{live: make(map[string]*ringChart)}
}

// New binds a chart for cfg to slot. It fails with ErrSlotInUse if the
// slot's previous chart was not destroyed.
func (r *TerminalRenderer) New(slot string, cfg Config) (Chart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, busy := r.live[slot]; busy {
		return nil, fmt.Errorf("%w: %s", ErrSlotInUse, slot)
	}
	c := &ringChart{renderer: r, slot: slot, cfg: cfg}
	r.live[slot] = c
	r.created++
	return c, nil
}

// Live returns the number of charts that have not been destroyed.
func (r *TerminalRenderer) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// Created returns the number of charts ever created.
func (r *TerminalRenderer) Created() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.created
}

func (r *TerminalRenderer) release(c *ringChart) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.live[c.slot] == c {
		delete(r.live, c.slot)
	}
}

type ringChart struct {
	renderer  *TerminalRenderer
	slot      string
	cfg       Config
	destroyed bool
}

func (c *ringChart) Config() Config {
	return c.cfg
}

func (c *ringChart) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.renderer.release(c)
}

func (c *ringChart) View(width int) string {
	if c.destroyed || len(c.cfg.Slices) == 0 {
		return ""
	}

	block := renderRing(c.cfg)
	if c.cfg.Legend == LegendBottom {
		block += "\n\n" + renderLegend(c.cfg)
	}
	if width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

var sliceColors = []color.Color{theme.Error, theme.Success}

func sliceStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(sliceColors[i%len(sliceColors)])
}

// renderRing draws the doughnut. Cells are about twice as tall as they
// are wide, so each row spans two columns. Slices run clockwise from
// twelve o'clock; the drawing clamps values to [0,1] but the data does not.
func renderRing(cfg Config) string {
	bounds := sliceBounds(cfg.Data())
	inner := cfg.Cutout * ringRadius
	outer := ringRadius + 0.5

	rows := 2*ringRadius + 1
	cols := 2 * rows
	label := []rune(centerLabel(cfg))
	labelStart := (cols - len(label)) / 2

	var b strings.Builder
	for i := 0; i < rows; i++ {
		y := float64(i - ringRadius)
		for j := 0; j < cols; j++ {
			x := (float64(j) - float64(cols)/2 + 0.5) / 2
			d := math.Hypot(x, y)

			switch {
			case d <= outer && d >= inner:
				b.WriteString(sliceStyle(sliceAt(bounds, angleFraction(x, y))).Render("█"))
			case i == ringRadius && j >= labelStart && j < labelStart+len(label):
				b.WriteString(string(label[j-labelStart]))
			default:
				b.WriteByte(' ')
			}
		}
		if i < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// angleFraction returns the clockwise angle from twelve o'clock as a
// fraction of a full turn, in [0,1).
func angleFraction(x, y float64) float64 {
	a := math.Atan2(x, -y)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a / (2 * math.Pi)
}

// sliceBounds returns the cumulative end of each slice as a fraction of the
// ring, with each value clamped to [0,1] first.
func sliceBounds(data []float64) []float64 {
	var total float64
	clamped := make([]float64, len(data))
	for i, v := range data {
		clamped[i] = math.Max(0, math.Min(1, v))
		total += clamped[i]
	}
	bounds := make([]float64, len(data))
	var acc float64
	for i, v := range clamped {
		if total > 0 {
			acc += v / total
		}
		bounds[i] = acc
	}
	return bounds
}

func sliceAt(bounds []float64, frac float64) int {
	for i, end := range bounds {
		if frac < end {
			return i
		}
	}
	return len(bounds) - 1
}

func centerLabel(cfg Config) string {
	return fmt.Sprintf("%.0f%%", cfg.Slices[0].Value*100)
}

func renderLegend(cfg Config) string {
	parts := make([]string, 0, len(cfg.Slices))
	for i, s := range cfg.Slices {
		text := s.Label
		if cfg.Tooltips {
			text = fmt.Sprintf("%s: %.1f%%", s.Label, s.Value*100)
		}
		parts = append(parts, sliceStyle(i).Render("■")+" "+
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(text))
	}
	return strings.Join(parts, "   ")
}

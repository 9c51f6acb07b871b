// Package gauge owns the probability gauge: a two-slice doughnut showing
// predicted disease probability against its complement.
package gauge

import (
	"errors"
	"fmt"
)

// Slice labels, in data order.
const (
	LabelDisease = "Disease probability"
	LabelHealthy = "Healthy probability"
)

// Chart types and legend positions understood by renderers.
const (
	TypeDoughnut = "doughnut"
	LegendBottom = "bottom"
)

// DefaultSlot is the visual slot the result card binds its gauge to.
const DefaultSlot = "probChart"

// ErrSlotInUse is returned when a chart is created on a slot that still
// has a live chart bound to it.
var ErrSlotInUse = errors.New("gauge: slot already has a live chart")

// Slice is one labelled segment of the gauge.
type Slice struct {
	Label string
	Value float64
}

// Config describes a gauge to render.
type Config struct {
	Type     string
	Slices   []Slice
	Cutout   float64 // inner radius as a fraction of the outer radius
	Legend   string
	Tooltips bool
}

// NewConfig returns the gauge configuration for probability p. The
// slices are exactly [p, 1-p]; p is not clamped.
func NewConfig(p float64) Config {
	return Config{
		Type: TypeDoughnut,
		Slices: []Slice{
			{Label: LabelDisease, Value: p},
			{Label: LabelHealthy, Value: 1 - p},
		},
		Cutout:   0.65,
		Legend:   LegendBottom,
		Tooltips: true,
	}
}

// Data returns the slice values in order.
func (c Config) Data() []float64 {
	data := make([]float64, len(c.Slices))
	for i, s := range c.Slices {
		data[i] = s.Value
	}
	return data
}

// Chart is a live rendering instance bound to a slot.
type Chart interface {
	Config() Config
	View(width int) string

	// Destroy releases the slot. Calling it more than once is a no-op.
	Destroy()
}

// Renderer is the charting capability: it binds new charts to slots.
type Renderer interface {
	New(slot string, cfg Config) (Chart, error)
}

// Manager owns the single chart bound to one slot.
type Manager struct {
	renderer Renderer
	slot     string
	current  Chart
}

// NewManager creates a Manager that draws into slot using r.
func NewManager(r Renderer, slot string) *Manager {
	return &Manager{renderer: r, slot: slot}
}

// Update replaces the gauge with one for probability p. The previous chart
// is always destroyed before the replacement is created.
func (m *Manager) Update(p float64) error {
	m.release()

	c, err := m.renderer.New(m.slot, NewConfig(p))
	if err != nil {
		return fmt.Errorf("create gauge: %w", err)
	}
	m.current = c
	return nil
}

// Current returns the live chart, or nil if none has been drawn.
func (m *Manager) Current() Chart {
	return m.current
}

// Close destroys the live chart, if any.
func (m *Manager) Close() {
	m.release()
}

func (m *Manager) release() {
	if m.current != nil {
		m.current.Destroy()
		m.current = nil
	}
}

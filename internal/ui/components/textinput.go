package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/heartrisk/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with HeartRisk styling.
type TextInput struct {
	Model       textinput.Model
	Label       string
	DecimalOnly bool
	MaxWidth    int
	invalid     bool
}

// NewTextInput creates a new styled, unfocused text input. With
// decimalOnly set, keystrokes other than digits, '.', '-' and 'e' are
// dropped.
func NewTextInput(label, placeholder string, decimalOnly bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:       ti,
		Label:       label,
		DecimalOnly: decimalOnly,
		MaxWidth:    maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.DecimalOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len(key) == 1 && !decimalKey(key[0]) {
				return t, nil
			}
		}
	}

	if _, ok := msg.(tea.KeyMsg); ok {
		t.invalid = false
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func decimalKey(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' || c == 'E'
}

// Focus focuses the input.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// View renders the label, the input and an invalid marker if set.
func (t TextInput) View(labelWidth int) string {
	labelStyle := theme.Unselected
	if t.Focused() {
		labelStyle = theme.Selected
	}
	label := labelStyle.Width(labelWidth).Render(t.Label)

	view := label + " " + t.Model.View()
	if t.invalid {
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// MarkInvalid flags the input until it is next edited.
func (t *TextInput) MarkInvalid() {
	t.invalid = true
}

// Invalid reports whether the input is flagged.
func (t TextInput) Invalid() bool {
	return t.invalid
}

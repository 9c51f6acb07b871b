package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/heartrisk/internal/ui/theme"
)

// Button triggers an action on Enter. While disabled it ignores Enter and
// shows BusyLabel, if set, in place of Label.
type Button struct {
	Label     string
	BusyLabel string
	Enabled   bool
	OnPress   func() tea.Cmd
}

// NewButton creates an enabled button.
func NewButton(label, busyLabel string, onPress func() tea.Cmd) Button {
	return Button{
		Label:     label,
		BusyLabel: busyLabel,
		Enabled:   true,
		OnPress:   onPress,
	}
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Enabled || b.OnPress == nil {
		return b, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return b, b.OnPress()
	}
	return b, nil
}

// View renders the button.
func (b Button) View() string {
	if b.Enabled {
		return theme.ButtonActive.Render(b.Label)
	}
	label := b.Label
	if b.BusyLabel != "" {
		label = b.BusyLabel
	}
	return theme.ButtonInactive.Render(label)
}

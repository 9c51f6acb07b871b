// Package help shows what each vitals field means and how the form is
// driven.
package help

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/heartrisk/internal/screen"
	"github.com/abhisek/heartrisk/internal/ui/layout"
	"github.com/abhisek/heartrisk/internal/ui/theme"
	"github.com/abhisek/heartrisk/internal/vitals"
)

// HelpScreen lists the form fields and key bindings.
type HelpScreen struct{}

var _ screen.Screen = (*HelpScreen)(nil)
var _ screen.KeyHintProvider = (*HelpScreen)(nil)

// New creates a new HelpScreen.
func New() *HelpScreen {
	return &HelpScreen{}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return h, nil
}

func (h *HelpScreen) Title() string {
	return "Field Help"
}

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HelpScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Vitals"))
	b.WriteString("\n\n")
	for _, f := range vitals.Fields {
		info := f.Info()
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			theme.Selected.Width(16).Render(info.Label),
			theme.Hint.Render(info.Hint),
		))
	}

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Keys"))
	b.WriteString("\n\n")
	for _, k := range formKeys {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			theme.Selected.Width(16).Render(k.Key),
			theme.Body.Render(k.Description),
		))
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Every field must be a number. Results are an estimate, not a diagnosis."))

	return b.String()
}

var formKeys = []layout.KeyHint{
	{Key: "Enter", Description: "Send the vitals for prediction"},
	{Key: "Tab / ↓", Description: "Next field"},
	{Key: "Shift+Tab / ↑", Description: "Previous field"},
	{Key: "Ctrl+R", Description: "Clear the form"},
	{Key: "?", Description: "This screen"},
}

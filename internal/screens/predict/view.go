package predict

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/heartrisk/internal/result"
	"github.com/abhisek/heartrisk/internal/ui/layout"
	"github.com/abhisek/heartrisk/internal/ui/theme"
)

const labelWidth = 14

func (s *PredictScreen) View(width, height int) string {
	if s.alert != "" {
		return renderAlert(s.alert, width, height)
	}

	form := s.renderForm()
	card := s.renderResult(cardWidth(width, lipgloss.Width(form)))

	if layout.IsCompactWidth(width) {
		return lipgloss.JoinVertical(lipgloss.Left, form, "", card)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, form, "    ", card)
}

func cardWidth(width, formWidth int) int {
	if layout.IsCompactWidth(width) {
		return width - 4
	}
	return width - formWidth - 8
}

// renderForm renders the eight inputs and the button, which doubles as
// the in-flight status.
func (s *PredictScreen) renderForm() string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Patient vitals"))
	b.WriteString("\n\n")

	for _, in := range s.inputs {
		b.WriteString("  ")
		b.WriteString(in.View(labelWidth))
		b.WriteString("\n")
	}
	b.WriteString("\n  ")
	b.WriteString(s.button.View())
	b.WriteString("\n")

	return b.String()
}

// renderResult renders the result card: headline, probability, tips and
// the gauge when one exists.
func (s *PredictScreen) renderResult(width int) string {
	st := s.ctrl.State()
	if st.Empty() {
		return theme.Hint.Render("Fill in the vitals and press Enter to estimate risk.")
	}

	var b strings.Builder
	b.WriteString(riskStyle(st.Category).Render(st.ResultText))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(st.ProbabilityLine()))
	b.WriteString("\n")

	for _, tip := range st.Tips {
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("• " + tip))
	}

	if err := s.ctrl.Err(); err != nil {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Gauge unavailable: " + err.Error()))
	} else if chart := s.ctrl.Chart(); chart != nil {
		b.WriteString("\n\n")
		b.WriteString(chart.View(width - 4))
	}

	return theme.Card.Width(width).Render(b.String())
}

func riskStyle(c result.Category) lipgloss.Style {
	switch c {
	case result.CategoryHigh:
		return theme.RiskHigh
	case result.CategoryModerate:
		return theme.RiskModerate
	case result.CategoryLow:
		return theme.RiskLow
	}
	return theme.RiskNone
}

func renderAlert(msg string, width, height int) string {
	box := theme.Alert.Render(msg + "\n\n" + theme.Hint.Render("Press any key to continue"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

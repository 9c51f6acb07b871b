package predict

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/heartrisk/internal/router"
	"github.com/abhisek/heartrisk/internal/screen"
	"github.com/abhisek/heartrisk/internal/screens/help"
	"github.com/abhisek/heartrisk/internal/submission"
	"github.com/abhisek/heartrisk/internal/ui/components"
	"github.com/abhisek/heartrisk/internal/ui/layout"
	"github.com/abhisek/heartrisk/internal/vitals"
)

const inputWidth = 12

// PredictScreen is the vitals form and result card.
type PredictScreen struct {
	ctrl    *submission.Controller
	inputs  []components.TextInput
	focus   int
	button  components.Button
	alert   string
	pending bool
}

var _ screen.Screen = (*PredictScreen)(nil)
var _ screen.KeyHintProvider = (*PredictScreen)(nil)
var _ vitals.Source = (*PredictScreen)(nil)

// New creates a form bound to ctrl. The controller outlives the screen so
// a cleared form keeps the last result and gauge.
func New(ctrl *submission.Controller) *PredictScreen {
	s := &PredictScreen{ctrl: ctrl}
	for _, f := range vitals.Fields {
		info := f.Info()
		s.inputs = append(s.inputs, components.NewTextInput(info.Label, info.Hint, true, inputWidth))
	}
	s.pending = ctrl.Phase() == submission.PhaseSubmitting
	s.button = components.NewButton("Predict", "Predicting…", s.begin)
	s.button.Enabled = !s.pending
	return s
}

func (s *PredictScreen) Init() tea.Cmd {
	return s.inputs[s.focus].Focus()
}

func (s *PredictScreen) Title() string {
	return "Risk Assessment"
}

func (s *PredictScreen) KeyHints() []layout.KeyHint {
	if s.alert != "" {
		return []layout.KeyHint{
			{Key: "any key", Description: "Dismiss"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Predict"},
		{Key: "Tab/↑↓", Description: "Move"},
		{Key: "?", Description: "Help"},
		{Key: "Ctrl+R", Description: "Clear"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Value returns the raw text of field f.
func (s *PredictScreen) Value(f vitals.Field) string {
	for i, field := range vitals.Fields {
		if field == f {
			return s.inputs[i].Value()
		}
	}
	return ""
}

func (s *PredictScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitResultMsg:
		s.ctrl.Resolve(msg.Submission, msg.Outcome)
		s.pending = false
		s.button.Enabled = true
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *PredictScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// The alert blocks the form until acknowledged.
	if s.alert != "" {
		s.alert = ""
		return s, nil
	}

	switch msg.String() {
	case "tab", "down":
		return s, s.moveFocus(1)
	case "shift+tab", "up":
		return s, s.moveFocus(-1)
	case "enter":
		var cmd tea.Cmd
		s.button, cmd = s.button.Update(msg)
		return s, cmd
	case "?":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: help.New()}
		}
	case "ctrl+r":
		fresh := New(s.ctrl)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: fresh}
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *PredictScreen) moveFocus(delta int) tea.Cmd {
	return s.focusField((s.focus + delta + len(s.inputs)) % len(s.inputs))
}

func (s *PredictScreen) focusField(i int) tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = i
	return s.inputs[s.focus].Focus()
}

// begin validates the form and, if it passes, starts the service call.
func (s *PredictScreen) begin() tea.Cmd {
	sub, err := s.ctrl.Begin(s)
	if err != nil {
		var verr *vitals.ValidationError
		switch {
		case errors.As(err, &verr):
			s.alert = verr.Error()
			for i, f := range vitals.Fields {
				if f == verr.Field {
					s.inputs[i].MarkInvalid()
					return s.focusField(i)
				}
			}
		case errors.Is(err, submission.ErrInFlight):
			// The button is disabled while pending; nothing to do.
		default:
			s.alert = err.Error()
		}
		return nil
	}

	s.pending = true
	s.button.Enabled = false
	ctrl := s.ctrl
	return func() tea.Msg {
		return submitResultMsg{
			Submission: sub,
			Outcome:    ctrl.Run(context.Background(), sub),
		}
	}
}

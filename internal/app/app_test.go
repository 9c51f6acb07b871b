package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/heartrisk/internal/gauge"
	"github.com/abhisek/heartrisk/internal/predict"
	"github.com/abhisek/heartrisk/internal/router"
	"github.com/abhisek/heartrisk/internal/screens/help"
	"github.com/abhisek/heartrisk/internal/submission"
)

func testModel() AppModel {
	ctrl := submission.New(predict.NewMockPredictor(), gauge.NewManager(gauge.NewTerminalRenderer(), gauge.DefaultSlot))
	return newAppModel(Options{Controller: ctrl, Endpoint: "mock"})
}

func TestEscAtRootReachesScreen(t *testing.T) {
	m := testModel()

	// Submitting the empty form raises the validation alert.
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	hints := m.footerHints(m.router.Active())
	if len(hints) != 1 || hints[0].Description != "Dismiss" {
		t.Fatalf("expected alert hints, got %+v", hints)
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Error("expected esc at the root not to pop")
		}
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}

	hints = m.footerHints(m.router.Active())
	if len(hints) == 0 || hints[0].Description != "Predict" {
		t.Errorf("expected alert dismissed by esc, got %+v", hints)
	}
}

func TestEscPopsPushedScreen(t *testing.T) {
	m := testModel()
	m.Update(router.PushScreenMsg{Screen: help.New()})
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestFooterUsesScreenHints(t *testing.T) {
	m := testModel()
	hints := m.footerHints(m.router.Active())
	if len(hints) == 0 || hints[0].Description != "Predict" {
		t.Errorf("expected form hints, got %+v", hints)
	}
}

func TestWindowSize(t *testing.T) {
	m := testModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	am := updated.(AppModel)
	if am.width != 120 || am.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", am.width, am.height)
	}
}

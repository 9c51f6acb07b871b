package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/heartrisk/internal/ui/layout"
)

// Screen is one entry on the router stack: the vitals form or a page
// pushed over it.
type Screen interface {
	// Init runs when the screen is pushed or swapped in.
	Init() tea.Cmd

	// Update may return a different Screen, which replaces this one on
	// the stack.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the area between header and footer.
	View(width, height int) string

	// Title is shown centred in the header.
	Title() string
}

// KeyHintProvider lets a screen choose the footer hints, e.g. while it
// shows an alert. Screens without it get the app's defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

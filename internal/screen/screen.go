package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/passpredict/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the tab name.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens that currently own printable
// keys (e.g. while a text field is focused), so global shortcuts must
// not fire.
type InputCapturer interface {
	CapturesInput() bool
}

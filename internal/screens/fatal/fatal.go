// Package fatal is the blocking screen shown when the model cannot be
// loaded. No input is accepted; the only way out is to quit.
package fatal

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/passpredict/internal/classifier"
	"github.com/abhisek/passpredict/internal/screen"
	"github.com/abhisek/passpredict/internal/ui/layout"
	"github.com/abhisek/passpredict/internal/ui/theme"
)

const Title = "Error"

// FatalScreen displays a startup configuration error.
type FatalScreen struct {
	err error
}

var (
	_ screen.Screen          = (*FatalScreen)(nil)
	_ screen.KeyHintProvider = (*FatalScreen)(nil)
)

// New creates the screen for err.
func New(err error) *FatalScreen {
	return &FatalScreen{err: err}
}

func (s *FatalScreen) Title() string {
	return Title
}

func (s *FatalScreen) Init() tea.Cmd {
	return nil
}

func (s *FatalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "q", "esc", "enter":
			return s, tea.Quit
		}
	}
	return s, nil
}

// Headline summarises the error for the user.
func Headline(err error) string {
	switch {
	case errors.Is(err, classifier.ErrNoFeatureManifest):
		return "The model does not expose its expected input columns."
	case errors.Is(err, classifier.ErrUnsupportedFormat):
		return "The model file uses an unsupported format version."
	default:
		return "The prediction model could not be loaded."
	}
}

func (s *FatalScreen) View(width, height int) string {
	lines := []string{
		theme.ErrorText.Render(Headline(s.err)),
		"",
		theme.Body.Render(s.err.Error()),
		"",
		theme.Hint.Render("Check --model or PASSPREDICT_MODEL and restart."),
	}
	box := theme.Card.
		BorderForeground(theme.Fail).
		Width(min(width, 80)).
		Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (s *FatalScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "q", Description: "Quit"},
	}
}

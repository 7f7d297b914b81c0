package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/passpredict/internal/ui/theme"
)

// Select is a single-choice selector cycled with the arrow keys.
type Select struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// NewSelect creates a selector with the first option chosen.
func NewSelect(label string, options []string) Select {
	return Select{
		Label:   label,
		Options: options,
	}
}

// Value returns the chosen option.
func (s Select) Value() string {
	if len(s.Options) == 0 {
		return ""
	}
	return s.Options[s.Selected]
}

// SetValue chooses opt. Unknown options leave the selection unchanged.
func (s *Select) SetValue(opt string) bool {
	for i, o := range s.Options {
		if o == opt {
			s.Selected = i
			return true
		}
	}
	return false
}

// Update handles left/right cycling while focused.
func (s Select) Update(msg tea.Msg) (Select, tea.Cmd) {
	if !s.Focused || len(s.Options) == 0 {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Selected = (s.Selected - 1 + len(s.Options)) % len(s.Options)
	case "right", "l", "space":
		s.Selected = (s.Selected + 1) % len(s.Options)
	}

	return s, nil
}

// View renders the label above the current choice.
func (s Select) View() string {
	value := "  " + s.Value() + "  "
	if s.Focused {
		value = "◂ " + s.Value() + " ▸"
		return theme.Label.Render(s.Label) + "\n" + theme.Focused.Render(value)
	}
	return theme.Label.Render(s.Label) + "\n" + lipgloss.NewStyle().Foreground(theme.Text).Render(value)
}

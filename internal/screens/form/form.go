// Package form is the data-entry tab: one widget per profile field, laid
// out in the schema's visual columns.
package form

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/passpredict/internal/profile"
	"github.com/abhisek/passpredict/internal/router"
	"github.com/abhisek/passpredict/internal/screen"
	"github.com/abhisek/passpredict/internal/ui/components"
	"github.com/abhisek/passpredict/internal/ui/layout"
	"github.com/abhisek/passpredict/internal/ui/theme"
)

const (
	Title = "Enter Student Data"

	nameLimit = 40
)

// control is the widget bound to one field. Exactly one of the widget
// members is used, depending on the field kind.
type control struct {
	field  profile.Field
	text   components.TextInput
	choice components.Select
	number components.Slider
}

func newControl(f profile.Field) control {
	c := control{field: f}
	switch f.Kind {
	case profile.KindText:
		c.text = components.NewTextInput(f.Label, "e.g. Maria", nameLimit)
	case profile.KindChoice:
		c.choice = components.NewSelect(f.Label, f.Options)
	case profile.KindInteger:
		c.number = components.NewSlider(f.Label, f.Min, f.Max, f.Step, f.DefaultNumber, 0, 0)
	case profile.KindDecimal:
		c.number = components.NewSlider(f.Label, f.Min, f.Max, f.Step, f.DefaultNumber, 2, 0)
	}
	return c
}

func (c *control) focus(on bool) tea.Cmd {
	switch c.field.Kind {
	case profile.KindText:
		if on {
			return c.text.Focus()
		}
		c.text.Blur()
	case profile.KindChoice:
		c.choice.Focused = on
	default:
		c.number.Focused = on
	}
	return nil
}

func (c control) update(msg tea.Msg) (control, tea.Cmd) {
	var cmd tea.Cmd
	switch c.field.Kind {
	case profile.KindText:
		c.text, cmd = c.text.Update(msg)
	case profile.KindChoice:
		c.choice, cmd = c.choice.Update(msg)
	default:
		c.number, cmd = c.number.Update(msg)
	}
	return c, cmd
}

func (c control) view(width int) string {
	switch c.field.Kind {
	case profile.KindText:
		c.text.Model.SetWidth(max(4, width-4))
		return c.text.View()
	case profile.KindChoice:
		return c.choice.View()
	default:
		c.number.Width = width
		return c.number.View()
	}
}

// FormScreen collects a StudentProfile. Every widget is bounded, so the
// collected profile is always inside the schema's domains.
type FormScreen struct {
	controls []control
	focus    int
}

var (
	_ screen.Screen          = (*FormScreen)(nil)
	_ screen.KeyHintProvider = (*FormScreen)(nil)
	_ screen.InputCapturer   = (*FormScreen)(nil)
)

// New creates a form with every field at its default.
func New() *FormScreen {
	fields := profile.Fields()
	s := &FormScreen{controls: make([]control, len(fields))}
	for i, f := range fields {
		s.controls[i] = newControl(f)
	}
	return s
}

func (s *FormScreen) Title() string {
	return Title
}

func (s *FormScreen) Init() tea.Cmd {
	return s.controls[s.focus].focus(true)
}

// Focused returns the key of the field that has focus.
func (s *FormScreen) Focused() string {
	return s.controls[s.focus].field.Key
}

// CapturesInput reports whether printable keys belong to the name input.
func (s *FormScreen) CapturesInput() bool {
	return s.controls[s.focus].field.Kind == profile.KindText
}

func (s *FormScreen) moveFocus(delta int) tea.Cmd {
	s.controls[s.focus].focus(false)
	s.focus = (s.focus + delta + len(s.controls)) % len(s.controls)
	return s.controls[s.focus].focus(true)
}

func (s *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.moveFocus(1)
		case "shift+tab", "up":
			return s, s.moveFocus(-1)
		case "enter":
			return s, func() tea.Msg { return router.SwitchTabMsg{Index: 1} }
		}
	}

	var cmd tea.Cmd
	s.controls[s.focus], cmd = s.controls[s.focus].update(msg)
	return s, cmd
}

// Profile returns the current answers as a validated profile.
func (s *FormScreen) Profile() (*profile.StudentProfile, error) {
	p := profile.New("")
	for _, c := range s.controls {
		var err error
		switch c.field.Kind {
		case profile.KindText:
			p.Name = strings.TrimSpace(c.text.Value())
		case profile.KindChoice:
			err = p.SetChoice(c.field.Key, c.choice.Value())
		default:
			err = p.SetNumber(c.field.Key, c.number.Value)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Load sets every widget from p. Values outside a widget's domain are
// rejected and leave the form unchanged.
func (s *FormScreen) Load(p *profile.StudentProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	for i := range s.controls {
		c := &s.controls[i]
		switch c.field.Kind {
		case profile.KindText:
			c.text.SetValue(p.Name)
		case profile.KindChoice:
			v, _ := p.Choice(c.field.Key)
			if !c.choice.SetValue(v) {
				return fmt.Errorf("%s: %w", c.field.Key, profile.ErrUnknownOption)
			}
		default:
			c.number.Value, _ = p.Number(c.field.Key)
		}
	}
	return nil
}

func (s *FormScreen) View(width, height int) string {
	cols := profile.Columns()
	colWidth := (width - 2*(cols-1)) / cols

	columns := make([][]string, cols)
	for _, c := range s.controls {
		col := c.field.Column - 1
		columns[col] = append(columns[col], c.view(colWidth))
	}

	rendered := make([]string, 0, 2*cols-1)
	for i, col := range columns {
		if i > 0 {
			rendered = append(rendered, "  ")
		}
		rendered = append(rendered, lipgloss.NewStyle().Width(colWidth).Render(lipgloss.JoinVertical(lipgloss.Left, col...)))
	}

	heading := theme.Title.Render(Title)
	return heading + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (s *FormScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓/Tab", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Continue"},
		{Key: "F2", Description: "Results"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

package components

import (
	"math"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/passpredict/internal/ui/theme"
)

// Slider picks a number from a closed range in fixed steps.
type Slider struct {
	Label    string
	Min, Max float64
	Step     float64
	Value    float64
	Decimals int
	Width    int
	Focused  bool
}

// NewSlider creates a slider positioned at def.
func NewSlider(label string, min, max, step, def float64, decimals, width int) Slider {
	return Slider{
		Label:    label,
		Min:      min,
		Max:      max,
		Step:     step,
		Value:    def,
		Decimals: decimals,
		Width:    width,
	}
}

// Update moves the value by one step (left/right) or ten steps
// (shift+left/shift+right) while focused.
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.move(-1)
	case "right", "l":
		s.move(1)
	case "shift+left", "H":
		s.move(-10)
	case "shift+right", "L":
		s.move(10)
	case "home":
		s.Value = s.Min
	case "end":
		s.Value = s.Max
	}

	return s, nil
}

func (s *Slider) move(steps int) {
	v := s.Value + float64(steps)*s.Step
	// Snap to the step grid so repeated decimal steps do not drift.
	v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	v = math.Round(v*math.Pow10(s.Decimals)) / math.Pow10(s.Decimals)
	s.Value = math.Max(s.Min, math.Min(s.Max, v))
}

// Fraction returns the position of the value within the range.
func (s Slider) Fraction() float64 {
	if s.Max <= s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// Text returns the value as displayed.
func (s Slider) Text() string {
	return strconv.FormatFloat(s.Value, 'f', s.Decimals, 64)
}

// View renders the label, a filled track and the value.
func (s Slider) View() string {
	barWidth := s.Width - 7
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(math.Round(float64(barWidth) * s.Fraction()))
	if filled > barWidth {
		filled = barWidth
	}
	empty := barWidth - filled

	track := theme.SliderFilled.Render(strings.Repeat(" ", filled)) +
		theme.SliderEmpty.Render(strings.Repeat(" ", empty))

	value := " " + s.Text()
	if s.Focused {
		value = theme.Focused.Render(value)
	} else {
		value = theme.Body.Render(value)
	}

	label := theme.Label.Render(s.Label)
	if s.Focused {
		label = theme.Focused.Render(s.Label)
	}
	return label + "\n" + track + value
}

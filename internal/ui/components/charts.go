package components

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/passpredict/internal/chart"
	"github.com/abhisek/passpredict/internal/ui/theme"
)

const block = "█"

// BarChart renders one vertical bar per outcome inside a width x height
// plot area, followed by a label row.
func BarChart(p chart.Probabilities, width, height int) string {
	if height < 1 {
		height = 1
	}
	bars := p.Bars(float64(width), float64(height))

	rows := make([]string, 0, height+1)
	for row := 0; row < height; row++ {
		var b strings.Builder
		col := 0
		for _, bar := range bars {
			x := int(math.Round(bar.X))
			w := int(math.Round(bar.Width))
			filled := int(math.Round(bar.Height))
			b.WriteString(strings.Repeat(" ", max(0, x-col)))
			cell := strings.Repeat(" ", w)
			if row >= height-filled {
				cell = lipgloss.NewStyle().Foreground(lipgloss.Color(bar.Color)).Render(strings.Repeat(block, w))
			}
			b.WriteString(cell)
			col = max(col, x) + w
		}
		rows = append(rows, b.String())
	}

	var labels strings.Builder
	col := 0
	for _, bar := range bars {
		x := int(math.Round(bar.X))
		w := int(math.Round(bar.Width))
		text := bar.Label + " " + bar.Percent()
		labels.WriteString(strings.Repeat(" ", max(0, x-col)))
		labels.WriteString(theme.Body.Width(max(w, lipgloss.Width(text))).Align(lipgloss.Center).Render(text))
		col = max(col, x) + max(w, lipgloss.Width(text))
	}
	rows = append(rows, labels.String())

	return strings.Join(rows, "\n")
}

// ProportionChart renders the share of each outcome as one stacked bar of
// the given width with a legend underneath. It is the terminal stand-in
// for the pie chart.
func ProportionChart(p chart.Probabilities, width int) string {
	if width < 2 {
		width = 2
	}
	slices := p.Slices()

	var bar, legend strings.Builder
	used := 0
	for i, s := range slices {
		n := int(math.Round(s.Value * float64(width)))
		if i == len(slices)-1 {
			n = width - used
		}
		n = max(0, min(n, width-used))
		used += n

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color))
		bar.WriteString(style.Render(strings.Repeat(block, n)))

		if i > 0 {
			legend.WriteString("   ")
		}
		legend.WriteString(style.Render("■") + " " + theme.Body.Render(s.Label+" "+s.Percent()))
	}

	return bar.String() + "\n" + legend.String()
}

// Package chart derives the two probability visualisations shown with a
// prediction. Both are built from the same (fail, pass) pair and the same
// category colours, so they can never disagree.
package chart

import (
	"fmt"
	"math"
)

const (
	FailLabel = "Fail"
	PassLabel = "Pass"

	// Red and green families, shared by every renderer.
	FailColor = "#F44336"
	PassColor = "#4CAF50"
)

// Slice is one category of a probability chart.
type Slice struct {
	Label string
	Value float64
	Color string
}

// Percent formats the slice the way the pie labels do (one decimal).
func (s Slice) Percent() string {
	return fmt.Sprintf("%.1f%%", s.Value*100)
}

// Probabilities is the (1-p, p) pair behind both charts.
type Probabilities struct {
	Fail float64
	Pass float64
}

// New builds the pair from the probability of passing, clamped to [0, 1].
func New(pass float64) Probabilities {
	switch {
	case math.IsNaN(pass) || pass < 0:
		pass = 0
	case pass > 1:
		pass = 1
	}
	return Probabilities{Fail: 1 - pass, Pass: pass}
}

// Slices returns the categories in display order: fail first, then pass.
func (p Probabilities) Slices() []Slice {
	return []Slice{
		{Label: FailLabel, Value: p.Fail, Color: FailColor},
		{Label: PassLabel, Value: p.Pass, Color: PassColor},
	}
}

// Bar is the geometry of one bar in a vertical bar chart whose origin is the
// top-left corner.
type Bar struct {
	Slice
	X, Y, Width, Height float64
}

// Bars lays out one bar per slice inside a width x height plot area. Bar
// height is proportional to the slice value.
func (p Probabilities) Bars(width, height float64) []Bar {
	slices := p.Slices()
	slot := width / float64(len(slices))
	barWidth := slot * 0.6
	bars := make([]Bar, len(slices))
	for i, s := range slices {
		h := s.Value * height
		bars[i] = Bar{
			Slice:  s,
			X:      float64(i)*slot + (slot-barWidth)/2,
			Y:      height - h,
			Width:  barWidth,
			Height: h,
		}
	}
	return bars
}

// Wedge is one slice of a pie chart, as an angle range and an SVG path.
type Wedge struct {
	Slice
	// Sweep is the fraction of the full circle covered by the wedge.
	Sweep float64
	// Full is set when the wedge covers the whole circle; Path is empty then.
	Full bool
	Path string
	// LabelX, LabelY place the percentage label mid-wedge.
	LabelX, LabelY float64
}

// arcEpsilon is the sweep below which an arc's endpoints coincide at the
// precision paths are printed with. SVG drops such arcs, so wedges this close
// to empty or full are drawn as nothing or as a circle.
const arcEpsilon = 1e-6

// Pie lays out the wedges of a pie centred at (cx, cy) with radius r,
// starting at twelve o'clock and running clockwise.
func (p Probabilities) Pie(cx, cy, r float64) []Wedge {
	slices := p.Slices()
	wedges := make([]Wedge, 0, len(slices))
	start := -math.Pi / 2
	for _, s := range slices {
		w := Wedge{Slice: s, Sweep: s.Value}
		angle := s.Value * 2 * math.Pi
		mid := start + angle/2
		w.LabelX = cx + 0.6*r*math.Cos(mid)
		w.LabelY = cy + 0.6*r*math.Sin(mid)

		switch {
		case s.Value >= 1-arcEpsilon:
			w.Full = true
			w.LabelX, w.LabelY = cx, cy
		case s.Value > arcEpsilon:
			end := start + angle
			large := 0
			if angle > math.Pi {
				large = 1
			}
			w.Path = fmt.Sprintf("M %.3f %.3f L %.3f %.3f A %.3f %.3f 0 %d 1 %.3f %.3f Z",
				cx, cy,
				cx+r*math.Cos(start), cy+r*math.Sin(start),
				r, r, large,
				cx+r*math.Cos(end), cy+r*math.Sin(end))
		}
		wedges = append(wedges, w)
		start += angle
	}
	return wedges
}

package web

import (
	"fmt"
	"html/template"
	"net/url"

	"github.com/abhisek/passpredict/internal/chart"
	"github.com/abhisek/passpredict/internal/inference"
	"github.com/abhisek/passpredict/internal/profile"
)

// Chart canvas sizes in SVG user units.
const (
	barWidth  = 320
	barHeight = 200
	pieSize   = 220
)

var funcs = template.FuncMap{
	"pct": func(v float64) string { return fmt.Sprintf("%.2f%%", v*100) },
}

// fieldView is one form input with its current value.
type fieldView struct {
	profile.Field
	Value string
}

func (f fieldView) IsText() bool   { return f.Kind == profile.KindText }
func (f fieldView) IsChoice() bool { return f.Kind == profile.KindChoice }

// StepText renders the numeric step for the input's step attribute.
func (f fieldView) StepText() string { return f.FormatNumber(f.Step) }
func (f fieldView) MinText() string  { return f.FormatNumber(f.Min) }
func (f fieldView) MaxText() string  { return f.FormatNumber(f.Max) }

// barView is a bar plus the x position of its axis label.
type barView struct {
	chart.Bar
	LabelX float64
}

type outcomeView struct {
	Name        string
	Pass        bool
	Verdict     string
	Probability float64
	GPA         string
	Bars        []barView
	Wedges      []chart.Wedge
	FileName    string
	ReportURL   string
	EditURL     string
	BarWidth    int
	BarCanvas   int
	BarLabelY   int
	PieSize     int
	PieCenter   float64
	PieRadius   float64
}

type pageData struct {
	Tab       int
	Columns   [][]fieldView
	Error     string
	Outcome   *outcomeView
	Fatal     string
	RequestID string
}

// formColumns groups the schema by visual column, filled from values.
func formColumns(values map[string]string) [][]fieldView {
	cols := make([][]fieldView, profile.Columns())
	for _, f := range profile.Fields() {
		cols[f.Column-1] = append(cols[f.Column-1], fieldView{Field: f, Value: values[f.Key]})
	}
	return cols
}

func encodeValues(values map[string]string) string {
	q := url.Values{}
	for k, v := range values {
		q.Set(k, v)
	}
	return q.Encode()
}

func newOutcomeView(o *inference.Outcome) *outcomeView {
	values := o.Profile.Values()
	query := encodeValues(values)
	r := float64(pieSize)/2 - 10

	bars := o.Chart.Bars(barWidth, barHeight)
	views := make([]barView, len(bars))
	for i, b := range bars {
		views[i] = barView{Bar: b, LabelX: b.X + b.Width/2}
	}

	return &outcomeView{
		Name:        o.Profile.Name,
		Pass:        o.Result.Label == inference.Pass,
		Verdict:     o.Result.Label.Verdict(),
		Probability: o.Result.ProbabilityOfPass,
		GPA:         values[profile.GPA],
		Bars:        views,
		Wedges:      o.Chart.Pie(pieSize/2, pieSize/2, r),
		FileName:    o.Report.FileName,
		ReportURL:   "/report?" + query,
		EditURL:     "/?" + query,
		BarWidth:    barWidth,
		BarCanvas:   barHeight + 30,
		BarLabelY:   barHeight + 20,
		PieSize:     pieSize,
		PieCenter:   pieSize / 2,
		PieRadius:   r,
	}
}

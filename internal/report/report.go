// Package report formats the downloadable plain-text prediction report.
package report

import (
	"bytes"
	"strings"
	"text/template"
)

// MIMEType is the content type the report is served with.
const MIMEType = "text/plain; charset=utf-8"

// Input is everything the report shows.
type Input struct {
	StudentName       string
	Verdict           string
	ProbabilityOfPass float64
	GPA               float64
	FinalGrade        int
	Age               int
	Absences          int
}

// Report is a rendered report ready to be handed to the user.
type Report struct {
	FileName string
	MIMEType string
	Content  string
}

var tmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"percent": func(p float64) float64 { return p * 100 },
}).Parse(`
Student Report - {{.StudentName}}
-------------------------------
Prediction: {{.Verdict}}
Probability of Passing: {{percent .ProbabilityOfPass | printf "%.2f"}}%
GPA: {{printf "%.2f" .GPA}}
Final Grade (G3): {{.FinalGrade}}
Age: {{.Age}}
Absences: {{.Absences}}
`))

// Render formats in into a Report. It performs no I/O.
func Render(in Input) (Report, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, in); err != nil {
		return Report{}, err
	}
	return Report{
		FileName: FileName(in.StudentName),
		MIMEType: MIMEType,
		Content:  buf.String(),
	}, nil
}

// FileName derives the report file name from the student name. Path
// separators are replaced so the name always stays a single path element.
func FileName(student string) string {
	r := strings.NewReplacer("/", "_", `\`, "_", "\x00", "_")
	return r.Replace(student) + "_report.txt"
}

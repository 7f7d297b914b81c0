package results

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/passpredict/internal/inference"
	"github.com/abhisek/passpredict/internal/profile"
	"github.com/abhisek/passpredict/internal/report"
	"github.com/abhisek/passpredict/internal/router"
	"github.com/abhisek/passpredict/internal/screen"
	"github.com/abhisek/passpredict/internal/ui/components"
	"github.com/abhisek/passpredict/internal/ui/layout"
	"github.com/abhisek/passpredict/internal/ui/theme"
)

const Title = "Prediction & Report"

// ProfileSource returns the profile currently held by the input tab.
type ProfileSource func() (*profile.StudentProfile, error)

type predictedMsg struct {
	outcome *inference.Outcome
	err     error
}

type savedMsg struct {
	path string
	err  error
}

// ResultsScreen runs a prediction on demand and shows the verdict, the
// charts and the report download.
type ResultsScreen struct {
	svc       *inference.Service
	source    ProfileSource
	reportDir string
	log       *zap.Logger

	button  components.ActionButton
	outcome *inference.Outcome
	// inputs is the profile snapshot the outcome was computed from.
	inputs map[string]string
	err    error

	savedPath string
	saveErr   error
}

var (
	_ screen.Screen          = (*ResultsScreen)(nil)
	_ screen.KeyHintProvider = (*ResultsScreen)(nil)
)

// New creates the results tab.
func New(svc *inference.Service, source ProfileSource, reportDir string, log *zap.Logger) *ResultsScreen {
	if log == nil {
		log = zap.NewNop()
	}
	s := &ResultsScreen{
		svc:       svc,
		source:    source,
		reportDir: reportDir,
		log:       log,
	}
	s.button = components.NewActionButton("🚀 Predict", "Predicting", s.predict)
	return s
}

func (s *ResultsScreen) Title() string {
	return Title
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) predict() tea.Cmd {
	svc, source := s.svc, s.source
	return func() tea.Msg {
		p, err := source()
		if err != nil {
			return predictedMsg{err: err}
		}
		outcome, err := svc.Evaluate(p)
		return predictedMsg{outcome: outcome, err: err}
	}
}

// Outcome returns the displayed outcome, or nil when there is none or the
// inputs changed since it was computed.
func (s *ResultsScreen) Outcome() *inference.Outcome {
	if s.outcome == nil {
		return nil
	}
	p, err := s.source()
	if err != nil || !maps.Equal(p.Values(), s.inputs) {
		return nil
	}
	return s.outcome
}

func (s *ResultsScreen) save() tea.Cmd {
	outcome := s.Outcome()
	if outcome == nil {
		return nil
	}
	rep, dir, log := outcome.Report, s.reportDir, s.log
	return func() tea.Msg {
		path := filepath.Join(dir, rep.FileName)
		if err := os.WriteFile(path, []byte(rep.Content), 0o644); err != nil {
			log.Error("save report", zap.String("path", path), zap.Error(err))
			return savedMsg{err: err}
		}
		log.Info("report saved", zap.String("path", path))
		return savedMsg{path: path}
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case predictedMsg:
		s.button.Done()
		s.savedPath, s.saveErr = "", nil
		s.outcome, s.err = msg.outcome, msg.err
		s.inputs = nil
		if msg.outcome != nil {
			s.inputs = msg.outcome.Profile.Values()
		}
		return s, nil

	case savedMsg:
		s.savedPath, s.saveErr = msg.path, msg.err
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "s":
			return s, s.save()
		case "esc":
			return s, func() tea.Msg { return router.SwitchTabMsg{Index: 0} }
		}
	}

	var cmd tea.Cmd
	s.button, cmd = s.button.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(Title) + "\n\n")
	b.WriteString(s.button.View() + "\n\n")

	if s.err != nil {
		b.WriteString(theme.ErrorText.Render(errorText(s.err)) + "\n")
		return b.String()
	}

	outcome := s.Outcome()
	if outcome == nil {
		if s.outcome != nil {
			b.WriteString(theme.Hint.Render("Inputs changed since the last prediction. Press Enter to predict again.") + "\n")
		} else {
			b.WriteString(theme.Hint.Render("Press Enter to predict with the data from the first tab.") + "\n")
		}
		return b.String()
	}

	verdict := theme.FailVerdict
	if outcome.Result.Label == inference.Pass {
		verdict = theme.PassVerdict
	}
	gpa, _ := outcome.Profile.Number(profile.GPA)
	b.WriteString(verdict.Render(fmt.Sprintf("🎯 Prediction for %s: %s", outcome.Profile.Name, outcome.Result.Label.Verdict())) + "\n\n")
	metrics := lipgloss.JoinHorizontal(lipgloss.Top,
		metric("📈 Probability of Passing", theme.Body.Render(fmt.Sprintf("%.2f%%", outcome.Result.ProbabilityOfPass*100))),
		"    ",
		metric("📘 GPA", theme.Body.Render(fmt.Sprintf("%.2f", gpa))),
	)
	b.WriteString(metrics + "\n\n")

	chartWidth := max(20, (width-6)/2)
	charts := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Card.Width(chartWidth).Render(theme.Label.Render("Pass/Fail Probability")+"\n"+components.BarChart(outcome.Chart, chartWidth-4, 8)),
		"  ",
		theme.Card.Width(chartWidth).Render(theme.Label.Render("Pass/Fail Pie Chart")+"\n"+components.ProportionChart(outcome.Chart, chartWidth-4)),
	)
	b.WriteString(charts + "\n\n")

	switch {
	case s.saveErr != nil:
		b.WriteString(theme.ErrorText.Render("Could not save report: "+s.saveErr.Error()) + "\n")
	case s.savedPath != "":
		b.WriteString(theme.PassVerdict.Render("Report saved to "+s.savedPath) + "\n")
	default:
		b.WriteString(theme.Hint.Render("Press s to save "+outcome.Report.FileName) + "\n")
	}
	return b.String()
}

func metric(label, value string) string {
	return theme.Label.Render(label) + "\n" + value
}

func errorText(err error) string {
	if errors.Is(err, inference.ErrConfiguration) {
		return "The model does not accept the encoded features: " + err.Error()
	}
	return "Prediction failed: " + err.Error()
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Predict"},
	}
	if s.Outcome() != nil {
		hints = append(hints, layout.KeyHint{Key: "s", Description: "Save " + report.FileName(s.outcome.Profile.Name)})
	}
	return append(hints,
		layout.KeyHint{Key: "Esc", Description: "Back"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

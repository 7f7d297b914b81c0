package results

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/passpredict/internal/classifier"
	"github.com/abhisek/passpredict/internal/encoder"
	"github.com/abhisek/passpredict/internal/inference"
	"github.com/abhisek/passpredict/internal/profile"
	"github.com/abhisek/passpredict/internal/router"
)

type fixture struct {
	screen  *ResultsScreen
	mock    *classifier.MockClassifier
	profile *profile.StudentProfile
	dir     string
}

func newFixture(t *testing.T, manifest []string) *fixture {
	t.Helper()
	mock := classifier.NewMock(1, 0.25, 0.75)
	m, err := classifier.New(manifest, []int{0, 1}, 1, mock)
	if err != nil {
		t.Fatalf("model: %v", err)
	}
	svc, err := inference.NewService(m, encoder.Default(), nil)
	if err != nil {
		t.Fatalf("service: %v", err)
	}

	f := &fixture{mock: mock, profile: profile.New("Rui"), dir: t.TempDir()}
	f.screen = New(svc, func() (*profile.StudentProfile, error) { return f.profile, nil }, f.dir, nil)
	return f
}

// run feeds a key to the screen and then delivers the resulting message.
func run(t *testing.T, s *ResultsScreen, k tea.KeyPressMsg) {
	t.Helper()
	_, cmd := s.Update(k)
	if cmd == nil {
		t.Fatalf("expected a command for %q", k.String())
	}
	s.Update(cmd())
}

func TestNothingBeforePredict(t *testing.T) {
	f := newFixture(t, encoder.Default().Columns())
	view := f.screen.View(120, 30)
	if strings.Contains(view, "Probability of Passing") {
		t.Error("no prediction should be shown before Predict is pressed")
	}
	if f.mock.CallCount() != 0 {
		t.Error("classifier must not run without an explicit request")
	}
}

func TestPredictShowsOutcome(t *testing.T) {
	f := newFixture(t, encoder.Default().Columns())
	run(t, f.screen, tea.KeyPressMsg{Code: tea.KeyEnter})

	if f.screen.Outcome() == nil {
		t.Fatal("expected an outcome")
	}
	view := f.screen.View(120, 30)
	for _, want := range []string{"✅ Pass", "75.00%", "2.00", "Fail 25.0%", "Pass 75.0%", "Rui_report.txt"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestChangedInputsHideStaleOutcome(t *testing.T) {
	f := newFixture(t, encoder.Default().Columns())
	run(t, f.screen, tea.KeyPressMsg{Code: tea.KeyEnter})

	if err := f.profile.SetNumber(profile.Absences, 20); err != nil {
		t.Fatal(err)
	}
	if f.screen.Outcome() != nil {
		t.Error("expected outcome to be hidden once inputs change")
	}
	if !strings.Contains(f.screen.View(120, 30), "Inputs changed") {
		t.Error("expected stale hint")
	}

	_, cmd := f.screen.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	if cmd != nil {
		t.Error("stale outcome must not be saved")
	}
}

func TestSaveWritesReport(t *testing.T) {
	f := newFixture(t, encoder.Default().Columns())
	run(t, f.screen, tea.KeyPressMsg{Code: tea.KeyEnter})
	run(t, f.screen, tea.KeyPressMsg{Code: 's', Text: "s"})

	path := filepath.Join(f.dir, "Rui_report.txt")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if string(data) != f.screen.Outcome().Report.Content {
		t.Error("saved file differs from the rendered report")
	}
	if !strings.Contains(f.screen.View(120, 30), "Report saved to") {
		t.Error("expected save confirmation")
	}
}

func TestSaveErrorIsShown(t *testing.T) {
	f := newFixture(t, encoder.Default().Columns())
	f.screen.reportDir = filepath.Join(f.dir, "missing", "dir")
	run(t, f.screen, tea.KeyPressMsg{Code: tea.KeyEnter})
	run(t, f.screen, tea.KeyPressMsg{Code: 's', Text: "s"})

	if !strings.Contains(f.screen.View(120, 30), "Could not save report") {
		t.Error("expected save error")
	}
}

func TestManifestMismatchIsReported(t *testing.T) {
	f := newFixture(t, []string{"age", "absences"})
	run(t, f.screen, tea.KeyPressMsg{Code: tea.KeyEnter})

	if !errors.Is(f.screen.err, inference.ErrConfiguration) {
		t.Errorf("expected configuration error, got %v", f.screen.err)
	}
	if f.mock.CallCount() != 0 {
		t.Error("classifier must not run on a mismatched vector")
	}
	if !strings.Contains(f.screen.View(120, 30), "does not accept") {
		t.Error("expected configuration error message")
	}
}

func TestProfileErrorIsReported(t *testing.T) {
	f := newFixture(t, encoder.Default().Columns())
	f.screen.source = func() (*profile.StudentProfile, error) {
		return nil, &profile.FieldError{Key: profile.Age, Err: profile.ErrMissing}
	}
	run(t, f.screen, tea.KeyPressMsg{Code: tea.KeyEnter})

	if !errors.Is(f.screen.err, profile.ErrMissing) {
		t.Errorf("expected missing attribute error, got %v", f.screen.err)
	}
}

func TestEscGoesBackToInput(t *testing.T) {
	f := newFixture(t, encoder.Default().Columns())
	_, cmd := f.screen.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if msg, ok := cmd().(router.SwitchTabMsg); !ok || msg.Index != 0 {
		t.Errorf("expected SwitchTabMsg{0}, got %#v", cmd())
	}
}

func TestSecondPressWhilePredictingIsIgnored(t *testing.T) {
	f := newFixture(t, encoder.Default().Columns())

	_, first := f.screen.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if first == nil {
		t.Fatal("expected a prediction command")
	}
	if _, again := f.screen.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); again != nil {
		t.Error("a prediction is already running")
	}
	if !strings.Contains(f.screen.View(120, 30), "Predicting") {
		t.Error("expected busy button while predicting")
	}

	f.screen.Update(first())
	if f.mock.CallCount() == 0 {
		t.Error("expected the classifier to run")
	}
	if strings.Contains(f.screen.View(120, 30), "… Predicting") {
		t.Error("button must be ready again after the result arrives")
	}
}

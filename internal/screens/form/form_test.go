package form

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/passpredict/internal/profile"
	"github.com/abhisek/passpredict/internal/router"
)

func keyPress(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(s *FormScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// focusOn tabs forward until key has focus.
func focusOn(t *testing.T, s *FormScreen, key string) {
	t.Helper()
	for i := 0; i < len(profile.Fields()); i++ {
		if s.Focused() == key {
			return
		}
		s.Update(keyPress(tea.KeyTab))
	}
	t.Fatalf("field %q never received focus", key)
}

func TestDefaultsProduceValidProfile(t *testing.T) {
	s := New()
	s.Init()

	p, err := s.Profile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.Values(); got[profile.Sex] != "Female" || got[profile.Age] != "17" || got[profile.GPA] != "2.00" {
		t.Errorf("unexpected defaults: sex=%q age=%q gpa=%q", got[profile.Sex], got[profile.Age], got[profile.GPA])
	}
}

func TestNameInputCapturesTyping(t *testing.T) {
	s := New()
	s.Init()

	if s.Focused() != profile.Name || !s.CapturesInput() {
		t.Fatal("expected name field to start focused")
	}
	typeText(s, " Maria ")

	p, err := s.Profile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Maria" {
		t.Errorf("expected trimmed name 'Maria', got %q", p.Name)
	}
}

func TestFocusNavigationWraps(t *testing.T) {
	s := New()
	s.Init()

	s.Update(keyPress(tea.KeyUp))
	if s.Focused() != profile.Absences {
		t.Errorf("expected wrap to last field, got %q", s.Focused())
	}
	if s.CapturesInput() {
		t.Error("slider must not capture printable keys")
	}
	s.Update(keyPress(tea.KeyDown))
	if s.Focused() != profile.Name {
		t.Errorf("expected wrap to first field, got %q", s.Focused())
	}
}

func TestArrowKeysChangeFocusedWidget(t *testing.T) {
	s := New()
	s.Init()

	focusOn(t, s, profile.Sex)
	s.Update(keyPress(tea.KeyRight))

	focusOn(t, s, profile.Age)
	s.Update(keyPress(tea.KeyRight))
	s.Update(keyPress(tea.KeyRight))

	focusOn(t, s, profile.GPA)
	s.Update(keyPress(tea.KeyLeft))

	p, err := s.Profile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sex, _ := p.Choice(profile.Sex); sex != "Male" {
		t.Errorf("expected Male, got %q", sex)
	}
	if p.Int(profile.Age) != 19 {
		t.Errorf("expected age 19, got %d", p.Int(profile.Age))
	}
	if gpa, _ := p.Number(profile.GPA); gpa != 1.99 {
		t.Errorf("expected GPA 1.99, got %v", gpa)
	}
}

func TestSlidersStayInDomain(t *testing.T) {
	s := New()
	s.Init()

	focusOn(t, s, profile.Failures)
	for i := 0; i < 10; i++ {
		s.Update(keyPress(tea.KeyRight))
	}

	p, err := s.Profile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Int(profile.Failures) != 3 {
		t.Errorf("expected failures clamped to 3, got %d", p.Int(profile.Failures))
	}
}

func TestEnterSwitchesToResults(t *testing.T) {
	s := New()
	s.Init()

	_, cmd := s.Update(keyPress(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.SwitchTabMsg)
	if !ok || msg.Index != 1 {
		t.Errorf("expected SwitchTabMsg{1}, got %#v", cmd())
	}
}

func TestLoadRoundTrip(t *testing.T) {
	want := profile.New("Joao")
	if err := want.SetChoice(profile.Mjob, "Teacher"); err != nil {
		t.Fatal(err)
	}
	if err := want.SetNumber(profile.Absences, 3); err != nil {
		t.Fatal(err)
	}

	s := New()
	if err := s.Load(want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := s.Profile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for k, v := range want.Values() {
		if got.Values()[k] != v {
			t.Errorf("%s: expected %q, got %q", k, v, got.Values()[k])
		}
	}
}

func TestViewShowsEveryField(t *testing.T) {
	s := New()
	s.Init()
	view := s.View(120, 30)
	for _, f := range profile.Fields() {
		if !strings.Contains(view, f.Label) {
			t.Errorf("view missing label %q", f.Label)
		}
	}
}

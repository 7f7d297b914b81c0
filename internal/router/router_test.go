package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/passpredict/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title    string
	initRuns int
	updates  int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRuns++
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { s.updates++; return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestInitStartsFirstTab(t *testing.T) {
	s1 := &stubScreen{title: "Input"}
	s2 := &stubScreen{title: "Results"}
	r := New(s1, s2)
	r.Init()

	if s1.initRuns != 1 {
		t.Errorf("expected first tab Init once, got %d", s1.initRuns)
	}
	if s2.initRuns != 0 {
		t.Error("expected second tab to stay unstarted")
	}
}

func TestSelectRunsInitOnce(t *testing.T) {
	s1 := &stubScreen{title: "Input"}
	s2 := &stubScreen{title: "Results"}
	r := New(s1, s2)
	r.Init()

	r.Select(1)
	r.Select(0)
	r.Select(1)

	if r.Active().Title() != "Results" {
		t.Errorf("expected active 'Results', got %q", r.Active().Title())
	}
	if s2.initRuns != 1 {
		t.Errorf("expected Init to run once, got %d", s2.initRuns)
	}
}

func TestSelectOutOfRange(t *testing.T) {
	r := New(&stubScreen{title: "Input"})
	r.Select(3)
	r.Select(-1)
	if r.ActiveIndex() != 0 {
		t.Errorf("expected active 0, got %d", r.ActiveIndex())
	}
}

func TestNextPrevWrap(t *testing.T) {
	r := New(&stubScreen{title: "Input"}, &stubScreen{title: "Results"})

	r.Next()
	if r.ActiveIndex() != 1 {
		t.Errorf("expected 1, got %d", r.ActiveIndex())
	}
	r.Next()
	if r.ActiveIndex() != 0 {
		t.Errorf("expected wrap to 0, got %d", r.ActiveIndex())
	}
	r.Prev()
	if r.ActiveIndex() != 1 {
		t.Errorf("expected wrap to 1, got %d", r.ActiveIndex())
	}
}

func TestSwitchTabMsg(t *testing.T) {
	r := New(&stubScreen{title: "Input"}, &stubScreen{title: "Results"})
	r.Update(SwitchTabMsg{Index: 1})
	if r.Active().Title() != "Results" {
		t.Errorf("expected active 'Results', got %q", r.Active().Title())
	}
}

func TestUpdateGoesToActiveTabOnly(t *testing.T) {
	s1 := &stubScreen{title: "Input"}
	s2 := &stubScreen{title: "Results"}
	r := New(s1, s2)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if s1.updates != 1 || s2.updates != 0 {
		t.Errorf("expected only active tab updated, got %d/%d", s1.updates, s2.updates)
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "Input"}
	r := New(s1, &stubScreen{title: "Results"})

	s3 := &stubScreen{title: "Error"}
	r.Update(ReplaceScreenMsg{Screen: s3})

	if r.Len() != 2 {
		t.Errorf("expected 2 tabs after replace, got %d", r.Len())
	}
	if r.Active().Title() != "Error" {
		t.Errorf("expected active 'Error', got %q", r.Active().Title())
	}
	if s3.initRuns != 1 {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
	names := r.Names()
	if names[0] != "Error" || names[1] != "Results" {
		t.Errorf("unexpected names %v", names)
	}
}

package app

import (
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/passpredict/internal/inference"
	"github.com/abhisek/passpredict/internal/profile"
	"github.com/abhisek/passpredict/internal/router"
	"github.com/abhisek/passpredict/internal/screen"
	"github.com/abhisek/passpredict/internal/screens/fatal"
	"github.com/abhisek/passpredict/internal/screens/form"
	"github.com/abhisek/passpredict/internal/screens/results"
	"github.com/abhisek/passpredict/internal/ui/layout"
)

// Options configures the terminal UI.
type Options struct {
	// Service is nil when the model failed to load; LoadErr then says why.
	Service *inference.Service
	LoadErr error

	// ReportDir receives saved reports.
	ReportDir string

	// Initial optionally pre-fills the form.
	Initial *profile.StudentProfile

	Logger *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel builds the two data tabs, or the single fatal tab when
// there is no usable model.
func newAppModel(opts Options) (AppModel, error) {
	if opts.Service == nil {
		err := opts.LoadErr
		if err == nil {
			err = errors.New("no prediction model configured")
		}
		return AppModel{router: router.New(fatal.New(err))}, nil
	}

	input := form.New()
	if opts.Initial != nil {
		if err := input.Load(opts.Initial); err != nil {
			return AppModel{}, fmt.Errorf("initial profile: %w", err)
		}
	}
	output := results.New(opts.Service, input.Profile, opts.ReportDir, opts.Logger)

	return AppModel{router: router.New(input, output)}, nil
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturesInput()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if !m.capturing() {
				return m, tea.Quit
			}
		case "f1":
			return m, m.router.Select(0)
		case "f2":
			return m, m.router.Select(1)
		case "ctrl+right":
			return m, m.router.Next()
		case "ctrl+left":
			return m, m.router.Prev()
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	header := layout.RenderHeader(m.router.Names(), m.router.ActiveIndex(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "F1/F2", Description: "Tabs"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/passpredict/internal/ui/theme"
)

// ActionButton triggers one asynchronous action on enter and stays
// disabled until the caller reports the action finished with Done.
type ActionButton struct {
	Label     string
	BusyLabel string
	Run       func() tea.Cmd

	busy bool
}

func NewActionButton(label, busyLabel string, run func() tea.Cmd) ActionButton {
	return ActionButton{Label: label, BusyLabel: busyLabel, Run: run}
}

// Busy reports whether the action is still running.
func (b ActionButton) Busy() bool { return b.busy }

// Done re-enables the button.
func (b *ActionButton) Done() { b.busy = false }

func (b ActionButton) Update(msg tea.Msg) (ActionButton, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || kmsg.String() != "enter" || b.busy || b.Run == nil {
		return b, nil
	}
	cmd := b.Run()
	b.busy = cmd != nil
	return b, cmd
}

func (b ActionButton) View() string {
	if b.busy {
		return theme.ButtonInactive.Render("… " + b.BusyLabel)
	}
	return theme.ButtonActive.Render("▸ " + b.Label)
}

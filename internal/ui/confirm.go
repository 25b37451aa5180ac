package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// confirmAction identifies what a confirm prompt will trigger.
type confirmAction int

const (
	confirmDeleteConfig confirmAction = iota
	confirmRunConfig
)

// confirmPrompt is a blocking yes/no modal guarding destructive or
// job-triggering actions.
type confirmPrompt struct {
	action confirmAction
	id     int64
	prompt string
}

func (m Model) renderConfirm() string {
	styles := m.theme.Styles()
	body := styles.Text.Render(m.confirm.prompt) + "\n\n" +
		styles.MutedText.Render("y/enter confirm · n/esc cancel")
	frame := styles.ModalBorder.Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
}

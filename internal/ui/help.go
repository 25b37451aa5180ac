package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp draws the key binding overlay. Any key closes it.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Global", [][2]string{
			{"1-4", "Switch tab"},
			{"tab/shift+tab", "Cycle tabs"},
			{"R", "Reload active tab"},
			{"T", "Cycle theme"},
			{"?", "Toggle help"},
			{"q / ctrl+c", "Quit"},
		}},
		{"Posts", [][2]string{
			{"j/k", "Move"},
			{"enter", "Open detail"},
			{"h/l or ←/→", "Change page"},
			{"m", "Matched only"},
			{"s", "Switch pane"},
			{"/", "Filter groups"},
			{"a", "All groups"},
		}},
		{"Configs", [][2]string{
			{"n", "New config"},
			{"e/enter", "Edit"},
			{"d", "Delete (confirm)"},
			{"r", "Run crawler (confirm)"},
		}},
		{"Bot", [][2]string{
			{"t", "Enable/disable"},
			{"e", "LLM settings"},
			{"p", "Reply policy"},
			{"x", "Test reply"},
		}},
		{"Errors", [][2]string{
			{"enter", "Expand details"},
			{"y", "Copy log"},
			{"C", "Clear log"},
		}},
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Render("Key bindings"))
	b.WriteString("\n")
	for _, section := range sections {
		b.WriteString("\n")
		b.WriteString(styles.InfoText.Render(section.title))
		b.WriteString("\n")
		for _, kv := range section.keys {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				styles.AccentText.Render(fmt.Sprintf("%-14s", kv[0])),
				styles.MutedText.Render(kv[1]),
			))
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("press any key to close"))

	frame := styles.ModalBorder.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
}

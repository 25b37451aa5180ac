package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var tabLabels = map[Tab]string{
	TabPosts:  "1 Posts",
	TabConfig: "2 Configs",
	TabBot:    "3 Bot",
	TabErrors: "4 Errors",
}

// renderHeader draws the title line with the aggregate stats and the tab
// bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	title := styles.Title.Render("douban-console")

	stats := ""
	if m.hasStats {
		stats = styles.MutedText.Render(fmt.Sprintf(
			"groups %d · posts %d · comments %d", m.stats.Groups, m.stats.Posts, m.stats.Comments,
		))
	}

	tabs := make([]string, 0, int(tabCount))
	for tab := TabPosts; tab < tabCount; tab++ {
		label := tabLabels[tab]
		if tab == TabErrors && m.errView.unseen {
			label += " !"
		}
		if tab == m.tab {
			tabs = append(tabs, styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, styles.TabInactive.Render(label))
		}
	}

	left := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", stats)
	right := lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderFooter draws the transient notice and the key hints for the active
// tab.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	if m.notice != "" {
		return styles.WarningText.Padding(0, 1).Render(m.notice)
	}

	var hints string
	switch m.tab {
	case TabPosts:
		hints = "j/k move · enter open · h/l page · m matched · s pane · / filter · a all groups · tab switch · ? help"
	case TabConfig:
		hints = "j/k move · n new · e edit · d delete · r run · R reload · tab switch · ? help"
	case TabBot:
		hints = "t toggle · e LLM · p policy · x test · R reload · tab switch · ? help"
	case TabErrors:
		hints = "j/k move · enter details · y copy · C clear · tab switch · ? help"
	}
	return styles.Footer.Render(hints)
}

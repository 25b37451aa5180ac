package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/LLZ-DinosaurEgg/douban-console/internal/api"
)

// groupsState drives the group sidebar: the crawled group list, the
// incremental filter and the visual selection.
type groupsState struct {
	items   []api.Group
	loading bool
	failed  bool

	filter    textinput.Model
	filtering bool
	selected  int

	// autoSelect arms the one-time jump to the first group once the initial
	// list arrives. Any group choice made before that, including "all
	// groups", disarms it.
	autoSelect bool
}

func newGroupsState() groupsState {
	filter := textinput.New()
	filter.Placeholder = "filter groups"
	filter.CharLimit = 64
	return groupsState{filter: filter, loading: true, autoSelect: true}
}

// entryText is the full rendered text of one sidebar entry; the filter
// matches against it, so member counts are searchable too.
func groupEntryText(g api.Group) string {
	return fmt.Sprintf("%s  members: %d", g.Name, g.MemberCount)
}

// visible returns the groups whose rendered text contains the filter,
// case-insensitively.
func (g groupsState) visible() []api.Group {
	keyword := strings.ToLower(strings.TrimSpace(g.filter.Value()))
	if keyword == "" {
		return g.items
	}
	var out []api.Group
	for _, item := range g.items {
		if strings.Contains(strings.ToLower(groupEntryText(item)), keyword) {
			out = append(out, item)
		}
	}
	return out
}

// clampSelection keeps the cursor on a real entry after filtering changes.
func (g *groupsState) clampSelection() {
	visible := g.visible()
	if len(visible) == 0 {
		g.selected = 0
		return
	}
	if g.selected >= len(visible) {
		g.selected = len(visible) - 1
	}
	if g.selected < 0 {
		g.selected = 0
	}
}

// renderGroups draws the sidebar. Exactly one entry is active at a time,
// matching the currently selected group; the loading placeholder stays
// visible regardless of the filter.
func (m Model) renderGroups(width, height int) string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.AccentText.Render("Groups"))
	b.WriteString("\n")

	if m.groups.filtering || m.groups.filter.Value() != "" {
		b.WriteString(m.groups.filter.View())
		b.WriteString("\n")
	}

	switch {
	case m.groups.loading:
		b.WriteString(styles.MutedText.Render("loading..."))
	case m.groups.failed:
		b.WriteString(styles.DangerText.Render("load failed"))
	case len(m.groups.items) == 0:
		b.WriteString(styles.MutedText.Render("no groups yet"))
	default:
		all := "All groups"
		if m.posts.groupID == "" {
			all = styles.Selected.Render(" " + all + " ")
		} else {
			all = styles.MutedText.Render(all)
		}
		b.WriteString(all)
		b.WriteString("\n")

		for i, g := range m.groups.visible() {
			line := truncateContent(groupEntryText(g), width-4)
			switch {
			case g.ID == m.posts.groupID:
				line = styles.Selected.Render(" " + line + " ")
			case m.groups.selected == i && m.focusGroups:
				line = styles.AccentText.Render("> " + line)
			default:
				line = styles.Text.Render("  " + line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	pane := styles.PaneBorder
	if m.focusGroups {
		pane = styles.PaneBorderFocus
	}
	return pane.Width(width).Height(height).Render(b.String())
}

package ui

import (
	"fmt"
	"strings"
)

// errorsViewState drives the error log tab: newest-first entries with
// per-entry collapsible detail blobs.
type errorsViewState struct {
	selected int
	// expanded is keyed by entry sequence number, not display index; the
	// newest-first positions shift on every append.
	expanded map[uint64]bool
	// unseen marks appends that happened while another tab was active; the
	// tab label carries a marker until the operator looks.
	unseen bool
}

func newErrorsViewState() errorsViewState {
	return errorsViewState{expanded: map[uint64]bool{}}
}

func (e *errorsViewState) clampSelection(n int) {
	if n == 0 {
		e.selected = 0
		return
	}
	if e.selected >= n {
		e.selected = n - 1
	}
	if e.selected < 0 {
		e.selected = 0
	}
}

// renderErrors draws the buffered failures, most recent first.
func (m Model) renderErrors(width, height int) string {
	styles := m.theme.Styles()
	entries := m.errs.Entries()
	var b strings.Builder

	b.WriteString(styles.AccentText.Render(fmt.Sprintf("Error log (%d)", len(entries))))
	b.WriteString("  ")
	b.WriteString(styles.MutedText.Render("enter details · y copy · C clear"))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(styles.MutedText.Render("no errors recorded"))
	}

	for i, entry := range entries {
		line := fmt.Sprintf("[%s] %s", entry.Time.Format("15:04:05"), entry.Message)
		if i == m.errView.selected {
			b.WriteString(styles.Selected.Render(" " + truncateContent(line, width-6) + " "))
		} else {
			b.WriteString(styles.Text.Render(truncateContent(line, width-4)))
		}
		b.WriteString("\n")
		if m.errView.expanded[entry.Seq] && entry.Details != "" {
			for _, detailLine := range strings.Split(entry.Details, "\n") {
				b.WriteString(styles.FaintText.Render("    " + truncateContent(detailLine, width-8)))
				b.WriteString("\n")
			}
		}
	}

	return styles.PaneBorderFocus.Width(width).Height(height).Render(b.String())
}

package ui

import "strconv"

// pageEntryKind distinguishes the elements of the pagination control.
type pageEntryKind int

const (
	pagePrev pageEntryKind = iota
	pageNext
	pageNumber
	pageGap
)

// pageEntry is one element of the rendered pagination control.
type pageEntry struct {
	kind     pageEntryKind
	label    string
	page     int
	current  bool
	disabled bool
}

// paginationEntries builds the pagination control: a window of page buttons
// centered on the current page with radius 2, first and last page always
// reachable with ellipsis gaps, and prev/next disabled at the bounds. A
// single-page result set renders no control at all.
func paginationEntries(page, pages int) []pageEntry {
	if pages <= 1 {
		return nil
	}

	entries := []pageEntry{{
		kind:     pagePrev,
		label:    "Prev",
		page:     page - 1,
		disabled: page <= 1,
	}}

	start := max(1, page-2)
	end := min(pages, page+2)

	if start > 1 {
		entries = append(entries, pageEntry{kind: pageNumber, label: "1", page: 1})
		if start > 2 {
			entries = append(entries, pageEntry{kind: pageGap, label: "..."})
		}
	}

	for i := start; i <= end; i++ {
		entries = append(entries, pageEntry{
			kind:    pageNumber,
			label:   strconv.Itoa(i),
			page:    i,
			current: i == page,
		})
	}

	if end < pages {
		if end < pages-1 {
			entries = append(entries, pageEntry{kind: pageGap, label: "..."})
		}
		entries = append(entries, pageEntry{kind: pageNumber, label: strconv.Itoa(pages), page: pages})
	}

	entries = append(entries, pageEntry{
		kind:     pageNext,
		label:    "Next",
		page:     page + 1,
		disabled: page >= pages,
	})

	return entries
}

// renderPagination draws the control for the footer of the post list.
func (m Model) renderPagination(page, pages int) string {
	entries := paginationEntries(page, pages)
	if entries == nil {
		return ""
	}

	styles := m.theme.Styles()
	out := ""
	for i, e := range entries {
		if i > 0 {
			out += " "
		}
		switch {
		case e.current:
			out += m.theme.Styles().Selected.Render(" " + e.label + " ")
		case e.disabled:
			out += styles.FaintText.Render(e.label)
		case e.kind == pageGap:
			out += styles.MutedText.Render(e.label)
		default:
			out += styles.Text.Render(e.label)
		}
	}
	return out
}

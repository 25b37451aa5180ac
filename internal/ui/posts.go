package ui

import (
	"fmt"
	"strings"

	"github.com/LLZ-DinosaurEgg/douban-console/internal/api"
)

// postsState drives the paginated post list for the selected group. The
// token marks the most recent fetch; responses carrying an older token are
// stale and get discarded.
type postsState struct {
	groupID   string
	groupName string

	page          int
	pageSize      int
	filterMatched bool

	items      []api.Post
	pagination api.Pagination
	loading    bool
	failed     bool

	token    uint64
	selected int
	window   int // first visible card index
}

func newPostsState(pageSize int) postsState {
	return postsState{page: 1, pageSize: pageSize, loading: true}
}

// visibleItems applies the matched-only filter to the fetched page. The
// filter is strictly client-side: pagination metadata keeps reporting the
// unfiltered server-side totals.
func (p postsState) visibleItems() []api.Post {
	if !p.filterMatched {
		return p.items
	}
	var out []api.Post
	for _, post := range p.items {
		if post.IsMatched {
			out = append(out, post)
		}
	}
	return out
}

func (p *postsState) clampSelection() {
	n := len(p.visibleItems())
	if n == 0 {
		p.selected = 0
		p.window = 0
		return
	}
	if p.selected >= n {
		p.selected = n - 1
	}
	if p.selected < 0 {
		p.selected = 0
	}
}

// cardLines is the fixed height of one rendered post card, separator
// included; the list windows by it to keep the selection visible.
const cardLines = 4

func (p *postsState) scrollTo(visibleCards int) {
	if visibleCards < 1 {
		visibleCards = 1
	}
	if p.selected < p.window {
		p.window = p.selected
	}
	if p.selected >= p.window+visibleCards {
		p.window = p.selected - visibleCards + 1
	}
}

// selectGroup switches the active group, resets to the first page and starts
// a fresh fetch.
func (m *Model) selectGroup(id, name string) {
	m.groups.autoSelect = false
	m.posts.groupID = id
	m.posts.groupName = name
	m.posts.page = 1
	m.posts.selected = 0
	m.posts.window = 0
	m.reloadPosts()
}

// goToPage moves within pagination bounds and reloads; the list scrolls back
// to the top of the new page. It reports whether the page actually changed.
func (m *Model) goToPage(page int) bool {
	if page < 1 || (m.posts.pagination.Pages > 0 && page > m.posts.pagination.Pages) {
		return false
	}
	m.posts.page = page
	m.posts.selected = 0
	m.posts.window = 0
	m.reloadPosts()
	return true
}

// reloadPosts bumps the slot token and marks the pane loading; the Update
// loop issues the fetch command.
func (m *Model) reloadPosts() {
	m.posts.token++
	m.posts.loading = true
	m.posts.failed = false
}

// renderPosts draws the post list pane with its pagination control.
func (m Model) renderPosts(width, height int) string {
	styles := m.theme.Styles()
	var b strings.Builder

	title := "Posts"
	if m.posts.groupName != "" {
		title = "Posts · " + m.posts.groupName
	}
	if m.posts.filterMatched {
		title += "  [matched only]"
	}
	b.WriteString(styles.AccentText.Render(title))
	b.WriteString("\n")

	switch {
	case m.posts.loading:
		b.WriteString(styles.MutedText.Render("loading..."))
	case m.posts.failed:
		b.WriteString(styles.DangerText.Render("load failed"))
	default:
		items := m.posts.visibleItems()
		if len(items) == 0 {
			b.WriteString(styles.MutedText.Render("no posts"))
			break
		}

		visibleCards := max(1, (height-4)/cardLines)
		start := m.posts.window
		end := min(len(items), start+visibleCards)
		for i := start; i < end; i++ {
			b.WriteString(m.renderPostCard(items[i], i == m.posts.selected, width-4))
		}
	}

	// Pagination reflects the unfiltered server-side window even when the
	// matched filter hides cards.
	if !m.posts.loading && !m.posts.failed {
		if control := m.renderPagination(m.posts.pagination.Page, m.posts.pagination.Pages); control != "" {
			b.WriteString("\n")
			b.WriteString(control)
		}
		if m.posts.pagination.Total > 0 {
			b.WriteString("\n")
			b.WriteString(styles.MutedText.Render(fmt.Sprintf(
				"showing %d of %d total (page %d/%d)",
				len(m.posts.visibleItems()), m.posts.pagination.Total,
				m.posts.pagination.Page, m.posts.pagination.Pages,
			)))
		}
	}

	pane := styles.PaneBorder
	if !m.focusGroups {
		pane = styles.PaneBorderFocus
	}
	return pane.Width(width).Height(height).Render(b.String())
}

// renderPostCard draws one post card: title, meta line with badges, content
// preview truncated to 200 runes, keyword chips.
func (m Model) renderPostCard(post api.Post, selected bool, width int) string {
	styles := m.theme.Styles()
	var b strings.Builder

	title := truncateContent(post.Title, width)
	if selected {
		b.WriteString(styles.Selected.Render(" " + title + " "))
	} else {
		b.WriteString(styles.Text.Render(title))
	}
	b.WriteString("\n")

	meta := fmt.Sprintf("%s · %s", ternary(post.Author.Name != "", post.Author.Name, "unknown"), formatDate(post.Created))
	b.WriteString(styles.MutedText.Render(meta))
	if post.IsMatched {
		b.WriteString(" ")
		b.WriteString(styles.MatchedBadge.Render("matched"))
	}
	if post.BotReplied {
		b.WriteString(" ")
		b.WriteString(styles.BotBadge.Render("bot replied"))
	}
	b.WriteString("\n")

	preview := truncateContent(post.Content, previewLimit)
	if preview != "" {
		b.WriteString(styles.FaintText.Render(truncateContent(strings.ReplaceAll(preview, "\n", " "), width)))
	}
	b.WriteString("\n")

	if len(post.KeywordList) > 0 {
		chips := make([]string, 0, len(post.KeywordList))
		for _, kw := range post.KeywordList {
			chips = append(chips, styles.Chip.Render(kw))
		}
		b.WriteString(strings.Join(chips, " "))
	}
	b.WriteString("\n")

	return b.String()
}

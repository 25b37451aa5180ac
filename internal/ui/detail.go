package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/LLZ-DinosaurEgg/douban-console/internal/api"
)

// detailState drives the post detail overlay. The post and comment fetches
// are independent failure domains: a failed comment fetch degrades to an
// empty thread, a failed post fetch replaces the whole overlay with a
// failure placeholder. The token discards responses that arrive for an
// overlay that has been closed or re-targeted in the meantime.
type detailState struct {
	open   bool
	postID string
	token  uint64

	post     api.Post
	hasPost  bool
	postErr  bool
	comments []api.Comment
	pending  int // outstanding fetches

	vp      viewport.Model
	vpReady bool
}

// openDetail shows the overlay with a loading placeholder and fires both
// fetches concurrently.
func (m *Model) openDetail(postID string) {
	m.detail.open = true
	m.detail.postID = postID
	m.detail.token++
	m.detail.post = api.Post{}
	m.detail.hasPost = false
	m.detail.postErr = false
	m.detail.comments = nil
	m.detail.pending = 2
}

// closeDetail hides the overlay. In-flight fetches are not cancelled; their
// stale responses are dropped by the token check.
func (m *Model) closeDetail() {
	m.detail.open = false
	m.detail.token++
}

func (m *Model) syncDetailViewport() {
	if !m.detail.vpReady {
		return
	}
	m.detail.vp.SetContent(m.detailContent())
	m.detail.vp.GotoTop()
}

// renderDetail draws the overlay centered on the screen.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()

	var body string
	switch {
	case m.detail.postErr:
		body = styles.DangerText.Render("load failed")
	case !m.detail.hasPost && m.detail.pending > 0:
		body = styles.MutedText.Render("loading...")
	default:
		body = m.detail.vp.View()
	}

	frame := styles.ModalBorder.Width(m.detailWidth()).Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
}

func (m Model) detailWidth() int {
	return min(96, max(40, m.width-10))
}

func (m Model) detailHeight() int {
	return max(8, m.height-8)
}

// detailContent renders the full post: untruncated content, badges, keyword
// chips, the bot reply when present, the outbound link, and the comment
// thread or an explicit empty state.
func (m Model) detailContent() string {
	styles := m.theme.Styles()
	p := m.detail.post
	var b strings.Builder

	b.WriteString(styles.AccentText.Render(p.Title))
	b.WriteString("\n")

	meta := fmt.Sprintf("by %s · created %s · updated %s",
		ternary(p.Author.Name != "", p.Author.Name, "unknown"),
		formatDate(p.Created), formatDate(p.Updated))
	b.WriteString(styles.MutedText.Render(meta))
	if p.IsMatched {
		b.WriteString(" ")
		b.WriteString(styles.MatchedBadge.Render("matched"))
	}
	if p.BotReplied {
		b.WriteString(" ")
		b.WriteString(styles.BotBadge.Render("bot replied"))
	}
	b.WriteString("\n")

	if len(p.KeywordList) > 0 {
		chips := make([]string, 0, len(p.KeywordList))
		for _, kw := range p.KeywordList {
			chips = append(chips, styles.Chip.Render(kw))
		}
		b.WriteString(strings.Join(chips, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Text.Render(ternary(p.Content != "", p.Content, "no content")))
	b.WriteString("\n")

	if p.BotReplied && p.BotReplyContent != "" {
		b.WriteString("\n")
		b.WriteString(styles.InfoText.Render("Bot reply · " + formatDate(p.BotReplyAt)))
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(p.BotReplyContent))
		b.WriteString("\n")
	}

	if p.Alt != "" {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("original: " + p.Alt))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if len(m.detail.comments) == 0 {
		b.WriteString(styles.MutedText.Render("No comments"))
	} else {
		b.WriteString(styles.AccentText.Render(fmt.Sprintf("Comments (%d)", len(m.detail.comments))))
		for _, c := range m.detail.comments {
			b.WriteString("\n\n")
			b.WriteString(styles.Text.Render(ternary(c.Author.Name != "", c.Author.Name, "anonymous")))
			b.WriteString("\n")
			b.WriteString(styles.Text.Render(c.Content))
			b.WriteString("\n")
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("%s · likes: %d", formatDate(c.Created), c.LikeCount)))
		}
	}

	return b.String()
}

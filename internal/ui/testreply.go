package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LLZ-DinosaurEgg/douban-console/internal/api"
)

// Field order inside the test reply form.
const (
	tfTitle = iota
	tfContent
	tfGroupID
)

// testReplyForm drives the live reply simulation: the operator supplies a
// hypothetical post and the backend generates what the bot would answer.
// Nothing is persisted on either side.
type testReplyForm struct {
	*form
	busy  bool
	reply string
}

func newTestReplyForm(groupID string) *testReplyForm {
	fields := []formField{
		textField("Post title", "", "required"),
		textField("Post content", "", "required"),
		textField("Group ID (optional, for style learning)", groupID, ""),
	}
	return &testReplyForm{form: newForm("Test reply generation", fields)}
}

// request validates the mandatory fields before anything is sent.
func (f *testReplyForm) request() (api.TestReplyRequest, bool) {
	f.errMsg = ""
	if f.value(tfTitle) == "" || f.value(tfContent) == "" {
		f.errMsg = "title and content are required"
		return api.TestReplyRequest{}, false
	}
	return api.TestReplyRequest{
		Title:   f.value(tfTitle),
		Content: f.value(tfContent),
		GroupID: f.value(tfGroupID),
	}, true
}

// update wraps the shared form update: while a generation is in flight the
// trigger is disabled, and once a reply arrived enter closes, y copies.
func (f *testReplyForm) update(msg tea.KeyMsg) (submitted, cancelled bool, cmd tea.Cmd) {
	if f.busy {
		if msg.String() == "esc" {
			return false, true, nil
		}
		return false, false, nil
	}
	if f.reply != "" {
		switch msg.String() {
		case "esc", "enter":
			return false, true, nil
		case "y":
			return false, false, copyToClipboard("generated reply", f.reply)
		}
		return false, false, nil
	}
	return f.form.update(msg)
}

// render shows the form, the busy label, or the generated reply.
func (f *testReplyForm) render(theme Theme, width, height int) string {
	if !f.busy && f.reply == "" {
		return f.form.render(theme, width, height)
	}

	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(styles.AccentText.Render("Test reply generation"))
	b.WriteString("\n\n")
	if f.busy {
		b.WriteString(styles.MutedText.Render("generating..."))
	} else {
		b.WriteString(styles.Text.Render(f.reply))
		b.WriteString("\n\n")
		b.WriteString(styles.MutedText.Render("y copy · enter/esc close"))
	}

	frame := styles.ModalBorder.Width(min(72, max(40, width-10))).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, frame)
}

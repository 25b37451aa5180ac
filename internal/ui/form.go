package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formField is one entry of a modal form: either a text input or a
// space-toggled boolean.
type formField struct {
	label   string
	input   textinput.Model
	isBool  bool
	boolVal bool
}

func textField(label, value, placeholder string) formField {
	in := textinput.New()
	in.SetValue(value)
	in.Placeholder = placeholder
	in.CharLimit = 512
	return formField{label: label, input: in}
}

func boolField(label string, value bool) formField {
	return formField{label: label, isBool: true, boolVal: value}
}

// form is the shared scaffolding for the console's modal forms: focus
// cycling, field editing, and rendering. Submission and cancellation are
// reported back to the owner, which builds the request body.
type form struct {
	title  string
	fields []formField
	focus  int
	errMsg string
}

func newForm(title string, fields []formField) *form {
	f := &form{title: title, fields: fields}
	f.applyFocus()
	return f
}

func (f *form) applyFocus() {
	for i := range f.fields {
		if f.fields[i].isBool {
			continue
		}
		if i == f.focus {
			f.fields[i].input.Focus()
		} else {
			f.fields[i].input.Blur()
		}
	}
}

func (f *form) next() {
	f.focus = (f.focus + 1) % len(f.fields)
	f.applyFocus()
}

func (f *form) prev() {
	f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
	f.applyFocus()
}

// update processes one key event. It reports submitted=true on enter and
// cancelled=true on escape; everything else edits the focused field.
func (f *form) update(msg tea.KeyMsg) (submitted, cancelled bool, cmd tea.Cmd) {
	switch msg.String() {
	case "esc":
		return false, true, nil
	case "enter":
		return true, false, nil
	case "tab", "down":
		f.next()
		return false, false, nil
	case "shift+tab", "up":
		f.prev()
		return false, false, nil
	}

	field := &f.fields[f.focus]
	if field.isBool {
		if msg.String() == " " {
			field.boolVal = !field.boolVal
		}
		return false, false, nil
	}
	field.input, cmd = field.input.Update(msg)
	return false, false, cmd
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

func (f *form) boolValue(i int) bool {
	return f.fields[i].boolVal
}

// render draws the form centered as a modal overlay.
func (f *form) render(theme Theme, width, height int) string {
	styles := theme.Styles()
	var b strings.Builder

	b.WriteString(styles.AccentText.Render(f.title))
	b.WriteString("\n\n")

	for i, field := range f.fields {
		label := field.label
		if i == f.focus {
			b.WriteString(styles.AccentText.Render("> " + label))
		} else {
			b.WriteString(styles.MutedText.Render("  " + label))
		}
		b.WriteString("\n  ")
		if field.isBool {
			b.WriteString(styles.Text.Render("[" + ternary(field.boolVal, "x", " ") + "] (space toggles)"))
		} else {
			b.WriteString(field.input.View())
		}
		b.WriteString("\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.DangerText.Render(f.errMsg))
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("enter save · esc cancel · tab next field"))

	frame := styles.ModalBorder.Width(min(72, max(40, width-10))).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, frame)
}

// splitKeywords turns a comma-separated input into a trimmed list, dropping
// empties.
func splitKeywords(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

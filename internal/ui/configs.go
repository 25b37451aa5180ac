package ui

import (
	"fmt"
	"strings"

	"github.com/LLZ-DinosaurEgg/douban-console/internal/api"
)

// configsState drives the crawler configuration tab.
type configsState struct {
	items    []api.CrawlerConfig
	loading  bool
	failed   bool
	selected int

	form *configForm
}

func (c *configsState) clampSelection() {
	if len(c.items) == 0 {
		c.selected = 0
		return
	}
	if c.selected >= len(c.items) {
		c.selected = len(c.items) - 1
	}
	if c.selected < 0 {
		c.selected = 0
	}
}

func (c configsState) selectedConfig() (api.CrawlerConfig, bool) {
	if c.selected < 0 || c.selected >= len(c.items) {
		return api.CrawlerConfig{}, false
	}
	return c.items[c.selected], true
}

// renderConfigs draws one card per crawler config with its derived display
// fields.
func (m Model) renderConfigs(width, height int) string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.AccentText.Render("Crawler configurations"))
	b.WriteString("  ")
	b.WriteString(styles.MutedText.Render("n new · e edit · d delete · r run"))
	b.WriteString("\n\n")

	switch {
	case m.configs.loading:
		b.WriteString(styles.MutedText.Render("loading..."))
	case m.configs.failed:
		b.WriteString(styles.DangerText.Render("load failed"))
	case len(m.configs.items) == 0:
		b.WriteString(styles.MutedText.Render("no configurations yet — press n to add one"))
	default:
		for i, cfg := range m.configs.items {
			b.WriteString(m.renderConfigCard(cfg, i == m.configs.selected, width-4))
			b.WriteString("\n")
		}
	}

	return styles.PaneBorderFocus.Width(width).Height(height).Render(b.String())
}

func (m Model) renderConfigCard(cfg api.CrawlerConfig, selected bool, width int) string {
	styles := m.theme.Styles()
	var b strings.Builder

	name := cfg.Name
	if selected {
		name = styles.Selected.Render(" " + name + " ")
	} else {
		name = styles.Text.Render(name)
	}
	b.WriteString(name)
	b.WriteString("  ")
	if cfg.Enabled {
		b.WriteString(styles.SuccessText.Render(glyph(true) + " enabled"))
	} else {
		b.WriteString(styles.MutedText.Render(glyph(false) + " disabled"))
	}
	b.WriteString("\n")

	b.WriteString(styles.MutedText.Render(truncateContent(fmt.Sprintf(
		"group: %s (%s)", cfg.GroupURL, ternary(cfg.GroupID != "", cfg.GroupID, "-"),
	), width)))
	b.WriteString("\n")

	b.WriteString(styles.MutedText.Render(truncateContent(fmt.Sprintf(
		"keywords: %s · exclude: %s", joinOrNone(cfg.Keywords), joinOrNone(cfg.ExcludeKeywords),
	), width)))
	b.WriteString("\n")

	b.WriteString(styles.MutedText.Render(fmt.Sprintf(
		"pages: %d · sleep: %ds · comments: %s · cookie: %s · created %s",
		cfg.Pages, cfg.SleepSeconds, glyph(cfg.CrawlComments),
		ternary(cfg.HasCookie, "stored", "-"), formatDate(cfg.CreatedAt),
	)))
	b.WriteString("\n")

	return b.String()
}

package ui

import (
	"fmt"
	"strings"

	"github.com/LLZ-DinosaurEgg/douban-console/internal/api"
)

// botState drives the auto-reply bot tab: the singleton configuration
// display, the two sub-forms and the test-reply modal.
type botState struct {
	cfg     api.BotConfig
	loaded  bool
	loading bool
	failed  bool

	toggling bool

	llmForm    *botLLMForm
	policyForm *botPolicyForm
	test       *testReplyForm
}

// renderBot draws the bot configuration summary with its derived display
// values.
func (m Model) renderBot(width, height int) string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.AccentText.Render("Reply bot"))
	b.WriteString("  ")
	b.WriteString(styles.MutedText.Render("t toggle · e LLM settings · p reply policy · x test reply"))
	b.WriteString("\n\n")

	switch {
	case m.bot.loading && !m.bot.loaded:
		b.WriteString(styles.MutedText.Render("loading..."))
	case m.bot.failed && !m.bot.loaded:
		b.WriteString(styles.DangerText.Render("load failed"))
	default:
		cfg := m.bot.cfg

		status := styles.DangerText.Render(glyph(false) + " disabled")
		if cfg.Enabled {
			status = styles.SuccessText.Render(glyph(true) + " enabled")
		}
		if m.bot.toggling {
			status = styles.MutedText.Render("toggling...")
		}
		b.WriteString(styles.Text.Render("Auto-reply: "))
		b.WriteString(status)
		b.WriteString("\n\n")

		b.WriteString(styles.AccentText.Render("LLM settings"))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(fmt.Sprintf(
			"  api: %s (%s) · model: %s", cfg.APIType, ternary(cfg.APIBase != "", cfg.APIBase, "-"), cfg.Model,
		)))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(fmt.Sprintf(
			"  temperature: %.1f · max tokens: %d · api key: %s",
			cfg.Temperature, cfg.MaxTokens, ternary(cfg.HasAPIKey, "stored", "not set"),
		)))
		b.WriteString("\n\n")

		b.WriteString(styles.AccentText.Render("Reply policy"))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(fmt.Sprintf(
			"  keywords: %s", joinOrNone(cfg.ReplyKeywords),
		)))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(fmt.Sprintf(
			"  delay: %d-%ds · speed: %.2fx (%s) · check every %s",
			cfg.MinReplyDelay, cfg.MaxReplyDelay,
			cfg.ReplySpeedMultiplier, speedLabel(cfg.ReplySpeedMultiplier),
			formatCheckInterval(cfg.ReplyCheckInterval),
		)))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(fmt.Sprintf(
			"  style learning: %s (history: %d posts, %d comments) · cookie: %s",
			glyph(cfg.EnableStyleLearning), cfg.MaxHistoryPosts, cfg.MaxHistoryComments,
			ternary(cfg.HasCookie, "stored", "not set"),
		)))
		b.WriteString("\n")
		if cfg.CustomPrompt != "" {
			b.WriteString(styles.MutedText.Render("  custom prompt: " + truncateContent(cfg.CustomPrompt, width-20)))
			b.WriteString("\n")
		}
	}

	return styles.PaneBorderFocus.Width(width).Height(height).Render(b.String())
}

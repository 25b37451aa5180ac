package ui

import (
	"fmt"
	"strings"

	"github.com/LLZ-DinosaurEgg/douban-console/internal/api"
)

const previewLimit = 200

// formatDate renders a backend timestamp for display. Unparseable but
// non-empty values are shown as-is, empty values as a dash.
func formatDate(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	t := api.ParseTime(value)
	if t.IsZero() {
		return value
	}
	return t.Format("2006-01-02 15:04")
}

// truncateContent cuts content to limit runes and appends an ellipsis marker
// when anything was dropped. The detail view shows content untruncated; only
// list previews pass through here.
func truncateContent(value string, limit int) string {
	runes := []rune(value)
	if limit <= 0 || len(runes) <= limit {
		return value
	}
	return string(runes[:limit]) + "..."
}

// joinOrNone renders a keyword list for display.
func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}

// glyph renders a boolean flag the way the dashboard does.
func glyph(enabled bool) string {
	if enabled {
		return "✓"
	}
	return "✗"
}

// speedLabel classifies the bot's reply speed multiplier.
func speedLabel(multiplier float64) string {
	switch {
	case multiplier < 1.0:
		return "fast mode"
	case multiplier > 1.0:
		return "slow mode"
	default:
		return "normal"
	}
}

// formatCheckInterval renders a check interval in seconds, switching to
// minutes+seconds at a minute or more.
func formatCheckInterval(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm%ds", seconds/60, seconds%60)
}

func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// secretPlaceholder is the form hint for a write-only field: it reflects
// presence, never the value.
func secretPlaceholder(present bool) string {
	if present {
		return "stored (leave empty to keep)"
	}
	return "not set"
}

package ui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LLZ-DinosaurEgg/douban-console/internal/api"
)

// statsRefreshDelay is the one-shot delay between triggering a crawl and
// refreshing the aggregate counters.
const statsRefreshDelay = 3 * time.Second

func (m Model) fetchStats() tea.Cmd {
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		stats, err := gw.Stats(ctx)
		return statsMsg{stats: stats, err: err}
	}
}

func (m Model) fetchGroups() tea.Cmd {
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		groups, err := gw.Groups(ctx)
		return groupsMsg{groups: groups, err: err}
	}
}

func (m Model) fetchPosts(token uint64, groupID string, page, pageSize int) tea.Cmd {
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		posts, pagination, err := gw.Posts(ctx, groupID, page, pageSize)
		return postsMsg{token: token, posts: posts, pagination: pagination, err: err}
	}
}

// fetchDetail issues the post and comment fetches concurrently; they are
// independent failure domains.
func (m Model) fetchDetail(token uint64, postID string) tea.Cmd {
	ctx, gw := m.ctx, m.gw
	post := func() tea.Msg {
		p, err := gw.Post(ctx, postID)
		return postMsg{token: token, post: p, err: err}
	}
	comments := func() tea.Msg {
		c, err := gw.Comments(ctx, postID)
		return commentsMsg{token: token, comments: c, err: err}
	}
	return tea.Batch(post, comments)
}

func (m Model) fetchConfigs() tea.Cmd {
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		configs, err := gw.CrawlerConfigs(ctx)
		return configsMsg{configs: configs, err: err}
	}
}

func (m Model) fetchConfig(id int64) tea.Cmd {
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		config, err := gw.CrawlerConfig(ctx, id)
		return configMsg{config: config, err: err}
	}
}

func (m Model) saveConfig(id int64, req api.CrawlerConfigRequest) tea.Cmd {
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		var err error
		if id == 0 {
			err = gw.CreateCrawlerConfig(ctx, req)
		} else {
			err = gw.UpdateCrawlerConfig(ctx, id, req)
		}
		return configSavedMsg{created: id == 0, req: req, err: err}
	}
}

func (m Model) deleteConfig(id int64) tea.Cmd {
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		return configDeletedMsg{id: id, err: gw.DeleteCrawlerConfig(ctx, id)}
	}
}

func (m Model) runCrawler(id int64) tea.Cmd {
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		return crawlerRunMsg{id: id, err: gw.RunCrawler(ctx, id)}
	}
}

func statsRefreshAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statsRefreshMsg{}
	})
}

func (m Model) fetchBotConfig() tea.Cmd {
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		config, err := gw.BotConfig(ctx)
		return botConfigMsg{config: config, err: err}
	}
}

func (m Model) saveBotConfig(req api.BotConfigUpdate) tea.Cmd {
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		return botSavedMsg{req: req, err: gw.UpdateBotConfig(ctx, req)}
	}
}

// toggleBot flips only the enabled flag in a partial update. This is a
// read-modify-write with no concurrency guard; two sessions toggling at once
// both win.
func (m Model) toggleBot(enabled bool) tea.Cmd {
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		req := api.BotConfigUpdate{Enabled: &enabled}
		return botToggledMsg{enabled: enabled, err: gw.UpdateBotConfig(ctx, req)}
	}
}

func (m Model) testReply(req api.TestReplyRequest) tea.Cmd {
	ctx, gw := m.ctx, m.gw
	return func() tea.Msg {
		reply, err := gw.TestBotReply(ctx, req)
		return testReplyMsg{reply: reply, req: req, err: err}
	}
}

func copyToClipboard(what, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{what: what, err: clipboard.WriteAll(text)}
	}
}

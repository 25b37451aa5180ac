package ui

import (
	"github.com/LLZ-DinosaurEgg/douban-console/internal/api"
)

// Messages carrying fetch results back onto the event loop. Slot-scoped
// fetches (posts, detail) carry the token they were issued with; a result
// whose token no longer matches the slot's current token is stale and gets
// dropped instead of overwriting a newer render.

type statsMsg struct {
	stats api.Stats
	err   error
}

type groupsMsg struct {
	groups []api.Group
	err    error
}

type postsMsg struct {
	token      uint64
	posts      []api.Post
	pagination api.Pagination
	err        error
}

type postMsg struct {
	token uint64
	post  api.Post
	err   error
}

type commentsMsg struct {
	token    uint64
	comments []api.Comment
	err      error
}

type configsMsg struct {
	configs []api.CrawlerConfig
	err     error
}

// configMsg delivers a single config fetched for edit pre-fill.
type configMsg struct {
	config api.CrawlerConfig
	err    error
}

type configSavedMsg struct {
	created bool
	req     api.CrawlerConfigRequest
	err     error
}

type configDeletedMsg struct {
	id  int64
	err error
}

type crawlerRunMsg struct {
	id  int64
	err error
}

// statsRefreshMsg fires once, a fixed delay after a manual crawler run, so
// the asynchronous backend job has a chance to land before the counters
// refresh.
type statsRefreshMsg struct{}

type botConfigMsg struct {
	config api.BotConfig
	err    error
}

type botSavedMsg struct {
	req api.BotConfigUpdate
	err error
}

type botToggledMsg struct {
	enabled bool
	err     error
}

type testReplyMsg struct {
	reply string
	req   api.TestReplyRequest
	err   error
}

type clipboardMsg struct {
	what string
	err  error
}

package ui

import (
	"strconv"

	"github.com/LLZ-DinosaurEgg/douban-console/internal/api"
)

// Field order inside the crawler config form.
const (
	cfName = iota
	cfGroupURL
	cfKeywords
	cfExclude
	cfPages
	cfSleep
	cfCookie
	cfEnabled
	cfCrawlComments
)

const (
	defaultCrawlPages   = 10
	defaultSleepSeconds = 900
)

// configForm edits one crawler configuration. id zero means create. The
// cookie field is never pre-filled: its placeholder only says whether a
// value is stored, and the outgoing body carries a cookie only when the
// operator typed one.
type configForm struct {
	*form
	id int64
}

func newConfigForm(cfg *api.CrawlerConfig) *configForm {
	title := "New crawler config"
	var id int64
	name, groupURL, keywords, exclude := "", "", "", ""
	pages, sleep := strconv.Itoa(defaultCrawlPages), strconv.Itoa(defaultSleepSeconds)
	enabled, crawlComments, hasCookie := true, true, false

	if cfg != nil {
		title = "Edit crawler config"
		id = cfg.ID
		name = cfg.Name
		groupURL = cfg.GroupURL
		keywords = joinList(cfg.Keywords)
		exclude = joinList(cfg.ExcludeKeywords)
		if cfg.Pages > 0 {
			pages = strconv.Itoa(cfg.Pages)
		}
		if cfg.SleepSeconds > 0 {
			sleep = strconv.Itoa(cfg.SleepSeconds)
		}
		enabled = cfg.Enabled
		crawlComments = cfg.CrawlComments
		hasCookie = cfg.HasCookie
	}

	fields := []formField{
		textField("Name", name, "config name"),
		textField("Group URL", groupURL, "https://www.douban.com/group/..."),
		textField("Keywords (comma separated)", keywords, ""),
		textField("Exclude keywords (comma separated)", exclude, ""),
		textField("Pages to crawl", pages, strconv.Itoa(defaultCrawlPages)),
		textField("Sleep seconds", sleep, strconv.Itoa(defaultSleepSeconds)),
		textField("Cookie", "", secretPlaceholder(hasCookie)),
		boolField("Enabled", enabled),
		boolField("Crawl comments", crawlComments),
	}
	return &configForm{form: newForm(title, fields), id: id}
}

// request validates the form and builds the outgoing body. The cookie field
// is included only when a non-empty value was typed; omission means "keep
// the stored cookie".
func (f *configForm) request() (api.CrawlerConfigRequest, bool) {
	f.errMsg = ""
	if f.value(cfName) == "" || f.value(cfGroupURL) == "" {
		f.errMsg = "name and group URL are required"
		return api.CrawlerConfigRequest{}, false
	}

	req := api.CrawlerConfigRequest{
		Name:            f.value(cfName),
		GroupURL:        f.value(cfGroupURL),
		Keywords:        splitKeywords(f.value(cfKeywords)),
		ExcludeKeywords: splitKeywords(f.value(cfExclude)),
		Pages:           parseIntOr(f.value(cfPages), defaultCrawlPages),
		SleepSeconds:    parseIntOr(f.value(cfSleep), defaultSleepSeconds),
		Enabled:         f.boolValue(cfEnabled),
		CrawlComments:   f.boolValue(cfCrawlComments),
	}
	if cookie := f.value(cfCookie); cookie != "" {
		req.Cookie = api.NewSecret(cookie)
	}
	return req, true
}

func parseIntOr(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func joinList(values []string) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ", "
		}
		out += v
	}
	return out
}

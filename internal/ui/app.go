// Package ui provides the Bubble Tea console for the Douban group
// monitoring daemon.
package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LLZ-DinosaurEgg/douban-console/internal/api"
	"github.com/LLZ-DinosaurEgg/douban-console/internal/errlog"
	"github.com/LLZ-DinosaurEgg/douban-console/internal/prefs"
)

// Tab identifies the active top-level view.
type Tab int

const (
	TabPosts Tab = iota
	TabConfig
	TabBot
	TabErrors
	tabCount
)

// groupsPaneWidth is the fixed width of the sidebar on the posts tab.
const groupsPaneWidth = 34

// Options configures the UI.
type Options struct {
	Context     context.Context
	Gateway     api.Gateway
	Errors      *errlog.Buffer
	PageSize    int
	ThemeName   string
	MatchedOnly bool
	PrefsPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	gw        api.Gateway
	errs      *errlog.Buffer
	prefsPath string
	pageSize  int
	keys      keyMap

	// UI state
	theme    Theme
	tab      Tab
	width    int
	height   int
	ready    bool
	showHelp bool
	notice   string

	// Posts tab: group sidebar plus post list, one of them focused.
	focusGroups bool
	groups      groupsState
	posts       postsState
	detail      detailState

	// Other tabs
	configs configsState
	bot     botState
	errView errorsViewState

	// Blocking confirm modal, nil when closed
	confirm *confirmPrompt

	stats    api.Stats
	hasStats bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	posts := newPostsState(pageSize)
	posts.filterMatched = opts.MatchedOnly

	return Model{
		ctx:       ctx,
		gw:        opts.Gateway,
		errs:      opts.Errors,
		prefsPath: prefsPath,
		pageSize:  pageSize,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		tab:       TabPosts,
		groups:    newGroupsState(),
		posts:     posts,
		configs:   configsState{loading: true},
		bot:       botState{loading: true},
		errView:   newErrorsViewState(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchStats(),
		m.fetchGroups(),
		m.fetchPosts(m.posts.token, m.posts.groupID, m.posts.page, m.posts.pageSize),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.ensureDetailViewport()
		return m, nil

	case statsMsg:
		if msg.err != nil {
			m.recordError("stats load failed", msg.err.Error())
			return m, nil
		}
		m.stats = msg.stats
		m.hasStats = true
		return m, nil

	case groupsMsg:
		m.groups.loading = false
		if msg.err != nil {
			m.groups.failed = true
			m.recordError("group list load failed", msg.err.Error())
			return m, nil
		}
		m.groups.failed = false
		m.groups.items = msg.groups
		m.groups.clampSelection()
		if m.groups.autoSelect && len(msg.groups) > 0 {
			g := msg.groups[0]
			m.selectGroup(g.ID, g.Name)
			return m, m.fetchPosts(m.posts.token, m.posts.groupID, m.posts.page, m.posts.pageSize)
		}
		return m, nil

	case postsMsg:
		if msg.token != m.posts.token {
			return m, nil
		}
		m.posts.loading = false
		if msg.err != nil {
			m.posts.failed = true
			m.recordError("post list load failed", map[string]any{
				"group_id": m.posts.groupID,
				"page":     m.posts.page,
				"error":    msg.err.Error(),
			})
			return m, nil
		}
		m.posts.failed = false
		m.posts.items = msg.posts
		m.posts.pagination = msg.pagination
		if m.posts.pagination.Page == 0 {
			m.posts.pagination.Page = m.posts.page
		}
		m.posts.clampSelection()
		return m, nil

	case postMsg:
		if msg.token != m.detail.token {
			return m, nil
		}
		m.detail.pending--
		if msg.err != nil {
			m.detail.postErr = true
			m.recordError("post detail load failed", map[string]any{
				"post_id": m.detail.postID,
				"error":   msg.err.Error(),
			})
			return m, nil
		}
		m.detail.post = msg.post
		m.detail.hasPost = true
		m.syncDetailViewport()
		return m, nil

	case commentsMsg:
		if msg.token != m.detail.token {
			return m, nil
		}
		m.detail.pending--
		if msg.err != nil {
			// A missing thread degrades to an empty one.
			m.recordError("comment load failed", map[string]any{
				"post_id": m.detail.postID,
				"error":   msg.err.Error(),
			})
			return m, nil
		}
		m.detail.comments = msg.comments
		m.syncDetailViewport()
		return m, nil

	case configsMsg:
		m.configs.loading = false
		if msg.err != nil {
			m.configs.failed = true
			m.recordError("crawler config list load failed", msg.err.Error())
			return m, nil
		}
		m.configs.failed = false
		m.configs.items = msg.configs
		m.configs.clampSelection()
		return m, nil

	case configMsg:
		if msg.err != nil {
			m.notice = "could not load config for editing"
			m.recordError("crawler config load failed", msg.err.Error())
			return m, nil
		}
		cfg := msg.config
		m.configs.form = newConfigForm(&cfg)
		return m, nil

	case configSavedMsg:
		if msg.err != nil {
			verb := "update"
			if msg.created {
				verb = "create"
			}
			m.notice = "config " + verb + " failed"
			m.recordError("crawler config "+verb+" failed", map[string]any{
				"name":      msg.req.Name,
				"group_url": msg.req.GroupURL,
				"error":     msg.err.Error(),
			})
			return m, nil
		}
		m.notice = "config saved"
		m.configs.loading = true
		return m, m.fetchConfigs()

	case configDeletedMsg:
		if msg.err != nil {
			m.notice = "config delete failed"
			m.recordError("crawler config delete failed", map[string]any{
				"id":    msg.id,
				"error": msg.err.Error(),
			})
			return m, nil
		}
		m.notice = "config deleted"
		m.configs.loading = true
		return m, m.fetchConfigs()

	case crawlerRunMsg:
		if msg.err != nil {
			m.notice = "crawl trigger failed"
			m.recordError("crawl trigger failed", map[string]any{
				"id":    msg.id,
				"error": msg.err.Error(),
			})
			return m, nil
		}
		m.notice = "crawl started"
		return m, statsRefreshAfter(statsRefreshDelay)

	case statsRefreshMsg:
		return m, m.fetchStats()

	case botConfigMsg:
		m.bot.loading = false
		if msg.err != nil {
			m.bot.failed = true
			m.recordError("bot config load failed", msg.err.Error())
			return m, nil
		}
		m.bot.failed = false
		m.bot.cfg = msg.config
		m.bot.loaded = true
		return m, nil

	case botSavedMsg:
		if msg.err != nil {
			m.notice = "bot config update failed"
			m.recordError("bot config update failed", msg.err.Error())
			return m, nil
		}
		m.notice = "bot config saved"
		m.bot.loading = true
		return m, m.fetchBotConfig()

	case botToggledMsg:
		m.bot.toggling = false
		if msg.err != nil {
			m.notice = "bot toggle failed"
			m.recordError("bot toggle failed", msg.err.Error())
			return m, nil
		}
		m.bot.cfg.Enabled = msg.enabled
		m.notice = ternary(msg.enabled, "bot enabled", "bot disabled")
		return m, m.fetchBotConfig()

	case testReplyMsg:
		if m.bot.test == nil {
			return m, nil
		}
		m.bot.test.busy = false
		if msg.err != nil {
			m.bot.test.errMsg = "generation failed"
			m.recordError("test reply generation failed", map[string]any{
				"title": msg.req.Title,
				"error": msg.err.Error(),
			})
			return m, nil
		}
		m.bot.test.reply = msg.reply
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.notice = "clipboard copy failed"
			m.recordError("clipboard copy failed", msg.err.Error())
			return m, nil
		}
		m.notice = "copied " + msg.what
		return m, nil
	}

	return m, nil
}

// recordError appends to the bounded error log and flags the errors tab
// when the operator is looking elsewhere.
func (m *Model) recordError(message string, details any) {
	if m.errs != nil {
		m.errs.Append(message, details)
	}
	if m.tab != TabErrors {
		m.errView.unseen = true
	}
}

// savePrefs persists the display preferences, best effort.
func (m Model) savePrefs() {
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:       m.theme.Name,
		MatchedOnly: m.posts.filterMatched,
	})
}

// handleKey processes keyboard input. Modal surfaces claim keys first:
// confirm prompt, then whichever form is open, then the detail overlay.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}

	if m.configs.form != nil {
		return m.handleConfigFormKey(msg)
	}
	if m.bot.llmForm != nil {
		return m.handleLLMFormKey(msg)
	}
	if m.bot.policyForm != nil {
		return m.handlePolicyFormKey(msg)
	}
	if m.bot.test != nil {
		return m.handleTestFormKey(msg)
	}

	if m.detail.open {
		return m.handleDetailKey(msg)
	}

	if m.tab == TabPosts && m.groups.filtering {
		return m.handleFilterKey(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		return m.switchTab((m.tab + 1) % tabCount)

	case key.Matches(msg, m.keys.ShiftTab):
		return m.switchTab((m.tab - 1 + tabCount) % tabCount)

	case key.Matches(msg, m.keys.TabPosts):
		return m.switchTab(TabPosts)

	case key.Matches(msg, m.keys.TabConfig):
		return m.switchTab(TabConfig)

	case key.Matches(msg, m.keys.TabBot):
		return m.switchTab(TabBot)

	case key.Matches(msg, m.keys.TabErrors):
		return m.switchTab(TabErrors)

	case key.Matches(msg, m.keys.Reload):
		return m.reloadActiveTab()
	}

	switch m.tab {
	case TabPosts:
		return m.handlePostsKey(msg)
	case TabConfig:
		return m.handleConfigsKey(msg)
	case TabBot:
		return m.handleBotKey(msg)
	case TabErrors:
		return m.handleErrorsKey(msg)
	}

	return m, nil
}

// switchTab activates a tab. The config and bot tabs refetch on every
// entry so the display never trusts data from a previous visit.
func (m Model) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	m.tab = tab
	switch tab {
	case TabConfig:
		if len(m.configs.items) == 0 {
			m.configs.loading = true
		}
		return m, m.fetchConfigs()
	case TabBot:
		m.bot.loading = true
		return m, m.fetchBotConfig()
	case TabErrors:
		m.errView.unseen = false
	}
	return m, nil
}

func (m Model) reloadActiveTab() (tea.Model, tea.Cmd) {
	switch m.tab {
	case TabPosts:
		m.groups.loading = true
		m.groups.failed = false
		m.reloadPosts()
		return m, tea.Batch(
			m.fetchStats(),
			m.fetchGroups(),
			m.fetchPosts(m.posts.token, m.posts.groupID, m.posts.page, m.posts.pageSize),
		)
	case TabConfig:
		m.configs.loading = true
		return m, m.fetchConfigs()
	case TabBot:
		m.bot.loading = true
		return m, m.fetchBotConfig()
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	prompt := *m.confirm
	switch msg.String() {
	case "y", "enter":
		m.confirm = nil
		switch prompt.action {
		case confirmDeleteConfig:
			return m, m.deleteConfig(prompt.id)
		case confirmRunConfig:
			return m, m.runCrawler(prompt.id)
		}
	case "n", "esc":
		m.confirm = nil
	}
	return m, nil
}

func (m Model) handleConfigFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	submitted, cancelled, cmd := m.configs.form.update(msg)
	if cancelled {
		m.configs.form = nil
		return m, nil
	}
	if submitted {
		req, ok := m.configs.form.request()
		if !ok {
			return m, nil
		}
		id := m.configs.form.id
		m.configs.form = nil
		return m, m.saveConfig(id, req)
	}
	return m, cmd
}

func (m Model) handleLLMFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	submitted, cancelled, cmd := m.bot.llmForm.update(msg)
	if cancelled {
		m.bot.llmForm = nil
		return m, nil
	}
	if submitted {
		req, ok := m.bot.llmForm.request()
		if !ok {
			return m, nil
		}
		m.bot.llmForm = nil
		return m, m.saveBotConfig(req)
	}
	return m, cmd
}

func (m Model) handlePolicyFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	submitted, cancelled, cmd := m.bot.policyForm.update(msg)
	if cancelled {
		m.bot.policyForm = nil
		return m, nil
	}
	if submitted {
		req, ok := m.bot.policyForm.request()
		if !ok {
			return m, nil
		}
		m.bot.policyForm = nil
		return m, m.saveBotConfig(req)
	}
	return m, cmd
}

func (m Model) handleTestFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	submitted, cancelled, cmd := m.bot.test.update(msg)
	if cancelled {
		m.bot.test = nil
		return m, nil
	}
	if submitted {
		req, ok := m.bot.test.request()
		if !ok {
			return m, nil
		}
		m.bot.test.busy = true
		return m, m.testReply(req)
	}
	return m, cmd
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.closeDetail()
		return m, nil
	}
	var cmd tea.Cmd
	m.detail.vp, cmd = m.detail.vp.Update(msg)
	return m, cmd
}

// handleFilterKey routes keys into the group filter input while it is
// active.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.groups.filtering = false
		m.groups.filter.SetValue("")
		m.groups.filter.Blur()
		m.groups.clampSelection()
		return m, nil
	case "enter":
		m.groups.filtering = false
		m.groups.filter.Blur()
		m.groups.clampSelection()
		return m, nil
	case "up", "down":
		// Selection moves without leaving the filter.
		if msg.String() == "up" {
			m.groups.selected--
		} else {
			m.groups.selected++
		}
		m.groups.clampSelection()
		return m, nil
	}
	var cmd tea.Cmd
	m.groups.filter, cmd = m.groups.filter.Update(msg)
	m.groups.clampSelection()
	return m, cmd
}

func (m Model) handlePostsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.FocusGroups):
		m.focusGroups = !m.focusGroups
		return m, nil

	case key.Matches(msg, m.keys.FilterGroups):
		m.focusGroups = true
		m.groups.filtering = true
		m.groups.filter.Focus()
		return m, nil

	case key.Matches(msg, m.keys.AllGroups):
		m.selectGroup("", "")
		return m, m.fetchPosts(m.posts.token, m.posts.groupID, m.posts.page, m.posts.pageSize)

	case key.Matches(msg, m.keys.ToggleMatched):
		m.posts.filterMatched = !m.posts.filterMatched
		m.posts.clampSelection()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		if !m.focusGroups && m.goToPage(m.posts.page-1) {
			return m, m.fetchPosts(m.posts.token, m.posts.groupID, m.posts.page, m.posts.pageSize)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if !m.focusGroups && m.goToPage(m.posts.page+1) {
			return m, m.fetchPosts(m.posts.token, m.posts.groupID, m.posts.page, m.posts.pageSize)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.focusGroups {
			m.groups.selected--
			m.groups.clampSelection()
		} else {
			m.posts.selected--
			m.posts.clampSelection()
			m.posts.scrollTo(m.visiblePostCards())
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.focusGroups {
			m.groups.selected++
			m.groups.clampSelection()
		} else {
			m.posts.selected++
			m.posts.clampSelection()
			m.posts.scrollTo(m.visiblePostCards())
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		if m.focusGroups {
			m.groups.selected = 0
		} else {
			m.posts.selected = 0
			m.posts.scrollTo(m.visiblePostCards())
		}
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		if m.focusGroups {
			m.groups.selected = len(m.groups.visible()) - 1
			m.groups.clampSelection()
		} else {
			m.posts.selected = len(m.posts.visibleItems()) - 1
			m.posts.clampSelection()
			m.posts.scrollTo(m.visiblePostCards())
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if m.focusGroups {
			visible := m.groups.visible()
			if m.groups.selected < 0 || m.groups.selected >= len(visible) {
				return m, nil
			}
			g := visible[m.groups.selected]
			m.selectGroup(g.ID, g.Name)
			m.focusGroups = false
			return m, m.fetchPosts(m.posts.token, m.posts.groupID, m.posts.page, m.posts.pageSize)
		}
		items := m.posts.visibleItems()
		if m.posts.selected < 0 || m.posts.selected >= len(items) {
			return m, nil
		}
		post := items[m.posts.selected]
		m.openDetail(post.PostID)
		m.ensureDetailViewport()
		return m, m.fetchDetail(m.detail.token, post.PostID)
	}

	return m, nil
}

func (m Model) handleConfigsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.configs.selected--
		m.configs.clampSelection()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.configs.selected++
		m.configs.clampSelection()
		return m, nil

	case key.Matches(msg, m.keys.NewConfig):
		m.configs.form = newConfigForm(nil)
		return m, nil

	case key.Matches(msg, m.keys.EditConfig), key.Matches(msg, m.keys.Confirm):
		cfg, ok := m.configs.selectedConfig()
		if !ok {
			return m, nil
		}
		// Fetch fresh before editing so the form never shows a stale list
		// entry.
		return m, m.fetchConfig(cfg.ID)

	case key.Matches(msg, m.keys.DeleteConfig):
		cfg, ok := m.configs.selectedConfig()
		if !ok {
			return m, nil
		}
		m.confirm = &confirmPrompt{
			action: confirmDeleteConfig,
			id:     cfg.ID,
			prompt: "Delete crawler config \"" + cfg.Name + "\"?",
		}
		return m, nil

	case key.Matches(msg, m.keys.RunConfig):
		cfg, ok := m.configs.selectedConfig()
		if !ok {
			return m, nil
		}
		m.confirm = &confirmPrompt{
			action: confirmRunConfig,
			id:     cfg.ID,
			prompt: "Run crawler \"" + cfg.Name + "\" now?",
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleBotKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.bot.loaded {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.ToggleBot):
		if m.bot.toggling {
			return m, nil
		}
		m.bot.toggling = true
		return m, m.toggleBot(!m.bot.cfg.Enabled)

	case key.Matches(msg, m.keys.EditLLM):
		m.bot.llmForm = newBotLLMForm(m.bot.cfg)
		return m, nil

	case key.Matches(msg, m.keys.EditPolicy):
		m.bot.policyForm = newBotPolicyForm(m.bot.cfg)
		return m, nil

	case key.Matches(msg, m.keys.TestReply):
		m.bot.test = newTestReplyForm(m.posts.groupID)
		return m, nil
	}

	return m, nil
}

func (m Model) handleErrorsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.errView.selected--
		m.errView.clampSelection(m.errs.Len())
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.errView.selected++
		m.errView.clampSelection(m.errs.Len())
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		entries := m.errs.Entries()
		if m.errView.selected >= 0 && m.errView.selected < len(entries) {
			seq := entries[m.errView.selected].Seq
			m.errView.expanded[seq] = !m.errView.expanded[seq]
		}
		return m, nil

	case key.Matches(msg, m.keys.CopyErrors):
		text, err := m.errs.ExportText()
		if err != nil {
			m.notice = "no errors to copy"
			return m, nil
		}
		return m, copyToClipboard("error log", text)

	case key.Matches(msg, m.keys.ClearErrors):
		m.errs.Clear()
		m.errView = newErrorsViewState()
		return m, nil
	}

	return m, nil
}

// ensureDetailViewport sizes the detail scroll area, creating it on first
// use.
func (m *Model) ensureDetailViewport() {
	if m.width == 0 || m.height == 0 {
		return
	}
	w := m.detailWidth() - 4
	h := m.detailHeight()
	if !m.detail.vpReady {
		m.detail.vp = viewport.New(w, h)
		m.detail.vpReady = true
	} else {
		m.detail.vp.Width = w
		m.detail.vp.Height = h
	}
}

// visiblePostCards is how many post cards fit the list pane.
func (m Model) visiblePostCards() int {
	return max(1, (m.contentHeight()-4)/cardLines)
}

func (m Model) contentHeight() int {
	return max(4, m.height-3)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}
	if m.confirm != nil {
		return m.renderConfirm()
	}
	if m.configs.form != nil {
		return m.configs.form.render(m.theme, m.width, m.height)
	}
	if m.bot.llmForm != nil {
		return m.bot.llmForm.render(m.theme, m.width, m.height)
	}
	if m.bot.policyForm != nil {
		return m.bot.policyForm.render(m.theme, m.width, m.height)
	}
	if m.bot.test != nil {
		return m.bot.test.render(m.theme, m.width, m.height)
	}
	if m.detail.open {
		return m.renderDetail()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderContent renders the active tab's main area.
func (m Model) renderContent() string {
	height := m.contentHeight()
	switch m.tab {
	case TabPosts:
		sidebar := min(groupsPaneWidth, m.width/3)
		groups := m.renderGroups(sidebar, height)
		posts := m.renderPosts(m.width-sidebar-2, height)
		return lipgloss.JoinHorizontal(lipgloss.Top, groups, posts)
	case TabConfig:
		return m.renderConfigs(m.width-2, height)
	case TabBot:
		return m.renderBot(m.width-2, height)
	case TabErrors:
		return m.renderErrors(m.width-2, height)
	default:
		return ""
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

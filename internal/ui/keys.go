package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the console.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Escape     key.Binding
	Reload     key.Binding

	// Tab switching
	TabPosts  key.Binding
	TabConfig key.Binding
	TabBot    key.Binding
	TabErrors key.Binding

	// Navigation
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Confirm key.Binding

	// Posts tab
	PrevPage      key.Binding
	NextPage      key.Binding
	ToggleMatched key.Binding
	FocusGroups   key.Binding
	FilterGroups  key.Binding
	AllGroups     key.Binding

	// Config tab
	NewConfig    key.Binding
	EditConfig   key.Binding
	DeleteConfig key.Binding
	RunConfig    key.Binding

	// Bot tab
	EditLLM    key.Binding
	EditPolicy key.Binding
	ToggleBot  key.Binding
	TestReply  key.Binding

	// Errors tab
	ClearErrors key.Binding
	CopyErrors  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous tab"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close/back"),
		),
		Reload: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "Reload tab"),
		),

		TabPosts: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Posts"),
		),
		TabConfig: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Crawler configs"),
		),
		TabBot: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Reply bot"),
		),
		TabErrors: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Error log"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open/confirm"),
		),

		PrevPage: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "Previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "Next page"),
		),
		ToggleMatched: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Matched only"),
		),
		FocusGroups: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Switch pane"),
		),
		FilterGroups: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Filter groups"),
		),
		AllGroups: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "All groups"),
		),

		NewConfig: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "New config"),
		),
		EditConfig: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edit config"),
		),
		DeleteConfig: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Delete config"),
		),
		RunConfig: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Run crawler now"),
		),

		EditLLM: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Edit LLM settings"),
		),
		EditPolicy: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Edit reply policy"),
		),
		ToggleBot: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Enable/disable bot"),
		),
		TestReply: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Test reply"),
		),

		ClearErrors: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Clear error log"),
		),
		CopyErrors: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy error log"),
		),
	}
}

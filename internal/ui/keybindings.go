package ui

import (
	"strconv"

	"charm.land/bubbles/v2/key"
)

// Action is what a key press asks the browser to do.
type Action string

const (
	ActionNone        Action = ""
	ActionUp          Action = "up"
	ActionDown        Action = "down"
	ActionTop         Action = "top"
	ActionBottom      Action = "bottom"
	ActionPrevColumn  Action = "prev_column"
	ActionNextColumn  Action = "next_column"
	ActionSort        Action = "sort"
	ActionSortColumn  Action = "sort_column" // digit keys; the column comes from the key
	ActionExpand      Action = "expand"
	ActionToggleView  Action = "toggle_view"
	ActionToggleTheme Action = "toggle_theme"
	ActionOpenURL     Action = "open_url"
	ActionCopyURL     Action = "copy_url"
	ActionHelp        Action = "help"
	ActionClose       Action = "close"
	ActionQuit        Action = "quit"
)

// keyMap holds the browser's bindings. It implements help.KeyMap.
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	PrevColumn  key.Binding
	NextColumn  key.Binding
	Sort        key.Binding
	SortColumn  key.Binding
	Expand      key.Binding
	ToggleView  key.Binding
	ToggleTheme key.Binding
	OpenURL     key.Binding
	CopyURL     key.Binding
	Help        key.Binding
	Close       key.Binding
	Quit        key.Binding
}

var keys = keyMap{
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous game")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next game")),
	Top:         key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first game")),
	Bottom:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last game")),
	PrevColumn:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous column")),
	NextColumn:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
	Sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort (asc → desc → off)")),
	SortColumn:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-8", "sort column N")),
	Expand:      key.NewBinding(key.WithKeys("enter", "space", " "), key.WithHelp("enter", "expand (detailed view)")),
	ToggleView:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "toggle view")),
	ToggleTheme: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
	OpenURL:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open game page")),
	CopyURL:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy game URL")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle this help")),
	Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close help")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp is shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.PrevColumn, k.Sort, k.ToggleView, k.ToggleTheme, k.Quit}
}

// FullHelp is shown in the help overlay, one column per group.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.PrevColumn, k.NextColumn, k.Sort, k.SortColumn},
		{k.Expand, k.ToggleView, k.ToggleTheme},
		{k.OpenURL, k.CopyURL, k.Help, k.Quit},
	}
}

// actions pairs each binding with its action, in lookup order.
func (k keyMap) actions() []struct {
	action  Action
	binding key.Binding
} {
	return []struct {
		action  Action
		binding key.Binding
	}{
		{ActionUp, k.Up}, {ActionDown, k.Down}, {ActionTop, k.Top}, {ActionBottom, k.Bottom},
		{ActionPrevColumn, k.PrevColumn}, {ActionNextColumn, k.NextColumn},
		{ActionSort, k.Sort}, {ActionExpand, k.Expand},
		{ActionToggleView, k.ToggleView}, {ActionToggleTheme, k.ToggleTheme},
		{ActionOpenURL, k.OpenURL}, {ActionCopyURL, k.CopyURL},
		{ActionHelp, k.Help}, {ActionClose, k.Close}, {ActionQuit, k.Quit},
	}
}

// ResolveKey returns the action for a key string as reported by
// tea.KeyPressMsg.String. For digit keys 1-9 it also returns the 0-based
// column the key addresses.
func ResolveKey(k string) (Action, int) {
	if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
		n, _ := strconv.Atoi(k)
		return ActionSortColumn, n - 1
	}
	for _, a := range keys.actions() {
		for _, bound := range a.binding.Keys() {
			if bound == k {
				return a.action, -1
			}
		}
	}
	return ActionNone, -1
}

// Package ui holds the key bindings shared by the interactive editor and its
// configuration.
package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keyboard bindings for the editor
type KeyMap struct {
	// Files and session
	Quit         key.Binding
	Save         key.Binding
	SaveAs       key.Binding
	Cancel       key.Binding
	ToggleInsert key.Binding

	// Cursor movement
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Editing
	Delete    key.Binding
	Backspace key.Binding
	Newline   key.Binding
}

// DefaultKeyMap returns the default keyboard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("^Q", "quit"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^S", "save"),
		),
		SaveAs: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("^O", "save as"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		ToggleInsert: key.NewBinding(
			key.WithKeys("insert"),
			key.WithHelp("ins", "insert/overwrite"),
		),

		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "ctrl+a"),
			key.WithHelp("home", "start of line"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "ctrl+e"),
			key.WithHelp("end", "end of line"),
		),

		Delete: key.NewBinding(
			key.WithKeys("delete", "ctrl+d"),
			key.WithHelp("del", "delete"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("bksp", "delete backward"),
		),
		Newline: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "new line"),
		),
	}
}

// bindings returns the bindings by their configuration name.
func (k *KeyMap) bindings() map[string]*key.Binding {
	return map[string]*key.Binding{
		"quit":          &k.Quit,
		"save":          &k.Save,
		"save_as":       &k.SaveAs,
		"cancel":        &k.Cancel,
		"toggle_insert": &k.ToggleInsert,
		"up":            &k.Up,
		"down":          &k.Down,
		"left":          &k.Left,
		"right":         &k.Right,
		"page_up":       &k.PageUp,
		"page_down":     &k.PageDown,
		"home":          &k.Home,
		"end":           &k.End,
		"delete":        &k.Delete,
		"backspace":     &k.Backspace,
		"newline":       &k.Newline,
	}
}

// ActionNames lists the names accepted by Apply, sorted.
func ActionNames() []string {
	var k KeyMap
	names := make([]string, 0, 16)
	for name := range k.bindings() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply replaces the keys of the named bindings. Help text is kept and its
// key label follows the first configured key.
func (k *KeyMap) Apply(overrides map[string][]string) error {
	all := k.bindings()
	for name, keys := range overrides {
		b, ok := all[name]
		if !ok {
			return fmt.Errorf("unknown key action %q (valid: %s)", name, strings.Join(ActionNames(), ", "))
		}
		if len(keys) == 0 {
			return fmt.Errorf("key action %q has no keys", name)
		}
		b.SetKeys(keys...)
		b.SetHelp(keys[0], b.Help().Desc)
	}
	return nil
}

// ShortHelp returns a quick help view for the key bindings
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.SaveAs, k.Quit}
}

// FullHelp returns the full help view for all key bindings
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Save, k.SaveAs, k.Quit, k.Cancel, k.ToggleInsert},
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.Home, k.End},
		{k.Delete, k.Backspace, k.Newline},
	}
}

// HelpLine renders ShortHelp on one line, e.g. "^S save  ^O save as".
func (k KeyMap) HelpLine() string {
	parts := make([]string, 0, 3)
	for _, b := range k.ShortHelp() {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

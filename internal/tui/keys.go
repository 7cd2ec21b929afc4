package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/thenoetrevino/boards/internal/config"
)

// keyMap holds the bindings built from the user's key mappings.
// It implements help.KeyMap.
type keyMap struct {
	MoveTaskLeft  key.Binding
	MoveTaskRight key.Binding
	MoveTaskUp    key.Binding
	MoveTaskDown  key.Binding
	ViewTask      key.Binding

	PrevColumn key.Binding
	NextColumn key.Binding
	PrevTask   key.Binding
	NextTask   key.Binding
	PrevBoard  key.Binding
	NextBoard  key.Binding

	ShowHelp key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// displayKey names keys that would render as blanks in help text
func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func newKeyMap(km config.KeyMappings) keyMap {
	bind := func(help string, keys ...string) key.Binding {
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(displayKey(keys[0]), help),
		)
	}

	return keyMap{
		MoveTaskLeft:  bind("move task left", km.MoveTaskLeft),
		MoveTaskRight: bind("move task right", km.MoveTaskRight),
		MoveTaskUp:    bind("move task up", km.MoveTaskUp),
		MoveTaskDown:  bind("move task down", km.MoveTaskDown),
		ViewTask:      bind("view task", km.ViewTask, "enter"),

		PrevColumn: bind("prev column", km.PrevColumn, "left"),
		NextColumn: bind("next column", km.NextColumn, "right"),
		PrevTask:   bind("prev task", km.PrevTask, "up"),
		NextTask:   bind("next task", km.NextTask, "down"),
		PrevBoard:  bind("prev board", km.PrevBoard),
		NextBoard:  bind("next board", km.NextBoard),

		ShowHelp: bind("help", km.ShowHelp),
		Back:     bind("close", "esc"),
		Quit:     bind("quit", km.Quit, "ctrl+c"),
	}
}

// ShortHelp is shown in the status bar
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ViewTask, k.MoveTaskLeft, k.MoveTaskRight, k.ShowHelp, k.Quit}
}

// FullHelp is shown on the help screen
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevColumn, k.NextColumn, k.PrevTask, k.NextTask, k.PrevBoard, k.NextBoard},
		{k.MoveTaskLeft, k.MoveTaskRight, k.MoveTaskUp, k.MoveTaskDown},
		{k.ViewTask, k.ShowHelp, k.Back, k.Quit},
	}
}

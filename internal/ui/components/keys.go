package components

import "charm.land/bubbles/v2/key"

// Shared key bindings for list-style components.
var (
	KeyUp     = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	KeyDown   = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	KeyLeft   = key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left"))
	KeyRight  = key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right"))
	KeySelect = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select"))
	KeyToggle = key.NewBinding(key.WithKeys("space", "x"), key.WithHelp("space", "toggle"))
	KeyOption = key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "answer"))
)

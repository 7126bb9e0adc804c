package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// ToggleGroup is a horizontal row of checkable chips.
type ToggleGroup struct {
	Labels []string
	On     []bool
	Cursor int
}

// NewToggleGroup creates a group with the given labels; on marks which
// start checked.
func NewToggleGroup(labels []string, on func(i int) bool) ToggleGroup {
	g := ToggleGroup{Labels: labels, On: make([]bool, len(labels))}
	for i := range labels {
		g.On[i] = on(i)
	}
	return g
}

// Update handles left/right movement and toggling.
func (g ToggleGroup) Update(msg tea.Msg) ToggleGroup {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(g.Labels) == 0 {
		return g
	}
	switch {
	case key.Matches(kmsg, KeyLeft):
		if g.Cursor > 0 {
			g.Cursor--
		}
	case key.Matches(kmsg, KeyRight):
		if g.Cursor < len(g.Labels)-1 {
			g.Cursor++
		}
	case key.Matches(kmsg, KeyToggle):
		on := make([]bool, len(g.On))
		copy(on, g.On)
		on[g.Cursor] = !on[g.Cursor]
		g.On = on
	}
	return g
}

// Checked returns the indexes that are on, in order.
func (g ToggleGroup) Checked() []int {
	var out []int
	for i, on := range g.On {
		if on {
			out = append(out, i)
		}
	}
	return out
}

// View renders the chips. The cursor is only drawn when focused.
func (g ToggleGroup) View(focused bool) string {
	chips := make([]string, len(g.Labels))
	for i, label := range g.Labels {
		mark := "[ ]"
		if g.On[i] {
			mark = "[x]"
		}
		style := theme.Unselected
		if g.On[i] {
			style = theme.Checked
		}
		if focused && i == g.Cursor {
			style = style.Underline(true).Foreground(theme.ArcadeYellow)
		}
		chips[i] = style.Render(mark + " " + label)
	}
	return lipgloss.NewStyle().Render(strings.Join(chips, "  "))
}

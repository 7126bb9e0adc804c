package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// MultiChoice shows the four options of a question in a 2x2 grid.
// Arrow keys move the cursor; Enter or a number key 1-4 picks.
type MultiChoice struct {
	Options   []int
	Answer    int
	Cursor    int
	Submitted bool
	Chosen    int // zero-based index of the pick, -1 until submitted
}

// NewMultiChoice creates a selector over options with answer as the
// correct value.
func NewMultiChoice(options []int, answer int) MultiChoice {
	return MultiChoice{
		Options: options,
		Answer:  answer,
		Chosen:  -1,
	}
}

// Update moves the cursor or submits. It returns true once a pick was
// made by this message.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, bool) {
	if m.Submitted {
		return m, false
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, false
	}

	n := len(m.Options)
	switch {
	case key.Matches(kmsg, KeyOption):
		idx := int(kmsg.String()[0] - '1')
		if idx < n {
			return m.submit(idx), true
		}
	case key.Matches(kmsg, KeySelect):
		return m.submit(m.Cursor), true
	case key.Matches(kmsg, KeyLeft):
		if m.Cursor%2 == 1 {
			m.Cursor--
		}
	case key.Matches(kmsg, KeyRight):
		if m.Cursor%2 == 0 && m.Cursor+1 < n {
			m.Cursor++
		}
	case key.Matches(kmsg, KeyUp):
		if m.Cursor >= 2 {
			m.Cursor -= 2
		}
	case key.Matches(kmsg, KeyDown):
		if m.Cursor+2 < n {
			m.Cursor += 2
		}
	}
	return m, false
}

func (m MultiChoice) submit(idx int) MultiChoice {
	m.Cursor = idx
	m.Chosen = idx
	m.Submitted = true
	return m
}

// ChosenValue returns the picked option value.
func (m MultiChoice) ChosenValue() (int, bool) {
	if !m.Submitted || m.Chosen < 0 || m.Chosen >= len(m.Options) {
		return 0, false
	}
	return m.Options[m.Chosen], true
}

// IsCorrect returns true if the learner picked the correct answer.
func (m MultiChoice) IsCorrect() bool {
	v, ok := m.ChosenValue()
	return ok && v == m.Answer
}

// View renders the grid. cellWidth is the width of one option box.
func (m MultiChoice) View(cellWidth int) string {
	cells := make([]string, len(m.Options))
	for i, opt := range m.Options {
		cells[i] = m.cell(i, opt, cellWidth)
	}

	var rows []string
	for i := 0; i < len(cells); i += 2 {
		end := min(i+2, len(cells))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i:end]...))
	}
	return strings.Join(rows, "\n")
}

func (m MultiChoice) cell(i, opt, width int) string {
	label := fmt.Sprintf("%d)  %d", i+1, opt)
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text).
		Margin(0, 1)

	switch {
	case m.Submitted && opt == m.Answer:
		style = style.BorderForeground(theme.Success).Foreground(theme.Success).Bold(true)
	case m.Submitted && i == m.Chosen:
		style = style.BorderForeground(theme.Error).Foreground(theme.Error).Bold(true)
	case m.Submitted:
		style = style.Foreground(theme.TextDim)
	case i == m.Cursor:
		style = style.BorderForeground(theme.ArcadeYellow).Foreground(theme.ArcadeYellow).Bold(true)
		label = "▸ " + label
	}
	return style.Render(label)
}

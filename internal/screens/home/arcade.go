package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

const arcadeTitleFull = `┏┳┓┏━┓╺┳╸╻ ╻╺┳┓┏━┓╻╻  ╻
┃┃┃┣━┫ ┃ ┣━┫ ┃┃┣┳┛┃┃  ┃
╹ ╹╹ ╹ ╹ ╹ ╹╺┻┛╹┗╸╹┗━╸┗━╸`

const arcadeTitleCompact = "M · A · T · H · D · R · I · L · L"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(style.Render(title))
}

// homeStats is the dashboard shown above the menu.
type homeStats struct {
	Sessions int
	Accuracy int // percent over all finished quizzes
	Missed   int // distinct facts missed at least twice
}

func renderStatsBar(st homeStats, cw int, compact bool) string {
	quizStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	accStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	missStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			quizStyle.Render(fmt.Sprintf("★%d", st.Sessions)),
			accStyle.Render(fmt.Sprintf("✓%d%%", st.Accuracy)),
			missedText(st.Missed, true, missStyle, dim),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			quizStyle.Render(fmt.Sprintf("★ %d QUIZZES", st.Sessions)),
			accStyle.Render(fmt.Sprintf("✓ %d%% RIGHT", st.Accuracy)),
			missedText(st.Missed, false, missStyle, dim),
		)
	}
	return components.StatsBox(stats, cw)
}

func missedText(n int, compact bool, active, dim lipgloss.Style) string {
	switch {
	case n == 0 && compact:
		return dim.Render("⚡0")
	case n == 0:
		return dim.Render("⚡ NOTHING TO REVIEW")
	case compact:
		return active.Render(fmt.Sprintf("⚡%d", n))
	}
	return active.Render(fmt.Sprintf("⚡ %d TO REVIEW", n))
}

func renderArcadeMenu(items []string, selected, cw int) string {
	buttons := make([]string, len(items))
	for i, label := range items {
		buttons[i] = components.ArcadeButton(label, i == selected, buttonWidth)
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders the menu without borders for small
// terminals.
func renderArcadeMenuCompact(items []string, selected, cw int) string {
	lines := make([]string, len(items))
	for i, label := range items {
		if i == selected {
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			lines[i] = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + label)
		}
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
}

// renderNote renders a dim one-line note under the menu.
func renderNote(text string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(RenderMascot(variant))
}

package session

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	q := sess.CurrentQuestion(s.state)
	if q == nil {
		return layout.Centered(width, theme.Hint, "\n\n  Wrapping up...")
	}

	var b strings.Builder

	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(width, theme.Prompt, q.Symbolic+" = ?"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Hint, q.Textual))
	b.WriteString("\n\n")

	cell := min(max((width-16)/2, 12), 20)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View(cell)))
	b.WriteString("\n\n")

	switch {
	case s.state.Phase == sess.PhaseFeedback:
		b.WriteString(s.renderFeedback(width))
	case s.typing:
		b.WriteString(layout.Centered(width, theme.Body, "Your answer: "+s.input.View()))
	}
	return b.String()
}

// renderInfoLine shows quiz progress on the left and the clock on the right.
func (s *SessionScreen) renderInfoLine(width int) string {
	current, total := sess.Counter(s.state)
	bar := components.NewCounterBar("Question", current, total, min(width/2, 40)).View()

	elapsed := time.Since(s.state.StartTime)
	clock := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d:%02d",
			lipgloss.NewStyle().Foreground(theme.Accent).Render("⏱"),
			int(elapsed.Minutes()), int(elapsed.Seconds())%60))

	line := "  " + bar
	if pad := width - lipgloss.Width(line) - lipgloss.Width(clock) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + clock
	}
	return line
}

func (s *SessionScreen) renderFeedback(width int) string {
	var b strings.Builder
	rec := s.state.Answers[len(s.state.Answers)-1]

	if rec.Correct {
		b.WriteString(layout.Centered(width, theme.Correct, "Correct!"))
		if n := s.state.Streak; sess.IsStreakMilestone(n) {
			b.WriteString("\n")
			b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
				fmt.Sprintf("%d in a row!", n)))
		}
	} else {
		b.WriteString(layout.Centered(width, theme.Incorrect, "Not quite"))
		b.WriteString("\n")
		b.WriteString(layout.Centered(width, theme.Hint,
			fmt.Sprintf("%s = %d", rec.Question.Symbolic, rec.Question.Answer)))
	}
	b.WriteString("\n\n")

	switch {
	case s.explaining:
		b.WriteString(layout.Centered(width, theme.Hint, s.spinner.View()+" thinking of a hint..."))
		b.WriteString("\n\n")
	case s.explanation != nil:
		box := lipgloss.NewStyle().
			Width(min(width-8, 64)).
			Foreground(theme.Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Render(s.explanation.Text())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))
		b.WriteString("\n\n")
	}

	hint := "Press any key for the next question"
	if sess.IsComplete(s.state) {
		hint = "Press any key to see your score"
	}
	b.WriteString(layout.Centered(width, theme.Hint, hint))
	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(layout.Centered(width, theme.Body.Bold(true), "End this quiz early?"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, theme.Hint, "Answers so far are kept."))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Success), "[Y] Yes, show my score"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Primary), "[N] No, keep going"))
	return b.String()
}

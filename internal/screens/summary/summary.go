package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// maxMissedShown caps the missed list so the card fits small terminals.
const maxMissedShown = 8

// SummaryScreen displays the result of a finished quiz.
type SummaryScreen struct {
	summary *session.SessionSummary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscapeHandler = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.SessionSummary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Summary"
}

// HandlesEscape sends Esc home instead of back into the finished quiz.
func (s *SummaryScreen) HandlesEscape() bool {
	return true
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Play again"},
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "r", "R":
			// back to the setup screen for the same mode
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(theme.Title.Render(sum.Mode.Label() + " complete!"))
	b.WriteString("\n\n")

	score := fmt.Sprintf("Score: %d / %d", sum.TotalCorrect, sum.TotalQuestions)
	b.WriteString(theme.Prompt.Render(score))
	b.WriteString("\n\n")

	b.WriteString(components.NewProgressBar("Accuracy", float64(sum.Accuracy)/100, cw-8).View())
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	details := fmt.Sprintf("Answered %d of %d   Time %d:%02d", sum.Answered, sum.TotalQuestions, mins, secs)
	if sum.BestStreak > 1 {
		details += fmt.Sprintf("   Best streak %d", sum.BestStreak)
	}
	b.WriteString(theme.Subtitle.Render(details))

	if sum.Short() {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(
			fmt.Sprintf("Only %d distinct questions fit your selection (you asked for %d).",
				sum.TotalQuestions, sum.Requested)))
	}

	if len(sum.Missed) > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Render("To practice"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw-8)))
		b.WriteString("\n")
		for i, m := range sum.Missed {
			if i == maxMissedShown {
				b.WriteString(theme.Hint.Render(fmt.Sprintf("…and %d more", len(sum.Missed)-maxMissedShown)))
				break
			}
			line := fmt.Sprintf("%s = %d", m.Question.Symbolic, m.Question.Answer)
			b.WriteString(theme.Body.Render(line))
			b.WriteString(theme.Hint.Render(fmt.Sprintf("   you said %d", m.Chosen)))
			b.WriteString("\n")
		}
	} else if sum.Answered == sum.TotalQuestions && sum.TotalQuestions > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Correct.Render("Perfect round!"))
	}

	card := components.ArcadeCard(b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

const (
	sessionLimit = 50
	missedLimit  = 5
)

// filters cycles through all modes, then each mode.
var filters = append([]problemgen.Mode{""}, problemgen.Modes...)

type historyLoadedMsg struct {
	Sessions []store.SessionRecord
	Stats    []store.ModeStat
	Missed   []store.MissedFact
	Err      error
}

// HistoryScreen lists finished quizzes with per-mode totals and the
// facts missed most often.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionRecord
	stats     []store.ModeStat
	missed    []store.MissedFact
	filter    int
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.load()
}

func (s *HistoryScreen) load() tea.Cmd {
	repo := s.eventRepo
	mode := string(filters[s.filter])
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := repo.RecentSessions(ctx, store.QueryOpts{Limit: sessionLimit, Mode: mode})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		// Totals and missed facts are extras; a failure only hides them.
		stats, _ := repo.ModeStats(ctx)
		missed, _ := repo.MissedFacts(ctx, missedLimit)

		return historyLoadedMsg{Sessions: sessions, Stats: stats, Missed: missed}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "M", Description: "Filter mode"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.sessions = msg.Sessions
			s.stats = msg.Stats
			s.missed = msg.Missed
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		case "m", "M":
			s.filter = (s.filter + 1) % len(filters)
			s.selected = 0
			s.expanded = make(map[int]bool)
			s.loaded = false
			return s, s.load()
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Centered(width, theme.Incorrect, fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return layout.Centered(width, theme.Hint, "\n\n  Loading history...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.renderStats(width))
	b.WriteString("\n")

	filterLabel := "All modes"
	if m := filters[s.filter]; m != "" {
		filterLabel = m.Label()
	}
	b.WriteString(layout.Centered(width, theme.Subtitle, "Recent quizzes · "+filterLabel))
	b.WriteString("\n\n")

	if len(s.sessions) == 0 {
		b.WriteString(layout.Centered(width, theme.Hint, "No quizzes yet. Start practicing!"))
		return b.String()
	}

	for i, rec := range s.sessions {
		b.WriteString(s.renderSession(i, rec, width))
	}

	if len(s.missed) > 0 {
		b.WriteString("\n")
		b.WriteString(layout.Centered(width, theme.Subtitle, "Most missed"))
		b.WriteString("\n")
		parts := make([]string, len(s.missed))
		for i, f := range s.missed {
			parts[i] = fmt.Sprintf("%s (%d×)", f.Symbolic, f.Misses)
		}
		b.WriteString(layout.Centered(width, theme.Body, strings.Join(parts, "   ")))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *HistoryScreen) renderStats(width int) string {
	if len(s.stats) == 0 {
		return ""
	}
	barWidth := min(width-8, 60)
	var lines []string
	for _, st := range s.stats {
		acc := session.Accuracy(st.Correct, st.Questions)
		label := fmt.Sprintf("%-14s %3d quizzes", problemgen.Mode(st.Mode).Label(), st.Sessions)
		lines = append(lines, components.NewProgressBar(label, float64(acc)/100, barWidth).View())
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n")) + "\n"
}

func (s *HistoryScreen) renderSession(i int, rec store.SessionRecord, width int) string {
	prefix := "  "
	style := theme.Unselected
	if i == s.selected {
		prefix = "> "
		style = theme.Selected
	}

	line := fmt.Sprintf("%s%s  %-14s  %2d/%-2d  %3d%%",
		prefix,
		rec.Timestamp.Local().Format("Jan 02 15:04"),
		problemgen.Mode(rec.Mode).Label(),
		rec.CorrectAnswers, rec.QuestionsServed,
		session.Accuracy(rec.CorrectAnswers, rec.QuestionsServed))

	out := lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)) + "\n"

	if s.expanded[i] {
		detail := fmt.Sprintf("requested %d · answered %d · %d:%02d",
			rec.Requested, rec.QuestionsServed, rec.DurationSecs/60, rec.DurationSecs%60)
		out += lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(detail)) + "\n"
	}
	return out
}

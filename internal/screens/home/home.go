package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/history"
	"github.com/abhisek/mathdrill/internal/screens/setup"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
)

// repeatMisses is how often a fact must be missed to count as "to review".
const repeatMisses = 2

type statsLoadedMsg struct {
	Stats  homeStats
	Mascot MascotVariant
}

// HomeScreen is the main menu: pick a mode, look at history or quit.
type HomeScreen struct {
	services *screen.Services
	menu     components.Menu
	stats    homeStats
	mascot   MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates the home screen.
func New(services *screen.Services) *HomeScreen {
	h := &HomeScreen{services: services}

	items := make([]components.MenuItem, 0, len(problemgen.Modes)+2)
	for _, mode := range problemgen.Modes {
		items = append(items, components.MenuItem{
			Label: strings.ToUpper(mode.Label()),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: setup.New(mode, services)}
				}
			},
		})
	}
	items = append(items,
		components.MenuItem{
			Label:    "HISTORY",
			Disabled: services.EventRepo == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(services.EventRepo)}
				}
			},
		},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	)
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// Resume reloads the dashboard after a quiz or the history screen.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	repo := h.services.EventRepo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		return loadStats(context.Background(), repo)
	}
}

func loadStats(ctx context.Context, repo store.EventRepo) statsLoadedMsg {
	var st homeStats

	if modes, err := repo.ModeStats(ctx); err == nil {
		var questions, correct int
		for _, m := range modes {
			st.Sessions += m.Sessions
			questions += m.Questions
			correct += m.Correct
		}
		st.Accuracy = session.Accuracy(correct, questions)
	}

	if facts, err := repo.MissedFacts(ctx, 50); err == nil {
		for _, f := range facts {
			if f.Misses >= repeatMisses {
				st.Missed++
			}
		}
	}

	var lastAcc int
	recent, err := repo.RecentSessions(ctx, store.QueryOpts{Limit: 1})
	hasLast := err == nil && len(recent) > 0
	if hasLast {
		lastAcc = session.Accuracy(recent[0].CorrectAnswers, recent[0].QuestionsServed)
	}

	return statsLoadedMsg{Stats: st, Mascot: pickMascot(lastAcc, hasLast, st.Missed)}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		h.stats = msg.Stats
		h.mascot = msg.Mascot
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer
	compact := layout.IsCompact(width, height+6)
	cw := components.ContentWidth(width)

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot, cw))
	}
	if h.services.EventRepo != nil {
		sections = append(sections, renderStatsBar(h.stats, cw, compact))
	}
	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menu.Labels(), h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menu.Labels(), h.menu.Selected, cw))
	}

	if !h.services.Explainer.HasLLM() {
		sections = append(sections, renderNote("Explanations: built-in (set an LLM key for richer hints)", cw))
	}
	if v := h.services.LatestVersion; v != "" {
		sections = append(sections, renderNote("New version "+v+" available: mathdrill update", cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

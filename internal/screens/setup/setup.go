package setup

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/config"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	sessionscreen "github.com/abhisek/mathdrill/internal/screens/session"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// Rows of the form, top to bottom.
const (
	rowSelection = iota
	rowCount
	rowStart
	rowTotal
)

type startedMsg struct {
	State *session.SessionState
	Err   error
}

// SetupScreen lets the learner choose multipliers or operators and the
// question count before a quiz.
type SetupScreen struct {
	mode     problemgen.Mode
	services *screen.Services
	values   []int                 // multiplication choices
	ops      []problemgen.Operator // inequality choices
	toggles  components.ToggleGroup
	count    int
	row      int
	errMsg   string
	starting bool
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup form for mode, prefilled from the saved practice
// selection.
func New(mode problemgen.Mode, services *screen.Services) *SetupScreen {
	s := &SetupScreen{
		mode:     mode,
		services: services,
		count:    config.ClampCount(services.Practice.QuestionCount),
	}

	switch mode {
	case problemgen.ModeMultiplication:
		var labels []string
		for m := problemgen.MinMultiplier; m <= problemgen.MaxMultiplier; m++ {
			s.values = append(s.values, m)
			labels = append(labels, strconv.Itoa(m))
		}
		s.toggles = components.NewToggleGroup(labels, func(i int) bool {
			return slices.Contains(services.Practice.Multipliers, s.values[i])
		})
	case problemgen.ModeInequality:
		saved := services.Practice.QuizConfig(problemgen.ModeInequality).Operators
		var labels []string
		for _, op := range problemgen.Operators {
			s.ops = append(s.ops, op)
			labels = append(labels, string(op))
		}
		s.toggles = components.NewToggleGroup(labels, func(i int) bool {
			return slices.Contains(saved, s.ops[i])
		})
	}
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return s.mode.Label()
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Move"}}
	switch s.row {
	case rowSelection:
		hints = append(hints,
			layout.KeyHint{Key: "←→", Description: "Choose"},
			layout.KeyHint{Key: "Space", Description: "Toggle"})
	case rowCount:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Change"})
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Start"},
		layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Config returns the engine config built from the form.
func (s *SetupScreen) Config() problemgen.Config {
	cfg := problemgen.Config{QuestionCount: s.count}
	for _, i := range s.toggles.Checked() {
		switch s.mode {
		case problemgen.ModeMultiplication:
			cfg.Multipliers = append(cfg.Multipliers, s.values[i])
		case problemgen.ModeInequality:
			cfg.Operators = append(cfg.Operators, s.ops[i])
		}
	}
	return cfg
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		s.starting = false
		if msg.Err != nil {
			s.errMsg = problemgen.ConfigMessage(msg.Err)
			return s, nil
		}
		s.errMsg = ""
		s.remember()
		state := msg.State
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: sessionscreen.New(state, s.services)}
		}

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SetupScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, components.KeySelect):
		return s, s.start()
	case key.Matches(msg, components.KeyUp):
		if s.row > 0 {
			s.row--
		}
		return s, nil
	case key.Matches(msg, components.KeyDown):
		if s.row < rowTotal-1 {
			s.row++
		}
		return s, nil
	}

	switch s.row {
	case rowSelection:
		s.toggles = s.toggles.Update(msg)
		s.errMsg = ""
	case rowCount:
		switch {
		case key.Matches(msg, components.KeyLeft):
			s.count = max(s.count-config.CountStep, config.CountMin)
		case key.Matches(msg, components.KeyRight):
			s.count = min(s.count+config.CountStep, config.CountMax)
		}
	}
	return s, nil
}

// start asks the engine for a quiz. Config errors come back as a
// startedMsg and are shown inline.
func (s *SetupScreen) start() tea.Cmd {
	if s.starting {
		return nil
	}
	s.starting = true
	engine, repo, mode, cfg := s.services.Engine, s.services.EventRepo, s.mode, s.Config()
	return func() tea.Msg {
		state, err := session.Begin(context.Background(), engine, mode, cfg, repo)
		return startedMsg{State: state, Err: err}
	}
}

// remember stores the form as the new practice default.
func (s *SetupScreen) remember() {
	cfg := s.Config()
	p := &s.services.Practice
	p.QuestionCount = cfg.QuestionCount
	switch s.mode {
	case problemgen.ModeMultiplication:
		p.Multipliers = cfg.Multipliers
	case problemgen.ModeInequality:
		p.Operators = nil
		for _, op := range cfg.Operators {
			p.Operators = append(p.Operators, string(op))
		}
	}
	if s.services.SavePractice != nil {
		_ = s.services.SavePractice(*p)
	}
}

func (s *SetupScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	focus := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)

	heading := func(row int, text string) string {
		if row == s.row {
			return focus.Render("▸ " + text)
		}
		return label.Render("  " + text)
	}

	var b strings.Builder

	selTitle := "Multipliers"
	if s.mode == problemgen.ModeInequality {
		selTitle = "Operators"
	}
	b.WriteString(heading(rowSelection, selTitle))
	b.WriteString("\n\n")
	b.WriteString("   " + s.toggles.View(s.row == rowSelection))
	b.WriteString("\n\n")

	b.WriteString(heading(rowCount, "Questions"))
	b.WriteString("\n\n")
	stepper := fmt.Sprintf("◂ %2d ▸", s.count)
	if s.row == rowCount {
		stepper = focus.Render(stepper)
	} else {
		stepper = theme.Body.Render(stepper)
	}
	b.WriteString("   " + stepper + label.Render(fmt.Sprintf("   (%d–%d, step %d)", config.CountMin, config.CountMax, config.CountStep)))
	b.WriteString("\n\n")

	b.WriteString(components.ArcadeButton("START", s.row == rowStart, 18))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	}

	card := components.ArcadeCard(lipgloss.NewStyle().Align(lipgloss.Left).Render(b.String()), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

package session

import (
	"context"
	"fmt"
	"slices"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/explain"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	summaryscreen "github.com/abhisek/mathdrill/internal/screens/summary"
	sess "github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

var keyType = key.NewBinding(key.WithKeys("t", "/"), key.WithHelp("t", "type answer"))

// explanationMsg carries an explanation for the question at Index.
type explanationMsg struct {
	Index       int
	Explanation *explain.Explanation
}

// SessionScreen runs one quiz: question, feedback, next, summary.
type SessionScreen struct {
	state    *sess.SessionState
	services *screen.Services

	choices components.MultiChoice
	input   components.AnswerInput
	typing  bool

	showingQuitConfirm bool

	explanation *explain.Explanation
	explaining  bool
	spinner     spinner.Model
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)
var _ screen.EscapeHandler = (*SessionScreen)(nil)

// New creates a screen for a quiz already started with session.Begin.
func New(state *sess.SessionState, services *screen.Services) *SessionScreen {
	s := &SessionScreen{
		state:    state,
		services: services,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(theme.Hint),
		),
	}
	s.resetQuestion()
	return s
}

func (s *SessionScreen) resetQuestion() {
	s.typing = false
	s.explanation = nil
	s.explaining = false
	if q := sess.CurrentQuestion(s.state); q != nil {
		s.choices = components.NewMultiChoice(q.Options, q.Answer)
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return tickCmd()
}

func (s *SessionScreen) Title() string {
	return s.state.Mode.Label()
}

// Status shows the running score in the header.
func (s *SessionScreen) Status() string {
	return fmt.Sprintf("✓ %d / %d", s.state.TotalCorrect, s.state.Total())
}

// HandlesEscape keeps the app from popping the quiz; Esc asks first.
func (s *SessionScreen) HandlesEscape() bool {
	return true
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.showingQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	case s.state.Phase == sess.PhaseFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Next"}}
	case s.typing:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Pick instead"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "←↑↓→", Description: "Move"},
		{Key: "Enter", Description: "Pick"},
		{Key: "T", Description: "Type"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if s.state.Finished {
			return s, nil
		}
		return s, tickCmd()

	case spinner.TickMsg:
		if !s.explaining {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case explanationMsg:
		if msg.Index == s.state.CurrentIndex && s.state.Answered {
			s.explanation = msg.Explanation
			s.explaining = false
		}
		return s, nil

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.typing {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.state.Finished {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch msg.String() {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, endCmd
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.state.Phase == sess.PhaseFeedback {
		return s.next()
	}

	if msg.String() == "esc" {
		if s.typing {
			s.typing = false
			return s, nil
		}
		s.showingQuitConfirm = true
		return s, nil
	}

	if s.typing {
		if key.Matches(msg, components.KeySelect) {
			v, ok := problemgen.ParseChoice(s.input.Value(), sess.CurrentQuestion(s.state))
			if !ok {
				return s, nil
			}
			return s.submit(v)
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	if key.Matches(msg, keyType) {
		s.typing = true
		s.input = components.NewAnswerInput("value or 1-4")
		return s, s.input.Init()
	}

	var picked bool
	s.choices, picked = s.choices.Update(msg)
	if !picked {
		return s, nil
	}
	v, _ := s.choices.ChosenValue()
	return s.submit(v)
}

// submit records value as the answer to the current question and starts
// the explanation for a wrong one.
func (s *SessionScreen) submit(value int) (screen.Screen, tea.Cmd) {
	rec := sess.HandleAnswer(s.state, value)
	if rec == nil {
		return s, nil
	}

	s.typing = false
	s.choices.Submitted = true
	s.choices.Chosen = slices.Index(rec.Question.Options, value)

	if rec.Correct {
		return s, nil
	}

	explainer := s.services.Explainer
	if !explainer.HasLLM() {
		s.explanation = explain.Fallback(&rec.Question, rec.Chosen)
		return s, nil
	}

	s.explaining = true
	idx, q, chosen := rec.Index, rec.Question, rec.Chosen
	return s, tea.Batch(
		s.spinner.Tick,
		func() tea.Msg {
			return explanationMsg{Index: idx, Explanation: explainer.Explain(context.Background(), &q, chosen)}
		},
	)
}

// next leaves the feedback phase for the next question or the summary.
func (s *SessionScreen) next() (screen.Screen, tea.Cmd) {
	if !sess.Advance(s.state) {
		return s, endCmd
	}
	s.resetQuestion()
	return s, nil
}

func (s *SessionScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	sess.Finish(context.Background(), s.state)
	summary := sess.BuildSummary(s.state)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summaryscreen.New(summary)}
	}
}

func endCmd() tea.Msg {
	return sessionEndMsg{}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

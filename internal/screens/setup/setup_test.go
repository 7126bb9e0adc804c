package setup

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/config"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
)

func testServices() *screen.Services {
	return &screen.Services{
		Engine:   problemgen.New(problemgen.NewSource(7)),
		Practice: config.Default().Practice,
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// run executes cmd and feeds its message back into s.
func run(s *SetupScreen, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	_, next := s.Update(cmd())
	return next
}

func TestNew_PrefillsFromPractice(t *testing.T) {
	svc := testServices()
	svc.Practice.Multipliers = []int{3, 7}
	s := New(problemgen.ModeMultiplication, svc)

	cfg := s.Config()
	if len(cfg.Multipliers) != 2 || cfg.Multipliers[0] != 3 || cfg.Multipliers[1] != 7 {
		t.Errorf("Multipliers = %v, want [3 7]", cfg.Multipliers)
	}
	if cfg.QuestionCount != 10 {
		t.Errorf("QuestionCount = %d, want 10", cfg.QuestionCount)
	}
}

func TestNew_InequalityDefaults(t *testing.T) {
	s := New(problemgen.ModeInequality, testServices())
	cfg := s.Config()
	if len(cfg.Operators) != 2 || cfg.Operators[0] != problemgen.OpGreater || cfg.Operators[1] != problemgen.OpLess {
		t.Errorf("Operators = %v, want [> <]", cfg.Operators)
	}
	if s.Title() != "Inequalities" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestToggleSelection(t *testing.T) {
	s := New(problemgen.ModeInequality, testServices())

	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeySpace)) // ≥ on

	cfg := s.Config()
	if len(cfg.Operators) != 3 || cfg.Operators[2] != problemgen.OpGreaterEqual {
		t.Errorf("Operators = %v, want [> < ≥]", cfg.Operators)
	}
}

func TestCountStepper(t *testing.T) {
	s := New(problemgen.ModeMultiplication, testServices())
	s.Update(specialKey(tea.KeyDown))

	s.Update(specialKey(tea.KeyRight))
	if s.count != 15 {
		t.Errorf("count = %d, want 15", s.count)
	}

	for i := 0; i < 20; i++ {
		s.Update(specialKey(tea.KeyRight))
	}
	if s.count != config.CountMax {
		t.Errorf("count = %d, want clamp at %d", s.count, config.CountMax)
	}

	for i := 0; i < 20; i++ {
		s.Update(specialKey(tea.KeyLeft))
	}
	if s.count != config.CountMin {
		t.Errorf("count = %d, want clamp at %d", s.count, config.CountMin)
	}
}

func TestStart_EmptySelectionShowsMessage(t *testing.T) {
	svc := testServices()
	svc.Practice.Multipliers = nil
	s := New(problemgen.ModeMultiplication, svc)

	next := run(s, s.start())
	if next != nil {
		t.Error("no navigation expected on a config error")
	}
	if s.errMsg != "Please select at least one multiplier" {
		t.Errorf("errMsg = %q", s.errMsg)
	}
	if !strings.Contains(s.View(100, 30), "Please select at least one multiplier") {
		t.Error("error not rendered")
	}
}

func TestStart_PushesQuizAndSaves(t *testing.T) {
	svc := testServices()
	var saved []config.Practice
	svc.SavePractice = func(p config.Practice) error {
		saved = append(saved, p)
		return nil
	}
	s := New(problemgen.ModeMultiplication, svc)

	next := run(s, s.start())
	if next == nil {
		t.Fatal("expected navigation to the quiz")
	}
	push, ok := next().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", next())
	}
	if push.Screen.Title() != "Multiplication" {
		t.Errorf("pushed %q", push.Screen.Title())
	}
	if len(saved) != 1 {
		t.Errorf("SavePractice called %d times, want 1", len(saved))
	}
}

func TestStart_EngineErrorFallsBackToText(t *testing.T) {
	svc := testServices()
	svc.Engine = failingEngine{}
	s := New(problemgen.ModeMultiplication, svc)

	run(s, s.start())
	if s.errMsg != "boom" {
		t.Errorf("errMsg = %q, want boom", s.errMsg)
	}
}

type failingEngine struct{}

func (failingEngine) Start(problemgen.Mode, problemgen.Config) ([]problemgen.Question, error) {
	return nil, errors.New("boom")
}

package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/session"
)

func testSummary() *session.SessionSummary {
	return &session.SessionSummary{
		Mode:           problemgen.ModeMultiplication,
		Duration:       95 * time.Second,
		Requested:      10,
		TotalQuestions: 4,
		Answered:       4,
		TotalCorrect:   3,
		Accuracy:       75,
		Missed: []session.AnswerRecord{
			{
				Index:    2,
				Question: problemgen.Question{Symbolic: "6 × 4", Answer: 24},
				Chosen:   22,
			},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Quiz Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(100, 40)

	for _, want := range []string{"Score: 3 / 4", "6 × 4 = 24", "you said 22", "Only 4 distinct questions", "1:35"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_PerfectRound(t *testing.T) {
	sum := testSummary()
	sum.Missed = nil
	sum.TotalCorrect = 4
	sum.Requested = 4

	view := New(sum).View(100, 40)
	if !strings.Contains(view, "Perfect round!") {
		t.Error("expected perfect round message")
	}
	if strings.Contains(view, "distinct questions") {
		t.Error("short notice shown for a full quiz")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("Enter should return to the home screen")
	}
}

func TestSummaryScreen_PlayAgain(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command on R")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("R should go back to setup")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	if hints := s.KeyHints(); len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}

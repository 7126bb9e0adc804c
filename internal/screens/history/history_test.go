package history

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/store"
)

type historyRepo struct {
	store.EventRepo
	lastMode string
}

func (r *historyRepo) RecentSessions(_ context.Context, opts store.QueryOpts) ([]store.SessionRecord, error) {
	r.lastMode = opts.Mode
	return []store.SessionRecord{
		{
			Timestamp: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC), SessionID: "a", Mode: "multiplication",
			Requested: 10, QuestionsServed: 10, CorrectAnswers: 7, DurationSecs: 125,
		},
	}, nil
}

func (r *historyRepo) ModeStats(context.Context) ([]store.ModeStat, error) {
	return []store.ModeStat{{Mode: "multiplication", Sessions: 1, Questions: 10, Correct: 7}}, nil
}

func (r *historyRepo) MissedFacts(context.Context, int) ([]store.MissedFact, error) {
	return []store.MissedFact{{Symbolic: "7 × 8", Misses: 2}}, nil
}

func loaded(t *testing.T) (*HistoryScreen, *historyRepo) {
	t.Helper()
	repo := &historyRepo{}
	s := New(repo)
	s.Update(s.Init()())
	return s, repo
}

func TestHistory_View(t *testing.T) {
	s, _ := loaded(t)
	view := s.View(100, 40)
	for _, want := range []string{"Multiplication", "7/10", "70%", "7 × 8 (2×)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHistory_Expand(t *testing.T) {
	s, _ := loaded(t)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(100, 40), "requested 10 · answered 10 · 2:05") {
		t.Error("expected expanded details")
	}
}

func TestHistory_FilterCycles(t *testing.T) {
	s, repo := loaded(t)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'm', Text: "m"})
	if cmd == nil {
		t.Fatal("expected reload")
	}
	s.Update(cmd())
	if repo.lastMode != "multiplication" {
		t.Errorf("mode filter = %q, want multiplication", repo.lastMode)
	}
}

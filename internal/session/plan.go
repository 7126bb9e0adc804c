package session

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/google/uuid"
)

// Starter generates a quiz. *problemgen.Engine satisfies it.
type Starter interface {
	Start(mode problemgen.Mode, cfg problemgen.Config) ([]problemgen.Question, error)
}

// Begin asks engine for a quiz exactly once and wraps it in a new
// SessionState. Config errors from the engine are returned unchanged so
// callers can show problemgen.ConfigMessage(err). repo may be nil.
func Begin(ctx context.Context, engine Starter, mode problemgen.Mode, cfg problemgen.Config, repo store.EventRepo) (*SessionState, error) {
	questions, err := engine.Start(mode, cfg)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("engine produced no questions")
	}

	state := NewSessionState(uuid.NewString(), mode, cfg, questions)
	state.EventRepo = repo

	if repo != nil {
		err := repo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:       state.SessionID,
			Mode:            string(mode),
			Action:          store.ActionStart,
			Requested:       cfg.QuestionCount,
			QuestionsServed: len(questions),
			Config:          quizConfig(mode, cfg),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record session start: %v\n", err)
		}
	}
	return state, nil
}

// Finish freezes the elapsed time, moves to the summary phase and records
// the end event. Calling it again is a no-op.
func Finish(ctx context.Context, state *SessionState) {
	if state.Finished {
		return
	}
	state.Finished = true
	state.Phase = PhaseSummary
	state.Elapsed = time.Since(state.StartTime)

	if state.EventRepo == nil {
		return
	}
	err := state.EventRepo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:       state.SessionID,
		Mode:            string(state.Mode),
		Action:          store.ActionEnd,
		Requested:       state.Requested(),
		QuestionsServed: len(state.Answers),
		CorrectAnswers:  state.TotalCorrect,
		DurationSecs:    int(state.Elapsed.Seconds()),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record session end: %v\n", err)
	}
}

func quizConfig(mode problemgen.Mode, cfg problemgen.Config) *store.QuizConfig {
	qc := &store.QuizConfig{QuestionCount: cfg.QuestionCount}
	switch mode {
	case problemgen.ModeMultiplication:
		qc.Multipliers = cfg.Multipliers
	case problemgen.ModeInequality:
		for _, op := range cfg.Operators {
			qc.Operators = append(qc.Operators, string(op))
		}
	}
	return qc
}

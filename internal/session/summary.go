package session

import (
	"time"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

// SessionSummary holds the data displayed on the summary screen.
type SessionSummary struct {
	Mode           problemgen.Mode
	Duration       time.Duration
	Requested      int
	TotalQuestions int
	Answered       int
	TotalCorrect   int
	Accuracy       int // percent, rounded half up
	BestStreak     int
	Missed         []AnswerRecord
}

// Short reports whether fewer questions were generated than requested.
func (s *SessionSummary) Short() bool {
	return s.TotalQuestions < s.Requested
}

// BuildSummary creates a SessionSummary from the session state. Accuracy
// is measured against the questions actually generated.
func BuildSummary(state *SessionState) *SessionSummary {
	var missed []AnswerRecord
	for _, a := range state.Answers {
		if !a.Correct {
			missed = append(missed, a)
		}
	}

	elapsed := state.Elapsed
	if !state.Finished {
		elapsed = time.Since(state.StartTime)
	}

	return &SessionSummary{
		Mode:           state.Mode,
		Duration:       elapsed,
		Requested:      state.Requested(),
		TotalQuestions: state.Total(),
		Answered:       len(state.Answers),
		TotalCorrect:   state.TotalCorrect,
		Accuracy:       Accuracy(state.TotalCorrect, state.Total()),
		BestStreak:     state.BestStreak,
		Missed:         missed,
	}
}

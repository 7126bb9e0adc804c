package session

import (
	"time"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/store"
)

// SessionPhase represents the current phase of the session.
type SessionPhase int

const (
	PhaseActive   SessionPhase = iota // Serving questions
	PhaseFeedback                     // Showing answer feedback
	PhaseSummary                      // All questions answered
)

// AnswerRecord is one learner selection.
type AnswerRecord struct {
	Index        int // position of the question in the quiz
	Question     problemgen.Question
	Chosen       int
	Correct      bool
	ResponseTime time.Duration
}

// SessionState tracks one quiz from start to summary. Nothing here is
// global: every consumer (terminal UI, HTTP API, bot) owns its own states.
type SessionState struct {
	// SessionID is the UUID for this session.
	SessionID string

	// Mode and Config are the selection the quiz was generated from.
	Mode   problemgen.Mode
	Config problemgen.Config

	// Questions is the generated quiz. It may be shorter than
	// Config.QuestionCount for multiplication.
	Questions []problemgen.Question

	// CurrentIndex is the position of the question being shown.
	CurrentIndex int

	// Answered is true once the current question has a selection.
	Answered bool

	// TotalCorrect is the count of correct answers so far.
	TotalCorrect int

	// Answers holds every selection in order.
	Answers []AnswerRecord

	// LastAnswerCorrect records whether the most recent answer was correct.
	LastAnswerCorrect bool

	// Streak is the current run of correct answers; BestStreak the longest.
	Streak     int
	BestStreak int

	// StartTime is when the session began.
	StartTime time.Time

	// QuestionStartTime tracks when the current question was first displayed.
	QuestionStartTime time.Time

	// Elapsed is frozen when the session finishes.
	Elapsed time.Duration

	// Phase is the current session phase.
	Phase SessionPhase

	// Finished is set once the end event has been recorded.
	Finished bool

	// EventRepo receives answer and session events (nil disables history).
	EventRepo store.EventRepo
}

// NewSessionState creates a state positioned on the first question.
func NewSessionState(id string, mode problemgen.Mode, cfg problemgen.Config, questions []problemgen.Question) *SessionState {
	now := time.Now()
	return &SessionState{
		SessionID:         id,
		Mode:              mode,
		Config:            cfg,
		Questions:         questions,
		StartTime:         now,
		QuestionStartTime: now,
		Phase:             PhaseActive,
	}
}

// Total is the number of questions actually generated.
func (s *SessionState) Total() int {
	return len(s.Questions)
}

// Requested is the number of questions the learner asked for.
func (s *SessionState) Requested() int {
	return s.Config.QuestionCount
}

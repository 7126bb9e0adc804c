package session

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/store"
)

// CurrentQuestion returns the question being shown, or nil once the quiz
// is over.
func CurrentQuestion(state *SessionState) *problemgen.Question {
	if state.CurrentIndex < 0 || state.CurrentIndex >= len(state.Questions) {
		return nil
	}
	return &state.Questions[state.CurrentIndex]
}

// HandleAnswer records the learner's selection (an option value) for the
// current question and moves to the feedback phase. Only the first
// selection per question counts: further calls return nil and change
// nothing until Advance is called.
func HandleAnswer(state *SessionState, chosen int) *AnswerRecord {
	q := CurrentQuestion(state)
	if q == nil || state.Answered || state.Finished {
		return nil
	}

	correct := problemgen.CheckChoice(chosen, q)
	rec := AnswerRecord{
		Index:        state.CurrentIndex,
		Question:     *q,
		Chosen:       chosen,
		Correct:      correct,
		ResponseTime: time.Since(state.QuestionStartTime),
	}

	state.Answered = true
	state.LastAnswerCorrect = correct
	if correct {
		state.TotalCorrect++
	}
	state.updateStreak(correct)
	state.Answers = append(state.Answers, rec)
	state.Phase = PhaseFeedback

	if state.EventRepo != nil {
		err := state.EventRepo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
			SessionID:     state.SessionID,
			Mode:          string(state.Mode),
			Symbolic:      q.Symbolic,
			CorrectAnswer: q.Answer,
			LearnerAnswer: chosen,
			Correct:       correct,
			TimeMs:        int(rec.ResponseTime.Milliseconds()),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record answer: %v\n", err)
		}
	}

	return &state.Answers[len(state.Answers)-1]
}

// HandleChoice records the option at zero-based position idx.
func HandleChoice(state *SessionState, idx int) *AnswerRecord {
	q := CurrentQuestion(state)
	if q == nil {
		return nil
	}
	v, ok := problemgen.ChoiceAt(q, idx)
	if !ok {
		return nil
	}
	return HandleAnswer(state, v)
}

// Advance moves past an answered question. It returns false, and finishes
// the session, when there is no next question.
func Advance(state *SessionState) bool {
	if !state.Answered {
		return !IsComplete(state)
	}
	state.CurrentIndex++
	state.Answered = false
	state.QuestionStartTime = time.Now()

	if state.CurrentIndex >= len(state.Questions) {
		Finish(context.Background(), state)
		return false
	}
	state.Phase = PhaseActive
	return true
}

// IsComplete reports whether every question has been answered.
func IsComplete(state *SessionState) bool {
	return len(state.Answers) >= len(state.Questions)
}

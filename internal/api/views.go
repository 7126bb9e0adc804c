package api

import (
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/session"
)

// quizRequest is shared by /questions and /sessions. Omitted fields take
// the configured practice defaults; an explicit empty list is passed on
// so the engine can reject it.
type quizRequest struct {
	Mode          string   `json:"mode"`
	Multipliers   []int    `json:"multipliers"`
	Operators     []string `json:"operators"`
	QuestionCount *int     `json:"question_count"`
}

// answerRequest carries either the chosen option value or its 1-based
// position. Index, when set, must be the question being answered.
type answerRequest struct {
	Choice *int `json:"choice"`
	Option *int `json:"option"`
	Index  *int `json:"index"`
}

type questionView struct {
	Index    int    `json:"index"`
	Kind     string `json:"kind"`
	Symbolic string `json:"symbolic"`
	Textual  string `json:"textual"`
	Options  []int  `json:"options"`
	Answer   *int   `json:"answer,omitempty"`
}

type sessionView struct {
	ID        string        `json:"id"`
	Mode      string        `json:"mode"`
	Requested int           `json:"requested"`
	Total     int           `json:"total"`
	Answered  int           `json:"answered"`
	Correct   int           `json:"correct"`
	Done      bool          `json:"done"`
	Question  *questionView `json:"question"`
}

type explanationView struct {
	Summary string   `json:"summary"`
	Steps   []string `json:"steps,omitempty"`
	Tip     string   `json:"tip,omitempty"`
	Source  string   `json:"source"`
}

type answerView struct {
	Correct       bool             `json:"correct"`
	CorrectAnswer int              `json:"correct_answer"`
	Explanation   *explanationView `json:"explanation,omitempty"`
	Next          *questionView    `json:"next"`
	Done          bool             `json:"done"`
}

type missedView struct {
	Symbolic      string `json:"symbolic"`
	Chosen        int    `json:"chosen"`
	CorrectAnswer int    `json:"correct_answer"`
}

type summaryView struct {
	ID             string       `json:"id"`
	Mode           string       `json:"mode"`
	Requested      int          `json:"requested"`
	TotalQuestions int          `json:"total_questions"`
	Answered       int          `json:"answered"`
	TotalCorrect   int          `json:"total_correct"`
	Accuracy       int          `json:"accuracy"`
	BestStreak     int          `json:"best_streak"`
	DurationSecs   float64      `json:"duration_secs"`
	Missed         []missedView `json:"missed"`
}

type errorView struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func newQuestionView(i int, q *problemgen.Question, withAnswer bool) *questionView {
	v := &questionView{
		Index:    i,
		Kind:     string(q.Kind),
		Symbolic: q.Symbolic,
		Textual:  q.Textual,
		Options:  q.Options,
	}
	if withAnswer {
		a := q.Answer
		v.Answer = &a
	}
	return v
}

func newSessionView(state *session.SessionState) sessionView {
	v := sessionView{
		ID:        state.SessionID,
		Mode:      string(state.Mode),
		Requested: state.Requested(),
		Total:     state.Total(),
		Answered:  len(state.Answers),
		Correct:   state.TotalCorrect,
		Done:      state.Finished,
	}
	if q := session.CurrentQuestion(state); q != nil {
		v.Question = newQuestionView(state.CurrentIndex, q, false)
	}
	return v
}

func newSummaryView(id string, s *session.SessionSummary) summaryView {
	v := summaryView{
		ID:             id,
		Mode:           string(s.Mode),
		Requested:      s.Requested,
		TotalQuestions: s.TotalQuestions,
		Answered:       s.Answered,
		TotalCorrect:   s.TotalCorrect,
		Accuracy:       s.Accuracy,
		BestStreak:     s.BestStreak,
		DurationSecs:   s.Duration.Seconds(),
		Missed:         []missedView{},
	}
	for _, m := range s.Missed {
		v.Missed = append(v.Missed, missedView{
			Symbolic:      m.Question.Symbolic,
			Chosen:        m.Chosen,
			CorrectAnswer: m.Question.Answer,
		})
	}
	return v
}

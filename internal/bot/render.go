package bot

import (
	"fmt"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/session"
)

const (
	uniqueAnswer = "answer"
	uniqueMode   = "mode"
)

const welcomeText = `Hi! Let's practice.

/multiply - times tables (e.g. /multiply 3 4 7)
/compare - inequalities (e.g. /compare > <=)
/stop - end the current quiz

Or pick a mode:`

func questionText(q *problemgen.Question, index, total int) string {
	return fmt.Sprintf("Question %d of %d\n\n%s\n%s", index+1, total, q.Symbolic, q.Textual)
}

// optionsMarkup lays the four options out as a 2x2 inline keyboard.
func optionsMarkup(quiz string, q *problemgen.Question, index int) *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	btns := make([]tele.Btn, len(q.Options))
	for i, o := range q.Options {
		btns[i] = m.Data(strconv.Itoa(o), uniqueAnswer, answerPayload(quiz, index, o)...)
	}
	m.Inline(m.Split(2, btns)...)
	return m
}

func modeMarkup() *tele.ReplyMarkup {
	m := &tele.ReplyMarkup{}
	row := make(tele.Row, 0, len(problemgen.Modes))
	for _, mode := range problemgen.Modes {
		row = append(row, m.Data(mode.Label(), uniqueMode, string(mode)))
	}
	m.Inline(row)
	return m
}

func feedbackText(o *outcome) string {
	rec := o.Record
	if rec.Correct {
		return fmt.Sprintf("✅ Correct! %s: %d", rec.Question.Symbolic, rec.Question.Answer)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "❌ You picked %d. The answer to %s is %d.", rec.Chosen, rec.Question.Symbolic, rec.Question.Answer)
	if o.Explanation != nil {
		b.WriteString("\n\n")
		b.WriteString(o.Explanation.Text())
	}
	return b.String()
}

func summaryText(s *session.SessionSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏁 %s quiz finished\n\n", s.Mode.Label())
	fmt.Fprintf(&b, "Score: %d / %d\n", s.TotalCorrect, s.TotalQuestions)
	fmt.Fprintf(&b, "Accuracy: %d%%\n", s.Accuracy)
	if s.BestStreak > 1 {
		fmt.Fprintf(&b, "Best streak: %d in a row\n", s.BestStreak)
	}
	if s.Answered < s.TotalQuestions {
		fmt.Fprintf(&b, "Answered: %d of %d\n", s.Answered, s.TotalQuestions)
	}
	if s.Short() {
		fmt.Fprintf(&b, "Only %d distinct questions fit your selection (asked for %d).\n", s.TotalQuestions, s.Requested)
	}
	if len(s.Missed) > 0 {
		b.WriteString("\nReview:\n")
		for _, m := range s.Missed {
			fmt.Fprintf(&b, "• %s = %d (you said %d)\n", m.Question.Symbolic, m.Question.Answer, m.Chosen)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

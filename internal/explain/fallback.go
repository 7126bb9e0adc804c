package explain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

// Fallback builds an explanation without an LLM. Multiplication is
// explained as skip counting, inequalities as a number-line comparison.
func Fallback(q *problemgen.Question, chosen int) *Explanation {
	switch q.Kind {
	case problemgen.ModeMultiplication:
		return multiplicationFallback(q, chosen)
	case problemgen.ModeInequality:
		return inequalityFallback(q, chosen)
	}
	return &Explanation{
		Summary: fmt.Sprintf("The answer is %d.", q.Answer),
		Source:  SourceBuiltin,
	}
}

func multiplicationFallback(q *problemgen.Question, chosen int) *Explanation {
	counts := make([]string, 0, q.Factor)
	for i := 1; i <= q.Factor; i++ {
		counts = append(counts, strconv.Itoa(i*q.Multiplier))
	}

	e := &Explanation{
		Summary: fmt.Sprintf("%s: count by %ds %s times: %s.",
			q.Symbolic, q.Multiplier, problemgen.NumberWord(q.Factor), strings.Join(counts, ", ")),
		Steps: []string{
			fmt.Sprintf("%s means %d groups of %d.", q.Symbolic, q.Factor, q.Multiplier),
			fmt.Sprintf("Adding %d again and again %d times lands on %d.", q.Multiplier, q.Factor, q.Answer),
		},
		Source: SourceBuiltin,
	}
	if chosen != q.Answer {
		e.Tip = fmt.Sprintf("%d is %s.", chosen, distance(chosen, q.Answer))
	}
	return e
}

func inequalityFallback(q *problemgen.Question, chosen int) *Explanation {
	e := &Explanation{
		Summary: fmt.Sprintf("%s means x must be %s %d.", q.Symbolic, q.Operator.Words(), q.Base),
		Steps: []string{
			fmt.Sprintf("%d %s: %s.", q.Answer, verdict(true), relation(q.Answer, q.Base)),
		},
		Source: SourceBuiltin,
	}
	if chosen != q.Answer {
		e.Steps = append(e.Steps, fmt.Sprintf("%d %s: %s.", chosen, verdict(false), relation(chosen, q.Base)))
		e.Tip = fmt.Sprintf("On a number line, look at which side of %d each option sits.", q.Base)
	}
	return e
}

func verdict(ok bool) string {
	if ok {
		return "works"
	}
	return "does not"
}

func relation(n, base int) string {
	switch {
	case n > base:
		return fmt.Sprintf("%d is bigger than %d", n, base)
	case n < base:
		return fmt.Sprintf("%d is smaller than %d", n, base)
	default:
		return fmt.Sprintf("%d is equal to %d", n, base)
	}
}

func distance(chosen, answer int) string {
	d := chosen - answer
	switch {
	case d > 0:
		return fmt.Sprintf("%d too many", d)
	case d < 0:
		return fmt.Sprintf("%d too few", -d)
	}
	return "right"
}

// Text renders an explanation as plain lines for chat and terminal output.
func (e *Explanation) Text() string {
	var b strings.Builder
	b.WriteString(e.Summary)
	for _, s := range e.Steps {
		b.WriteString("\n• ")
		b.WriteString(s)
	}
	if e.Tip != "" {
		b.WriteString("\nTip: ")
		b.WriteString(e.Tip)
	}
	return b.String()
}

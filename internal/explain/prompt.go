package explain

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

const systemPrompt = `You are a patient, encouraging math tutor for children in grades 2-5. A student just picked the wrong option on a multiple-choice practice question. Explain the correct answer briefly and kindly.`

func buildUserMessage(in Input) string {
	q := in.Question
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s (%s)\n", q.Symbolic, q.Textual)
	fmt.Fprintf(&b, "Options: %s\n", joinInts(q.Options))
	fmt.Fprintf(&b, "Correct answer: %d\n", q.Answer)
	fmt.Fprintf(&b, "Student picked: %d\n", in.Chosen)

	switch q.Kind {
	case problemgen.ModeMultiplication:
		b.WriteString("\nTopic: multiplication facts. Explain using skip counting or equal groups.\n")
	case problemgen.ModeInequality:
		b.WriteString("\nTopic: comparing integers, including negatives. Explain using a number line.\n")
	}

	b.WriteString(`
Instructions:
1. Keep the summary to at most two sentences.
2. Give 1-4 short steps that end at the correct answer.
3. Mention why the student's pick does not work.
4. Use plain ASCII for math. Use * for multiplication and >, <, >=, <= for comparisons.`)

	return b.String()
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, ", ")
}

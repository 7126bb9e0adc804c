package problemgen

import (
	"slices"
	"strconv"
	"strings"
)

// CheckAnswer compares a learner's selection against the correct answer.
//
// The selection is either the literal option value or an option number
// 1-4. A value shown among the options always means that option, so "3"
// picks the option 3 when one exists and the third option otherwise.
// Whitespace is trimmed; anything unparsable is wrong.
func CheckAnswer(choice string, q *Question) bool {
	v, ok := ParseChoice(choice, q)
	return ok && CheckChoice(v, q)
}

// ParseChoice turns typed input into the value the learner selected,
// using the same rules as CheckAnswer. It fails only when the input is
// not an integer.
func ParseChoice(choice string, q *Question) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil {
		return 0, false
	}
	if slices.Contains(q.Options, n) {
		return n, true
	}
	if n >= 1 && n <= len(q.Options) {
		return q.Options[n-1], true
	}
	return n, true
}

// CheckChoice reports whether value is the correct option of q.
func CheckChoice(value int, q *Question) bool {
	return value == q.Answer
}

// ChoiceAt returns the option value shown at zero-based index i.
func ChoiceAt(q *Question, i int) (int, bool) {
	if i < 0 || i >= len(q.Options) {
		return 0, false
	}
	return q.Options[i], true
}

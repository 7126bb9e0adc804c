package problemgen

import (
	"fmt"
	"strings"
)

// Mode selects which generator the engine dispatches to.
type Mode string

const (
	ModeMultiplication Mode = "multiplication"
	ModeInequality     Mode = "inequality"
)

// Modes lists the supported modes in menu order.
var Modes = []Mode{ModeMultiplication, ModeInequality}

// Label returns the human-facing name of the mode.
func (m Mode) Label() string {
	switch m {
	case ModeMultiplication:
		return "Multiplication"
	case ModeInequality:
		return "Inequalities"
	default:
		return string(m)
	}
}

// ParseMode accepts the canonical mode names plus a few aliases used by
// the CLI and the bot commands.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "multiplication", "multiply", "times", "mul":
		return ModeMultiplication, nil
	case "inequality", "inequalities", "compare", "ineq":
		return ModeInequality, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// Operator is a comparison operator used in inequality questions.
type Operator string

const (
	OpGreater      Operator = ">"
	OpLess         Operator = "<"
	OpGreaterEqual Operator = "≥"
	OpLessEqual    Operator = "≤"
)

// Operators lists every supported operator.
var Operators = []Operator{OpGreater, OpLess, OpGreaterEqual, OpLessEqual}

// ParseOperator accepts the symbol, its ASCII spelling (">=", "<=") or a
// short name ("gt", "lte", ...).
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case ">", "gt":
		return OpGreater, nil
	case "<", "lt":
		return OpLess, nil
	case "≥", ">=", "gte", "ge":
		return OpGreaterEqual, nil
	case "≤", "<=", "lte", "le":
		return OpLessEqual, nil
	}
	return "", fmt.Errorf("unknown operator %q", s)
}

// Valid reports whether o is one of the four supported operators.
func (o Operator) Valid() bool {
	switch o {
	case OpGreater, OpLess, OpGreaterEqual, OpLessEqual:
		return true
	}
	return false
}

// Holds reports whether "n o base" is true.
func (o Operator) Holds(n, base int) bool {
	switch o {
	case OpGreater:
		return n > base
	case OpLess:
		return n < base
	case OpGreaterEqual:
		return n >= base
	case OpLessEqual:
		return n <= base
	}
	return false
}

// Words is the natural-language rendering of the operator.
func (o Operator) Words() string {
	switch o {
	case OpGreater:
		return "greater than"
	case OpLess:
		return "less than"
	case OpGreaterEqual:
		return "greater than or equal to"
	case OpLessEqual:
		return "less than or equal to"
	}
	return string(o)
}

// Question is a generated multiple-choice item. It is built once by a
// generator and never modified afterwards.
type Question struct {
	// Kind is the mode that produced the question.
	Kind Mode

	// Symbolic is the short notation, e.g. "4 × 6" or "x > 3".
	Symbolic string

	// Textual is the natural-language rendering, e.g. "four times six"
	// or "x is greater than 3".
	Textual string

	// Answer is the correct option value.
	Answer int

	// Options holds exactly 4 distinct values in display order.
	// Answer appears exactly once.
	Options []int

	// Factor and Multiplier are set for multiplication questions.
	Factor     int
	Multiplier int

	// Operator and Base are set for inequality questions.
	Operator Operator
	Base     int
}

// AnswerIndex returns the zero-based position of the correct answer in
// Options, or -1 if it is missing.
func (q *Question) AnswerIndex() int {
	for i, o := range q.Options {
		if o == q.Answer {
			return i
		}
	}
	return -1
}

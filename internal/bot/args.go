package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

// parseMultipliers reads "/multiply 3 4 7" style arguments. Commas are
// accepted as separators too. No arguments yields nil.
func parseMultipliers(args []string) ([]int, error) {
	var out []int
	for _, f := range splitArgs(args) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", f)
		}
		out = append(out, n)
	}
	return out, nil
}

// parseOperators reads "/compare > <=" style arguments.
func parseOperators(args []string) ([]problemgen.Operator, error) {
	var out []problemgen.Operator
	for _, f := range splitArgs(args) {
		op, err := problemgen.ParseOperator(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not an operator, use > < >= <=", f)
		}
		out = append(out, op)
	}
	return out, nil
}

func splitArgs(args []string) []string {
	var out []string
	for _, a := range args {
		for _, f := range strings.FieldsFunc(a, func(r rune) bool { return r == ',' || r == ' ' }) {
			out = append(out, f)
		}
	}
	return out
}

// answerPayload is the callback data carried by an option button: the
// quiz tag, the question index and the option value.
func answerPayload(quiz string, index, value int) []string {
	return []string{quiz, strconv.Itoa(index), strconv.Itoa(value)}
}

func parseAnswerPayload(args []string) (quiz string, index, value int, err error) {
	if len(args) != 3 || args[0] == "" {
		return "", 0, 0, fmt.Errorf("malformed answer payload %v", args)
	}
	if index, err = strconv.Atoi(args[1]); err != nil {
		return "", 0, 0, fmt.Errorf("bad question index: %w", err)
	}
	if value, err = strconv.Atoi(args[2]); err != nil {
		return "", 0, 0, fmt.Errorf("bad option value: %w", err)
	}
	return args[0], index, value, nil
}

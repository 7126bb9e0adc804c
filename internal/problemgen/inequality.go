package problemgen

import "fmt"

// Inequality ranges. Bases are drawn from [BaseMin, BaseMax] and every
// option comes from the candidate domain [DomainMin, DomainMax].
const (
	BaseMin   = -10
	BaseMax   = 9
	DomainMin = -15
	DomainMax = 15
)

// InequalityGenerator produces exactly QuestionCount "x OP n" questions.
// Repeats across the sequence are allowed.
type InequalityGenerator struct{}

func (InequalityGenerator) Generate(cfg Config, src Source) []Question {
	questions := make([]Question, 0, cfg.QuestionCount)
	for range cfg.QuestionCount {
		base := BaseMin + src.IntN(BaseMax-BaseMin+1)
		op := pick(src, cfg.Operators)
		questions = append(questions, newInequality(op, base, src))
	}
	return questions
}

// partitionDomain splits the candidate domain into values for which
// "n op base" holds and values for which it does not.
func partitionDomain(op Operator, base int) (satisfying, violating []int) {
	for n := DomainMin; n <= DomainMax; n++ {
		if op.Holds(n, base) {
			satisfying = append(satisfying, n)
		} else {
			violating = append(violating, n)
		}
	}
	return satisfying, violating
}

func newInequality(op Operator, base int, src Source) Question {
	satisfying, violating := partitionDomain(op, base)

	answer := pick(src, satisfying)
	options := append([]int{answer}, sample(src, violating, OptionCount-1)...)
	Shuffle(src, options)

	return Question{
		Kind:     ModeInequality,
		Symbolic: fmt.Sprintf("x %s %d", op, base),
		Textual:  fmt.Sprintf("x is %s %d", op.Words(), base),
		Answer:   answer,
		Options:  options,
		Operator: op,
		Base:     base,
	}
}

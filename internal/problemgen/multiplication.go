package problemgen

import "fmt"

// attemptsPerQuestion is the retry budget multiplier: at most
// QuestionCount*attemptsPerQuestion draws are made.
const attemptsPerQuestion = 10

// MultiplicationGenerator produces multiplication facts without repeating
// a (factor, multiplier) combo. When the budget runs out before
// QuestionCount distinct combos were found it returns what it has.
type MultiplicationGenerator struct{}

func (MultiplicationGenerator) Generate(cfg Config, src Source) []Question {
	questions, _ := generateMultiplication(cfg, src)
	return questions
}

type combo struct {
	factor, multiplier int
}

// generateMultiplication also reports how many draws it made.
func generateMultiplication(cfg Config, src Source) ([]Question, int) {
	budget := cfg.QuestionCount * attemptsPerQuestion
	used := make(map[combo]struct{}, cfg.QuestionCount)
	questions := make([]Question, 0, cfg.QuestionCount)

	attempts := 0
	for len(questions) < cfg.QuestionCount && attempts < budget {
		attempts++

		multiplier := pick(src, cfg.Multipliers)
		factor := MinFactor + src.IntN(MaxFactor-MinFactor+1)

		key := combo{factor, multiplier}
		if _, dup := used[key]; dup {
			continue
		}
		used[key] = struct{}{}
		questions = append(questions, newMultiplication(factor, multiplier, src))
	}
	return questions, attempts
}

func newMultiplication(factor, multiplier int, src Source) Question {
	answer := factor * multiplier
	return Question{
		Kind:       ModeMultiplication,
		Symbolic:   fmt.Sprintf("%d × %d", factor, multiplier),
		Textual:    fmt.Sprintf("%s times %s", NumberWord(factor), NumberWord(multiplier)),
		Answer:     answer,
		Options:    BuildOptions(answer, src),
		Factor:     factor,
		Multiplier: multiplier,
	}
}

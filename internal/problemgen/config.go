package problemgen

import "fmt"

// Bounds of the multiplication table.
const (
	MinMultiplier = 2
	MaxMultiplier = 10
	MinFactor     = 2
	MaxFactor     = 10
)

// Config is the learner's selection for one quiz. The engine only reads it.
type Config struct {
	// Multipliers is the set of allowed multipliers (each in [2,10]).
	// Only used in multiplication mode.
	Multipliers []int

	// Operators is the set of allowed comparison operators.
	// Only used in inequality mode.
	Operators []Operator

	// QuestionCount is the number of questions requested.
	QuestionCount int
}

// DefaultConfig returns the selection a new learner starts with:
// every multiplier checked, ">" and "<" checked, ten questions.
func DefaultConfig() Config {
	multipliers := make([]int, 0, MaxMultiplier-MinMultiplier+1)
	for m := MinMultiplier; m <= MaxMultiplier; m++ {
		multipliers = append(multipliers, m)
	}
	return Config{
		Multipliers:   multipliers,
		Operators:     []Operator{OpGreater, OpLess},
		QuestionCount: 10,
	}
}

// Validate checks the parts of the config relevant to mode.
func (c Config) Validate(mode Mode) error {
	_, err := c.normalize(mode)
	return err
}

// normalize validates c for mode and returns a copy whose selection set
// has duplicates removed (first occurrence wins).
func (c Config) normalize(mode Mode) (Config, error) {
	if c.QuestionCount <= 0 {
		return c, &ConfigError{Field: "question_count", Message: "Question count must be positive"}
	}
	out := Config{QuestionCount: c.QuestionCount}

	switch mode {
	case ModeMultiplication:
		if len(c.Multipliers) == 0 {
			return c, &ConfigError{Field: "multipliers", Message: "Please select at least one multiplier"}
		}
		seen := make(map[int]bool, len(c.Multipliers))
		for _, m := range c.Multipliers {
			if m < MinMultiplier || m > MaxMultiplier {
				return c, &ConfigError{
					Field:   "multipliers",
					Message: fmt.Sprintf("Multiplier %d is outside %d-%d", m, MinMultiplier, MaxMultiplier),
				}
			}
			if !seen[m] {
				seen[m] = true
				out.Multipliers = append(out.Multipliers, m)
			}
		}

	case ModeInequality:
		if len(c.Operators) == 0 {
			return c, &ConfigError{Field: "operators", Message: "Please select at least one operator"}
		}
		seen := make(map[Operator]bool, len(c.Operators))
		for _, op := range c.Operators {
			if !op.Valid() {
				return c, &ConfigError{Field: "operators", Message: fmt.Sprintf("Unknown operator %q", op)}
			}
			if !seen[op] {
				seen[op] = true
				out.Operators = append(out.Operators, op)
			}
		}

	default:
		return c, &ConfigError{Field: "mode", Message: fmt.Sprintf("Unknown mode %q", mode)}
	}
	return out, nil
}

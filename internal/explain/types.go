package explain

import "github.com/abhisek/mathdrill/internal/problemgen"

// Source tells where an explanation came from.
type Source string

const (
	SourceBuiltin Source = "builtin"
	SourceLLM     Source = "llm"
)

// Explanation is shown after a wrong answer.
type Explanation struct {
	Summary string
	Steps   []string
	Tip     string
	Source  Source
}

// Input is the missed question and what the learner picked.
type Input struct {
	Question problemgen.Question
	Chosen   int
}

// Config holds explanation generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the settings used by every presenter.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   384,
		Temperature: 0.4,
	}
}

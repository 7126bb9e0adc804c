package problemgen

// Generator produces the questions for one mode.
type Generator interface {
	// Generate builds up to cfg.QuestionCount questions. cfg has already
	// been validated by the Engine.
	Generate(cfg Config, src Source) []Question
}

// Engine validates a Config and dispatches to the generator for the
// requested mode. It is safe for concurrent use when its Source is
// (the sources returned by NewSource and NewRandomSource are).
type Engine struct {
	src        Source
	generators map[Mode]Generator
}

// New returns an Engine drawing from src. A nil src means a randomly
// seeded source.
func New(src Source) *Engine {
	if src == nil {
		src = NewRandomSource()
	}
	return &Engine{
		src: src,
		generators: map[Mode]Generator{
			ModeMultiplication: MultiplicationGenerator{},
			ModeInequality:     InequalityGenerator{},
		},
	}
}

// Start generates a quiz. It returns a *ConfigError (matching
// ErrInvalidConfig) without generating anything when the mode's selection
// set is empty or out of range, or when QuestionCount is not positive.
//
// Multiplication quizzes may come back shorter than requested; callers
// should size their totals from len(result).
func (e *Engine) Start(mode Mode, cfg Config) ([]Question, error) {
	normalized, err := cfg.normalize(mode)
	if err != nil {
		return nil, err
	}
	gen, ok := e.generators[mode]
	if !ok {
		return nil, &ConfigError{Field: "mode", Message: "Unknown mode " + string(mode)}
	}
	return gen.Generate(normalized, e.src), nil
}

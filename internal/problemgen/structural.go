package problemgen

import "fmt"

// StructuralValidator checks that both renderings are present and that
// the options form a proper multiple-choice set.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	if q.Symbolic == "" {
		return &ValidationError{Validator: v.Name(), Message: "symbolic text is empty"}
	}
	if q.Textual == "" {
		return &ValidationError{Validator: v.Name(), Message: "textual text is empty"}
	}
	if q.Kind != ModeMultiplication && q.Kind != ModeInequality {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("unknown kind %q", q.Kind)}
	}
	if len(q.Options) != OptionCount {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected %d options, got %d", OptionCount, len(q.Options)),
		}
	}

	seen := make(map[int]bool, len(q.Options))
	hits := 0
	for _, o := range q.Options {
		if seen[o] {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("duplicate option %d", o)}
		}
		seen[o] = true
		if o == q.Answer {
			hits++
		}
	}
	if hits != 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer %d appears %d times in options", q.Answer, hits),
		}
	}
	return nil
}

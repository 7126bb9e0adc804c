package problemgen

import "fmt"

// MathCheckValidator recomputes the answer from the question's operands.
// For multiplication the answer must be the product of an in-range
// factor and multiplier. For inequalities the answer must satisfy the
// relation, every distractor must violate it, and all options must lie
// in the candidate domain.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q *Question) *ValidationError {
	switch q.Kind {
	case ModeMultiplication:
		if q.Factor < MinFactor || q.Factor > MaxFactor {
			return v.fail("factor %d outside [%d,%d]", q.Factor, MinFactor, MaxFactor)
		}
		if q.Multiplier < MinMultiplier || q.Multiplier > MaxMultiplier {
			return v.fail("multiplier %d outside [%d,%d]", q.Multiplier, MinMultiplier, MaxMultiplier)
		}
		if want := q.Factor * q.Multiplier; q.Answer != want {
			return v.fail("computed %d but question claims %d", want, q.Answer)
		}

	case ModeInequality:
		if !q.Operator.Valid() {
			return v.fail("unknown operator %q", q.Operator)
		}
		if q.Base < BaseMin || q.Base > BaseMax {
			return v.fail("base %d outside [%d,%d]", q.Base, BaseMin, BaseMax)
		}
		if !q.Operator.Holds(q.Answer, q.Base) {
			return v.fail("answer %d does not satisfy x %s %d", q.Answer, q.Operator, q.Base)
		}
		for _, o := range q.Options {
			if o < DomainMin || o > DomainMax {
				return v.fail("option %d outside [%d,%d]", o, DomainMin, DomainMax)
			}
			if o != q.Answer && q.Operator.Holds(o, q.Base) {
				return v.fail("distractor %d also satisfies x %s %d", o, q.Operator, q.Base)
			}
		}
	}
	return nil
}

func (v *MathCheckValidator) fail(format string, args ...any) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
}

// PositivityValidator requires every multiplication option to be a
// positive integer. Inequality questions pass through.
type PositivityValidator struct{}

func (v *PositivityValidator) Name() string { return "positivity" }

func (v *PositivityValidator) Validate(q *Question) *ValidationError {
	if q.Kind != ModeMultiplication {
		return nil
	}
	for _, o := range q.Options {
		if o <= 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("option %d is not positive", o),
			}
		}
	}
	return nil
}

package problemgen

import (
	"fmt"
	"testing"
)

func TestPartitionDomain_AlwaysUsable(t *testing.T) {
	for _, op := range Operators {
		for base := BaseMin; base <= BaseMax; base++ {
			sat, viol := partitionDomain(op, base)
			if len(sat) == 0 {
				t.Errorf("x %s %d: no satisfying values", op, base)
			}
			if len(viol) < OptionCount-1 {
				t.Errorf("x %s %d: only %d violating values", op, base, len(viol))
			}
			if len(sat)+len(viol) != DomainMax-DomainMin+1 {
				t.Errorf("x %s %d: partition does not cover the domain", op, base)
			}
		}
	}
}

func TestPartitionDomain_Boundary(t *testing.T) {
	sat, _ := partitionDomain(OpGreater, 9)
	if fmt.Sprint(sat) != "[10 11 12 13 14 15]" {
		t.Errorf("x > 9 satisfying = %v", sat)
	}
	sat, _ = partitionDomain(OpLessEqual, -10)
	if fmt.Sprint(sat) != "[-15 -14 -13 -12 -11 -10]" {
		t.Errorf("x ≤ -10 satisfying = %v", sat)
	}
}

func TestInequality_Correctness(t *testing.T) {
	cfg := Config{Operators: Operators, QuestionCount: 200}
	qs := InequalityGenerator{}.Generate(cfg, NewSource(17))
	if len(qs) != 200 {
		t.Fatalf("expected 200 questions, got %d", len(qs))
	}
	for _, q := range qs {
		if q.Base < BaseMin || q.Base > BaseMax {
			t.Errorf("base %d out of range", q.Base)
		}
		if !q.Operator.Holds(q.Answer, q.Base) {
			t.Errorf("%s: answer %d does not hold", q.Symbolic, q.Answer)
		}
		assertOptionSet(t, q.Answer, q.Options)
		for _, o := range q.Options {
			if o < DomainMin || o > DomainMax {
				t.Errorf("%s: option %d outside domain", q.Symbolic, o)
			}
			if o != q.Answer && q.Operator.Holds(o, q.Base) {
				t.Errorf("%s: distractor %d satisfies the relation", q.Symbolic, o)
			}
		}
		if err := Validate(&q, DefaultValidators()...); err != nil {
			t.Errorf("%s failed validation: %v", q.Symbolic, err)
		}
	}
}

func TestInequality_Rendering(t *testing.T) {
	tests := []struct {
		op       Operator
		base     int
		symbolic string
		textual  string
	}{
		{OpGreater, 3, "x > 3", "x is greater than 3"},
		{OpLess, -4, "x < -4", "x is less than -4"},
		{OpGreaterEqual, 0, "x ≥ 0", "x is greater than or equal to 0"},
		{OpLessEqual, 9, "x ≤ 9", "x is less than or equal to 9"},
	}
	for _, tc := range tests {
		q := newInequality(tc.op, tc.base, NewSource(1))
		if q.Symbolic != tc.symbolic {
			t.Errorf("symbolic = %q, want %q", q.Symbolic, tc.symbolic)
		}
		if q.Textual != tc.textual {
			t.Errorf("textual = %q, want %q", q.Textual, tc.textual)
		}
	}
}

func TestInequality_UsesOnlyConfiguredOperators(t *testing.T) {
	qs := InequalityGenerator{}.Generate(Config{Operators: []Operator{OpLessEqual}, QuestionCount: 30}, NewSource(6))
	for _, q := range qs {
		if q.Operator != OpLessEqual {
			t.Fatalf("unexpected operator %q", q.Operator)
		}
	}
}

func TestOperator_Holds(t *testing.T) {
	tests := []struct {
		op      Operator
		n, base int
		want    bool
	}{
		{OpGreater, 4, 3, true},
		{OpGreater, 3, 3, false},
		{OpLess, 2, 3, true},
		{OpLess, 3, 3, false},
		{OpGreaterEqual, 3, 3, true},
		{OpGreaterEqual, 2, 3, false},
		{OpLessEqual, 3, 3, true},
		{OpLessEqual, 4, 3, false},
	}
	for _, tc := range tests {
		if got := tc.op.Holds(tc.n, tc.base); got != tc.want {
			t.Errorf("%d %s %d = %v, want %v", tc.n, tc.op, tc.base, got, tc.want)
		}
	}
}

func TestParseOperator(t *testing.T) {
	tests := map[string]Operator{
		">": OpGreater, "gt": OpGreater,
		"<": OpLess, "lt": OpLess,
		"≥": OpGreaterEqual, ">=": OpGreaterEqual,
		"≤": OpLessEqual, "<=": OpLessEqual, "LTE": OpLessEqual,
	}
	for in, want := range tests {
		got, err := ParseOperator(in)
		if err != nil || got != want {
			t.Errorf("ParseOperator(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseOperator("=="); err == nil {
		t.Error("expected error for ==")
	}
}

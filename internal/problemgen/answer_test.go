package problemgen

import "testing"

func TestCheckAnswer(t *testing.T) {
	q := &Question{Answer: 24, Options: []int{22, 24, 29, 14}}

	tests := []struct {
		input string
		want  bool
	}{
		{"2", true},
		{" 2 ", true},
		{"1", false},
		{"4", false},
		{"24", true},
		{"22", false},
		{"", false},
		{"abc", false},
	}

	for _, tc := range tests {
		if got := CheckAnswer(tc.input, q); got != tc.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_NegativeValue(t *testing.T) {
	q := &Question{Answer: -3, Options: []int{5, -3, 8, 12}}
	if !CheckAnswer("-3", q) {
		t.Error("expected -3 to be correct")
	}
	if !CheckAnswer("2", q) {
		t.Error("expected index 2 to be correct")
	}
	if CheckAnswer("5", q) {
		t.Error("expected 5 to be wrong")
	}
}

func TestCheckChoice(t *testing.T) {
	q := &Question{Answer: 7}
	if !CheckChoice(7, q) || CheckChoice(8, q) {
		t.Error("CheckChoice mismatch")
	}
}

func TestChoiceAt(t *testing.T) {
	q := &Question{Answer: 7, Options: []int{1, 7, 3, 4}}
	if v, ok := ChoiceAt(q, 1); !ok || v != 7 {
		t.Errorf("ChoiceAt(1) = %d, %v", v, ok)
	}
	if _, ok := ChoiceAt(q, 4); ok {
		t.Error("expected out of range")
	}
	if q.AnswerIndex() != 1 {
		t.Errorf("AnswerIndex = %d", q.AnswerIndex())
	}
}

func TestParseChoice(t *testing.T) {
	q := &Question{Answer: 24, Options: []int{22, 24, 29, 14}}

	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"3", 29, true},
		{"29", 29, true},
		{"99", 99, true},
		{"x", 0, false},
		{"  ", 0, false},
	}
	for _, tc := range tests {
		got, ok := ParseChoice(tc.input, q)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("ParseChoice(%q) = %d, %v; want %d, %v", tc.input, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestParseChoice_OptionValueBeatsPosition(t *testing.T) {
	q := &Question{Symbolic: "x > 0", Answer: 3, Options: []int{3, -5, -2, -8}}

	if v, ok := ParseChoice("3", q); !ok || v != 3 {
		t.Errorf("ParseChoice(\"3\") = %d, %v; want the option 3", v, ok)
	}
	if !CheckAnswer("3", q) {
		t.Error("typing the correct value should be correct")
	}
	if !CheckAnswer("1", q) {
		t.Error("1 is not an option value, so it picks the first option")
	}
	if CheckAnswer("2", q) {
		t.Error("2 picks the second option, -5")
	}
}

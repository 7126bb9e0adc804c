package explain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/mathdrill/internal/llm"
	"github.com/abhisek/mathdrill/internal/problemgen"
)

func multQuestion() problemgen.Question {
	return problemgen.Question{
		Kind:       problemgen.ModeMultiplication,
		Symbolic:   "6 × 4",
		Textual:    "six times four",
		Answer:     24,
		Options:    []int{22, 24, 29, 34},
		Factor:     6,
		Multiplier: 4,
	}
}

func ineqQuestion() problemgen.Question {
	return problemgen.Question{
		Kind:     problemgen.ModeInequality,
		Symbolic: "x > 3",
		Textual:  "x is greater than 3",
		Answer:   5,
		Options:  []int{-2, 5, 3, 0},
		Operator: problemgen.OpGreater,
		Base:     3,
	}
}

func TestFallback_Multiplication(t *testing.T) {
	q := multQuestion()
	e := Fallback(&q, 22)

	want := "6 × 4: count by 4s six times: 4, 8, 12, 16, 20, 24."
	if e.Summary != want {
		t.Errorf("Summary = %q, want %q", e.Summary, want)
	}
	if e.Source != SourceBuiltin {
		t.Errorf("Source = %q", e.Source)
	}
	if e.Tip != "22 is 2 too few." {
		t.Errorf("Tip = %q", e.Tip)
	}
}

func TestFallback_Inequality(t *testing.T) {
	q := ineqQuestion()
	e := Fallback(&q, -2)

	if e.Summary != "x > 3 means x must be greater than 3." {
		t.Errorf("Summary = %q", e.Summary)
	}
	if len(e.Steps) != 2 {
		t.Fatalf("Steps = %v, want 2", e.Steps)
	}
	if !strings.Contains(e.Steps[0], "5 is bigger than 3") {
		t.Errorf("Steps[0] = %q", e.Steps[0])
	}
	if !strings.Contains(e.Steps[1], "-2 is smaller than 3") {
		t.Errorf("Steps[1] = %q", e.Steps[1])
	}
}

func TestFallback_EqualToBase(t *testing.T) {
	q := ineqQuestion()
	e := Fallback(&q, 3)
	if !strings.Contains(e.Steps[1], "3 is equal to 3") {
		t.Errorf("Steps[1] = %q", e.Steps[1])
	}
}

func TestExplanation_Text(t *testing.T) {
	e := &Explanation{Summary: "S", Steps: []string{"a", "b"}, Tip: "T"}
	if got := e.Text(); got != "S\n• a\n• b\nTip: T" {
		t.Errorf("Text = %q", got)
	}
}

func TestService_NoProviderUsesFallback(t *testing.T) {
	svc := NewService(nil, DefaultConfig())
	q := multQuestion()

	if svc.HasLLM() {
		t.Error("HasLLM should be false")
	}
	e := svc.Explain(t.Context(), &q, 22)
	if e.Source != SourceBuiltin {
		t.Errorf("Source = %q, want builtin", e.Source)
	}
}

func TestService_LLMExplanation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary":"6 groups of 4 make 24.","steps":["4+4+4+4+4+4 = 24"],"tip":"Double 3*4."}`),
	})
	svc := NewService(mock, DefaultConfig())
	q := multQuestion()

	e := svc.Explain(t.Context(), &q, 22)
	if e.Source != SourceLLM {
		t.Fatalf("Source = %q, want llm", e.Source)
	}
	if e.Summary != "6 groups of 4 make 24." || len(e.Steps) != 1 || e.Tip != "Double 3*4." {
		t.Errorf("unexpected explanation %+v", e)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != ExplanationSchema {
		t.Error("expected ExplanationSchema on the request")
	}
	if req.Purpose != "explain" {
		t.Errorf("Purpose = %q, want explain", req.Purpose)
	}
	msg := req.Prompt
	for _, want := range []string{"6 × 4", "Correct answer: 24", "Student picked: 22", "skip counting"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}

func TestService_ProviderErrorFallsBack(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	q := ineqQuestion()

	e := svc.Explain(t.Context(), &q, 0)
	if e.Source != SourceBuiltin {
		t.Errorf("Source = %q, want builtin", e.Source)
	}
}

func TestService_BadJSONFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"summary":""}`)})
	svc := NewService(mock, DefaultConfig())
	q := ineqQuestion()

	if e := svc.Explain(t.Context(), &q, 0); e.Source != SourceBuiltin {
		t.Errorf("Source = %q, want builtin", e.Source)
	}
}

package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/mathdrill/internal/llm"
	"github.com/abhisek/mathdrill/internal/problemgen"
)

// Service explains missed questions, through the LLM when one is
// configured and with Fallback otherwise.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an explanation service. provider may be nil.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// HasLLM reports whether explanations can come from an LLM.
func (s *Service) HasLLM() bool {
	return s != nil && s.provider != nil
}

type explanationOutput struct {
	Summary string   `json:"summary"`
	Steps   []string `json:"steps"`
	Tip     string   `json:"tip"`
}

// Explain returns an explanation for the learner's choice. It never
// fails: any LLM error falls back to the built-in text.
func (s *Service) Explain(ctx context.Context, q *problemgen.Question, chosen int) *Explanation {
	if !s.HasLLM() {
		return Fallback(q, chosen)
	}
	e, err := s.generate(ctx, Input{Question: *q, Chosen: chosen})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: explanation fell back to built-in text: %v\n", err)
		return Fallback(q, chosen)
	}
	return e
}

func (s *Service) generate(ctx context.Context, in Input) (*Explanation, error) {
	req := llm.Request{
		Purpose:     "explain",
		System:      systemPrompt,
		Prompt:      buildUserMessage(in),
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("explanation generation: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}
	if out.Summary == "" {
		return nil, fmt.Errorf("explanation response has an empty summary")
	}

	return &Explanation{
		Summary: out.Summary,
		Steps:   out.Steps,
		Tip:     out.Tip,
		Source:  SourceLLM,
	}, nil
}

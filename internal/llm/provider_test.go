package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

// hintSchema mirrors the shape the explain package asks for.
var hintSchema = &Schema{
	Name:        "test-hint",
	Description: "Hint for a missed question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{"type": "string"},
			"steps": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 1,
				"maxItems": 3,
			},
		},
		"required":             []any{"summary", "steps"},
		"additionalProperties": false,
	},
}

const hintJSON = `{"summary":"7 groups of 8 make 56.","steps":["7 × 8 = 56"]}`

func hintRequest() Request {
	return Request{
		Purpose:   "explain",
		System:    "You help children with times tables.",
		Prompt:    "Question: 7 × 8. Correct answer: 56. Student picked: 54.",
		Schema:    hintSchema,
		MaxTokens: 200,
	}
}

func TestMockProvider_ReplaysInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(hintJSON), Usage: Usage{InputTokens: 12, OutputTokens: 9}},
		MockResponse{Content: json.RawMessage(`"plain text"`)},
	)

	resp, err := mock.Generate(context.Background(), hintRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != hintJSON || resp.Usage.Total() != 21 || resp.StopReason != StopEnd {
		t.Fatalf("unexpected first response %+v", resp)
	}

	resp, err = mock.Generate(context.Background(), Request{Prompt: "no schema"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `"plain text"` {
		t.Fatalf("second response = %s", resp.Content)
	}
	if mock.CallCount() != 2 || mock.Calls[1].Prompt != "no schema" {
		t.Fatalf("calls not recorded: %+v", mock.Calls)
	}
}

func TestMockProvider_EmptyQueueIsUnavailable(t *testing.T) {
	_, err := NewMockProvider().Generate(context.Background(), Request{})
	if !IsKind(err, KindUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestMockProvider_ValidatesAgainstSchema(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"summary":"no steps"}`)})
	_, err := mock.Generate(context.Background(), hintRequest())
	if !IsKind(err, KindInvalidResponse) {
		t.Fatalf("expected invalid response, got %v", err)
	}
	var e *Error
	if !errors.As(err, &e) || string(e.Content) != `{"summary":"no steps"}` {
		t.Fatal("rejected content should be kept on the error")
	}
}

func TestFinish_TruncatedOutput(t *testing.T) {
	_, err := finish(ProviderOpenAI, hintRequest(), &Response{
		Content:    json.RawMessage(`{"summary":"7 groups`),
		StopReason: StopMaxTokens,
	})
	if !IsKind(err, KindTruncated) {
		t.Fatalf("expected truncated, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "openai: LLM truncated response") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestFinish_StopMaxTokensButValid(t *testing.T) {
	resp, err := finish(ProviderOpenAI, hintRequest(), &Response{
		Content:    json.RawMessage(hintJSON),
		StopReason: StopMaxTokens,
	})
	if err != nil || resp == nil {
		t.Fatalf("valid content should pass, got %v", err)
	}
}

func TestError_Message(t *testing.T) {
	err := &Error{Kind: KindRateLimited, Provider: ProviderGemini, RetryAfter: 3 * time.Second, Err: errors.New("quota")}
	want := "gemini: LLM rate limited (retry after 3s): quota"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if errors.Unwrap(err).Error() != "quota" {
		t.Error("Unwrap should return the SDK error")
	}
	if IsKind(errors.New("plain"), KindUnavailable) {
		t.Error("plain errors have no kind")
	}
}

func TestParseRetryAfter(t *testing.T) {
	tests := map[string]time.Duration{
		"7":                             7 * time.Second,
		" 2 ":                           2 * time.Second,
		"":                              0,
		"-1":                            0,
		"Wed, 21 Oct 2026 07:28:00 GMT": 0,
	}
	for in, want := range tests {
		if got := parseRetryAfter(in); got != want {
			t.Errorf("parseRetryAfter(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		provider, name, want string
	}{
		{ProviderAnthropic, "claude-haiku", "claude-haiku-4-5-20251001"},
		{ProviderAnthropic, "claude-sonnet-4-20250514", "claude-sonnet-4-20250514"},
		{ProviderOpenAI, "gpt-4o-mini", "gpt-4o-mini"},
		{ProviderGemini, "gemini-flash", "gemini-2.0-flash"},
		{ProviderGemini, "claude-haiku", "claude-haiku"},
		{ProviderOpenRouter, "google/gemini-2.0-flash-exp", "google/gemini-2.0-flash-exp"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.provider, tt.name); got != tt.want {
			t.Errorf("resolveModel(%s, %q) = %q, want %q", tt.provider, tt.name, got, tt.want)
		}
	}
}

func TestLookupCost(t *testing.T) {
	if c := LookupCost("gemini-flash"); c == nil || c.InputPerMTok != 0.1 {
		t.Fatalf("short name should resolve, got %+v", c)
	}
	c := LookupCost("claude-haiku-4-5-20251001")
	if c == nil {
		t.Fatal("expected pricing for claude haiku")
	}
	if got := c.Cost(200_000, 100_000); got < 0.6999 || got > 0.7001 {
		t.Fatalf("Cost = %v, want 0.70", got)
	}
	if LookupCost("made-up-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"gemini without key", Config{Provider: ProviderGemini}, "MATHDRILL_GEMINI_API_KEY"},
		{"gemini with key", Config{Provider: ProviderGemini, Gemini: GeminiConfig{APIKey: "g"}}, ""},
		{"openrouter without key", Config{Provider: ProviderOpenRouter}, "MATHDRILL_OPENROUTER_API_KEY"},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "a"}}, ""},
		{"mock", Config{Provider: ProviderMock}, ""},
		{"unknown", Config{Provider: "abacus"}, "unknown LLM provider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			switch {
			case tt.wantErr == "" && err != nil:
				t.Fatalf("unexpected error: %v", err)
			case tt.wantErr != "" && (err == nil || !strings.Contains(err.Error(), tt.wantErr)):
				t.Fatalf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}

	if err := (Config{}).Validate(); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("empty provider: got %v, want ErrNotConfigured", err)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MATHDRILL_LLM_PROVIDER", "gemini")
	t.Setenv("MATHDRILL_GEMINI_API_KEY", "g-env")
	t.Setenv("MATHDRILL_LLM_TIMEOUT", "4s")

	cfg := ConfigFromEnv()
	if cfg.Provider != ProviderGemini || cfg.Gemini.APIKey != "g-env" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Gemini.Model != "gemini-flash" {
		t.Errorf("default model lost: %q", cfg.Gemini.Model)
	}
	if cfg.Timeout != 4*time.Second {
		t.Errorf("Timeout = %v, want 4s", cfg.Timeout)
	}
}

func TestDiscoverConfig(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected nothing to discover")
	}

	t.Setenv("OPENROUTER_API_KEY", "or")
	t.Setenv("ANTHROPIC_API_KEY", "ant")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != ProviderAnthropic || cfg.Anthropic.APIKey != "ant" {
		t.Fatalf("expected anthropic ahead of openrouter, got %+v", cfg)
	}
}

func TestNewProvider(t *testing.T) {
	if _, err := NewProvider(context.Background(), Config{}, nil); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenRouter
	cfg.OpenRouter.APIKey = "or-key"
	p, err := NewProvider(context.Background(), cfg, &recordingRepo{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != ProviderOpenRouter || p.ModelID() != "google/gemini-2.0-flash-exp" {
		t.Errorf("wrapped provider reports %s/%s", p.Name(), p.ModelID())
	}
}

func TestResolve_FallsBackToEnvironment(t *testing.T) {
	for _, k := range []string{"MATHDRILL_LLM_PROVIDER", "GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	if _, err := Resolve(context.Background(), DefaultConfig(), nil); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	t.Setenv("OPENAI_API_KEY", "sk-env")
	p, err := Resolve(context.Background(), DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != ProviderOpenAI {
		t.Errorf("Name() = %q, want openai", p.Name())
	}
}

package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiProvider_Generate(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content":      map[string]any{"role": "model", "parts": []map[string]any{{"text": hintJSON}}},
				"finishReason": "STOP",
			}},
			"usageMetadata": map[string]any{
				"promptTokenCount":     25,
				"candidatesTokenCount": 14,
				"totalTokenCount":      39,
			},
		})
	}))
	t.Cleanup(srv.Close)

	p, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "g-test", Model: "gemini-flash", BaseURL: srv.URL})
	if err != nil {
		t.Fatal(err)
	}
	resp, err := p.Generate(context.Background(), hintRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != hintJSON || resp.Usage.InputTokens != 25 || resp.Usage.OutputTokens != 14 {
		t.Errorf("unexpected response %+v", resp)
	}
	if !strings.Contains(path, "gemini-2.0-flash:generateContent") {
		t.Errorf("path = %s", path)
	}
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(hintSchema.Definition)

	if s.Type != genai.TypeObject || len(s.Properties) != 2 {
		t.Fatalf("unexpected root %+v", s)
	}
	steps := s.Properties["steps"]
	if steps.Type != genai.TypeArray || steps.Items.Type != genai.TypeString {
		t.Errorf("steps = %+v", steps)
	}
	if steps.MinItems == nil || *steps.MinItems != 1 || steps.MaxItems == nil || *steps.MaxItems != 3 {
		t.Errorf("item bounds not carried over: min=%v max=%v", steps.MinItems, steps.MaxItems)
	}
	if len(s.Required) != 2 {
		t.Errorf("Required = %v", s.Required)
	}

	enum := geminiSchema(map[string]any{"type": "string", "enum": []string{"lt", "eq", "gt"}})
	if len(enum.Enum) != 3 {
		t.Errorf("Enum = %v", enum.Enum)
	}
}

func TestGeminiStatus(t *testing.T) {
	if got := geminiStatus(fmt.Errorf("call: %w", genai.APIError{Code: 429})); got != 429 {
		t.Errorf("value APIError: got %d", got)
	}
	if got := geminiStatus(&genai.APIError{Code: 503}); got != 503 {
		t.Errorf("pointer APIError: got %d", got)
	}
	if got := geminiStatus(fmt.Errorf("dial tcp: refused")); got != 0 {
		t.Errorf("transport error: got %d", got)
	}
}

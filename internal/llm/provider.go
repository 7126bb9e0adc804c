package llm

import (
	"context"
	"encoding/json"
)

// Provider produces one structured completion per call.
type Provider interface {
	// Generate sends req and returns the model output. When req.Schema is
	// set the content has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string

	// Name returns the provider name, e.g. "anthropic".
	Name() string
}

// Request is a single-turn prompt.
type Request struct {
	// Purpose labels the call in the event log, e.g. "explain".
	Purpose string

	System string
	Prompt string

	// Schema, when set, asks the provider for JSON conforming to it.
	Schema *Schema

	MaxTokens   int
	Temperature float64 // 0 leaves the provider default
}

// Schema is a named JSON Schema for structured output.
type Schema struct {
	// Name is sent as the schema name where the API wants one.
	// Kebab-case, e.g. "missed-question-explanation".
	Name        string
	Description string
	Definition  map[string]any
}

// StopReason is why generation ended, normalized across providers.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
)

// Response holds the model output.
type Response struct {
	// Content is the JSON object when a Schema was requested, otherwise
	// the raw text.
	Content    json.RawMessage
	Usage      Usage
	Model      string // model that actually served the request
	StopReason StopReason
}

// Usage is the token count of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}

// modelAliases maps the short names accepted in config to model IDs, per
// provider. Names not listed are passed through unchanged.
var modelAliases = map[string]map[string]string{
	ProviderAnthropic: {
		"claude-sonnet": "claude-sonnet-4-20250514",
		"claude-haiku":  "claude-haiku-4-5-20251001",
	},
	ProviderOpenAI: {
		"gpt-4o":      "gpt-4o",
		"gpt-4o-mini": "gpt-4o-mini",
	},
	ProviderGemini: {
		"gemini-flash": "gemini-2.0-flash",
		"gemini-pro":   "gemini-2.0-pro",
	},
}

func resolveModel(provider, name string) string {
	if id, ok := modelAliases[provider][name]; ok {
		return id
	}
	return name
}

// finish checks resp against the request schema. Content cut off at
// MaxTokens is reported as truncated, not invalid.
func finish(provider string, req Request, resp *Response) (*Response, error) {
	if req.Schema == nil {
		return resp, nil
	}
	if err := validateContent(req.Schema, resp.Content); err != nil {
		kind := KindInvalidResponse
		if resp.StopReason == StopMaxTokens {
			kind = KindTruncated
		}
		return nil, &Error{Kind: kind, Provider: provider, Content: resp.Content, Err: err}
	}
	return resp, nil
}

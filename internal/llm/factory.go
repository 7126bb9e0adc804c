package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/mathdrill/internal/store"
)

// ErrNotConfigured is returned when no provider is selected and none can
// be discovered from the environment.
var ErrNotConfigured = errors.New("no LLM provider configured")

// NewProvider builds the configured provider. Calls pass through retry,
// then the per-attempt timeout, then logging, so every attempt is
// recorded. repo may be nil to skip recording.
func NewProvider(ctx context.Context, cfg Config, repo store.EventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		return NewMockProvider(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	var p Provider = base
	if repo != nil {
		p = WithLogging(p, repo)
	}
	if cfg.Timeout > 0 {
		p = WithTimeout(p, cfg.Timeout)
	}
	return WithRetry(p, cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from MATHDRILL_* variables, or
// from the vendors' own key variables when no provider is named.
func NewProviderFromEnv(ctx context.Context, repo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if !cfg.Enabled() {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, ErrNotConfigured
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, repo)
}

// Resolve returns the configured provider, falling back to the
// environment when cfg has no provider. It returns ErrNotConfigured
// when neither names one.
func Resolve(ctx context.Context, cfg Config, repo store.EventRepo) (Provider, error) {
	if cfg.Enabled() {
		return NewProvider(ctx, cfg, repo)
	}
	return NewProviderFromEnv(ctx, repo)
}

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/mathdrill/internal/store"
)

type timed struct {
	Provider
	d time.Duration
}

// WithTimeout bounds every Generate call to d.
func WithTimeout(p Provider, d time.Duration) Provider {
	return &timed{Provider: p, d: d}
}

func (t *timed) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.Provider.Generate(ctx, req)
}

type logged struct {
	Provider
	repo store.EventRepo
}

// WithLogging records each call, successful or not, as an LLM request
// event in repo.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &logged{Provider: p, repo: repo}
}

func (l *logged) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.Provider.Generate(ctx, req)

	purpose := req.Purpose
	if purpose == "" {
		purpose = "unknown"
	}
	ev := store.LLMRequestEventData{
		Provider:    l.Name(),
		Model:       l.ModelID(),
		Purpose:     purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: describeRequest(req),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
		var e *Error
		if errors.As(err, &e) && len(e.Content) > 0 {
			ev.ResponseBody = string(e.Content)
		}
	}

	// Storage trouble must not cost the learner an explanation.
	if logErr := l.repo.AppendLLMRequest(context.WithoutCancel(ctx), ev); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: record LLM request: %v\n", logErr)
	}
	return resp, err
}

// describeRequest renders req in the plain form shown by `mathdrill llm view`.
func describeRequest(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	fmt.Fprintf(&b, "[user]\n%s\n", req.Prompt)
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "\n[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}

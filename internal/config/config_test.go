package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MATHDRILL_DB", "MATHDRILL_ADDR", "MATHDRILL_TELEGRAM_TOKEN",
		"MATHDRILL_QUESTION_COUNT", "MATHDRILL_LLM_PROVIDER",
	} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9, 10}, cfg.Practice.Multipliers)
	assert.Equal(t, []string{">", "<"}, cfg.Practice.Operators)
	assert.Equal(t, 10, cfg.Practice.QuestionCount)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Telegram.PollInterval)
	assert.False(t, cfg.LLM.Enabled())
}

func TestLoad_EmptyFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Practice.QuestionCount)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, `
practice:
  multipliers: [3, 7]
  operators: [">=", "<"]
  question_count: 20
store:
  dsn: postgres://drill@localhost/drill
server:
  addr: 127.0.0.1:9000
  allowed_origins: [https://drill.example]
telegram:
  token: abc
  poll_interval: 3s
llm:
  provider: mock
  timeout: 12s
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 7}, cfg.Practice.Multipliers)
	assert.Equal(t, []string{">=", "<"}, cfg.Practice.Operators)
	assert.Equal(t, 20, cfg.Practice.QuestionCount)
	assert.Equal(t, "postgres://drill@localhost/drill", cfg.Store.DSN)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, []string{"https://drill.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "abc", cfg.Telegram.Token)
	assert.Equal(t, 3*time.Second, cfg.Telegram.PollInterval)
	assert.Equal(t, "mock", cfg.LLM.Provider)
	assert.Equal(t, 12*time.Second, cfg.LLM.Timeout)
	// Unset nested values keep their defaults.
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.OpenAI.Model)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)

	_, err := Load(writeFile(t, "practice: [unclosed"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MATHDRILL_DB", "/tmp/drill.db")
	t.Setenv("MATHDRILL_ADDR", ":9999")
	t.Setenv("MATHDRILL_TELEGRAM_TOKEN", "env-token")
	t.Setenv("MATHDRILL_QUESTION_COUNT", "25")

	cfg, err := Load(writeFile(t, "telegram:\n  token: file-token\n"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/drill.db", cfg.Store.DSN)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "env-token", cfg.Telegram.Token)
	assert.Equal(t, 25, cfg.Practice.QuestionCount)
}

func TestLoad_BadQuestionCountEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MATHDRILL_QUESTION_COUNT", "lots")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestClampCount(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 5}, {-3, 5}, {5, 5}, {7, 5}, {8, 10}, {10, 10}, {50, 50}, {99, 50},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampCount(tt.in), "ClampCount(%d)", tt.in)
	}
}

func TestPractice_QuizConfig(t *testing.T) {
	p := Practice{Multipliers: []int{4}, Operators: []string{">=", "bogus"}, QuestionCount: 15}

	mult := p.QuizConfig(problemgen.ModeMultiplication)
	assert.Equal(t, []int{4}, mult.Multipliers)
	assert.Empty(t, mult.Operators)
	assert.Equal(t, 15, mult.QuestionCount)

	ineq := p.QuizConfig(problemgen.ModeInequality)
	assert.Equal(t, []problemgen.Operator{problemgen.OpGreaterEqual, "bogus"}, ineq.Operators)
	assert.Empty(t, ineq.Multipliers)
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Practice.QuestionCount = 30
	cfg.Server.Addr = ":7000"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, loaded.Practice.QuestionCount)
	assert.Equal(t, ":7000", loaded.Server.Addr)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, "/xdg/mathdrill/config.yaml", DefaultPath())
}

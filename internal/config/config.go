// Package config loads the mathdrill YAML config file and applies
// MATHDRILL_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/mathdrill/internal/llm"
	"github.com/abhisek/mathdrill/internal/problemgen"
)

// Question count form bounds.
const (
	CountMin  = 5
	CountMax  = 50
	CountStep = 5
)

type Config struct {
	Practice Practice       `yaml:"practice"`
	Store    StoreConfig    `yaml:"store"`
	Server   ServerConfig   `yaml:"server"`
	Telegram TelegramConfig `yaml:"telegram"`
	LLM      llm.Config     `yaml:"llm"`
}

// Practice holds the preselected quiz settings shown on setup forms.
type Practice struct {
	Multipliers   []int    `yaml:"multipliers"`
	Operators     []string `yaml:"operators"`
	QuestionCount int      `yaml:"question_count"`
}

type StoreConfig struct {
	// DSN is a SQLite path or a postgres:// URL.
	DSN string `yaml:"dsn"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type TelegramConfig struct {
	Token        string        `yaml:"token"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Practice: Practice{
			Multipliers:   []int{2, 3, 4, 5, 6, 7, 8, 9, 10},
			Operators:     []string{string(problemgen.OpGreater), string(problemgen.OpLess)},
			QuestionCount: 10,
		},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
		Telegram: TelegramConfig{
			PollInterval: 10 * time.Second,
		},
		LLM: llm.DefaultConfig(),
	}
}

// DefaultPath is $XDG_CONFIG_HOME/mathdrill/config.yaml.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "mathdrill", "config.yaml")
}

// Load reads path on top of the defaults and applies environment
// overrides. An empty path means DefaultPath. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()

	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("open config: %w", err)
	default:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.Practice.QuestionCount = ClampCount(cfg.Practice.QuestionCount)
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("MATHDRILL_DB"); v != "" {
		c.Store.DSN = v
	}
	if v := os.Getenv("MATHDRILL_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("MATHDRILL_TELEGRAM_TOKEN"); v != "" {
		c.Telegram.Token = v
	}
	if v := os.Getenv("MATHDRILL_QUESTION_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MATHDRILL_QUESTION_COUNT: %w", err)
		}
		c.Practice.QuestionCount = n
	}
	llm.ApplyEnv(&c.LLM)
	return nil
}

// ClampCount snaps n onto the form's range and step.
func ClampCount(n int) int {
	if n < CountMin {
		return CountMin
	}
	if n > CountMax {
		return CountMax
	}
	return (n + CountStep/2) / CountStep * CountStep
}

// QuizConfig turns the practice defaults into an engine config for mode.
// Unknown operator strings are passed through so the engine reports them.
func (p Practice) QuizConfig(mode problemgen.Mode) problemgen.Config {
	cfg := problemgen.Config{QuestionCount: p.QuestionCount}
	switch mode {
	case problemgen.ModeMultiplication:
		cfg.Multipliers = append([]int(nil), p.Multipliers...)
	case problemgen.ModeInequality:
		for _, s := range p.Operators {
			op, err := problemgen.ParseOperator(s)
			if err != nil {
				op = problemgen.Operator(s)
			}
			cfg.Operators = append(cfg.Operators, op)
		}
	}
	return cfg
}

// Save writes cfg as YAML to path, creating the directory.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

package store

import (
	"context"
	"time"

	entschema "github.com/abhisek/mathdrill/ent/schema"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	Mode   string    // session mode filter (sessions only)
}

// Session actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// QuizConfig is the persisted learner selection.
type QuizConfig = entschema.QuizConfig

// SessionEventData captures a quiz start or end.
type SessionEventData struct {
	SessionID       string
	Mode            string
	Action          string
	Requested       int
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
	Config          *QuizConfig // start only
}

// AnswerEventData captures one learner selection.
type AnswerEventData struct {
	SessionID     string
	Mode          string
	Symbolic      string
	CorrectAnswer int
	LearnerAnswer int
	Correct       bool
	TimeMs        int
}

// SessionRecord is a finished quiz read back from the log.
type SessionRecord struct {
	ID              int
	Sequence        int64
	Timestamp       time.Time
	SessionID       string
	Mode            string
	Requested       int
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
}

// ModeStat aggregates finished quizzes per mode.
type ModeStat struct {
	Mode      string
	Sessions  int
	Questions int
	Correct   int
}

// MissedFact is a question the learner has answered wrongly.
type MissedFact struct {
	Symbolic string
	Misses   int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is an LLM event read back from the log.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to the practice history.
type EventRepo interface {
	// AppendSessionEvent records a quiz start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records a single answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentSessions returns finished quizzes, newest first.
	RecentSessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)

	// ModeStats aggregates finished quizzes per mode.
	ModeStats(ctx context.Context) ([]ModeStat, error)

	// MissedFacts returns the most frequently missed questions.
	MissedFacts(ctx context.Context, limit int) ([]MissedFact, error)

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)
}

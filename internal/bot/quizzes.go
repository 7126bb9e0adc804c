package bot

import (
	"context"
	"errors"
	"sync"

	"github.com/abhisek/mathdrill/internal/explain"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/store"
)

var (
	errNoQuiz        = errors.New("no quiz running")
	errStaleQuestion = errors.New("question already answered")
	errReplacedQuiz  = errors.New("button belongs to an earlier quiz")
)

// quizTagLen keeps answer callback data well under Telegram's 64 bytes.
const quizTagLen = 8

// quizTag identifies a quiz in button payloads.
func quizTag(state *session.SessionState) string {
	id := state.SessionID
	if len(id) > quizTagLen {
		id = id[:quizTagLen]
	}
	return id
}

// outcome is the result of one button press.
type outcome struct {
	Record      *session.AnswerRecord
	Explanation *explain.Explanation
	Quiz        string
	Next        *problemgen.Question
	NextIndex   int
	Total       int
	Summary     *session.SessionSummary
}

// quizzes holds one live quiz per chat.
type quizzes struct {
	engine    session.Starter
	repo      store.EventRepo
	explainer *explain.Service

	mu    sync.Mutex
	chats map[int64]*session.SessionState
}

func newQuizzes(engine session.Starter, repo store.EventRepo, explainer *explain.Service) *quizzes {
	return &quizzes{
		engine:    engine,
		repo:      repo,
		explainer: explainer,
		chats:     make(map[int64]*session.SessionState),
	}
}

// start replaces any quiz running in chat.
func (q *quizzes) start(ctx context.Context, chat int64, mode problemgen.Mode, cfg problemgen.Config) (*session.SessionState, error) {
	state, err := session.Begin(ctx, q.engine, mode, cfg, q.repo)
	if err != nil {
		return nil, err
	}

	q.mu.Lock()
	prev := q.chats[chat]
	q.chats[chat] = state
	q.mu.Unlock()

	if prev != nil {
		session.Finish(ctx, prev)
	}
	return state, nil
}

// answer applies a button press for question index of chat's quiz. quiz
// is the tag the button was sent with. The lock covers only the state
// change; the explanation is built after it is released.
func (q *quizzes) answer(ctx context.Context, chat int64, quiz string, index, value int) (*outcome, error) {
	out, err := q.apply(chat, quiz, index, value)
	if err != nil {
		return nil, err
	}
	if !out.Record.Correct {
		out.Explanation = q.explainer.Explain(ctx, &out.Record.Question, out.Record.Chosen)
	}
	return out, nil
}

func (q *quizzes) apply(chat int64, quiz string, index, value int) (*outcome, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	state, ok := q.chats[chat]
	if !ok {
		return nil, errNoQuiz
	}
	if quiz != quizTag(state) {
		return nil, errReplacedQuiz
	}
	if index != state.CurrentIndex || state.Answered {
		return nil, errStaleQuestion
	}

	rec := session.HandleAnswer(state, value)
	if rec == nil {
		return nil, errStaleQuestion
	}

	answered := *rec
	out := &outcome{Record: &answered, Quiz: quiz, Total: state.Total()}
	if session.Advance(state) {
		out.Next = session.CurrentQuestion(state)
		out.NextIndex = state.CurrentIndex
	} else {
		out.Summary = session.BuildSummary(state)
		delete(q.chats, chat)
	}
	return out, nil
}

// stop ends chat's quiz early and returns its summary.
func (q *quizzes) stop(ctx context.Context, chat int64) (*session.SessionSummary, error) {
	q.mu.Lock()
	state, ok := q.chats[chat]
	delete(q.chats, chat)
	q.mu.Unlock()

	if !ok {
		return nil, errNoQuiz
	}
	session.Finish(ctx, state)
	return session.BuildSummary(state), nil
}

func (q *quizzes) active() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.chats)
}

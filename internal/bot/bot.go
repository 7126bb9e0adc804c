// Package bot runs quizzes in Telegram chats.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/abhisek/mathdrill/internal/config"
	"github.com/abhisek/mathdrill/internal/explain"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/store"
)

// Options configures a Bot.
type Options struct {
	Token        string
	PollInterval time.Duration

	Engine    session.Starter
	EventRepo store.EventRepo // optional
	Explainer *explain.Service
	Practice  config.Practice
	Logger    *log.Logger

	// Offline builds the bot without contacting Telegram.
	Offline bool
}

// Bot wires the telebot handlers to per-chat quizzes.
type Bot struct {
	tb       *tele.Bot
	quizzes  *quizzes
	practice config.Practice
}

// New creates the bot and registers its handlers.
func New(opts Options) (*Bot, error) {
	if opts.Token == "" && !opts.Offline {
		return nil, errors.New("telegram token is required (telegram.token or MATHDRILL_TELEGRAM_TOKEN)")
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 10 * time.Second
	}
	if opts.Engine == nil {
		opts.Engine = problemgen.New(nil)
	}
	if opts.Explainer == nil {
		opts.Explainer = explain.NewService(nil, explain.DefaultConfig())
	}

	tb, err := tele.NewBot(tele.Settings{
		Token:   opts.Token,
		Poller:  &tele.LongPoller{Timeout: opts.PollInterval},
		Offline: opts.Offline,
		OnError: func(err error, c tele.Context) {
			log.Printf("telegram: chat=%d: %v", chatID(c), err)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	b := &Bot{
		tb:       tb,
		quizzes:  newQuizzes(opts.Engine, opts.EventRepo, opts.Explainer),
		practice: opts.Practice,
	}

	tb.Use(Recover(nil), Logger(opts.Logger))

	tb.Handle("/start", b.onStart)
	tb.Handle("/help", b.onStart)
	tb.Handle("/multiply", b.onMultiply)
	tb.Handle("/compare", b.onCompare)
	tb.Handle("/stop", b.onStop)
	tb.Handle(&tele.Btn{Unique: uniqueMode}, b.onModeButton)
	tb.Handle(&tele.Btn{Unique: uniqueAnswer}, b.onAnswer)
	tb.Handle(tele.OnText, func(c tele.Context) error {
		return c.Send("Send /start to begin.")
	})

	return b, nil
}

// Run polls Telegram until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	go func() {
		<-ctx.Done()
		b.tb.Stop()
	}()
	log.Printf("mathdrill bot @%s polling", b.tb.Me.Username)
	b.tb.Start()
}

func (b *Bot) onStart(c tele.Context) error {
	return c.Send(welcomeText, modeMarkup())
}

func (b *Bot) onMultiply(c tele.Context) error {
	cfg := b.practice.QuizConfig(problemgen.ModeMultiplication)
	if args := c.Args(); len(args) > 0 {
		ms, err := parseMultipliers(args)
		if err != nil {
			return c.Send(err.Error())
		}
		cfg.Multipliers = ms
	}
	return b.begin(c, problemgen.ModeMultiplication, cfg)
}

func (b *Bot) onCompare(c tele.Context) error {
	cfg := b.practice.QuizConfig(problemgen.ModeInequality)
	if args := c.Args(); len(args) > 0 {
		ops, err := parseOperators(args)
		if err != nil {
			return c.Send(err.Error())
		}
		cfg.Operators = ops
	}
	return b.begin(c, problemgen.ModeInequality, cfg)
}

func (b *Bot) onModeButton(c tele.Context) error {
	_ = c.Respond()
	mode, err := problemgen.ParseMode(c.Data())
	if err != nil {
		return c.Send("Unknown mode. Send /start.")
	}
	return b.begin(c, mode, b.practice.QuizConfig(mode))
}

func (b *Bot) begin(c tele.Context, mode problemgen.Mode, cfg problemgen.Config) error {
	state, err := b.quizzes.start(context.Background(), c.Chat().ID, mode, cfg)
	if err != nil {
		if errors.Is(err, problemgen.ErrInvalidConfig) {
			return c.Send(problemgen.ConfigMessage(err))
		}
		return err
	}

	intro := fmt.Sprintf("%s: %d questions.", mode.Label(), state.Total())
	if state.Total() < state.Requested() {
		intro += fmt.Sprintf(" (Only %d distinct questions fit your selection.)", state.Total())
	}
	if err := c.Send(intro); err != nil {
		return err
	}
	q := session.CurrentQuestion(state)
	return c.Send(questionText(q, 0, state.Total()), optionsMarkup(quizTag(state), q, 0))
}

func (b *Bot) onAnswer(c tele.Context) error {
	quiz, index, value, err := parseAnswerPayload(c.Args())
	if err != nil {
		_ = c.Respond()
		return err
	}

	out, err := b.quizzes.answer(context.Background(), c.Chat().ID, quiz, index, value)
	switch {
	case errors.Is(err, errNoQuiz):
		return c.Respond(&tele.CallbackResponse{Text: "No quiz running. Send /start."})
	case errors.Is(err, errReplacedQuiz):
		return c.Respond(&tele.CallbackResponse{Text: "That quiz is over."})
	case errors.Is(err, errStaleQuestion):
		return c.Respond(&tele.CallbackResponse{Text: "Already answered."})
	case err != nil:
		_ = c.Respond()
		return err
	}
	_ = c.Respond()

	// Drop the keyboard so the question cannot be answered twice.
	_ = c.Edit(questionText(&out.Record.Question, out.Record.Index, out.Total))

	if err := c.Send(feedbackText(out)); err != nil {
		return err
	}
	if out.Next != nil {
		return c.Send(questionText(out.Next, out.NextIndex, out.Total), optionsMarkup(out.Quiz, out.Next, out.NextIndex))
	}
	return c.Send(summaryText(out.Summary))
}

func (b *Bot) onStop(c tele.Context) error {
	summary, err := b.quizzes.stop(context.Background(), c.Chat().ID)
	if errors.Is(err, errNoQuiz) {
		return c.Send("No quiz running. Send /start.")
	}
	if err != nil {
		return err
	}
	return c.Send(summaryText(summary))
}

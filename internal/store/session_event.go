package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo on the ent SQL driver and the global
// sequence counter.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *eventRepo) sql() *entsql.DialectBuilder {
	return entsql.Dialect(r.drv.Dialect())
}

// insert appends one row to table, stamping it with the next sequence
// number and the current time.
func (r *eventRepo) insert(ctx context.Context, table string, cols []string, vals []any) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	cols = append([]string{"sequence", "timestamp"}, cols...)
	vals = append([]any{seqNum, time.Now().UTC()}, vals...)

	q, args := r.sql().Insert(table).Columns(cols...).Values(vals...).Query()
	return r.drv.Exec(ctx, q, args, nil)
}

// query runs a selector and hands each row to scan.
func (r *eventRepo) query(ctx context.Context, sel *entsql.Selector, scan func(*entsql.Rows) error) error {
	q, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, q, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// applyOpts adds the QueryOpts filters and limit to sel.
func applyOpts(sel *entsql.Selector, opts QueryOpts) *entsql.Selector {
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("timestamp", opts.To.UTC()))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	return sel
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	cols := []string{"session_id", "mode", "action", "requested", "questions_served", "correct_answers", "duration_secs"}
	vals := []any{data.SessionID, data.Mode, data.Action, data.Requested, data.QuestionsServed, data.CorrectAnswers, data.DurationSecs}

	if data.Config != nil {
		raw, err := json.Marshal(data.Config)
		if err != nil {
			return fmt.Errorf("encode quiz config: %w", err)
		}
		cols = append(cols, "config")
		vals = append(vals, string(raw))
	}

	if err := r.insert(ctx, sessionEventsTable, cols, vals); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	err := r.insert(ctx, answerEventsTable,
		[]string{"session_id", "mode", "symbolic", "correct_answer", "learner_answer", "correct", "time_ms"},
		[]any{data.SessionID, data.Mode, data.Symbolic, data.CorrectAnswer, data.LearnerAnswer, data.Correct, data.TimeMs},
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	sel := r.sql().
		Select("id", "sequence", "timestamp", "session_id", "mode", "requested",
			"questions_served", "correct_answers", "duration_secs").
		From(entsql.Table(sessionEventsTable)).
		Where(entsql.EQ("action", ActionEnd)).
		OrderBy(entsql.Desc("sequence"))
	if opts.Mode != "" {
		sel.Where(entsql.EQ("mode", opts.Mode))
	}
	applyOpts(sel, opts)

	var out []SessionRecord
	err := r.query(ctx, sel, func(rows *entsql.Rows) error {
		var s SessionRecord
		if err := rows.Scan(&s.ID, &s.Sequence, &s.Timestamp, &s.SessionID, &s.Mode,
			&s.Requested, &s.QuestionsServed, &s.CorrectAnswers, &s.DurationSecs); err != nil {
			return err
		}
		out = append(out, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	return out, nil
}

func (r *eventRepo) ModeStats(ctx context.Context) ([]ModeStat, error) {
	sel := r.sql().
		Select(
			"mode",
			entsql.As(entsql.Count("*"), "sessions"),
			entsql.As(entsql.Sum("questions_served"), "questions"),
			entsql.As(entsql.Sum("correct_answers"), "correct"),
		).
		From(entsql.Table(sessionEventsTable)).
		Where(entsql.EQ("action", ActionEnd)).
		GroupBy("mode").
		OrderBy("mode")

	var out []ModeStat
	err := r.query(ctx, sel, func(rows *entsql.Rows) error {
		var m ModeStat
		if err := rows.Scan(&m.Mode, &m.Sessions, &m.Questions, &m.Correct); err != nil {
			return err
		}
		out = append(out, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query mode stats: %w", err)
	}
	return out, nil
}

func (r *eventRepo) MissedFacts(ctx context.Context, limit int) ([]MissedFact, error) {
	sel := r.sql().
		Select("symbolic", entsql.As(entsql.Count("*"), "misses")).
		From(entsql.Table(answerEventsTable)).
		Where(entsql.EQ("correct", false)).
		GroupBy("symbolic").
		OrderBy(entsql.Desc("misses"), "symbolic")
	if limit > 0 {
		sel.Limit(limit)
	}

	var out []MissedFact
	err := r.query(ctx, sel, func(rows *entsql.Rows) error {
		var m MissedFact
		if err := rows.Scan(&m.Symbolic, &m.Misses); err != nil {
			return err
		}
		out = append(out, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query missed facts: %w", err)
	}
	return out, nil
}

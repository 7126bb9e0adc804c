package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent marks the start and end of a practice quiz.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// QuizConfig is the persisted form of the learner's selection.
type QuizConfig struct {
	Multipliers   []int    `json:"multipliers,omitempty"`
	Operators     []string `json:"operators,omitempty"`
	QuestionCount int      `json:"question_count"`
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping the events of one quiz"),
		field.String("mode").
			NotEmpty().
			Comment("multiplication or inequality"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("requested").
			Default(0).
			Comment("Question count the learner asked for"),
		field.Int("questions_served").
			Default(0).
			Comment("Questions actually generated (may be fewer than requested)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Correct answers (end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Elapsed seconds (end only)"),
		field.JSON("config", QuizConfig{}).
			Optional().
			Comment("Learner selection (start only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("mode", "action"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one selection made by the learner.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("mode").
			NotEmpty().
			Comment("multiplication or inequality"),
		field.String("symbolic").
			NotEmpty().
			Comment("Question as shown, e.g. 4 × 6"),
		field.Int("correct_answer").
			Comment("Expected option value"),
		field.Int("learner_answer").
			Comment("Option value the learner picked"),
		field.Bool("correct").
			Comment("Whether the pick was right"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds from display to answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("symbolic", "correct"),
	}
}

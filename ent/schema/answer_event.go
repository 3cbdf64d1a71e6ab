package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question within an attempt.
// Multiple-choice and discursive answers share the table; the
// discursive-only fields default to empty for choice answers and the
// index fields to -1 for discursive ones.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Links to AttemptEvent"),
		field.Int("question_index").
			Comment("Position in the content item's question list"),
		field.String("format").
			NotEmpty().
			Comment("choice or discursive"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.Int("chosen_index").
			Default(-1).
			Comment("Option the learner chose (choice only)"),
		field.Int("correct_index").
			Default(-1).
			Comment("Correct option after normalization (choice only)"),
		field.String("student_text").
			Default("").
			Comment("Free-text answer (discursive only)"),
		field.String("adherence").
			Default("").
			Comment("Grading bucket (discursive only)"),
		field.Bool("correct").
			Comment("Full credit awarded"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("format"),
		index.Fields("correct"),
	}
}

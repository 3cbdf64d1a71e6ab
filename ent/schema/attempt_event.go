package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records quiz attempt lifecycle events (start/finish).
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("UUID grouping events in one attempt"),
		field.String("content_id").
			NotEmpty().
			Comment("Content item being played"),
		field.String("content_title").
			Default("").
			Comment("Display title at play time"),
		field.String("action").
			NotEmpty().
			Comment("start or finish"),
		field.Int("questions_presented").
			Default(0).
			Comment("Valid questions served (on finish only)"),
		field.Int("score_halves").
			Default(0).
			Comment("Score in half-point units, so partial credit stays integral (on finish only)"),
		field.Int("total_points").
			Default(0).
			Comment("Points emitted to the completion callback, bonus included (on finish only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Attempt duration in seconds (on finish only)"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("content_id"),
		index.Fields("action"),
	}
}

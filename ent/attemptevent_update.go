// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rlemos/provinha/ent/attemptevent"
	"github.com/rlemos/provinha/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptEventUpdate) SetAttemptID(v string) *AttemptEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAttemptID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetContentID sets the "content_id" field.
func (_u *AttemptEventUpdate) SetContentID(v string) *AttemptEventUpdate {
	_u.mutation.SetContentID(v)
	return _u
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableContentID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetContentID(*v)
	}
	return _u
}

// SetContentTitle sets the "content_title" field.
func (_u *AttemptEventUpdate) SetContentTitle(v string) *AttemptEventUpdate {
	_u.mutation.SetContentTitle(v)
	return _u
}

// SetNillableContentTitle sets the "content_title" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableContentTitle(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetContentTitle(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AttemptEventUpdate) SetAction(v string) *AttemptEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAction(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetQuestionsPresented sets the "questions_presented" field.
func (_u *AttemptEventUpdate) SetQuestionsPresented(v int) *AttemptEventUpdate {
	_u.mutation.ResetQuestionsPresented()
	_u.mutation.SetQuestionsPresented(v)
	return _u
}

// SetNillableQuestionsPresented sets the "questions_presented" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuestionsPresented(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuestionsPresented(*v)
	}
	return _u
}

// AddQuestionsPresented adds value to the "questions_presented" field.
func (_u *AttemptEventUpdate) AddQuestionsPresented(v int) *AttemptEventUpdate {
	_u.mutation.AddQuestionsPresented(v)
	return _u
}

// SetScoreHalves sets the "score_halves" field.
func (_u *AttemptEventUpdate) SetScoreHalves(v int) *AttemptEventUpdate {
	_u.mutation.ResetScoreHalves()
	_u.mutation.SetScoreHalves(v)
	return _u
}

// SetNillableScoreHalves sets the "score_halves" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableScoreHalves(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetScoreHalves(*v)
	}
	return _u
}

// AddScoreHalves adds value to the "score_halves" field.
func (_u *AttemptEventUpdate) AddScoreHalves(v int) *AttemptEventUpdate {
	_u.mutation.AddScoreHalves(v)
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *AttemptEventUpdate) SetTotalPoints(v int) *AttemptEventUpdate {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTotalPoints(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *AttemptEventUpdate) AddTotalPoints(v int) *AttemptEventUpdate {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AttemptEventUpdate) SetDurationSecs(v int) *AttemptEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableDurationSecs(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AttemptEventUpdate) AddDurationSecs(v int) *AttemptEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentID(); ok {
		if err := attemptevent.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.content_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := attemptevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentID(); ok {
		_spec.SetField(attemptevent.FieldContentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentTitle(); ok {
		_spec.SetField(attemptevent.FieldContentTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(attemptevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsPresented(); ok {
		_spec.SetField(attemptevent.FieldQuestionsPresented, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsPresented(); ok {
		_spec.AddField(attemptevent.FieldQuestionsPresented, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScoreHalves(); ok {
		_spec.SetField(attemptevent.FieldScoreHalves, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreHalves(); ok {
		_spec.AddField(attemptevent.FieldScoreHalves, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(attemptevent.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(attemptevent.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(attemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(attemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptEventUpdateOne) SetAttemptID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAttemptID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetContentID sets the "content_id" field.
func (_u *AttemptEventUpdateOne) SetContentID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetContentID(v)
	return _u
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableContentID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetContentID(*v)
	}
	return _u
}

// SetContentTitle sets the "content_title" field.
func (_u *AttemptEventUpdateOne) SetContentTitle(v string) *AttemptEventUpdateOne {
	_u.mutation.SetContentTitle(v)
	return _u
}

// SetNillableContentTitle sets the "content_title" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableContentTitle(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetContentTitle(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AttemptEventUpdateOne) SetAction(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAction(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetQuestionsPresented sets the "questions_presented" field.
func (_u *AttemptEventUpdateOne) SetQuestionsPresented(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetQuestionsPresented()
	_u.mutation.SetQuestionsPresented(v)
	return _u
}

// SetNillableQuestionsPresented sets the "questions_presented" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuestionsPresented(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuestionsPresented(*v)
	}
	return _u
}

// AddQuestionsPresented adds value to the "questions_presented" field.
func (_u *AttemptEventUpdateOne) AddQuestionsPresented(v int) *AttemptEventUpdateOne {
	_u.mutation.AddQuestionsPresented(v)
	return _u
}

// SetScoreHalves sets the "score_halves" field.
func (_u *AttemptEventUpdateOne) SetScoreHalves(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetScoreHalves()
	_u.mutation.SetScoreHalves(v)
	return _u
}

// SetNillableScoreHalves sets the "score_halves" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableScoreHalves(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetScoreHalves(*v)
	}
	return _u
}

// AddScoreHalves adds value to the "score_halves" field.
func (_u *AttemptEventUpdateOne) AddScoreHalves(v int) *AttemptEventUpdateOne {
	_u.mutation.AddScoreHalves(v)
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *AttemptEventUpdateOne) SetTotalPoints(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTotalPoints(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *AttemptEventUpdateOne) AddTotalPoints(v int) *AttemptEventUpdateOne {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AttemptEventUpdateOne) SetDurationSecs(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableDurationSecs(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AttemptEventUpdateOne) AddDurationSecs(v int) *AttemptEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentID(); ok {
		if err := attemptevent.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.content_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := attemptevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentID(); ok {
		_spec.SetField(attemptevent.FieldContentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentTitle(); ok {
		_spec.SetField(attemptevent.FieldContentTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(attemptevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsPresented(); ok {
		_spec.SetField(attemptevent.FieldQuestionsPresented, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsPresented(); ok {
		_spec.AddField(attemptevent.FieldQuestionsPresented, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScoreHalves(); ok {
		_spec.SetField(attemptevent.FieldScoreHalves, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreHalves(); ok {
		_spec.AddField(attemptevent.FieldScoreHalves, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(attemptevent.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(attemptevent.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(attemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(attemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetQuestionIndex(data.QuestionIndex).
		SetFormat(data.Format).
		SetQuestionText(data.QuestionText).
		SetChosenIndex(data.ChosenIndex).
		SetCorrectIndex(data.CorrectIndex).
		SetStudentText(data.StudentText).
		SetAdherence(data.Adherence).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

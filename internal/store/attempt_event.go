package store

import (
	"context"
	"fmt"

	"github.com/rlemos/provinha/ent"
	"github.com/rlemos/provinha/ent/attemptevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetContentID(data.ContentID).
		SetContentTitle(data.ContentTitle).
		SetAction(data.Action).
		SetQuestionsPresented(data.QuestionsPresented).
		SetScoreHalves(data.ScoreHalves).
		SetTotalPoints(data.TotalPoints).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, limit int) ([]AttemptRow, error) {
	q := r.client.AttemptEvent.Query().
		Where(attemptevent.Action("finish")).
		Order(ent.Desc(attemptevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	rows := make([]AttemptRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, AttemptRow{
			AttemptID:          e.AttemptID,
			ContentID:          e.ContentID,
			ContentTitle:       e.ContentTitle,
			Timestamp:          e.Timestamp,
			QuestionsPresented: e.QuestionsPresented,
			ScoreHalves:        e.ScoreHalves,
			TotalPoints:        e.TotalPoints,
			DurationSecs:       e.DurationSecs,
		})
	}
	return rows, nil
}

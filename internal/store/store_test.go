package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAttemptLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAttemptEvent(ctx, AttemptEventData{
		AttemptID:    "a1",
		ContentID:    "hist-colonia-01",
		ContentTitle: "Brasil Colônia",
		Action:       "start",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	err = repo.AppendAttemptEvent(ctx, AttemptEventData{
		AttemptID:          "a1",
		ContentID:          "hist-colonia-01",
		ContentTitle:       "Brasil Colônia",
		Action:             "finish",
		QuestionsPresented: 4,
		ScoreHalves:        7, // 3.5 points
		TotalPoints:        35,
		DurationSecs:       120,
	})
	if err != nil {
		t.Fatalf("append finish: %v", err)
	}

	rows, err := repo.RecentAttempts(ctx, 10)
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1 (start events excluded)", len(rows))
	}
	if rows[0].TotalPoints != 35 {
		t.Errorf("TotalPoints = %d, want 35", rows[0].TotalPoints)
	}
	if rows[0].ScoreHalves != 7 {
		t.Errorf("ScoreHalves = %d, want 7", rows[0].ScoreHalves)
	}
}

func TestRecentAttemptsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, id := range []string{"a1", "a2", "a3"} {
		err := repo.AppendAttemptEvent(ctx, AttemptEventData{
			AttemptID: id,
			ContentID: "c",
			Action:    "finish",
		})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	rows, err := repo.RecentAttempts(ctx, 2)
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].AttemptID != "a3" || rows[1].AttemptID != "a2" {
		t.Errorf("order = %s, %s; want a3, a2", rows[0].AttemptID, rows[1].AttemptID)
	}
}

func TestAnswerAndLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		AttemptID:     "a1",
		QuestionIndex: 0,
		Format:        "choice",
		QuestionText:  "Qual produto iniciou a colonização?",
		ChosenIndex:   1,
		CorrectIndex:  0,
		Correct:       false,
		TimeMs:        4200,
	})
	if err != nil {
		t.Fatalf("append answer: %v", err)
	}

	err = repo.AppendAnswerEvent(ctx, AnswerEventData{
		AttemptID:     "a1",
		QuestionIndex: 1,
		Format:        "discursive",
		QuestionText:  "Explique o escambo.",
		ChosenIndex:   -1,
		CorrectIndex:  -1,
		StudentText:   "Era troca de coisas.",
		Adherence:     "partial",
		Correct:       false,
		TimeMs:        30000,
	})
	if err != nil {
		t.Fatalf("append discursive answer: %v", err)
	}

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "grading",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    900,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 5})
	if err != nil {
		t.Fatalf("query llm events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].Purpose != "grading" {
		t.Errorf("Purpose = %q, want grading", events[0].Purpose)
	}
}

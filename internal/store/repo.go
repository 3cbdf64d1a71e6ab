package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AttemptEventData captures a quiz-attempt lifecycle event.
type AttemptEventData struct {
	AttemptID          string
	ContentID          string
	ContentTitle       string
	Action             string // "start" or "finish"
	QuestionsPresented int
	ScoreHalves        int // score in half-point units
	TotalPoints        int
	DurationSecs       int
}

// AnswerEventData captures one answered question.
type AnswerEventData struct {
	AttemptID     string
	QuestionIndex int
	Format        string // "choice" or "discursive"
	QuestionText  string
	ChosenIndex   int // -1 for discursive
	CorrectIndex  int // -1 for discursive
	StudentText   string
	Adherence     string
	Correct       bool
	TimeMs        int
}

// AttemptRow is one finished attempt as returned by RecentAttempts.
type AttemptRow struct {
	AttemptID          string
	ContentID          string
	ContentTitle       string
	Timestamp          time.Time
	QuestionsPresented int
	ScoreHalves        int
	TotalPoints        int
	DurationSecs       int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRow is one logged LLM request as returned by QueryLLMEvents.
type LLMEventRow struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string

	// Bodies are populated by GetLLMEvent only; list queries skip them.
	RequestBody  string
	ResponseBody string
}

// LLMUsageRow aggregates request-log usage for one purpose.
type LLMUsageRow struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttemptEvent records an attempt start or finish.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// AppendAnswerEvent records one answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// RecentAttempts returns finished attempts, newest first.
	RecentAttempts(ctx context.Context, limit int) ([]AttemptRow, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns logged LLM requests, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRow, error)

	// GetLLMEvent returns one logged request with its bodies, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRow, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageRow, error)
}

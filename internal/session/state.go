// Package session implements the quiz-attempt state machine: navigation
// over the skip-filtered question sequence, answer evaluation, score
// accumulation, auto-advance scheduling and completion.
//
// The engine is single-threaded by contract: every method must be called
// from the owner's event loop. The only concurrency at the boundary is
// the auto-advance timer, which fires on the scheduler's goroutine and
// only invokes the notify callback — the owner routes that back into its
// loop and calls HandleAutoAdvance there.
package session

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/rlemos/provinha/internal/content"
	"github.com/rlemos/provinha/internal/effects"
	"github.com/rlemos/provinha/internal/grading"
	"github.com/rlemos/provinha/internal/quiz"
	"github.com/rlemos/provinha/internal/timer"
)

// Feedback is the visual feedback mode between an answer submission and
// the next question transition.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackWrong
)

// Auto-advance delays after a multiple-choice answer. The wrong-answer
// delay is longer so the learner can read the explanation.
const (
	CorrectAdvanceDelay = 2000 * time.Millisecond
	WrongAdvanceDelay   = 3000 * time.Millisecond
)

var (
	// ErrNoQuestions means no record in the content item normalizes to a
	// renderable question; the attempt cannot start.
	ErrNoQuestions = errors.New("no valid questions in content")

	// ErrFinished means the attempt already completed.
	ErrFinished = errors.New("attempt already finished")

	// ErrAlreadyAnswered guards the at-most-one-submission-per-question
	// invariant.
	ErrAlreadyAnswered = errors.New("question already answered")

	// ErrNotChoice and ErrNotDiscursive reject submissions against the
	// wrong question format.
	ErrNotChoice     = errors.New("current question is not multiple-choice")
	ErrNotDiscursive = errors.New("current question is not discursive")

	// ErrEmptyAnswer rejects blank discursive submissions locally,
	// before any grading call.
	ErrEmptyAnswer = errors.New("answer text is empty")

	// ErrGradingInFlight blocks re-submission while a grading call is
	// outstanding.
	ErrGradingInFlight = errors.New("grading already in progress")
)

// Options configures an Engine.
type Options struct {
	// Scheduler drives auto-advance. Defaults to the wall clock.
	Scheduler timer.Scheduler

	// RNG seeds distractor shuffling during normalization. Defaults to
	// a time-seeded source.
	RNG *rand.Rand

	// Effects receives fire-and-forget celebration triggers. Defaults
	// to the null implementation.
	Effects effects.Celebrator

	// OnComplete is invoked exactly once, with the attempt's total
	// points, when the session finishes.
	OnComplete func(totalPoints int)

	// OnAutoAdvance is called from the scheduler's goroutine when an
	// auto-advance timer fires. Implementations must be safe to call
	// concurrently and should route back to the owner's loop, which
	// then calls HandleAutoAdvance with the same generation.
	OnAutoAdvance func(generation uint64)
}

// Engine owns the state of one quiz attempt. It is discarded after the
// attempt finishes; nothing is persisted mid-session.
type Engine struct {
	meta    content.Meta
	records []content.Record

	sched     timer.Scheduler
	rng       *rand.Rand
	effects   effects.Celebrator
	onDone    func(int)
	onAdvance func(uint64)

	// normalized caches each record's normalized form by record index,
	// so the shuffled option order seen on screen is the order scored.
	normalized map[int]*quiz.Question

	current    int
	started    bool
	finished   bool
	score      float64
	answered   int
	totalValid int

	selected      *int
	feedback      Feedback
	gradingResult *grading.Result
	gradingBusy   bool

	// generation increments on every question transition; timer fires
	// and grading results carrying an older generation are stale and
	// discarded.
	generation uint64
	cancel     timer.CancelFunc
}

// New creates an Engine over a content item's question records.
func New(meta content.Meta, records []content.Record, opts Options) *Engine {
	if opts.Scheduler == nil {
		opts.Scheduler = timer.Clock{}
	}
	if opts.RNG == nil {
		opts.RNG = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if opts.Effects == nil {
		opts.Effects = effects.Null{}
	}

	return &Engine{
		meta:       meta,
		records:    records,
		sched:      opts.Scheduler,
		rng:        opts.RNG,
		effects:    opts.Effects,
		onDone:     opts.OnComplete,
		onAdvance:  opts.OnAutoAdvance,
		normalized: make(map[int]*quiz.Question),
	}
}

// Meta returns the content metadata for this attempt.
func (e *Engine) Meta() content.Meta { return e.meta }

// Score returns the accumulated score. It only ever increases.
func (e *Engine) Score() float64 { return e.score }

// Answered returns how many questions have been answered so far.
func (e *Engine) Answered() int { return e.answered }

// TotalValid returns how many records normalize to renderable questions.
func (e *Engine) TotalValid() int { return e.totalValid }

// Finished reports whether the attempt reached its terminal state.
func (e *Engine) Finished() bool { return e.finished }

// Feedback returns the current feedback mode.
func (e *Engine) Feedback() Feedback { return e.feedback }

// Selected returns the chosen option index, or nil when the current
// question has not been answered.
func (e *Engine) Selected() *int { return e.selected }

// GradingResult returns the held grading feedback for the current
// discursive question, or nil.
func (e *Engine) GradingResult() *grading.Result { return e.gradingResult }

// GradingBusy reports whether a grading call is outstanding.
func (e *Engine) GradingBusy() bool { return e.gradingBusy }

// Generation returns the current transition generation, used to match
// asynchronous results against the question they belong to.
func (e *Engine) Generation() uint64 { return e.generation }

// Index returns the raw record index of the current question.
func (e *Engine) Index() int { return e.current }

// Question returns the normalized current question. Normalization is
// cached per record so repeated calls agree on option order.
func (e *Engine) Question() *quiz.Question {
	if e.finished || !e.started {
		return nil
	}
	return e.normalize(e.current)
}

func (e *Engine) normalize(i int) *quiz.Question {
	if q, ok := e.normalized[i]; ok {
		return q
	}
	q := quiz.Normalize(e.records[i], e.rng)
	e.normalized[i] = q
	return q
}

// cancelPending stops any scheduled auto-advance. At most one timer is
// pending at any time.
func (e *Engine) cancelPending() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

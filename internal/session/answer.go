package session

import (
	"strings"
	"time"

	"github.com/rlemos/provinha/internal/grading"
	"github.com/rlemos/provinha/internal/quiz"
)

// SubmitAnswer evaluates a multiple-choice selection against the
// current question, awards a point on a correct pick and schedules the
// auto-advance timer. A second submission for the same question is
// rejected with ErrAlreadyAnswered and changes nothing.
func (e *Engine) SubmitAnswer(chosen int) error {
	if e.finished || !e.started {
		return ErrFinished
	}
	q := e.Question()
	if q == nil || q.Format != quiz.FormatChoice {
		return ErrNotChoice
	}
	if e.selected != nil {
		return ErrAlreadyAnswered
	}

	idx := chosen
	e.selected = &idx
	e.answered++

	delay := WrongAdvanceDelay
	if chosen == q.CorrectIndex {
		e.score++
		e.feedback = FeedbackCorrect
		e.effects.Celebrate()
		delay = CorrectAdvanceDelay
	} else {
		e.feedback = FeedbackWrong
	}

	e.scheduleAdvance(delay)
	return nil
}

// BeginDiscursive validates a free-text answer and marks the question
// as awaiting grading. It returns the generation the caller must pass
// back to ApplyGrading or FailGrading; results for an older generation
// are discarded, so navigating away abandons the in-flight call.
//
// Whitespace-only text is rejected here so no grading request is made
// for an empty answer.
func (e *Engine) BeginDiscursive(text string) (uint64, error) {
	if e.finished || !e.started {
		return 0, ErrFinished
	}
	q := e.Question()
	if q == nil || q.Format != quiz.FormatDiscursive {
		return 0, ErrNotDiscursive
	}
	if e.feedback != FeedbackNone {
		return 0, ErrAlreadyAnswered
	}
	if e.gradingBusy {
		return 0, ErrGradingInFlight
	}
	if strings.TrimSpace(text) == "" {
		return 0, ErrEmptyAnswer
	}

	e.gradingBusy = true
	return e.generation, nil
}

// ApplyGrading records the outcome of a grading call started by
// BeginDiscursive. Adherence maps to score as correct +1, partial +0.5,
// incorrect +0. Discursive questions never auto-advance; the learner
// reads the feedback and continues manually.
func (e *Engine) ApplyGrading(generation uint64, res *grading.Result) {
	if generation != e.generation || e.finished {
		return
	}

	e.gradingBusy = false
	e.gradingResult = res
	e.answered++

	switch res.Adherence {
	case grading.AdherenceCorrect:
		e.score++
		e.feedback = FeedbackCorrect
		e.effects.Celebrate()
	case grading.AdherencePartial:
		e.score += 0.5
		e.feedback = FeedbackCorrect
		e.effects.Celebrate()
	default:
		e.feedback = FeedbackWrong
	}
}

// FailGrading clears the in-flight flag after a grading error so the
// learner can retry. The question stays unanswered and the score is
// untouched.
func (e *Engine) FailGrading(generation uint64) {
	if generation != e.generation {
		return
	}
	e.gradingBusy = false
}

func (e *Engine) scheduleAdvance(delay time.Duration) {
	e.cancelPending()
	gen := e.generation
	notify := e.onAdvance
	e.cancel = e.sched.AfterFunc(delay, func() {
		if notify != nil {
			notify(gen)
		}
	})
}

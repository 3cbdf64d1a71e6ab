// Package grading evaluates free-text (discursive) answers against a
// content author's guideline using an LLM provider. The session engine
// treats it as a black box: a submission either produces a Result or an
// error the learner can retry.
package grading

import "context"

// Adherence is the qualitative bucket describing how well a free-text
// answer matches the grading guideline.
type Adherence string

const (
	AdherenceCorrect   Adherence = "correct"
	AdherencePartial   Adherence = "partial"
	AdherenceIncorrect Adherence = "incorrect"
)

// Valid reports whether a is one of the three known buckets.
func (a Adherence) Valid() bool {
	switch a {
	case AdherenceCorrect, AdherencePartial, AdherenceIncorrect:
		return true
	}
	return false
}

// Submission carries everything the grader needs for one answer.
// Grade/Age/Subject/Topic come from the content item's metadata and tune
// the tone and depth of the feedback.
type Submission struct {
	StudentText string
	Guideline   string
	Grade       string
	Age         int
	Subject     string
	Topic       string
}

// Result is the structured grading feedback. Created once per submission,
// consumed to update the session score, then held read-only for display
// until the next question.
type Result struct {
	Adherence    Adherence
	Positives    []string
	Improvements []string
	ModelAnswer  string
}

// Grader grades one discursive submission. Implementations may call out
// over the network; callers must treat latency as unbounded and pass a
// context they control.
type Grader interface {
	Grade(ctx context.Context, sub Submission) (*Result, error)
}

package player

import "github.com/rlemos/provinha/internal/grading"

// autoAdvanceMsg arrives when the feedback timer for the question with
// this generation fired. Stale generations are ignored by the engine.
type autoAdvanceMsg struct {
	Generation uint64
}

// gradedMsg carries the outcome of an asynchronous grading call.
type gradedMsg struct {
	Generation uint64
	Result     *grading.Result
	Err        error
}

// finishedMsg is emitted after the attempt's finish event has been
// recorded; it triggers the push of the results screen.
type finishedMsg struct{}
